// Package fsx provides failpoint-instrumented filesystem helpers.
//
// ReplaceFile is the canonical faultline consumer: every I/O step is
// behind a named failpoint, so a session over it exercises a failure at
// each step and the caller can assert the atomicity invariant (old
// contents or new contents, never anything else) on every path.
package fsx

import (
	"os"

	"github.com/justapithecus/faultline"
	"github.com/justapithecus/faultline/iox"
)

// ReplaceFile atomically replaces the file at path with data: write a
// temp file alongside it, then rename over the target. On error the
// target keeps its previous contents; the temp file may be left behind.
func ReplaceFile(path string, data []byte) error {
	tmp := path + ".tmp"

	if err := faultline.InjectErr("create temp file"); err != nil {
		return err
	}
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if err := faultline.InjectErr("write temp file"); err != nil {
		iox.DiscardClose(f)
		return err
	}
	if _, err := f.Write(data); err != nil {
		iox.DiscardClose(f)
		return err
	}

	if err := faultline.InjectErr("close temp file"); err != nil {
		iox.DiscardClose(f)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	if err := faultline.InjectErr("replace file"); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
