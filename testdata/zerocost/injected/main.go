// Twin of ../baseline: the same program with faultline instrumentation.
// zerocost_test.go builds both with -tags faultline_off and asserts the
// binaries match in size. Keep the twins in sync.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/justapithecus/faultline"
)

func writeGreeting(path string) error {
	if err := faultline.InjectErr("create greeting"); err != nil {
		return err
	}
	if err, ok := faultline.InjectReturn("write greeting", os.ErrPermission); ok {
		return err
	}
	return os.WriteFile(path, []byte("hello\n"), 0o644)
}

func main() {
	path := filepath.Join(os.TempDir(), "faultline-zerocost")
	if err := writeGreeting(path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("ok")
}
