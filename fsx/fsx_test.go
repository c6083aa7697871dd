//go:build !faultline_off

package fsx_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/justapithecus/faultline"
	"github.com/justapithecus/faultline/fsx"
)

func TestReplaceFile_PlainUse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := fsx.ReplaceFile(path, []byte("new")); err != nil {
		t.Fatalf("ReplaceFile() = %v, want nil", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("contents = %q, want %q", got, "new")
	}
}

func TestReplaceFile_CreatesMissingTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data")

	if err := fsx.ReplaceFile(path, []byte("new")); err != nil {
		t.Fatalf("ReplaceFile() = %v, want nil", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("contents = %q, want %q", got, "new")
	}
}

// The atomicity property, exhaustively: whatever I/O step fails, the
// target file holds either the old contents or the new contents, never
// a truncated or missing file.
func TestReplaceFile_AtomicUnderFaults(t *testing.T) {
	var injected []error
	rep, err := faultline.NewRunner().Run(func() {
		path := filepath.Join(t.TempDir(), "data")
		if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
			t.Fatal(err)
		}

		res := fsx.ReplaceFile(path, []byte("new"))
		if res != nil {
			injected = append(injected, res)
		}

		got, readErr := os.ReadFile(path)
		if readErr != nil {
			t.Errorf("target unreadable after ReplaceFile: %v", readErr)
			return
		}
		switch {
		case res == nil && string(got) != "new":
			t.Errorf("successful replace left contents %q, want %q", got, "new")
		case res != nil && string(got) != "old":
			t.Errorf("failed replace left contents %q, want %q", got, "old")
		}
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// Four instrumented steps, each failing once, plus the clean run.
	if rep.Runs != 5 {
		t.Errorf("rep.Runs = %d, want 5 (sequences %v)", rep.Runs, rep.Sequences)
	}
	if len(injected) != 4 {
		t.Errorf("got %d injected failures, want 4", len(injected))
	}
	for _, e := range injected {
		if !errors.Is(e, faultline.ErrInjected) {
			t.Errorf("failure %v does not wrap faultline.ErrInjected", e)
		}
	}
}
