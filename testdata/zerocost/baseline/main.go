// Twin of ../injected: the same program without instrumentation.
// zerocost_test.go builds both with -tags faultline_off and asserts the
// binaries match in size. Keep the twins in sync.
package main

import (
	"fmt"
	"os"
	"path/filepath"
)

func writeGreeting(path string) error {
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
