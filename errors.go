//go:build !faultline_off

package faultline

import "errors"

// ErrInjected is the sentinel wrapped by every error InjectErr
// synthesizes. Use errors.Is(err, faultline.ErrInjected) to tell an
// injected failure from a real one.
var ErrInjected = errors.New("injected failure")
