//go:build !faultline_off

package faultline

import (
	"fmt"

	"github.com/justapithecus/faultline/types"
)

// Failpoint names: every primitive takes a name for the failpoint it
// declares. An empty name is synthesized from the call site's source
// file and line; two unnamed failpoints on the same source line
// collide, so name those explicitly.

// InjectReturn defines a failpoint that substitutes an early return.
// When activated it returns (value, true) and the caller is expected to
// return value from the enclosing function; otherwise it returns the
// zero value and false and the caller falls through:
//
//	if err, ok := faultline.InjectReturn("open index", errBadIndex); ok {
//		return err
//	}
func InjectReturn[T any](name string, value T) (T, bool) {
	if branch, _, ok := visitSite(name, 3); ok && branch == types.Activate {
		return value, true
	}
	var zero T
	return zero, false
}

// InjectErr defines a failpoint that yields an I/O-shaped error. When
// activated it returns a non-nil error wrapping ErrInjected and carrying
// the failpoint name; otherwise nil. The common instrumentation form:
//
//	if err := faultline.InjectErr("write temp file"); err != nil {
//		return err
//	}
func InjectErr(name string) error {
	if branch, resolved, ok := visitSite(name, 3); ok && branch == types.Activate {
		return fmt.Errorf("%s: %w", resolved, ErrInjected)
	}
	return nil
}

// InjectOverride defines a failpoint that overrides an expression. When
// activated, expr is NOT evaluated and alt is returned; otherwise the
// value is expr(). Use InjectOverrideWithSideEffect when expr must run
// regardless.
func InjectOverride[T any](name string, expr func() T, alt T) T {
	if branch, _, ok := visitSite(name, 3); ok && branch == types.Activate {
		return alt
	}
	return expr()
}

// InjectOverrideWithSideEffect defines a failpoint that overrides an
// expression whose side effect must still be applied. expr is always
// evaluated, after the failpoint decision; when activated the result is
// discarded and alt is returned instead.
func InjectOverrideWithSideEffect[T any](name string, expr func() T, alt T) T {
	branch, _, ok := visitSite(name, 3)
	res := expr()
	if ok && branch == types.Activate {
		return alt
	}
	return res
}
