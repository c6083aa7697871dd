//go:build faultline_off

package faultline

// Instrumentation is compiled out. Under this tag the package holds
// nothing but these constant no-ops: no engine, no package-level state,
// no imports, so an importer links in no init code and a binary built
// with -tags faultline_off matches the uninstrumented build. The
// Runner, the engine, and ErrInjected are absent under this tag; only
// test code uses them, and those tests carry the inverse tag.

// InjectReturn falls through: (zero value, false).
func InjectReturn[T any](_ string, _ T) (T, bool) {
	var zero T
	return zero, false
}

// InjectErr falls through: nil.
func InjectErr(_ string) error {
	return nil
}

// InjectOverride falls through: expr().
func InjectOverride[T any](_ string, expr func() T, _ T) T {
	return expr()
}

// InjectOverrideWithSideEffect falls through: expr().
func InjectOverrideWithSideEffect[T any](_ string, expr func() T, _ T) T {
	return expr()
}

// SetEnabled falls through: there is no engine to toggle.
func SetEnabled(_ bool) {}
