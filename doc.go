// Package faultline is a deterministic fault-injection test driver.
//
// Instrumented code declares named failpoints; at each one the engine
// decides whether to activate the fault (substitute an injected outcome,
// such as an I/O error) or skip it. The Runner re-executes the tested
// closure, steering a different activate/skip decision sequence on each
// run, until every reachable combination has executed exactly once. The
// test does not need to know which failpoints exist or which failures to
// expect; it only asserts the invariants that must hold on every path.
//
// Instrumenting code:
//
//	func replaceFile(path string, data []byte) error {
//		if err := faultline.InjectErr("create temp file"); err != nil {
//			return err
//		}
//		f, err := os.Create(path + ".tmp")
//		...
//	}
//
// Driving it from a test:
//
//	rep, err := faultline.NewRunner().Run(func() {
//		// prepare state, call the instrumented code, assert invariants
//	})
//
// Outside of Runner.Run the primitives fall through and observe nothing,
// so instrumented code behaves normally in production. Building with
// -tags faultline_off compiles the primitives down to constant no-ops so
// the binary matches an uninstrumented build.
//
// Sessions are strictly single-goroutine: the closure runs on the
// caller's goroutine, sessions must not nest, and failpoints hit from
// goroutines spawned by the closure are not supported.
package faultline
