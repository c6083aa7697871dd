//go:build !faultline_off

package faultline

import (
	"runtime"
	"strconv"
	"sync"

	"github.com/justapithecus/faultline/explore"
	"github.com/justapithecus/faultline/types"
)

// engine is the per-session state reached from instrumented code. Go has
// no thread-local storage, so it lives in a package-level slot guarded
// by a mutex; Runner.Run installs it for the duration of a session and
// refuses to nest. Concurrent sessions are not supported.
type engine struct {
	enabled bool
	tree    *explore.Tree
}

var (
	engineMu  sync.Mutex
	installed *engine
)

// install claims the engine slot for a session.
func install(e *engine) {
	engineMu.Lock()
	defer engineMu.Unlock()
	if installed != nil {
		panic("faultline: a session is already running; nested or concurrent Run is not supported")
	}
	installed = e
}

// uninstall releases the engine slot. Safe to run on unwinding paths.
func uninstall() {
	engineMu.Lock()
	defer engineMu.Unlock()
	installed = nil
}

// SetEnabled toggles failpoint processing inside the currently installed
// engine. A no-op when no engine is installed. Failpoints passed while
// disabled contribute no label to the path, as if the call sites did not
// exist; enable and disable are symmetric and reentrant.
//
// The flag persists across runs within a session: a closure that
// disables failpoints must re-enable them itself.
func SetEnabled(enabled bool) {
	engineMu.Lock()
	defer engineMu.Unlock()
	if installed != nil {
		installed.enabled = enabled
	}
}

// visitSite resolves the failpoint name and asks the installed engine
// for a branch. ok is false when no engine is installed or failpoints
// are disabled; the primitive must then fall through without observing
// or recording anything.
//
// callerSkip is the runtime.Caller skip count from callSiteName to the
// instrumented call site, used only when name is empty.
func visitSite(name string, callerSkip int) (branch types.Branch, resolved string, ok bool) {
	engineMu.Lock()
	defer engineMu.Unlock()
	if installed == nil || !installed.enabled {
		return types.Skip, name, false
	}
	if name == "" {
		name = callSiteName(callerSkip)
	}
	return installed.tree.Visit(types.Failpoint(name)), name, true
}

// callSiteName synthesizes a deterministic failpoint name from the call
// site's source position. A given call site produces the same name in
// every run; distinct call sites never collide unless they share a
// source line (name such failpoints explicitly).
func callSiteName(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		panic("faultline: cannot resolve call site for unnamed failpoint")
	}
	return file + ":" + strconv.Itoa(line)
}
