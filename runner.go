//go:build !faultline_off

package faultline

import (
	"io"

	"github.com/google/uuid"

	"github.com/justapithecus/faultline/explore"
	"github.com/justapithecus/faultline/log"
	"github.com/justapithecus/faultline/metrics"
	"github.com/justapithecus/faultline/report"
	"github.com/justapithecus/faultline/types"
)

// Runner drives a run-until-exhausted session over code instrumented
// with failpoints. Construct with NewRunner, tune with the With setters,
// and call Run with the tested closure.
//
// The closure is invoked many times, once per distinct decision
// sequence. It must be re-entrant and reset any state it mutates between
// invocations; the runner does not do this for it.
type Runner struct {
	opts      explore.Options
	logOutput io.Writer
}

// NewRunner creates a runner with default options: injected paths are
// tried first, logging disabled.
func NewRunner() *Runner {
	return &Runner{opts: explore.DefaultOptions()}
}

// WithBranchPreference selects which branch is tried first at a newly
// discovered failpoint. This permutes the order of runs within a
// session; the set of explored paths is unchanged.
func (r *Runner) WithBranchPreference(b types.Branch) *Runner {
	r.opts.BranchPreference = b
	return r
}

// WithLogOutput enables structured run-lifecycle logging to w.
func (r *Runner) WithLogOutput(w io.Writer) *Runner {
	r.logOutput = w
	return r
}

// Run executes fn repeatedly until every reachable activate/skip
// combination of its failpoints has been exercised exactly once, then
// reports the session outcome.
//
// Run installs the engine for the duration of the session and panics if
// a session is already active; nested and concurrent sessions are not
// supported. Teardown runs in a defer, so a panicking closure leaves no
// engine installed (the panic itself propagates).
//
// The error result is reserved for future outcome kinds and is always
// nil today; failures of the tested code surface through the closure's
// own asserts.
func (r *Runner) Run(fn func()) (*report.Report, error) {
	sessionID := uuid.NewString()
	collector := metrics.NewCollector(sessionID, r.opts.BranchPreference.String())

	var logger *log.Logger
	if r.logOutput != nil {
		logger = log.NewLogger(sessionID, r.opts.BranchPreference.String()).WithOutput(r.logOutput)
	}

	tree := explore.NewTree(r.opts, collector)
	install(&engine{enabled: true, tree: tree})
	defer uninstall()

	if logger != nil {
		logger.Debug("session started", nil)
	}

	var sequences []string
	for {
		tree.Start()
		fn()
		status := tree.Finalize(types.Finished)
		collector.IncRunExecuted()

		seq := report.FormatSequence(tree.Path())
		sequences = append(sequences, seq)
		if logger != nil {
			logger.Debug("run finished", map[string]any{
				"run":      len(sequences),
				"sequence": seq,
				"status":   status.String(),
			})
		}

		if status == explore.Stop {
			break
		}
	}

	if tree.NonDeterminism() && logger != nil {
		logger.Warn("non-determinism witnessed: coverage is best-effort", map[string]any{
			"runs": len(sequences),
		})
	}

	return &report.Report{
		SessionID:      sessionID,
		Runs:           len(sequences),
		Sequences:      sequences,
		NonDeterminism: tree.NonDeterminism(),
		Metrics:        collector.Snapshot(),
	}, nil
}
