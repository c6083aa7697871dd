// Package report defines the outcome of a run-until-exhausted session.
//
// A Report names every complete decision sequence the session executed,
// in execution order, alongside session metrics and the non-determinism
// witness. Reports marshal to YAML so suites can keep golden snapshots
// of the explored path set and diff them when instrumentation changes.
package report

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/justapithecus/faultline/metrics"
	"github.com/justapithecus/faultline/types"
)

// Report is the outcome of one session.
type Report struct {
	// SessionID identifies the session in logs.
	SessionID string `yaml:"session_id"`

	// Runs is the number of times the tested closure was executed.
	Runs int `yaml:"runs"`

	// Sequences holds one complete decision sequence per run, in
	// execution order. See FormatSequence for the encoding.
	Sequences []string `yaml:"sequences"`

	// NonDeterminism is true when some run produced a label not seen at
	// the same decision prefix on an earlier run. Coverage is then
	// best-effort: the tested code is not a pure function of the
	// decision sequence.
	NonDeterminism bool `yaml:"non_determinism"`

	// Metrics is the session's final metrics snapshot.
	Metrics metrics.Snapshot `yaml:"metrics"`
}

// FormatSequence encodes a decision sequence as a compact string,
// branch names joined by ">". A run that passed through no failpoints
// encodes as "-".
func FormatSequence(branches []types.Branch) string {
	if len(branches) == 0 {
		return "-"
	}
	names := make([]string, len(branches))
	for i, b := range branches {
		names[i] = b.String()
	}
	return strings.Join(names, ">")
}

// ToYAML marshals the report for golden-file snapshots.
func (r *Report) ToYAML() ([]byte, error) {
	return yaml.Marshal(r)
}
