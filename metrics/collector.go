// Package metrics provides per-session metrics collection for the
// exploration engine.
//
// The Collector accumulates counters during a single run-until-exhausted
// session. It is a leaf package with no internal dependencies. All
// increment methods are nil-receiver safe so callers may pass a nil
// collector to disable collection entirely.
package metrics

import "sync"

// Snapshot is an immutable point-in-time view of session metrics.
// Returned by Collector.Snapshot(). Safe to read concurrently after creation.
type Snapshot struct {
	// Exploration progress
	RunsExecuted      int64 `yaml:"runs_executed"`
	NodesAllocated    int64 `yaml:"nodes_allocated"`
	LabelsDiscovered  int64 `yaml:"labels_discovered"`
	FailpointsVisited int64 `yaml:"failpoints_visited"`

	// Dimensions (informational, set at construction)
	SessionID        string `yaml:"session_id"`
	BranchPreference string `yaml:"branch_preference"`
}

// Collector accumulates metrics during a session.
// Thread-safe via sync.Mutex. All increment methods are nil-receiver safe.
type Collector struct {
	mu sync.Mutex

	runsExecuted      int64
	nodesAllocated    int64
	labelsDiscovered  int64
	failpointsVisited int64

	// Dimensions
	sessionID        string
	branchPreference string
}

// NewCollector creates a Collector with dimension labels.
func NewCollector(sessionID, branchPreference string) *Collector {
	return &Collector{
		sessionID:        sessionID,
		branchPreference: branchPreference,
	}
}

// IncRunExecuted records one completed run of the tested closure.
func (c *Collector) IncRunExecuted() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.runsExecuted++
	c.mu.Unlock()
}

// IncNodeAllocated records allocation of a new tree node.
func (c *Collector) IncNodeAllocated() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.nodesAllocated++
	c.mu.Unlock()
}

// IncLabelDiscovered records a label seen for the first time at some
// (node, branch) position.
func (c *Collector) IncLabelDiscovered() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.labelsDiscovered++
	c.mu.Unlock()
}

// IncFailpointVisited records one visit call from instrumented code.
func (c *Collector) IncFailpointVisited() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.failpointsVisited++
	c.mu.Unlock()
}

// Snapshot returns an immutable copy of all counters and dimensions.
// Returns a zero Snapshot on a nil receiver.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		RunsExecuted:      c.runsExecuted,
		NodesAllocated:    c.nodesAllocated,
		LabelsDiscovered:  c.labelsDiscovered,
		FailpointsVisited: c.failpointsVisited,
		SessionID:         c.sessionID,
		BranchPreference:  c.branchPreference,
	}
}
