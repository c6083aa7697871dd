// Package explore implements the path-labelled exploration tree at the
// heart of faultline.
//
// The tree is built incrementally across runs of the tested closure.
// Each Visit call advances a cursor along the edge for the observed
// label (allocating a node on first sight) and answers which branch the
// run should take next: the first branch, in preference order, whose
// subtree is not yet exhausted. When the closure returns, Finalize marks
// the reached node terminal and bubbles exhaustion up through shared
// prefixes; the session is over when the root fan-out itself is
// exhausted. Every reachable activate/skip combination for the observed
// labels is executed exactly once.
//
// The tree detects non-determinism: if the same decision prefix produces
// a previously unseen label on a later run, the tested code is not a
// pure function of the decision sequence and the coverage claim is
// best-effort only. The witness flag is surfaced, not acted on.
package explore

import (
	"fmt"

	"github.com/justapithecus/faultline/metrics"
	"github.com/justapithecus/faultline/types"
)

// Status is the outcome of finalizing one run.
type Status int

const (
	// Continue means unexplored paths remain; the runner must start
	// another run.
	Continue Status = iota

	// Stop means every discovered path has been enumerated.
	Stop
)

// String returns the lowercase status name.
func (s Status) String() string {
	if s == Stop {
		return "stop"
	}
	return "continue"
}

// Tree owns every node of the exploration tree. It is created once per
// session and discarded at session end; the node slice only grows.
//
// Access is strictly single-threaded: the engine drives the tested
// closure on one goroutine and every operation runs to completion
// before the next begins.
type Tree struct {
	opts      Options
	collector *metrics.Collector

	nodes []Node
	roots ForwardEdges

	// currentEdge is the last edge taken in the current run, nil at the
	// start of a run.
	currentEdge *BackEdge

	// path is the decision sequence of the current run, in visit order.
	path []types.Branch

	nonDeterminism bool
}

// NewTree creates an empty exploration tree. The collector may be nil.
func NewTree(opts Options, collector *metrics.Collector) *Tree {
	return &Tree{opts: opts, collector: collector}
}

// Start resets the cursor to the root. Called at the beginning of every
// run; calling it twice with no intervening Visit is equivalent to
// calling it once.
func (t *Tree) Start() {
	t.currentEdge = nil
	t.path = t.path[:0]
}

// advance moves the cursor's position one label forward, allocating a
// node if the label has not been seen at this (node, branch) position
// before. Observing a new label in a fan-out that already has one means
// the same decision prefix produced different successors on different
// runs; that is recorded as witnessed non-determinism.
func (t *Tree) advance(label types.Label) NodeID {
	fanout := &t.roots
	if t.currentEdge != nil {
		fanout = t.nodes[t.currentEdge.Node].nexts.At(t.currentEdge.Branch)
	}

	if id, ok := fanout.children[label]; ok {
		return id
	}

	if len(fanout.children) > 0 {
		t.nonDeterminism = true
	}
	if fanout.children == nil {
		fanout.children = make(map[types.Label]NodeID)
	}

	id := NodeID(len(t.nodes))
	fanout.children[label] = id

	var parent *BackEdge
	if t.currentEdge != nil {
		edge := *t.currentEdge
		parent = &edge
	}
	t.nodes = append(t.nodes, Node{parent: parent})

	t.collector.IncNodeAllocated()
	t.collector.IncLabelDiscovered()
	return id
}

// Visit is called at every failpoint the run passes through. It returns
// the branch the run must take: the first branch in preference order
// whose subtree is not exhausted.
//
// At least one branch is always unexhausted here; were both exhausted,
// an ancestor's bookkeeping would have steered the run away from this
// node already. A breach is an engine bug and panics.
func (t *Tree) Visit(label types.Label) types.Branch {
	id := t.advance(label)
	t.collector.IncFailpointVisited()

	for _, branch := range t.opts.order() {
		if !t.nodes[id].nexts.At(branch).isExhausted() {
			t.currentEdge = &BackEdge{Node: id, Branch: branch, Label: label}
			t.path = append(t.path, branch)
			return branch
		}
	}

	panic(fmt.Sprintf("faultline: visit of %s reached node %d with both branches exhausted", label, id))
}

// Finalize is called when the tested closure returns, with the terminal
// label (currently always Finished). It marks the reached node final,
// propagates exhaustion toward the root, and reports whether another
// run is required.
func (t *Tree) Finalize(label types.Label) Status {
	id := t.advance(label)
	t.nodes[id].isFinal = true

	edge := t.currentEdge
	for edge != nil {
		parentNode := &t.nodes[edge.Node]
		fanout := parentNode.nexts.At(edge.Branch)
		fanout.numFullyExplored++
		if fanout.numFullyExplored > len(fanout.children) {
			panic(fmt.Sprintf("faultline: fan-out at node %d/%s has %d fully explored children out of %d",
				edge.Node, edge.Branch, fanout.numFullyExplored, len(fanout.children)))
		}
		if !parentNode.isExhausted() {
			return Continue
		}
		edge = parentNode.parent
	}

	t.roots.numFullyExplored++
	if t.roots.numFullyExplored > len(t.roots.children) {
		panic(fmt.Sprintf("faultline: root fan-out has %d fully explored children out of %d",
			t.roots.numFullyExplored, len(t.roots.children)))
	}
	if t.roots.isExhausted() {
		return Stop
	}
	return Continue
}

// Path returns a copy of the decision sequence of the current run, in
// visit order. Valid between Finalize and the next Start.
func (t *Tree) Path() []types.Branch {
	out := make([]types.Branch, len(t.path))
	copy(out, t.path)
	return out
}

// NonDeterminism reports whether any run produced a label not seen at
// the same decision prefix on an earlier run.
func (t *Tree) NonDeterminism() bool {
	return t.nonDeterminism
}

// NodeCount returns the number of nodes allocated so far.
func (t *Tree) NodeCount() int {
	return len(t.nodes)
}
