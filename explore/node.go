package explore

import "github.com/justapithecus/faultline/types"

// NodeID indexes into the tree's append-only node slice. IDs are stable
// for the lifetime of the tree; nodes are never deleted. Callers must
// not retain IDs across sessions.
type NodeID int

// ForwardEdges is the fan-out at one (node, branch) position: the labels
// observed immediately after taking that branch, each mapped to its
// child node, plus the count of children whose subtrees are fully
// explored.
type ForwardEdges struct {
	children         map[types.Label]NodeID
	numFullyExplored int
}

// isExhausted reports whether every child of this fan-out has been fully
// explored. A fan-out that was never entered has no children and counts
// as one implicit unexplored child, so it is NOT exhausted: exploration
// must reach it at least once before it can be ruled out.
func (e *ForwardEdges) isExhausted() bool {
	return e.numFullyExplored == max(1, len(e.children))
}

// BackEdge records how a node was reached: the parent node, the branch
// taken at it, and the label observed. Back-edges are non-owning; they
// express the parent-of relation for the exhaustion walk only.
type BackEdge struct {
	Node   NodeID
	Branch types.Branch
	Label  types.Label
}

// Node is one position in the exploration tree. A node is final when a
// run's closure returned at it; a final node never grows forward edges.
type Node struct {
	parent  *BackEdge
	nexts   types.BranchPair[ForwardEdges]
	isFinal bool
}

// isExhausted reports whether the entire subtree under this node has
// been enumerated.
func (n *Node) isExhausted() bool {
	return n.isFinal ||
		n.nexts.At(types.Activate).isExhausted() && n.nexts.At(types.Skip).isExhausted()
}
