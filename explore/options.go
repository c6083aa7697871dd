package explore

import "github.com/justapithecus/faultline/types"

// Options configures the exploration policy.
type Options struct {
	// BranchPreference selects which branch is tried first at a newly
	// discovered node. It changes only the order of runs within a
	// session, never the set of paths explored.
	BranchPreference types.Branch
}

// DefaultOptions returns the default policy: injected paths first.
func DefaultOptions() Options {
	return Options{BranchPreference: types.Activate}
}

// order returns both branches, preferred one first.
func (o Options) order() [2]types.Branch {
	if o.BranchPreference == types.Skip {
		return [2]types.Branch{types.Skip, types.Activate}
	}
	return [2]types.Branch{types.Activate, types.Skip}
}
