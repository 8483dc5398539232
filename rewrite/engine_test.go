package rewrite

import (
	"testing"

	"github.com/kegliz/aigrw/aig"
	"github.com/stretchr/testify/require"
)

// TestRunFlattensLeftDeepChain exercises the full engine on a left-deep
// chain rather than a single rule call: Run must sweep until fixpoint
// and land on depth 2.
func TestRunFlattensLeftDeepChain(t *testing.T) {
	b := aig.NewBuilder()
	pis := b.PI(4)
	a, bb, c, d := pis[0], pis[1], pis[2], pis[3]

	t1 := b.And(c, d)
	t2 := b.And(t1, bb)
	b.Po(b.And(t2, a))

	before := outputs(b.A)
	stats, err := Run(b.A, DefaultOptions(), nil)
	require.NoError(t, err)

	require.EqualValues(t, 3, stats.DepthBefore)
	require.EqualValues(t, 2, stats.DepthAfter)
	require.Greater(t, stats.Rewrites["associativity"], 0)
	require.True(t, equalOutputs(before, outputs(b.A)))
}

// TestRunFixpointOnSingleAND checks that a bare a∧b, with nothing to
// rewrite, makes Run report exactly one sweep (the one that discovers
// there's no change) and an empty rewrite tally.
func TestRunFixpointOnSingleAND(t *testing.T) {
	b := aig.NewBuilder()
	pis := b.PI(2)
	b.Po(b.And(pis[0], pis[1]))

	stats, err := Run(b.A, DefaultOptions(), nil)
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.DepthBefore)
	require.EqualValues(t, 1, stats.DepthAfter)
	require.Equal(t, 1, stats.Sweeps)
	require.Empty(t, stats.Rewrites)
}

// TestRunLeavesShallowConeUntouched builds two disjoint cones feeding
// two separate primary outputs, one far deeper than the other. Only the
// deep cone is ever on the critical path (required time on every node
// starts from the network's global depth), so the shallow cone's driver
// must survive Run byte-for-byte.
func TestRunLeavesShallowConeUntouched(t *testing.T) {
	b := aig.NewBuilder()
	deepPIs := b.PI(11) // an 11-input left-deep chain: depth 10
	deepRoot := chainAnd(b, deepPIs)
	b.Po(deepRoot)

	shallowPIs := b.PI(2)
	shallowRoot := b.And(shallowPIs[0], shallowPIs[1]) // depth 1
	b.Po(shallowRoot)

	shallowNode := shallowRoot.Node()
	shallowFanin0, shallowFanin1 := b.A.Fanin0(shallowNode), b.A.Fanin1(shallowNode)

	before := outputs(b.A)
	stats, err := Run(b.A, DefaultOptions(), nil)
	require.NoError(t, err)

	require.EqualValues(t, 10, stats.DepthBefore)
	require.Less(t, stats.DepthAfter, stats.DepthBefore, "the deep cone should rebalance down")
	require.Greater(t, stats.Rewrites["associativity"], 0)

	require.True(t, b.A.IsLive(shallowNode), "shallow cone's driver must never be substituted")
	require.Equal(t, shallowFanin0, b.A.Fanin0(shallowNode))
	require.Equal(t, shallowFanin1, b.A.Fanin1(shallowNode))
	require.True(t, equalOutputs(before, outputs(b.A)))
}

// TestRunRespectsMaxSweeps checks the engine honors an explicit sweep
// budget instead of always running to fixpoint.
func TestRunRespectsMaxSweeps(t *testing.T) {
	b := aig.NewBuilder()
	pis := b.PI(11)
	root := chainAnd(b, pis)
	b.Po(root)

	opts := DefaultOptions()
	opts.MaxSweeps = 1
	stats, err := Run(b.A, opts, nil)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Sweeps)
}
