package depth

import (
	"testing"

	"github.com/kegliz/aigrw/aig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain builds a left-deep AND chain over the given PI signals and
// returns the final signal: (((p0 & p1) & p2) & p3) ...
func chain(b *aig.Builder, pis []aig.Signal) aig.Signal {
	s := pis[0]
	for _, p := range pis[1:] {
		s = b.And(s, p)
	}
	return s
}

func TestLevelsSinglePIPair(t *testing.T) {
	b := aig.NewBuilder()
	pis := b.PI(2)
	g := b.And(pis[0], pis[1])
	b.Po(g)

	v := New(b.A)
	assert.Equal(t, uint32(0), v.Level(pis[0].Node()))
	assert.Equal(t, uint32(1), v.Level(g.Node()))
	assert.Equal(t, uint32(1), v.Depth())
	assert.True(t, v.IsOnCriticalPath(g.Node()))
}

func TestCriticalPathOnlyOnLongestChain(t *testing.T) {
	b := aig.NewBuilder()
	deep := b.PI(11) // 10-deep chain
	shallow := b.PI(4)

	deepOut := chain(b, deep)   // level 10
	shallowOut := chain(b, shallow) // level 3
	b.Po(deepOut)
	b.Po(shallowOut)

	v := New(b.A)
	assert.Equal(t, uint32(10), v.Depth())
	assert.True(t, v.IsOnCriticalPath(deepOut.Node()))
	assert.False(t, v.IsOnCriticalPath(shallowOut.Node()))

	// Every intermediate AND on the deep chain must be on the critical
	// path; none on the shallow chain should be.
	s := deep[0]
	for _, p := range deep[1:] {
		s = b.A.CreateAnd(s, p)
		assert.True(t, v.IsOnCriticalPath(s.Node()))
	}
	s = shallow[0]
	for _, p := range shallow[1:] {
		s = b.A.CreateAnd(s, p)
		assert.False(t, v.IsOnCriticalPath(s.Node()))
	}
}

func TestUpdateLevelsAfterSubstitution(t *testing.T) {
	b := aig.NewBuilder()
	pis := b.PI(3)
	t1 := b.And(pis[0], pis[1])
	t2 := b.And(t1, pis[2])
	b.Po(t2)

	v := New(b.A)
	assert.Equal(t, uint32(2), v.Depth())

	require.NoError(t, b.A.SubstituteNode(t1.Node(), pis[0]))
	v.UpdateLevels()
	assert.Equal(t, uint32(1), v.Depth())
}

// TestUpdateLevelsAfterForwardReferencingSubstitution pins a case where
// the substituted node has a live gate parent (not just a PO) and the
// replacement is created after that parent, so the parent ends up with
// a fanin whose id is higher than its own. Level/depth must still come
// out right: ids stop being a valid topological proxy the moment a
// rewrite like this fires, so UpdateLevels cannot rely on ascending id
// order to mean "fanins already computed".
func TestUpdateLevelsAfterForwardReferencingSubstitution(t *testing.T) {
	b := aig.NewBuilder()
	x, y, z := b.A.CreatePI(), b.A.CreatePI(), b.A.CreatePI()
	g1 := b.A.CreateAnd(x, y)
	g2 := b.A.CreateAnd(g1, z) // g2's fanin0 is g1; g2.id > g1.id
	b.A.CreatePO(g2)

	repl := b.A.CreateAnd(y, z) // allocated after g2, so repl.id > g2.id
	require.NoError(t, b.A.SubstituteNode(g1.Node(), repl))

	v := New(b.A)
	assert.Equal(t, repl, b.A.Fanin0(g2.Node()))
	assert.Equal(t, v.Level(repl.Node()), uint32(1))
	assert.Equal(t, v.Level(g2.Node()), v.Level(repl.Node())+1)
	assert.Equal(t, uint32(2), v.Depth())
}
