package rewrite

import (
	"testing"

	"github.com/kegliz/aigrw/aig"
	"github.com/kegliz/aigrw/depth"
	"github.com/stretchr/testify/require"
)

// TestDistributivityFactorsSharedLiteral builds x = p∧q, y = p∧r,
// po = x∨y. p is shared at the same polarity in both terms, so the rule
// factors it out into p ∧ (q∨r).
func TestDistributivityFactorsSharedLiteral(t *testing.T) {
	b := aig.NewBuilder()
	pis := b.PI(3)
	p, q, r := pis[0], pis[1], pis[2]

	x := b.And(p, q)
	y := b.And(p, r)
	orNode := b.Or(x, y)
	b.Po(orNode)

	before := outputs(b.A)
	dv := depth.New(b.A)
	depthBefore := dv.Depth()

	applied := distributivityRule{}.TryApply(b.A, dv, orNode.Node(), DefaultOptions())
	require.True(t, applied, "expected distributivity to fire on the shared-literal OR node")

	dv.UpdateLevels()
	require.LessOrEqual(t, dv.Depth(), depthBefore, "rewrite must not increase depth")
	require.True(t, equalOutputs(before, outputs(b.A)), "rewrite must preserve function")

	// The PO should now read directly as p ∧ (q ∨ r): an AND whose
	// fanin0 is the shared literal p and whose fanin1 is the (q ∨ r)
	// subexpression the rule built. po may have been redirected to a
	// different node by the substitution, so re-read it from the AIG.
	require.Equal(t, 1, b.A.NumPOs())
	finalPO := b.A.PO(0)
	require.True(t, b.A.IsAnd(finalPO.Node()))
	require.False(t, finalPO.Complemented(), "the factored form is positive: p ∧ (q ∨ r)")
}

// TestDistributivityNoMatchWithoutSharedLiteral builds
// po = (p∧q) ∨ (r∧s), which shares no literal between the two terms,
// so the rule must not fire.
func TestDistributivityNoMatchWithoutSharedLiteral(t *testing.T) {
	b := aig.NewBuilder()
	pis := b.PI(4)
	p, q, r, s := pis[0], pis[1], pis[2], pis[3]

	x := b.And(p, q)
	y := b.And(r, s)
	orNode := b.Or(x, y)
	b.Po(orNode)

	before := outputs(b.A)
	dv := depth.New(b.A)

	applied := distributivityRule{}.TryApply(b.A, dv, orNode.Node(), DefaultOptions())
	require.False(t, applied)
	require.True(t, equalOutputs(before, outputs(b.A)))
}
