package rewrite

import (
	"github.com/kegliz/aigrw/aig"
	"github.com/kegliz/aigrw/depth"
)

// distributivityRule implements two-level distributivity: n = ¬a ∧ ¬b
// encodes a ∨ b in AIG form. If a and b are themselves ANDs sharing a
// literal (same node, same polarity) on the critical path, factor it
// out: p ∧ (q ∨ r).
type distributivityRule struct{}

func (distributivityRule) Name() string { return "distributivity" }

func (distributivityRule) TryApply(a *aig.AIG, d *depth.View, n aig.NodeID, opts Options) bool {
	if !commonGuards(a, d, n) {
		return false
	}

	fa, fb := a.Fanin0(n), a.Fanin1(n)
	nodeA, nodeB := fa.Node(), fb.Node()

	if a.IsPI(nodeA) || a.IsPI(nodeB) {
		return false
	}
	if !fa.Complemented() || !fb.Complemented() {
		return false
	}
	if a.FaninSize(nodeA) != 2 || a.FaninSize(nodeB) != 2 {
		return false
	}

	ac0, ac1 := a.Fanin0(nodeA), a.Fanin1(nodeA)
	bc0, bc1 := a.Fanin0(nodeB), a.Fanin1(nodeB)
	c, dd := ac0.Node(), ac1.Node()
	x, y := bc0.Node(), bc1.Node()

	// Try all four ways a's and b's children can share the factored
	// literal, in fixed order: (c,x), (d,x), (c,y), (d,y).
	switch {
	case c == x && ac0.Complemented() == bc0.Complemented() && d.IsOnCriticalPath(c):
		aig1 := a.CreateAnd(ac1.Not(), bc1.Not())
		aig2 := a.CreateAnd(ac0, aig1.Not())
		substitute(a, n, aig2.Not())
		return true
	case dd == x && ac1.Complemented() == bc0.Complemented() && d.IsOnCriticalPath(dd):
		aig1 := a.CreateAnd(ac0.Not(), bc1.Not())
		aig2 := a.CreateAnd(ac1, aig1.Not())
		substitute(a, n, aig2.Not())
		return true
	case c == y && ac0.Complemented() == bc1.Complemented() && d.IsOnCriticalPath(c):
		aig1 := a.CreateAnd(ac1.Not(), bc0.Not())
		aig2 := a.CreateAnd(ac0, aig1.Not())
		substitute(a, n, aig2.Not())
		return true
	case dd == y && ac1.Complemented() == bc1.Complemented() && d.IsOnCriticalPath(dd):
		aig1 := a.CreateAnd(ac0.Not(), bc0.Not())
		aig2 := a.CreateAnd(ac1, aig1.Not())
		substitute(a, n, aig2.Not())
		return true
	}
	return false
}
