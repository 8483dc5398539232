package rewrite

import (
	"github.com/kegliz/aigrw/aig"
	"github.com/kegliz/aigrw/depth"
)

// associativityRule implements associativity rebalancing: n = a ∧ b where
// a is itself an AND on the critical path; if exactly one of a's children
// has strictly higher level than b and is on the critical path (and is
// not itself a primary input), rebalance so that child becomes the new
// root's critical fanin and b is pushed down next to the other child.
type associativityRule struct{}

func (associativityRule) Name() string { return "associativity" }

func (associativityRule) TryApply(a *aig.AIG, d *depth.View, n aig.NodeID, opts Options) bool {
	if !commonGuards(a, d, n) {
		return false
	}

	fa, fb := a.Fanin0(n), a.Fanin1(n)
	nodeA, nodeB := fa.Node(), fb.Node()

	if !opts.RelaxAssociativityGuard {
		// Only fire when exactly one fanin is a primary input: rejects
		// both when neither fanin is a PI and when both are.
		// Options.RelaxAssociativityGuard drops this restriction.
		if !(a.IsPI(nodeA) != a.IsPI(nodeB)) {
			return false
		}
	}

	if d.IsOnCriticalPath(nodeA) && !fa.Complemented() {
		if ok := tryRebalance(a, d, n, nodeA, fb, nodeB); ok {
			return true
		}
	} else if d.IsOnCriticalPath(nodeB) && !fb.Complemented() {
		if ok := tryRebalance(a, d, n, nodeB, fa, nodeA); ok {
			return true
		}
	}
	return false
}

// tryRebalance handles both symmetric cases of Rule A: critNode is the
// critical-path AND fanin of n (a or b), otherSig/otherNode is n's other
// fanin (b or a). It looks at critNode's own two children (c, d) and, if
// exactly one is the "deep side" (on the critical path, not a PI, level
// at least level(other)+1), rewrites n to (other ∧ shallow) ∧ deep.
func tryRebalance(a *aig.AIG, d *depth.View, n, critNode aig.NodeID, otherSig aig.Signal, otherNode aig.NodeID) bool {
	if a.FaninSize(critNode) != 2 {
		return false
	}
	fc, fdd := a.Fanin0(critNode), a.Fanin1(critNode)
	c, dd := fc.Node(), fdd.Node()

	switch {
	case d.IsOnCriticalPath(c) && !d.IsOnCriticalPath(dd) && d.Level(c) >= d.Level(otherNode)+1 && !a.IsPI(c):
		// deep side is c: (other ∧ d) ∧ c
		aig1 := a.CreateAnd(otherSig, fdd)
		aig2 := a.CreateAnd(fc, aig1)
		substitute(a, n, aig2)
		return true
	case d.IsOnCriticalPath(dd) && !d.IsOnCriticalPath(c) && d.Level(dd) >= d.Level(otherNode)+1 && !a.IsPI(dd):
		// deep side is d: (other ∧ c) ∧ d
		aig1 := a.CreateAnd(otherSig, fc)
		aig2 := a.CreateAnd(fdd, aig1)
		substitute(a, n, aig2)
		return true
	}
	return false
}
