package rewrite

import (
	"github.com/kegliz/aigrw/aig"
	"github.com/kegliz/aigrw/depth"
)

// threeLevelRule implements three-level distributivity: n = x4 ∧
// ¬(¬(g ∧ x2) ∧ ¬x3), i.e. ((g x2) + x3) · x4, rewritten as
// (g (x2 x4)) + (x3 x4). Pulls x4 through a three-level OR-of-ANDs
// structure rather than the two-level case distributivityRule handles.
type threeLevelRule struct{}

func (threeLevelRule) Name() string { return "three-level-distributivity" }

func (threeLevelRule) TryApply(a *aig.AIG, d *depth.View, n aig.NodeID, opts Options) bool {
	if !commonGuards(a, d, n) {
		return false
	}

	fa, fb := a.Fanin0(n), a.Fanin1(n)
	if a.IsPI(fa.Node()) && a.IsPI(fb.Node()) {
		return false
	}

	if tryThreeLevelSide(a, d, n, fa, fb, opts) {
		return true
	}
	return tryThreeLevelSide(a, d, n, fb, fa, opts)
}

// tryThreeLevelSide handles one of the two symmetric placements of the
// OR-like subtree: aSig is n's fanin suspected of being ((g x2) + x3)'s
// complement, x4Sig is n's other fanin.
func tryThreeLevelSide(a *aig.AIG, d *depth.View, n aig.NodeID, aSig, x4Sig aig.Signal, opts Options) bool {
	aNode := aSig.Node()
	if !d.IsOnCriticalPath(aNode) || !aSig.Complemented() || d.IsOnCriticalPath(x4Sig.Node()) {
		return false
	}
	if a.FaninSize(aNode) != 2 {
		return false
	}
	cSig, dSig := a.Fanin0(aNode), a.Fanin1(aNode)
	if !cSig.Complemented() || !dSig.Complemented() {
		return false
	}
	cNode, dNode := cSig.Node(), dSig.Node()

	if d.IsOnCriticalPath(cNode) && !d.IsOnCriticalPath(dNode) {
		// d plays the role of x3.
		if tryThreeLevelBranch(a, d, n, cSig, dSig, x4Sig, opts) {
			return true
		}
	} else if d.IsOnCriticalPath(dNode) && !d.IsOnCriticalPath(cNode) {
		// c plays the role of x3.
		if tryThreeLevelBranch(a, d, n, dSig, cSig, x4Sig, opts) {
			return true
		}
	}
	return false
}

// tryThreeLevelBranch takes critSig (a's complemented edge to its
// critical-path child, an AND encoding g ∧ x2) and x3Sig (a's other child, stored
// complemented — negate it to recover the true x3 signal), and builds
// the replacement g∧(x2∧x4) ∨ (x3∧x4) if critSig's own children split
// into one critical ("g") and one non-critical ("x2") child.
func tryThreeLevelBranch(a *aig.AIG, d *depth.View, n aig.NodeID, critSig, x3Sig, x4Sig aig.Signal, opts Options) bool {
	critNode := critSig.Node()
	if a.FaninSize(critNode) != 2 {
		return false
	}
	xSig, ySig := a.Fanin0(critNode), a.Fanin1(critNode)
	xNode, yNode := xSig.Node(), ySig.Node()

	var gSig, x2Sig aig.Signal
	switch {
	case d.IsOnCriticalPath(xNode) && !d.IsOnCriticalPath(yNode):
		gSig, x2Sig = xSig, ySig
	case d.IsOnCriticalPath(yNode) && !d.IsOnCriticalPath(xNode):
		gSig, x2Sig = ySig, xSig
	default:
		return false
	}

	if opts.EnableThreeLevelDepthGuard && d.Level(gSig.Node()) <= d.Level(x4Sig.Node())+2 {
		return false
	}

	x2x4 := a.CreateAnd(x2Sig, x4Sig)
	gx2x4 := a.CreateAnd(gSig, x2x4)
	x3x4 := a.CreateAnd(x3Sig.Not(), x4Sig)
	aig4 := a.CreateAnd(gx2x4.Not(), x3x4.Not())
	substitute(a, n, aig4.Not())
	return true
}
