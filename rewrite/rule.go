package rewrite

import (
	"github.com/kegliz/aigrw/aig"
	"github.com/kegliz/aigrw/depth"
)

// Rule is one algebraic identity the engine can apply at a node.
// TryApply checks the rule's guards at n and, on a match, rebuilds the
// local cone and calls AIG.SubstituteNode before returning true. A rule
// never partially applies: either every guard holds and the
// substitution happens, or nothing in the AIG changes and it returns
// false.
type Rule interface {
	Name() string
	TryApply(a *aig.AIG, d *depth.View, n aig.NodeID, opts Options) bool
}

// rules returns the three rules in fixed priority order: associativity,
// then two-level distributivity, then three-level distributivity. The
// engine tries each in turn at a node and stops at the first that fires.
func rules() []Rule {
	return []Rule{
		associativityRule{},
		distributivityRule{},
		threeLevelRule{},
	}
}

// commonGuards implements the guard shared by every rule: n must be a
// two-input AND, and it must currently sit on the critical path.
func commonGuards(a *aig.AIG, d *depth.View, n aig.NodeID) bool {
	return a.FaninSize(n) == 2 && d.IsOnCriticalPath(n)
}

// substitute wraps AIG.SubstituteNode for rule bodies: every replacement
// here is built from n's own fanin cone and never folds back to n, so
// aig.ErrWouldCycle can only mean a rule miscomputed its replacement —
// a bug worth panicking on, not a condition callers should recover from.
func substitute(a *aig.AIG, n aig.NodeID, s aig.Signal) {
	if err := a.SubstituteNode(n, s); err != nil {
		panic(err)
	}
}
