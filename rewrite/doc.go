// Package rewrite implements the depth-reducing algebraic rewriting
// engine: a fixpoint loop over an *aig.AIG, restricted to its current
// critical path, applying three algebraic identities in fixed priority
// — associativity, two-level distributivity, three-level distributivity
// — until a full sweep makes no further rewrite.
//
// Two of the three rules carry a guard worth calling out explicitly:
// the associativity rule's XOR(is_pi) check really does reject when
// neither fanin is a primary input (Options.RelaxAssociativityGuard
// lifts this), and the three-level rule's depth-benefit guard is
// enabled by default (Options.EnableThreeLevelDepthGuard) rather than
// left permanently off.
package rewrite
