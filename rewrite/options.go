package rewrite

// Options tunes two judgment calls baked into the rule guards, plus a
// safety bound on the outer fixpoint loop.
type Options struct {
	// RelaxAssociativityGuard, when true, skips associativityRule's
	// XOR(is_pi(a), is_pi(b)) guard so the rule also fires when neither
	// fanin is a primary input. Default false keeps the stricter,
	// well-tested behavior.
	RelaxAssociativityGuard bool

	// EnableThreeLevelDepthGuard gates threeLevelRule on
	// level(g) > level(x4) + 2 so it only fires when the rewrite
	// actually shortens the critical path. Default true: without it,
	// three-level distributivity can fire rewrites that are no
	// shallower than what they replace.
	EnableThreeLevelDepthGuard bool

	// MaxSweeps bounds the outer fixpoint loop; 0 means unbounded (run
	// until a full sweep makes no rewrite).
	MaxSweeps int
}

// DefaultOptions returns the engine's standard tuning: the three-level
// depth guard enabled, the associativity guard at its strictest.
func DefaultOptions() Options {
	return Options{EnableThreeLevelDepthGuard: true}
}
