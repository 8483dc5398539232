package rewrite

import (
	"github.com/google/uuid"
	"github.com/kegliz/aigrw/aig"
	"github.com/kegliz/aigrw/depth"
	"github.com/kegliz/aigrw/internal/rwlog"
)

// Stats reports what a Run call did. It is additive information for
// callers and logging; the only required observable effect of Run is
// the mutated AIG.
type Stats struct {
	RunID       string
	Sweeps      int
	Rewrites    map[string]int
	DepthBefore uint32
	DepthAfter  uint32
}

// Run is the engine's sole entry point: it mutates a in place, applying
// associativity, two-level distributivity, and three-level
// distributivity in fixed priority order against the current critical
// path until a full sweep makes no rewrite. A nil log discards all
// rewrite-progress output.
//
// Run returns ErrPreconditionFailed if a rule's guard held but the
// substitution it issued regressed the network's overall depth — every
// rule in this package is proved not to do that, so this only fires on
// an implementation bug, never on well-formed input.
func Run(a *aig.AIG, opts Options, log *rwlog.Logger) (Stats, error) {
	if log == nil {
		log = rwlog.Discard()
	}
	runID := uuid.New().String()
	log = log.WithCorrelationID(runID)

	d := depth.New(a)
	stats := Stats{
		RunID:       runID,
		Rewrites:    make(map[string]int),
		DepthBefore: d.Depth(),
	}

	rs := rules()
	for {
		changed := false

		var gates []aig.NodeID
		a.ForeachGate(func(n aig.NodeID) { gates = append(gates, n) })

		for _, n := range gates {
			if !a.IsLive(n) {
				continue // substituted earlier in this same sweep
			}
			for _, r := range rs {
				depthBefore := d.Depth()
				levelBefore := d.Level(n)
				if r.TryApply(a, d, n, opts) {
					d.UpdateLevels()
					if d.Depth() > depthBefore {
						return stats, &ErrPreconditionFailed{
							Node:        uint32(n),
							Rule:        r.Name(),
							DepthBefore: depthBefore,
							DepthAfter:  d.Depth(),
						}
					}
					stats.Rewrites[r.Name()]++
					changed = true
					log.Debug().
						Str("rule", r.Name()).
						Uint32("node", uint32(n)).
						Uint32("levelBefore", levelBefore).
						Uint32("depthAfter", d.Depth()).
						Msg("rewrite applied")
					break // first match wins; no further rules on n this visit
				}
			}
		}

		stats.Sweeps++
		if !changed {
			break
		}
		if opts.MaxSweeps > 0 && stats.Sweeps >= opts.MaxSweeps {
			break
		}
	}

	stats.DepthAfter = d.Depth()
	log.Info().
		Int("sweeps", stats.Sweeps).
		Uint32("depthBefore", stats.DepthBefore).
		Uint32("depthAfter", stats.DepthAfter).
		Msg("algebraic rewrite complete")
	return stats, nil
}
