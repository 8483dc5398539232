package rewrite

import "github.com/kegliz/aigrw/aig"

// chainAnd folds pis left-to-right into a single left-deep AND chain and
// returns the final signal. len(pis) inputs produce a chain len(pis)-1
// levels deep.
func chainAnd(b *aig.Builder, pis []aig.Signal) aig.Signal {
	acc := pis[0]
	for _, p := range pis[1:] {
		acc = b.And(acc, p)
	}
	return acc
}
