// Command aigrw runs the algebraic depth-rewriting engine against a
// handful of built-in scenarios and prints depth before/after for each.
package main

import (
	"fmt"

	"github.com/kegliz/aigrw/aig"
	"github.com/kegliz/aigrw/depth"
	"github.com/kegliz/aigrw/internal/config"
	"github.com/kegliz/aigrw/internal/rwlog"
	"github.com/kegliz/aigrw/rewrite"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Printf("config load failed: %v\n", err)
		return
	}
	log := rwlog.New(rwlog.Options{Debug: cfg.Debug})

	fmt.Println("--- S1: associativity, left-deep chain ---")
	run(associativityChain(), cfg.Rewrite, log)

	fmt.Println("\n--- S2: distributivity, shared literal ---")
	run(sharedLiteralOr(), cfg.Rewrite, log)

	fmt.Println("\n--- S3: distributivity, no shared literal ---")
	run(unsharedOr(), cfg.Rewrite, log)

	fmt.Println("\n--- S4: three-level distributivity ---")
	run(threeLevelChain(), cfg.Rewrite, log)

	fmt.Println("\n--- S5: single AND, already at fixpoint ---")
	run(singleAnd(), cfg.Rewrite, log)

	fmt.Println("\n--- S6: two cones, shallow one untouched ---")
	run(twoCones(), cfg.Rewrite, log)
}

func run(a *aig.AIG, opts rewrite.Options, log *rwlog.Logger) {
	d := depth.New(a)
	before := d.Depth()
	stats, err := rewrite.Run(a, opts, log)
	if err != nil {
		fmt.Printf("rewrite failed: %v\n", err)
		return
	}
	fmt.Printf("depth %d -> %d (sweeps=%d, rewrites=%v)\n", before, stats.DepthAfter, stats.Sweeps, stats.Rewrites)
}

// associativityChain builds t1=c∧d, t2=t1∧b, po=t2∧a.
func associativityChain() *aig.AIG {
	b := aig.NewBuilder()
	pis := b.PI(4)
	a, bb, c, d := pis[0], pis[1], pis[2], pis[3]
	t1 := b.And(c, d)
	t2 := b.And(t1, bb)
	b.Po(b.And(t2, a))
	return b.A
}

// sharedLiteralOr builds x=p∧q, y=p∧r, po=x∨y.
func sharedLiteralOr() *aig.AIG {
	b := aig.NewBuilder()
	pis := b.PI(3)
	p, q, r := pis[0], pis[1], pis[2]
	x := b.And(p, q)
	y := b.And(p, r)
	b.Po(b.Or(x, y))
	return b.A
}

// unsharedOr builds po=(p∧q)∨(r∧s), sharing no literal between terms.
func unsharedOr() *aig.AIG {
	b := aig.NewBuilder()
	pis := b.PI(4)
	p, q, r, s := pis[0], pis[1], pis[2], pis[3]
	x := b.And(p, q)
	y := b.And(r, s)
	b.Po(b.Or(x, y))
	return b.A
}

// threeLevelChain builds an 8-deep chain g, then n = ((g∧x2) ∨ x3) ∧ x4.
func threeLevelChain() *aig.AIG {
	b := aig.NewBuilder()
	chainPIs := b.PI(9)
	g := chainPIs[0]
	for _, p := range chainPIs[1:] {
		g = b.And(g, p)
	}
	rest := b.PI(3)
	x2, x3, x4 := rest[0], rest[1], rest[2]
	inner := b.And(g, x2)
	orNode := b.Or(inner, x3)
	b.Po(b.And(orNode, x4))
	return b.A
}

// singleAnd builds a bare a∧b: nothing to rewrite.
func singleAnd() *aig.AIG {
	b := aig.NewBuilder()
	pis := b.PI(2)
	b.Po(b.And(pis[0], pis[1]))
	return b.A
}

// twoCones builds an 11-input left-deep chain (depth 10) and a
// separate 2-input AND (depth 1) feeding a second, independent output.
func twoCones() *aig.AIG {
	b := aig.NewBuilder()
	deepPIs := b.PI(11)
	deep := deepPIs[0]
	for _, p := range deepPIs[1:] {
		deep = b.And(deep, p)
	}
	b.Po(deep)

	shallowPIs := b.PI(2)
	b.Po(b.And(shallowPIs[0], shallowPIs[1]))
	return b.A
}
