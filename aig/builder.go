package aig

// Builder is a small convenience layer over AIG, in the same spirit as a
// circuit builder DSL: each call returns the signals it created, so
// expressions nest directly (b.Po(b.And(x, y))). It carries no state beyond the wrapped
// AIG — unlike a DSL that can fail mid-chain, CreateAnd/CreatePI never
// error, so there is no sticky-error field to thread through.
type Builder struct {
	A *AIG
}

// NewBuilder returns a Builder wrapping a fresh, empty AIG.
func NewBuilder() *Builder { return &Builder{A: New()} }

// PI allocates n fresh primary inputs and returns their positive signals.
func (b *Builder) PI(n int) []Signal {
	out := make([]Signal, n)
	for i := range out {
		out[i] = b.A.CreatePI()
	}
	return out
}

// And is shorthand for b.A.CreateAnd.
func (b *Builder) And(f0, f1 Signal) Signal { return b.A.CreateAnd(f0, f1) }

// Or realizes f0 ∨ f1 as ¬(¬f0 ∧ ¬f1), the standard AIG encoding of OR.
func (b *Builder) Or(f0, f1 Signal) Signal { return b.A.CreateAnd(f0.Not(), f1.Not()).Not() }

// Po appends s as a primary output and returns it unchanged, so Po can
// sit at the end of a chain without breaking the expression it closes.
func (b *Builder) Po(s Signal) Signal {
	b.A.CreatePO(s)
	return s
}
