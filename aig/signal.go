package aig

// NodeID is a stable, never-reused identifier for a node in the store.
// CreateAnd only ever references already-existing ids, so at
// construction time every AND node's fanins have strictly smaller ids
// than the node itself. SubstituteNode can later point an older node at
// a freshly created replacement with a higher id, so this ordering is
// not an invariant callers may rely on once a rewrite has happened —
// see AIG.ForeachGate.
type NodeID uint32

// Signal is a reference to a node together with a polarity bit. It is a
// value type, not a node itself — negation lives entirely on the edge
// that carries the signal, never on the node it points to.
type Signal struct {
	id   NodeID
	comp bool
}

// ConstFalse is the signal for logical 0: the constant node, uncomplemented.
var ConstFalse = Signal{id: 0, comp: false}

// ConstTrue is the signal for logical 1: the constant node, complemented.
var ConstTrue = Signal{id: 0, comp: true}

// Node returns the id of the node this signal references.
func (s Signal) Node() NodeID { return s.id }

// Complemented reports whether this signal negates the referenced node.
func (s Signal) Complemented() bool { return s.comp }

// Not returns the signal with the same node and the opposite polarity.
func (s Signal) Not() Signal { return Signal{id: s.id, comp: !s.comp} }

// WithComplement returns the signal for the same node with comp XORed
// against the signal's existing polarity — the rule used throughout
// substitution: a reference through a signal of polarity p to a node
// later replaced by signal s becomes s XOR p.
func (s Signal) WithComplement(p bool) Signal {
	return Signal{id: s.id, comp: s.comp != p}
}
