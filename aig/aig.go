package aig

// kind classifies a node: the constant, a primary input, or a two-input
// AND. Polarity never lives here — it lives on the Signal that
// references the node.
type kind uint8

const (
	kindConst kind = iota
	kindPI
	kindAnd
)

// node is the internal record for one store entry. fanin is only
// meaningful for kindAnd; live is cleared by SubstituteNode and makes
// the node invisible to ForeachGate, though its id stays valid for any
// Signal captured before the substitution.
type node struct {
	k     kind
	fanin [2]Signal
	live  bool
}

// faninKey canonicalizes the ordered pair of fanin signals used for
// structural hashing. Order matters: hashing dedupes on the *ordered*
// pair, not a commutative normal form, so AND(a,b) and AND(b,a) are
// distinct nodes unless a rewrite rule explicitly unifies them.
type faninKey struct {
	f0, f1 Signal
}

// AIG is the graph container: nodes indexed by id (in creation order,
// which is topological until a substitution points a node at a newer
// replacement), the list of primary-input ids, and the list of
// primary-output signals.
type AIG struct {
	nodes []node
	pis   []NodeID
	pos   []Signal
	hash  map[faninKey]Signal
}

// New returns an empty AIG containing only the constant node (id 0).
func New() *AIG {
	a := &AIG{
		nodes: make([]node, 1, 64),
		hash:  make(map[faninKey]Signal),
	}
	a.nodes[0] = node{k: kindConst, live: true}
	return a
}

// CreatePI appends a primary input and returns its positive signal.
func (a *AIG) CreatePI() Signal {
	id := NodeID(len(a.nodes))
	a.nodes = append(a.nodes, node{k: kindPI, live: true})
	a.pis = append(a.pis, id)
	return Signal{id: id, comp: false}
}

// CreateAnd returns a signal realizing f0 ∧ f1, applying the trivial
// Boolean simplifications (constant propagation, idempotence, the
// complementary-fanin case) and structural hashing so that two calls
// with the same ordered fanin pair return the same node. It may return
// an existing signal with arbitrary polarity.
func (a *AIG) CreateAnd(f0, f1 Signal) Signal {
	a.mustKnow(f0.id)
	a.mustKnow(f1.id)

	// AND(x, 0) = 0
	if f0 == ConstFalse || f1 == ConstFalse {
		return ConstFalse
	}
	// AND(x, 1) = x
	if f0 == ConstTrue {
		return f1
	}
	if f1 == ConstTrue {
		return f0
	}
	// AND(x, x) = x
	if f0 == f1 {
		return f0
	}
	// AND(x, ¬x) = 0
	if f0.id == f1.id && f0.comp != f1.comp {
		return ConstFalse
	}

	key := faninKey{f0, f1}
	if existing, ok := a.hash[key]; ok {
		return existing
	}

	id := NodeID(len(a.nodes))
	a.nodes = append(a.nodes, node{k: kindAnd, fanin: [2]Signal{f0, f1}, live: true})
	s := Signal{id: id, comp: false}
	a.hash[key] = s
	return s
}

// CreatePO appends s to the primary-output list.
func (a *AIG) CreatePO(s Signal) {
	a.mustKnow(s.id)
	a.pos = append(a.pos, s)
}

// NumPOs returns the number of primary outputs.
func (a *AIG) NumPOs() int { return len(a.pos) }

// PO returns the i-th primary-output signal.
func (a *AIG) PO(i int) Signal { return a.pos[i] }

// PIs returns the primary-input node ids, in creation order.
func (a *AIG) PIs() []NodeID {
	out := make([]NodeID, len(a.pis))
	copy(out, a.pis)
	return out
}

// NumNodes returns the number of node ids ever allocated, including dead
// ones (their ids remain valid but are skipped by ForeachGate).
func (a *AIG) NumNodes() int { return len(a.nodes) }

// GetNode returns the node id a signal references.
func (a *AIG) GetNode(s Signal) NodeID { return s.id }

// IsComplemented reports whether a signal negates its referenced node.
func (a *AIG) IsComplemented(s Signal) bool { return s.comp }

// MakeSignal builds a signal from a node id and a polarity bit.
func (a *AIG) MakeSignal(n NodeID, comp bool) Signal { return Signal{id: n, comp: comp} }

// FaninSize returns 0 for the constant and primary inputs, 2 for ANDs.
func (a *AIG) FaninSize(n NodeID) int {
	if a.nodes[n].k == kindAnd {
		return 2
	}
	return 0
}

// IsPI reports whether n is a primary input.
func (a *AIG) IsPI(n NodeID) bool { return a.nodes[n].k == kindPI }

// IsConstant reports whether n is the constant node.
func (a *AIG) IsConstant(n NodeID) bool { return a.nodes[n].k == kindConst }

// IsAnd reports whether n is a two-input AND.
func (a *AIG) IsAnd(n NodeID) bool { return a.nodes[n].k == kindAnd }

// IsLive reports whether n has not been superseded by SubstituteNode.
func (a *AIG) IsLive(n NodeID) bool { return a.nodes[n].live }

// ForeachFanin visits the two fanin signals of an AND node in fixed
// order: index 0, then index 1. It is a no-op for the constant and
// primary inputs.
func (a *AIG) ForeachFanin(n NodeID, visit func(i int, f Signal)) {
	if a.nodes[n].k != kindAnd {
		return
	}
	visit(0, a.nodes[n].fanin[0])
	visit(1, a.nodes[n].fanin[1])
}

// Fanin0 and Fanin1 return the two fanin signals of an AND node
// directly, without the visitor indirection — convenient for the
// rewriting engine, which always needs both at once.
func (a *AIG) Fanin0(n NodeID) Signal { return a.nodes[n].fanin[0] }
func (a *AIG) Fanin1(n NodeID) Signal { return a.nodes[n].fanin[1] }

// ForeachGate visits every live AND node in topological order: a node's
// fanins are always visited before the node itself. Node ids are
// assigned in creation order, which is topological at construction time,
// but SubstituteNode can point an older node at a newly created
// replacement with a higher id — so this walks dependencies via DFS
// rather than assuming ascending id order stays topological forever.
func (a *AIG) ForeachGate(visit func(n NodeID)) {
	visited := make([]bool, len(a.nodes))
	var dfs func(id NodeID)
	dfs = func(id NodeID) {
		if visited[id] {
			return
		}
		visited[id] = true
		nd := &a.nodes[id]
		if nd.k == kindAnd {
			dfs(nd.fanin[0].id)
			dfs(nd.fanin[1].id)
			if nd.live {
				visit(id)
			}
		}
	}
	for id := NodeID(1); int(id) < len(a.nodes); id++ {
		dfs(id)
	}
}

// SubstituteNode redirects every live reference to nOld — fanins of
// other live AND nodes and every primary output — to sNew, XORing
// polarity as required by De Morgan. nOld becomes dead; its id remains
// valid for any Signal captured before the call.
//
// Structural-hash entries keyed on nOld's old fanin pair are left in
// place pointing at a now-dead node; CreateAnd never resurrects them
// because it only ever looks up fresh fanin pairs it is asked to create.
// Entries belonging to *other* live nodes whose fanins are rewritten
// here are refreshed so a later CreateAnd with the same (new) pair still
// dedupes correctly.
//
// SubstituteNode returns ErrWouldCycle if sNew references nOld itself —
// the one substitution that would make a node its own fanin regardless
// of id order. No rule in this codebase ever constructs such a
// replacement; this exists so a caller wiring the store up by hand
// fails loudly instead of corrupting it.
func (a *AIG) SubstituteNode(nOld NodeID, sNew Signal) error {
	if sNew.id == nOld {
		return &ErrWouldCycle{Node: nOld, Fanin: sNew.id}
	}
	a.nodes[nOld].live = false

	redirect := func(s Signal) (Signal, bool) {
		if s.id != nOld {
			return s, false
		}
		return sNew.WithComplement(s.comp), true
	}

	for id := NodeID(1); int(id) < len(a.nodes); id++ {
		nd := &a.nodes[id]
		if nd.k != kindAnd || !nd.live || id == nOld {
			continue
		}
		oldKey := faninKey{nd.fanin[0], nd.fanin[1]}
		f0, changed0 := redirect(nd.fanin[0])
		f1, changed1 := redirect(nd.fanin[1])
		if !changed0 && !changed1 {
			continue
		}
		nd.fanin[0], nd.fanin[1] = f0, f1
		if existing, ok := a.hash[oldKey]; ok && existing.id == id {
			delete(a.hash, oldKey)
		}
		newKey := faninKey{f0, f1}
		if _, taken := a.hash[newKey]; !taken {
			a.hash[newKey] = Signal{id: id, comp: false}
		}
	}

	for i, s := range a.pos {
		if r, changed := redirect(s); changed {
			a.pos[i] = r
		}
	}
	return nil
}

func (a *AIG) mustKnow(n NodeID) {
	if int(n) >= len(a.nodes) {
		panic(&ErrUnknownNode{ID: n})
	}
}
