package depth

import "github.com/kegliz/aigrw/aig"

// View wraps an AIG and exposes per-node level, network depth, and
// critical-path membership. Between calls to UpdateLevels its reported
// values may be stale with respect to the wrapped AIG; callers that
// mutate the AIG are responsible for calling UpdateLevels before
// reading Level/Depth/IsOnCriticalPath again.
type View struct {
	a     *aig.AIG
	level []uint32
	req   []uint32
	depth uint32
}

// New wraps a, computing levels once before returning.
func New(a *aig.AIG) *View {
	v := &View{a: a}
	v.UpdateLevels()
	return v
}

// Level returns node n's level: 0 for the constant and primary inputs,
// 1 + max(level(fanin0), level(fanin1)) for an AND.
func (v *View) Level(n aig.NodeID) uint32 { return v.level[n] }

// Depth returns the network depth: the maximum level among nodes driving
// any primary output.
func (v *View) Depth() uint32 { return v.depth }

// IsOnCriticalPath reports whether n lies on some primary-input-to-
// primary-output path whose length equals Depth — equivalently, whether
// n's level equals its required time.
func (v *View) IsOnCriticalPath(n aig.NodeID) bool {
	return v.level[n] == v.req[n]
}

// UpdateLevels recomputes level for every live node in topological
// order, then computes required times from the primary outputs backward
// and marks critical-path membership. A full two-pass sweep; incremental
// maintenance is a valid optimization as long as it reproduces this
// exactly.
func (v *View) UpdateLevels() {
	n := v.a.NumNodes()
	if cap(v.level) < n {
		v.level = make([]uint32, n)
		v.req = make([]uint32, n)
	} else {
		v.level = v.level[:n]
		v.req = v.req[:n]
		for i := range v.level {
			v.level[i] = 0
		}
	}

	// Forward pass: level(n) = 1 + max(level(fanin0.node), level(fanin1.node)).
	v.a.ForeachGate(func(g aig.NodeID) {
		l0 := v.level[v.a.Fanin0(g).Node()]
		l1 := v.level[v.a.Fanin1(g).Node()]
		l := l0
		if l1 > l {
			l = l1
		}
		v.level[g] = l + 1
	})

	var maxDepth uint32
	for i := 0; i < v.a.NumPOs(); i++ {
		if l := v.level[v.a.PO(i).Node()]; l > maxDepth {
			maxDepth = l
		}
	}
	v.depth = maxDepth

	// Reverse pass: every node's required time starts at depth();
	// required time then propagates backward through fanins, tightening
	// as it goes.
	for i := range v.req {
		v.req[i] = v.depth
	}

	gates := make([]aig.NodeID, 0, n)
	v.a.ForeachGate(func(g aig.NodeID) { gates = append(gates, g) })
	for i := len(gates) - 1; i >= 0; i-- {
		g := gates[i]
		r := v.req[g]
		if r == 0 {
			continue
		}
		for _, f := range [2]aig.Signal{v.a.Fanin0(g), v.a.Fanin1(g)} {
			fn := f.Node()
			if r-1 < v.req[fn] {
				v.req[fn] = r - 1
			}
		}
	}
}
