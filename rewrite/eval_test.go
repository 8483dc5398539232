package rewrite

import "github.com/kegliz/aigrw/aig"

// evalAll computes every node's Boolean value for one primary-input
// assignment (indexed by PI position, in creation order), via a
// memoized recursive walk rather than an ascending-id scan: a
// substitution can point an older node at a newer replacement, so id
// order is not a safe stand-in for "fanins already computed" here any
// more than it is in depth.View (see aig.AIG.ForeachGate). It is
// test-only: the package itself never simulates an AIG; this exists
// purely to check functional equivalence between an AIG and its
// rewritten form.
func evalAll(a *aig.AIG, assignment []bool) []bool {
	vals := make([]bool, a.NumNodes())
	computed := make([]bool, a.NumNodes())
	pis := a.PIs()
	piIdx := make(map[aig.NodeID]int, len(pis))
	for i, id := range pis {
		piIdx[id] = i
	}

	var eval func(id aig.NodeID) bool
	eval = func(id aig.NodeID) bool {
		if computed[id] {
			return vals[id]
		}
		computed[id] = true
		if a.IsPI(id) {
			vals[id] = assignment[piIdx[id]]
		} else if a.IsAnd(id) {
			f0, f1 := a.Fanin0(id), a.Fanin1(id)
			vals[id] = (eval(f0.Node()) != f0.Complemented()) && (eval(f1.Node()) != f1.Complemented())
		}
		return vals[id]
	}
	for id := aig.NodeID(1); int(id) < a.NumNodes(); id++ {
		eval(id)
	}
	return vals
}

// outputs returns the truth vector over all 2^len(pis) assignments for
// every primary output of a.
func outputs(a *aig.AIG) [][]bool {
	n := len(a.PIs())
	rows := make([][]bool, 1<<uint(n))
	for mask := 0; mask < len(rows); mask++ {
		assignment := make([]bool, n)
		for i := 0; i < n; i++ {
			assignment[i] = mask&(1<<uint(i)) != 0
		}
		vals := evalAll(a, assignment)
		row := make([]bool, a.NumPOs())
		for i := 0; i < a.NumPOs(); i++ {
			po := a.PO(i)
			row[i] = vals[po.Node()] != po.Complemented()
		}
		rows[mask] = row
	}
	return rows
}

// equalOutputs reports whether two truth tables (as produced by
// outputs) are identical.
func equalOutputs(a, b [][]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
