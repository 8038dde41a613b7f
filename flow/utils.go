package flow

// Conservation returns the net outflow of every non-terminal vertex whose
// inflow and outflow differ. On a network solved by EdmondsKarp the result
// is empty: flow is conserved everywhere except at sources and sinks.
//
// Complexity: O(V + E).
func Conservation(n *Network) map[VertexID]int64 {
	// 1) Accumulate net outflow per endpoint; each edge is visited once.
	net := make([]int64, n.Len())
	for i := range n.edges {
		e := &n.edges[i]
		net[e.A] += e.Flow
		net[e.B] -= e.Flow
	}

	// 2) Report imbalances on interior vertices only.
	out := make(map[VertexID]int64)
	for i, f := range net {
		if f != 0 && !n.vertices[i].Terminal() {
			out[VertexID(i)] = f
		}
	}
	return out
}

// Side partitions the vertex ids of n by the reachability recorded in m.
// Vertices beyond the range m was computed on count as unreachable.
func Side(n *Network, m MinCut) (reachable, unreachable []VertexID) {
	for i := 0; i < n.Len(); i++ {
		if m.IsReachable(VertexID(i)) {
			reachable = append(reachable, VertexID(i))
		} else {
			unreachable = append(unreachable, VertexID(i))
		}
	}
	return reachable, unreachable
}
