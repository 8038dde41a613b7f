package flow

import (
	"math"
	"sort"

	"github.com/emirpasic/gods/queues/arrayqueue"
)

// EdmondsKarp computes a maximum flow over n from all of its source vertices
// to all of its sink vertices, then extracts the minimum cut.
//
// Every edge's flow is reset first, so solving the same network twice
// yields the same cut. The network keeps the final flows afterwards.
//
// Steps:
//  1. Reset flows; in Debug mode verify the arena (panics on violation).
//  2. Repeat until no sink is reachable:
//     a. Multi-source FIFO BFS over the residual graph (search).
//     b. Walk the parent map back from the reached sink to a source and
//     take the bottleneck residual capacity.
//     c. Push the bottleneck along the path.
//  3. Run the BFS once more without stopping at sinks to mark every vertex
//     reachable from a source; the cut is every edge with exactly one
//     reachable endpoint.
//
// Complexity:
//
//	Time:   O(V · E²) with integer capacities.
//	Memory: O(V) per search for the parent map and queue.
func EdmondsKarp(n *Network, opts *Options) MinCut {
	var o Options
	if opts != nil {
		o = *opts
	}

	// 1) Start from zero flow.
	n.ResetFlow()
	if o.Debug {
		if err := n.Check(); err != nil {
			panic(err)
		}
	}
	sources := n.Sources()

	// 2) Augment until the residual graph separates sources from sinks.
	var res MinCut
	for {
		parent := newParentMap(n.Len())
		sink, ok := search(n, sources, parent, true)
		if !ok {
			break
		}
		bottleneck, hops := augment(n, parent, sink, o.Debug)
		if bottleneck == 0 {
			break
		}
		res.MaxFlow += bottleneck
		res.Augmentations++
		if o.OnAugment != nil {
			o.OnAugment(bottleneck, hops)
		}
	}

	// 3) Reachability in the final residual graph.
	parent := newParentMap(n.Len())
	search(n, sources, parent, false)

	res.reachable = make([]bool, n.Len())
	for i := range n.vertices {
		if n.vertices[i].Source || parent[i] != NoEdge {
			res.reachable[i] = true
			res.Reachable = append(res.Reachable, VertexID(i))
		}
	}
	for _, v := range res.Reachable {
		for _, e := range n.vertices[v].edges {
			if e == NoEdge {
				continue
			}
			if !res.reachable[n.edges[e].Other(v)] {
				res.Cut = append(res.Cut, e)
			}
		}
	}
	sort.Slice(res.Cut, func(i, j int) bool { return res.Cut[i] < res.Cut[j] })

	return res
}

// newParentMap allocates the traversal-scoped map from a vertex to the edge
// it was discovered through. It never outlives one search.
func newParentMap(size int) []EdgeID {
	parent := make([]EdgeID, size)
	for i := range parent {
		parent[i] = NoEdge
	}
	return parent
}

// search runs a multi-source BFS over the residual graph of n, filling
// parent. Sources are enqueued in ascending id order and never re-entered;
// an edge is followed only when its residual toward the neighbor is
// positive. With stopAtSink set it returns the first sink dequeued.
func search(n *Network, sources []VertexID, parent []EdgeID, stopAtSink bool) (VertexID, bool) {
	queue := arrayqueue.New()
	for _, s := range sources {
		queue.Enqueue(s)
	}

	for !queue.Empty() {
		item, _ := queue.Dequeue()
		u := item.(VertexID)
		vu := &n.vertices[u]
		if stopAtSink && vu.Sink {
			return u, true
		}

		for _, e := range vu.edges {
			if e == NoEdge {
				continue
			}
			ed := &n.edges[e]
			w := ed.Other(u)
			vw := &n.vertices[w]
			if vw.Source || parent[w] != NoEdge {
				continue // already discovered
			}
			if ed.ResidualTo(w) <= 0 {
				continue // saturated toward w
			}
			parent[w] = e
			queue.Enqueue(w)
		}
	}

	return 0, false
}

// augment pushes the bottleneck residual capacity of the path ending at sink
// and returns it together with the path length in edges.
func augment(n *Network, parent []EdgeID, sink VertexID, debug bool) (int64, int) {
	// 1) Bottleneck along the parent chain.
	bottleneck := int64(math.MaxInt64)
	hops := 0
	for v := sink; !n.vertices[v].Source; hops++ {
		e := parent[v]
		if e == NoEdge {
			if debug {
				panic("flow: augmenting path has no source endpoint")
			}
			return 0, 0
		}
		ed := &n.edges[e]
		if r := ed.ResidualTo(v); r < bottleneck {
			bottleneck = r
		}
		v = ed.Other(v)
	}
	if hops == 0 {
		return 0, 0 // sink is itself a source; nothing to push
	}

	// 2) Apply it; the sign follows the traversal direction relative to A→B.
	for v := sink; !n.vertices[v].Source; {
		ed := &n.edges[parent[v]]
		if v == ed.A {
			ed.Flow -= bottleneck
		} else {
			ed.Flow += bottleneck
		}
		v = ed.Other(v)
	}

	return bottleneck, hops
}
