package flow

import (
	"fmt"
	"image"
)

// Network is an arena holding the vertices and edges of one flow problem.
// Cross references are indices into the arena's backing slices, so a
// Network can be dropped as a whole once its result has been consumed.
//
// A Network is not safe for concurrent use.
type Network struct {
	vertices []Vertex
	edges    []Edge
}

// NewNetwork returns an empty arena with room for the given number of
// vertices and edges. Hints are capacities, not limits.
func NewNetwork(vertexHint, edgeHint int) *Network {
	if vertexHint < 0 {
		vertexHint = 0
	}
	if edgeHint < 0 {
		edgeHint = 0
	}
	return &Network{
		vertices: make([]Vertex, 0, vertexHint),
		edges:    make([]Edge, 0, edgeHint),
	}
}

// Len returns the number of vertices in the arena.
func (n *Network) Len() int { return len(n.vertices) }

// EdgeCount returns the number of edges in the arena.
func (n *Network) EdgeCount() int { return len(n.edges) }

// AddVertex appends a vertex and returns its id. All edge slots start empty.
// Complexity: amortized O(1).
func (n *Network) AddVertex(kind Kind, pos image.Point) VertexID {
	v := Vertex{Kind: kind, Pos: pos}
	for i := range v.edges {
		v.edges[i] = NoEdge
	}
	n.vertices = append(n.vertices, v)
	return VertexID(len(n.vertices) - 1)
}

// Vertex returns a pointer into the arena for id. The pointer is invalidated
// by the next AddVertex call. It returns nil when id is out of range.
func (n *Network) Vertex(id VertexID) *Vertex {
	if !n.has(id) {
		return nil
	}
	return &n.vertices[id]
}

// Edge returns a pointer into the arena for id, or nil when out of range.
func (n *Network) Edge(id EdgeID) *Edge {
	if id < 0 || int(id) >= len(n.edges) {
		return nil
	}
	return &n.edges[id]
}

// Connect creates one edge between a and b with the given capacity and
// registers it in slot sa of a and slot sb of b. The edge is shared by both
// endpoints; it is never duplicated.
//
// Errors: ErrVertexNotFound, ErrNegativeCapacity, ErrSlotMismatch,
// ErrSlotOccupied.
func (n *Network) Connect(a VertexID, sa Slot, b VertexID, sb Slot, capacity int64) (EdgeID, error) {
	// 1) Validate endpoints and capacity.
	if !n.has(a) || !n.has(b) {
		return NoEdge, fmt.Errorf("flow: Connect(%d,%d): %w", a, b, ErrVertexNotFound)
	}
	if capacity < 0 {
		return NoEdge, fmt.Errorf("flow: Connect(%d,%d) capacity=%d: %w", a, b, capacity, ErrNegativeCapacity)
	}

	// 2) Validate slots against each endpoint's kind and occupancy.
	va, vb := &n.vertices[a], &n.vertices[b]
	if !va.Kind.Accepts(sa) {
		return NoEdge, fmt.Errorf("flow: Connect: slot %d on %s vertex %d: %w", sa, va.Kind, a, ErrSlotMismatch)
	}
	if !vb.Kind.Accepts(sb) {
		return NoEdge, fmt.Errorf("flow: Connect: slot %d on %s vertex %d: %w", sb, vb.Kind, b, ErrSlotMismatch)
	}
	if va.edges[sa] != NoEdge {
		return NoEdge, fmt.Errorf("flow: Connect: slot %d on vertex %d: %w", sa, a, ErrSlotOccupied)
	}
	if vb.edges[sb] != NoEdge {
		return NoEdge, fmt.Errorf("flow: Connect: slot %d on vertex %d: %w", sb, b, ErrSlotOccupied)
	}

	// 3) Append the edge and reference it from both endpoints.
	id := EdgeID(len(n.edges))
	n.edges = append(n.edges, Edge{A: a, B: b, Capacity: capacity})
	va.edges[sa] = id
	vb.edges[sb] = id

	return id, nil
}

// MarkSource flags id as a source.
func (n *Network) MarkSource(id VertexID) error {
	if !n.has(id) {
		return fmt.Errorf("flow: MarkSource(%d): %w", id, ErrVertexNotFound)
	}
	n.vertices[id].Source = true
	return nil
}

// MarkSink flags id as a sink.
func (n *Network) MarkSink(id VertexID) error {
	if !n.has(id) {
		return fmt.Errorf("flow: MarkSink(%d): %w", id, ErrVertexNotFound)
	}
	n.vertices[id].Sink = true
	return nil
}

// Sanitize clears the source flag of every vertex flagged both source and
// sink, so the sink role wins. It returns the number of demoted vertices.
func (n *Network) Sanitize() int {
	demoted := 0
	for i := range n.vertices {
		if n.vertices[i].Source && n.vertices[i].Sink {
			n.vertices[i].Source = false
			demoted++
		}
	}
	return demoted
}

// Sources returns the ids of all source vertices in ascending order.
func (n *Network) Sources() []VertexID {
	var out []VertexID
	for i := range n.vertices {
		if n.vertices[i].Source {
			out = append(out, VertexID(i))
		}
	}
	return out
}

// Sinks returns the ids of all sink vertices in ascending order.
func (n *Network) Sinks() []VertexID {
	var out []VertexID
	for i := range n.vertices {
		if n.vertices[i].Sink {
			out = append(out, VertexID(i))
		}
	}
	return out
}

// ResetFlow zeroes the flow on every edge.
func (n *Network) ResetFlow() {
	for i := range n.edges {
		n.edges[i].Flow = 0
	}
}

// Release drops the arena's storage. The Network is empty afterwards and
// every id handed out before is stale.
func (n *Network) Release() {
	n.vertices = nil
	n.edges = nil
}

// Check verifies the structural invariants of the arena: every occupied slot
// is valid for its vertex kind and references an edge that points back at
// the vertex, no vertex is both source and sink, capacities are
// non-negative and |Flow| ≤ Capacity on every edge.
// Complexity: O(V + E).
func (n *Network) Check() error {
	for i := range n.vertices {
		v := &n.vertices[i]
		id := VertexID(i)
		if v.Source && v.Sink {
			return fmt.Errorf("flow: vertex %d: %w", id, ErrSourceAndSink)
		}
		for s, e := range v.edges {
			if e == NoEdge {
				continue
			}
			if !v.Kind.Accepts(Slot(s)) {
				return fmt.Errorf("flow: slot %d on %s vertex %d: %w", s, v.Kind, id, ErrSlotMismatch)
			}
			if int(e) >= len(n.edges) {
				return fmt.Errorf("flow: vertex %d slot %d references edge %d outside arena", id, s, e)
			}
			if ed := &n.edges[e]; ed.A != id && ed.B != id {
				return fmt.Errorf("flow: vertex %d slot %d references foreign edge %d", id, s, e)
			}
		}
	}
	for i := range n.edges {
		e := &n.edges[i]
		if e.Capacity < 0 {
			return fmt.Errorf("flow: edge %d: %w", i, ErrNegativeCapacity)
		}
		if e.Flow > e.Capacity || -e.Flow > e.Capacity {
			return fmt.Errorf("flow: edge %d flow=%d capacity=%d: %w", i, e.Flow, e.Capacity, ErrFlowExceedsCapacity)
		}
	}
	return nil
}

func (n *Network) has(id VertexID) bool {
	return id >= 0 && int(id) < len(n.vertices)
}
