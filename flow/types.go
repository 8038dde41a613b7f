package flow

import (
	"errors"
	"fmt"
	"image"
)

// Sentinel errors for network construction.
var (
	// ErrVertexNotFound is returned when a VertexID lies outside the arena.
	ErrVertexNotFound = errors.New("flow: vertex not found")

	// ErrNegativeCapacity is returned when an edge is given a capacity below zero.
	ErrNegativeCapacity = errors.New("flow: negative capacity")

	// ErrSlotOccupied is returned when an edge slot already holds an edge.
	ErrSlotOccupied = errors.New("flow: edge slot already occupied")

	// ErrSlotMismatch is returned when a slot is not valid for the vertex kind.
	ErrSlotMismatch = errors.New("flow: slot not valid for vertex kind")

	// ErrSourceAndSink is reported by Check for a vertex flagged both ways.
	ErrSourceAndSink = errors.New("flow: vertex is both source and sink")

	// ErrFlowExceedsCapacity is reported by Check when |Flow| > Capacity.
	ErrFlowExceedsCapacity = errors.New("flow: flow exceeds capacity")
)

// VertexID addresses a vertex inside a Network arena.
type VertexID int

// EdgeID addresses an edge inside a Network arena.
type EdgeID int

// NoEdge marks an empty edge slot or a missing traversal parent.
const NoEdge EdgeID = -1

// Kind tags the role a vertex plays in the seam network.
type Kind uint8

const (
	// KindPixel is a canvas pixel site.
	KindPixel Kind = iota
	// KindHorizontalSeam stands for a kept seam between (x,y) and (x+1,y).
	KindHorizontalSeam
	// KindVerticalSeam stands for a kept seam between (x,y) and (x,y+1).
	KindVerticalSeam
	// KindDummySource feeds a seam vertex with the old seam cost.
	KindDummySource
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindPixel:
		return "pixel"
	case KindHorizontalSeam:
		return "hseam"
	case KindVerticalSeam:
		return "vseam"
	case KindDummySource:
		return "dummy"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Slot keys an edge reference on a vertex. Pixel vertices use the four
// directional slots; seam vertices reuse the first three positions for their
// two pixel-facing edges and the edge toward their dummy source.
type Slot uint8

const (
	SlotPosX Slot = iota // pixel: edge toward (x+1, y)
	SlotNegX             // pixel: edge toward (x-1, y)
	SlotPosY             // pixel: edge toward (x, y+1)
	SlotNegY             // pixel: edge toward (x, y-1)
)

const (
	SlotSeamA      Slot = 0 // seam: edge toward the left/top pixel
	SlotSeamB      Slot = 1 // seam: edge toward the right/bottom pixel
	SlotSeamSource Slot = 2 // seam and dummy source: the feeding edge
)

const slotCount = 4

// Accepts reports whether a vertex of kind k may hold an edge in slot s.
func (k Kind) Accepts(s Slot) bool {
	switch k {
	case KindPixel:
		return s < slotCount
	case KindHorizontalSeam, KindVerticalSeam:
		return s == SlotSeamA || s == SlotSeamB || s == SlotSeamSource
	case KindDummySource:
		return s == SlotSeamSource
	default:
		return false
	}
}

// Vertex is one site of the flow network. Source and Sink are flags; a
// sanitized network never has both set on the same vertex.
type Vertex struct {
	Kind   Kind
	Pos    image.Point
	Source bool
	Sink   bool

	edges [slotCount]EdgeID
}

// EdgeAt returns the edge held in slot s, or NoEdge.
func (v *Vertex) EdgeAt(s Slot) EdgeID {
	if s >= slotCount {
		return NoEdge
	}
	return v.edges[s]
}

// Edges returns the occupied slots' edges in slot order.
func (v *Vertex) Edges() []EdgeID {
	out := make([]EdgeID, 0, slotCount)
	for _, e := range v.edges {
		if e != NoEdge {
			out = append(out, e)
		}
	}
	return out
}

// Terminal reports whether v is a source or a sink.
func (v *Vertex) Terminal() bool { return v.Source || v.Sink }

// Edge is an undirected capacity edge between A and B. Flow is the signed net
// flow from A to B, so the residual capacity is Capacity-Flow toward B and
// Capacity+Flow toward A.
type Edge struct {
	A, B     VertexID
	Capacity int64
	Flow     int64
}

// ResidualTo returns the spare capacity for pushing flow into v along e.
// v must be one of e's endpoints.
func (e *Edge) ResidualTo(v VertexID) int64 {
	if v == e.B {
		return e.Capacity - e.Flow
	}
	return e.Capacity + e.Flow
}

// Other returns the endpoint of e opposite to v.
func (e *Edge) Other(v VertexID) VertexID {
	if v == e.A {
		return e.B
	}
	return e.A
}

// Options configures EdmondsKarp.
//   - Debug: verify network consistency before solving and panic on
//     internal inconsistencies instead of leaving them undefined.
//   - OnAugment: called after each augmentation with the bottleneck and the
//     number of edges on the augmenting path.
type Options struct {
	Debug     bool
	OnAugment func(bottleneck int64, pathLen int)
}

// MinCut is the outcome of a max-flow computation: the vertices reachable
// from any source in the final residual graph and the edges crossing that
// boundary.
type MinCut struct {
	MaxFlow       int64
	Augmentations int
	Reachable     []VertexID // ascending
	Cut           []EdgeID   // ascending

	reachable []bool
}

// IsReachable reports whether v lies on the source side of the cut.
func (m MinCut) IsReachable(v VertexID) bool {
	return v >= 0 && int(v) < len(m.reachable) && m.reachable[v]
}

// CutCapacity sums the capacities of the cut edges as stored in n.
func (m MinCut) CutCapacity(n *Network) int64 {
	var total int64
	for _, e := range m.Cut {
		total += n.edges[e].Capacity
	}
	return total
}
