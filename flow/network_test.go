package flow_test

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gcts/flow"
)

// TestConnect_Errors verifies the validation order of Connect.
func TestConnect_Errors(t *testing.T) {
	n := flow.NewNetwork(0, 0)
	p := n.AddVertex(flow.KindPixel, image.Pt(0, 0))
	q := n.AddVertex(flow.KindPixel, image.Pt(1, 0))
	d := n.AddVertex(flow.KindDummySource, image.Pt(0, 0))
	_, err := n.Connect(p, flow.SlotPosX, q, flow.SlotNegX, 1)
	require.NoError(t, err)

	cases := []struct {
		name   string
		a      flow.VertexID
		sa     flow.Slot
		b      flow.VertexID
		sb     flow.Slot
		cap    int64
		expect error
	}{
		{"UnknownVertex", p, flow.SlotPosY, 42, flow.SlotNegY, 1, flow.ErrVertexNotFound},
		{"NegativeVertex", -1, flow.SlotPosY, q, flow.SlotNegY, 1, flow.ErrVertexNotFound},
		{"NegativeCapacity", p, flow.SlotPosY, q, flow.SlotNegY, -1, flow.ErrNegativeCapacity},
		{"DummyPixelSlot", d, flow.SlotPosX, p, flow.SlotPosY, 1, flow.ErrSlotMismatch},
		{"OccupiedA", p, flow.SlotPosX, q, flow.SlotPosY, 1, flow.ErrSlotOccupied},
		{"OccupiedB", q, flow.SlotPosY, p, flow.SlotPosX, 1, flow.ErrSlotOccupied},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := n.Connect(tc.a, tc.sa, tc.b, tc.sb, tc.cap)
			require.True(t, errors.Is(err, tc.expect), "got %v; want %v", err, tc.expect)
			require.Equal(t, flow.NoEdge, id)
		})
	}
	require.Equal(t, 1, n.EdgeCount(), "failed Connect calls must not allocate edges")
}

// TestKindAccepts pins the slot layout of every vertex kind.
func TestKindAccepts(t *testing.T) {
	for s := flow.Slot(0); s < 4; s++ {
		assert.True(t, flow.KindPixel.Accepts(s), "pixel slot %d", s)
	}
	for _, k := range []flow.Kind{flow.KindHorizontalSeam, flow.KindVerticalSeam} {
		assert.True(t, k.Accepts(flow.SlotSeamA))
		assert.True(t, k.Accepts(flow.SlotSeamB))
		assert.True(t, k.Accepts(flow.SlotSeamSource))
		assert.False(t, k.Accepts(flow.SlotNegY))
	}
	assert.True(t, flow.KindDummySource.Accepts(flow.SlotSeamSource))
	assert.False(t, flow.KindDummySource.Accepts(flow.SlotSeamA))
	assert.False(t, flow.KindPixel.Accepts(flow.Slot(4)))
	assert.Equal(t, "hseam", flow.KindHorizontalSeam.String())
	assert.Equal(t, "Kind(9)", flow.Kind(9).String())
}

// TestEdgeResidual checks the signed-flow residual convention.
func TestEdgeResidual(t *testing.T) {
	e := flow.Edge{A: 1, B: 2, Capacity: 5, Flow: 2}
	assert.Equal(t, int64(3), e.ResidualTo(2))
	assert.Equal(t, int64(7), e.ResidualTo(1))
	assert.Equal(t, flow.VertexID(2), e.Other(1))
	assert.Equal(t, flow.VertexID(1), e.Other(2))

	e.Flow = -5
	assert.Equal(t, int64(10), e.ResidualTo(2))
	assert.Equal(t, int64(0), e.ResidualTo(1))
}

// TestSanitize: sink wins when a vertex carries both flags; sources that are
// not sinks are untouched.
func TestSanitize(t *testing.T) {
	n := flow.NewNetwork(3, 0)
	both := n.AddVertex(flow.KindPixel, image.Pt(0, 0))
	src := n.AddVertex(flow.KindPixel, image.Pt(1, 0))
	sink := n.AddVertex(flow.KindPixel, image.Pt(2, 0))
	require.NoError(t, n.MarkSource(both))
	require.NoError(t, n.MarkSink(both))
	require.NoError(t, n.MarkSource(src))
	require.NoError(t, n.MarkSink(sink))
	require.ErrorIs(t, n.Check(), flow.ErrSourceAndSink)

	require.Equal(t, 1, n.Sanitize())
	require.NoError(t, n.Check())
	require.Equal(t, []flow.VertexID{src}, n.Sources())
	require.Equal(t, []flow.VertexID{both, sink}, n.Sinks())
	require.Zero(t, n.Sanitize(), "second pass is a no-op")

	require.ErrorIs(t, n.MarkSource(7), flow.ErrVertexNotFound)
	require.ErrorIs(t, n.MarkSink(-2), flow.ErrVertexNotFound)
}

// TestVertexEdges: Edges lists occupied slots in slot order; lookups outside
// the arena return nil.
func TestVertexEdges(t *testing.T) {
	n := flow.NewNetwork(3, 2)
	c := n.AddVertex(flow.KindPixel, image.Pt(1, 1))
	r := n.AddVertex(flow.KindPixel, image.Pt(2, 1))
	u := n.AddVertex(flow.KindPixel, image.Pt(1, 0))
	up, err := n.Connect(c, flow.SlotNegY, u, flow.SlotPosY, 1)
	require.NoError(t, err)
	right, err := n.Connect(c, flow.SlotPosX, r, flow.SlotNegX, 1)
	require.NoError(t, err)

	require.Equal(t, []flow.EdgeID{right, up}, n.Vertex(c).Edges())
	require.Equal(t, up, n.Vertex(c).EdgeAt(flow.SlotNegY))
	require.Equal(t, flow.NoEdge, n.Vertex(c).EdgeAt(flow.SlotPosY))
	require.Equal(t, flow.NoEdge, n.Vertex(c).EdgeAt(flow.Slot(9)))
	require.Nil(t, n.Vertex(3))
	require.Nil(t, n.Edge(2))
	require.Nil(t, n.Edge(flow.NoEdge))

	n.Release()
	require.Zero(t, n.Len())
	require.Zero(t, n.EdgeCount())
}

// TestCheck_FlowBound: Check rejects a flow larger than the capacity.
func TestCheck_FlowBound(t *testing.T) {
	n := flow.NewNetwork(2, 1)
	a := n.AddVertex(flow.KindPixel, image.Pt(0, 0))
	b := n.AddVertex(flow.KindPixel, image.Pt(1, 0))
	id, err := n.Connect(a, flow.SlotPosX, b, flow.SlotNegX, 2)
	require.NoError(t, err)

	n.Edge(id).Flow = -3
	require.ErrorIs(t, n.Check(), flow.ErrFlowExceedsCapacity)
	n.ResetFlow()
	require.NoError(t, n.Check())
}

// TestSide partitions every vertex exactly once.
func TestSide(t *testing.T) {
	n := grid2x2(t)
	mc := flow.EdmondsKarp(n, nil)
	in, out := flow.Side(n, mc)
	require.Equal(t, []flow.VertexID{0}, in)
	require.Equal(t, []flow.VertexID{1, 2, 3}, out)
}
