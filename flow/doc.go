// Package flow implements the seam network used by graph-cut texture
// synthesis together with an Edmonds–Karp max-flow / min-cut solver over it.
//
// # Data model
//
// A Network is an arena: vertices and edges live in two slices and refer to
// each other by VertexID / EdgeID. An arena is built for exactly one solve and
// dropped afterwards (Release), so ids never outlive the problem they were
// created for.
//
//   - Vertex: a Kind (pixel, horizontal seam, vertical seam, dummy source),
//     a grid position, Source/Sink flags and four edge slots. Pixel vertices
//     key slots by direction (SlotPosX, SlotNegX, SlotPosY, SlotNegY); seam
//     vertices use SlotSeamA, SlotSeamB and SlotSeamSource; dummy sources
//     use SlotSeamSource only.
//   - Edge: an undirected capacity edge A–B with a signed net flow A→B.
//     Residual capacity is Capacity-Flow toward B and Capacity+Flow toward A.
//
// # Algorithm
//
// EdmondsKarp supports any number of sources and sinks (vertex flags):
//
//   - Method: FIFO breadth-first search from all sources at once for the
//     shortest augmenting path, repeated until no sink is reachable.
//   - Time:   O(V · E²) with integer capacities.
//   - Memory: O(V) per search; the parent map is allocated per search and
//     never stored on vertices.
//
// After the last augmentation one more search marks every vertex reachable
// from a source. The returned MinCut lists those vertices and every edge
// with exactly one reachable endpoint; its capacity equals the max flow.
//
// Ties between equally short augmenting paths go to the earliest enqueued
// vertex, so the order in which a builder adds vertices and fills slots
// decides which of several minimum cuts is found.
//
// # Errors
//
//	ErrVertexNotFound   - an id outside the arena.
//	ErrNegativeCapacity - Connect with capacity < 0.
//	ErrSlotOccupied     - Connect into a slot that already holds an edge.
//	ErrSlotMismatch     - a slot the vertex kind does not use.
//
// The solver itself returns no errors. Inconsistent networks (a path with no
// source endpoint, a vertex left both source and sink) are programmer errors:
// with Options.Debug they panic, otherwise the result is unspecified.
// Call Network.Sanitize before solving.
package flow
