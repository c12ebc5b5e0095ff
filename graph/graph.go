package graph

// Handle uniquely identifies a vertex within one engine instance.
//
// Handles are assigned by AddVertex in strictly increasing order and
// are never recycled: after RemoveVertex(h), h is permanently stale
// and every operation treats it as absent. Handles from different
// engine instances are unrelated and must not be mixed.
type Handle uint64

// Graph is the capability contract every storage engine satisfies.
//
// All operations are total: they always return, in time bounded by the
// current vertex and edge counts, and none of them errors or panics.
// Absence (stale or unknown handles, missing edges) is communicated
// through comma-ok results and silent no-ops.
//
// Edges are undirected; every edge operation and query is symmetric in
// its two handle arguments. Self-loops (u == v) are permitted and
// meaningful.
type Graph[T any] interface {
	// AddVertex stores data under a fresh handle and returns it.
	// Always succeeds. Complexity: engine-dependent (see dense, sparse).
	AddVertex(data T) Handle

	// RemoveVertex removes the vertex and every edge touching it.
	// No-op if h is not live.
	RemoveVertex(h Handle)

	// AddEdge records an undirected adjacency between u and v.
	// No-op unless both handles are live. Self-loops are allowed.
	AddEdge(u, v Handle)

	// RemoveEdge removes the adjacency between u and v, in either
	// orientation. No-op if no such edge exists.
	RemoveEdge(u, v Handle)

	// VertexData returns a copy of the payload stored under h.
	// The second result is false when h is not live.
	VertexData(h Handle) (T, bool)

	// SetVertexData overwrites the payload stored under h.
	// No-op if h is not live.
	SetVertexData(h Handle, data T)

	// IsAdjacent reports whether an edge connects u and v.
	// False when either handle is not live. Symmetric:
	// IsAdjacent(u, v) == IsAdjacent(v, u) for all handles.
	IsAdjacent(u, v Handle) bool

	// Neighbors enumerates every live vertex adjacent to h, in the
	// engine's internal vertex order. A vertex with a self-loop is its
	// own neighbor. Returns an empty sequence (never an error) when h
	// is stale, unknown, or isolated.
	Neighbors(h Handle) []Handle
}

// WeightedGraph extends Graph with per-edge weights of type W.
//
// Weight lookup is optional-returning: an edge may not exist, or may
// exist without a recorded weight, and both read as absence. Like
// adjacency, weights are symmetric in the handle pair.
//
// Neither base engine implements this contract; the weighted package
// provides it as a decorator over any Graph engine.
type WeightedGraph[T, W any] interface {
	Graph[T]

	// EdgeWeight returns the weight recorded for the edge between u
	// and v. The second result is false when the edge does not exist
	// or no weight was ever set for it.
	EdgeWeight(u, v Handle) (W, bool)

	// SetEdgeWeight records w for the edge between u and v.
	// No-op unless the edge currently exists.
	SetEdgeWeight(u, v Handle, w W)
}
