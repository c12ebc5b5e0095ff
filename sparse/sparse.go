package sparse

import "github.com/Augigogigi/istos/graph"

// record pairs a stable external handle with its payload.
type record[T any] struct {
	id   graph.Handle
	data T
}

// pair is one stored undirected edge. Orientation is storage detail
// only: (u, v) and (v, u) denote the same logical edge.
type pair struct {
	u, v graph.Handle
}

// Graph is the edge-list storage engine. It satisfies graph.Graph[T];
// see the package documentation for the complexity profile and the
// duplicate-pair semantics.
//
// The zero value is NOT ready to use; construct with New.
type Graph[T any] struct {
	vertices []record[T]  // insertion-ordered vertex arena
	edges    []pair       // unordered edge pairs; duplicates may coexist
	nextID   graph.Handle // next handle to assign; never decremented
}

// New returns an empty sparse engine.
// Complexity: O(1).
func New[T any]() *Graph[T] {
	return &Graph[T]{}
}

// live reports whether h currently resolves to a stored vertex.
// Complexity: O(V).
func (g *Graph[T]) live(h graph.Handle) bool {
	for i := range g.vertices {
		if g.vertices[i].id == h {
			return true
		}
	}

	return false
}

// AddVertex stores data under a fresh handle and returns it.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddVertex(data T) graph.Handle {
	id := g.nextID
	g.vertices = append(g.vertices, record[T]{id: id, data: data})
	g.nextID++

	return id
}

// RemoveVertex drops the vertex record and every edge referencing the
// handle in either position, so a retired handle can never resolve to
// live data through the edge list. No-op if h is not live.
// Complexity: O(V + E).
func (g *Graph[T]) RemoveVertex(h graph.Handle) {
	kept := g.vertices[:0]
	for _, r := range g.vertices {
		if r.id != h {
			kept = append(kept, r)
		}
	}
	g.vertices = kept

	keptEdges := g.edges[:0]
	for _, e := range g.edges {
		if e.u != h && e.v != h {
			keptEdges = append(keptEdges, e)
		}
	}
	g.edges = keptEdges
}

// AddEdge appends the pair after validating that both endpoints are
// live. Duplicate logical edges are not prevented: each call appends
// another pair. Self-loops are allowed.
// Complexity: O(V).
func (g *Graph[T]) AddEdge(u, v graph.Handle) {
	if !g.live(u) || !g.live(v) {
		return
	}

	g.edges = append(g.edges, pair{u: u, v: v})
}

// RemoveEdge drops every stored pair equal to (u, v) or (v, u) —
// entries matching neither orientation are kept. No-op if no such
// pair exists.
// Complexity: O(E).
func (g *Graph[T]) RemoveEdge(u, v graph.Handle) {
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e != (pair{u: u, v: v}) && e != (pair{u: v, v: u}) {
			kept = append(kept, e)
		}
	}
	g.edges = kept
}

// VertexData returns a copy of the payload stored under h, or
// (zero, false) when h is not live.
// Complexity: O(V).
func (g *Graph[T]) VertexData(h graph.Handle) (T, bool) {
	for i := range g.vertices {
		if g.vertices[i].id == h {
			return g.vertices[i].data, true
		}
	}

	var zero T

	return zero, false
}

// SetVertexData overwrites the payload stored under h.
// No-op if h is not live.
// Complexity: O(V).
func (g *Graph[T]) SetVertexData(h graph.Handle, data T) {
	for i := range g.vertices {
		if g.vertices[i].id == h {
			g.vertices[i].data = data
			return
		}
	}
}

// IsAdjacent reports whether at least one stored pair connects u and
// v, in either orientation. Stale handles are never referenced by the
// edge list, so they read as non-adjacent.
// Complexity: O(E).
func (g *Graph[T]) IsAdjacent(u, v graph.Handle) bool {
	for _, e := range g.edges {
		if e == (pair{u: u, v: v}) || e == (pair{u: v, v: u}) {
			return true
		}
	}

	return false
}

// Neighbors enumerates every live vertex adjacent to h, in internal
// vertex order. Scanning the arena rather than the edge list means
// duplicate pairs never yield duplicate neighbors, and a self-looped
// vertex appears once. Empty when h is stale or isolated.
// Complexity: O(V·E).
func (g *Graph[T]) Neighbors(h graph.Handle) []graph.Handle {
	var out []graph.Handle
	for i := range g.vertices {
		if g.IsAdjacent(h, g.vertices[i].id) {
			out = append(out, g.vertices[i].id)
		}
	}

	return out
}

// VertexCount returns the number of live vertices.
// Complexity: O(1).
func (g *Graph[T]) VertexCount() int {
	return len(g.vertices)
}

// EdgeCount returns the number of stored pairs, duplicates included.
// Complexity: O(1).
func (g *Graph[T]) EdgeCount() int {
	return len(g.edges)
}

// Vertices returns the live handles in internal (insertion) order.
// The slice is freshly allocated and safe to retain.
// Complexity: O(V).
func (g *Graph[T]) Vertices() []graph.Handle {
	out := make([]graph.Handle, len(g.vertices))
	for i := range g.vertices {
		out[i] = g.vertices[i].id
	}

	return out
}

// Clone returns an independent copy of the engine. Payloads are copied
// by value; the handle counter carries over, so the clone never issues
// a handle the original already retired.
// Complexity: O(V + E).
func (g *Graph[T]) Clone() *Graph[T] {
	return &Graph[T]{
		vertices: append([]record[T](nil), g.vertices...),
		edges:    append([]pair(nil), g.edges...),
		nextID:   g.nextID,
	}
}
