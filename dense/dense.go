package dense

import "github.com/Augigogigi/istos/graph"

// record pairs a stable external handle with its payload. Position in
// the vertices slice is the internal matrix index and shifts on
// removal; the handle never does.
type record[T any] struct {
	id   graph.Handle
	data T
}

// Graph is the matrix-backed storage engine. It satisfies
// graph.Graph[T]; see the package documentation for the complexity
// profile and the packed-matrix layout.
//
// The zero value is NOT ready to use; construct with New.
type Graph[T any] struct {
	vertices []record[T]  // insertion-ordered vertex arena
	cells    []bool       // packed upper-triangular adjacency, len V·(V+1)/2
	nextID   graph.Handle // next handle to assign; never decremented
}

// New returns an empty dense engine.
// Complexity: O(1).
func New[T any]() *Graph[T] {
	return &Graph[T]{}
}

// position resolves a handle to its current internal matrix index.
// Linear scan by design: no auxiliary index is maintained.
// Complexity: O(V).
func (g *Graph[T]) position(h graph.Handle) (int, bool) {
	for i := range g.vertices {
		if g.vertices[i].id == h {
			return i, true
		}
	}

	return 0, false
}

// AddVertex stores data under a fresh handle and returns it. The
// packed matrix is repacked to the larger order before the record is
// appended, with the newcomer's column interleaved throughout.
// Complexity: O(V²).
func (g *Graph[T]) AddVertex(data T) graph.Handle {
	g.cells = expand(g.cells, len(g.vertices))

	id := g.nextID
	g.vertices = append(g.vertices, record[T]{id: id, data: data})
	g.nextID++

	return id
}

// RemoveVertex removes the vertex and every edge touching it, then
// repacks the matrix to the smaller order. No-op if h is not live.
// Cells are excised last-to-first so pending offsets stay valid.
// Complexity: O(V²).
func (g *Graph[T]) RemoveVertex(h graph.Handle) {
	pos, ok := g.position(h)
	if !ok {
		return
	}

	for _, off := range shrinkOffsets(len(g.vertices), pos) {
		g.cells = append(g.cells[:off], g.cells[off+1:]...)
	}
	g.vertices = append(g.vertices[:pos], g.vertices[pos+1:]...)
}

// AddEdge records an undirected adjacency between u and v. Self-loops
// (u == v) set the diagonal cell. No-op unless both handles are live.
// Complexity: O(V).
func (g *Graph[T]) AddEdge(u, v graph.Handle) {
	pu, ok := g.position(u)
	if !ok {
		return
	}
	pv, ok := g.position(v)
	if !ok {
		return
	}

	g.cells[packedIndex(len(g.vertices), pu, pv)] = true
}

// RemoveEdge clears the adjacency between u and v; both orientations
// resolve to the same packed cell. No-op if either handle is not live.
// Complexity: O(V).
func (g *Graph[T]) RemoveEdge(u, v graph.Handle) {
	pu, ok := g.position(u)
	if !ok {
		return
	}
	pv, ok := g.position(v)
	if !ok {
		return
	}

	g.cells[packedIndex(len(g.vertices), pu, pv)] = false
}

// VertexData returns a copy of the payload stored under h, or
// (zero, false) when h is not live.
// Complexity: O(V).
func (g *Graph[T]) VertexData(h graph.Handle) (T, bool) {
	if pos, ok := g.position(h); ok {
		return g.vertices[pos].data, true
	}

	var zero T

	return zero, false
}

// SetVertexData overwrites the payload stored under h.
// No-op if h is not live.
// Complexity: O(V).
func (g *Graph[T]) SetVertexData(h graph.Handle, data T) {
	if pos, ok := g.position(h); ok {
		g.vertices[pos].data = data
	}
}

// IsAdjacent reports whether an edge connects u and v. Symmetric, and
// false when either handle is not live.
// Complexity: O(V).
func (g *Graph[T]) IsAdjacent(u, v graph.Handle) bool {
	pu, ok := g.position(u)
	if !ok {
		return false
	}
	pv, ok := g.position(v)
	if !ok {
		return false
	}

	return g.cells[packedIndex(len(g.vertices), pu, pv)]
}

// Neighbors enumerates every live vertex adjacent to h, in internal
// vertex order; a self-looped vertex is its own neighbor. Empty when h
// is stale or isolated. The handle is resolved once, then each
// candidate costs one packed lookup.
// Complexity: O(V).
func (g *Graph[T]) Neighbors(h graph.Handle) []graph.Handle {
	pos, ok := g.position(h)
	if !ok {
		return nil
	}

	n := len(g.vertices)

	var out []graph.Handle
	for i := range g.vertices {
		if g.cells[packedIndex(n, pos, i)] {
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
// Complexity: O(V²).
func (g *Graph[T]) Clone() *Graph[T] {
	return &Graph[T]{
		vertices: append([]record[T](nil), g.vertices...),
		cells:    append([]bool(nil), g.cells...),
		nextID:   g.nextID,
	}
}
