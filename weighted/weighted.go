package weighted

import "github.com/Augigogigi/istos/graph"

// pairKey is the orientation-normalized handle pair used as the weight
// map key: (u, v) and (v, u) normalize to the same key, keeping weight
// lookup symmetric. Self-loops normalize to (h, h).
type pairKey struct {
	lo, hi graph.Handle
}

// keyOf builds the normalized key for an unordered handle pair.
// Complexity: O(1).
func keyOf(u, v graph.Handle) pairKey {
	if u > v {
		u, v = v, u
	}

	return pairKey{lo: u, hi: v}
}

// Graph decorates an inner contract engine with per-edge weights of
// type W. It satisfies graph.WeightedGraph[T, W]; contract operations
// delegate to the inner engine, with removal paths additionally
// purging stored weights.
//
// Construct with Wrap; the zero value has no inner engine.
type Graph[T, W any] struct {
	inner   graph.Graph[T]
	weights map[pairKey]W
}

// Wrap decorates inner with weight storage. The inner engine should
// not be mutated directly afterwards; route every call through the
// returned decorator.
// Complexity: O(1).
func Wrap[T, W any](inner graph.Graph[T]) *Graph[T, W] {
	return &Graph[T, W]{
		inner:   inner,
		weights: make(map[pairKey]W),
	}
}

// AddVertex delegates to the inner engine.
func (g *Graph[T, W]) AddVertex(data T) graph.Handle {
	return g.inner.AddVertex(data)
}

// RemoveVertex delegates to the inner engine and purges every stored
// weight touching h, since the handle can never resolve again.
// Complexity: inner cost + O(weights).
func (g *Graph[T, W]) RemoveVertex(h graph.Handle) {
	g.inner.RemoveVertex(h)
	for k := range g.weights {
		if k.lo == h || k.hi == h {
			delete(g.weights, k)
		}
	}
}

// AddEdge delegates to the inner engine. The new edge starts with no
// recorded weight; use SetEdgeWeight afterwards.
func (g *Graph[T, W]) AddEdge(u, v graph.Handle) {
	g.inner.AddEdge(u, v)
}

// RemoveEdge delegates to the inner engine and drops the pair's
// stored weight, if any.
func (g *Graph[T, W]) RemoveEdge(u, v graph.Handle) {
	g.inner.RemoveEdge(u, v)
	delete(g.weights, keyOf(u, v))
}

// VertexData delegates to the inner engine.
func (g *Graph[T, W]) VertexData(h graph.Handle) (T, bool) {
	return g.inner.VertexData(h)
}

// SetVertexData delegates to the inner engine.
func (g *Graph[T, W]) SetVertexData(h graph.Handle, data T) {
	g.inner.SetVertexData(h, data)
}

// IsAdjacent delegates to the inner engine.
func (g *Graph[T, W]) IsAdjacent(u, v graph.Handle) bool {
	return g.inner.IsAdjacent(u, v)
}

// Neighbors delegates to the inner engine.
func (g *Graph[T, W]) Neighbors(h graph.Handle) []graph.Handle {
	return g.inner.Neighbors(h)
}

// EdgeWeight returns the weight recorded for the edge between u and v,
// in either orientation. Reports (zero, false) when the edge does not
// exist or no weight was ever set for it.
// Complexity: inner IsAdjacent cost + O(1).
func (g *Graph[T, W]) EdgeWeight(u, v graph.Handle) (W, bool) {
	if !g.inner.IsAdjacent(u, v) {
		var zero W

		return zero, false
	}

	w, ok := g.weights[keyOf(u, v)]

	return w, ok
}

// SetEdgeWeight records w for the edge between u and v, replacing any
// previous weight. No-op unless the edge currently exists in the
// inner engine.
// Complexity: inner IsAdjacent cost + O(1).
func (g *Graph[T, W]) SetEdgeWeight(u, v graph.Handle, w W) {
	if !g.inner.IsAdjacent(u, v) {
		return
	}

	g.weights[keyOf(u, v)] = w
}
