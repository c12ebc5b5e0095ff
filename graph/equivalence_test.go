package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Augigogigi/istos/dense"
	"github.com/Augigogigi/istos/graph"
	"github.com/Augigogigi/istos/sparse"
)

// Both engines assign handles 0, 1, 2, ... for identical scripts, so
// steps may refer to vertices by literal handle value.

// step is one mutation applied identically to every engine under test.
type step struct {
	name string
	op   func(g graph.Graph[int])
}

// TestEngines_ObservableEquivalence drives a dense and a sparse engine
// through one fixed operation script and, after every step, asserts
// that every query observable (liveness, payloads, adjacency, neighbor
// sets) is identical across engines.
func TestEngines_ObservableEquivalence(t *testing.T) {
	const probeLimit = graph.Handle(8) // covers all issued and some stale handles

	script := []step{
		{"add five vertices", func(g graph.Graph[int]) {
			for i := 0; i < 5; i++ {
				g.AddVertex(i * 10)
			}
		}},
		{"edge 0-1", func(g graph.Graph[int]) { g.AddEdge(0, 1) }},
		{"edge 1-2", func(g graph.Graph[int]) { g.AddEdge(1, 2) }},
		{"self-loop 3-3", func(g graph.Graph[int]) { g.AddEdge(3, 3) }},
		{"edge 2-4", func(g graph.Graph[int]) { g.AddEdge(2, 4) }},
		{"remove edge 1-0 by reverse orientation", func(g graph.Graph[int]) { g.RemoveEdge(1, 0) }},
		{"overwrite payload of 4", func(g graph.Graph[int]) { g.SetVertexData(4, 400) }},
		{"remove vertex 2", func(g graph.Graph[int]) { g.RemoveVertex(2) }},
		{"stale-handle mutations are no-ops", func(g graph.Graph[int]) {
			g.AddEdge(2, 3)
			g.SetVertexData(2, -1)
			g.RemoveEdge(2, 1)
			g.RemoveVertex(2)
		}},
		{"add vertex after removal", func(g graph.Graph[int]) { g.AddVertex(50) }},
		{"edge 5-0", func(g graph.Graph[int]) { g.AddEdge(5, 0) }},
		{"edge 5-5", func(g graph.Graph[int]) { g.AddEdge(5, 5) }},
		{"remove vertex 0", func(g graph.Graph[int]) { g.RemoveVertex(0) }},
	}

	d := dense.New[int]()
	s := sparse.New[int]()

	for _, st := range script {
		st.op(d)
		st.op(s)
		requireSameObservables(t, st.name, d, s, probeLimit)
	}
}

// requireSameObservables compares every contract query over the probe
// handle range across two engines.
func requireSameObservables(t *testing.T, stage string, a, b graph.Graph[int], limit graph.Handle) {
	t.Helper()

	for u := graph.Handle(0); u < limit; u++ {
		da, oka := a.VertexData(u)
		db, okb := b.VertexData(u)
		require.Equal(t, oka, okb, "%s: liveness of %d diverged", stage, u)
		require.Equal(t, da, db, "%s: payload of %d diverged", stage, u)

		require.ElementsMatch(t, a.Neighbors(u), b.Neighbors(u),
			"%s: neighbor set of %d diverged", stage, u)

		for v := graph.Handle(0); v < limit; v++ {
			require.Equal(t, a.IsAdjacent(u, v), b.IsAdjacent(u, v),
				"%s: adjacency %d-%d diverged", stage, u, v)
		}
	}
}

// TestEngines_AdjacencySymmetry asserts IsAdjacent(u,v)==IsAdjacent(v,u)
// on both engines for every probe pair, live or dead.
func TestEngines_AdjacencySymmetry(t *testing.T) {
	build := func(g graph.Graph[int]) {
		a := g.AddVertex(1)
		b := g.AddVertex(2)
		c := g.AddVertex(3)
		g.AddEdge(a, b)
		g.AddEdge(b, c)
		g.AddEdge(c, c)
		g.RemoveVertex(a)
	}

	engines := map[string]graph.Graph[int]{
		"Dense":  dense.New[int](),
		"Sparse": sparse.New[int](),
	}
	for name, g := range engines {
		t.Run(name, func(t *testing.T) {
			build(g)
			for u := graph.Handle(0); u < 5; u++ {
				for v := graph.Handle(0); v < 5; v++ {
					require.Equal(t, g.IsAdjacent(u, v), g.IsAdjacent(v, u),
						"asymmetric adjacency for %d-%d", u, v)
				}
			}
		})
	}
}

// TestEngines_ContractScenario replays the canonical three-vertex
// lifecycle on each engine: payloads 1,2,3, a path v1-v2-v3, then the
// middle vertex removed.
func TestEngines_ContractScenario(t *testing.T) {
	t.Run("Dense", func(t *testing.T) { runContractScenario(t, dense.New[int]()) })
	t.Run("Sparse", func(t *testing.T) { runContractScenario(t, sparse.New[int]()) })
}

func runContractScenario(t *testing.T, g graph.Graph[int]) {
	require := require.New(t)

	v1 := g.AddVertex(1)
	v2 := g.AddVertex(2)
	v3 := g.AddVertex(3)
	require.True(v1 < v2 && v2 < v3, "handles must be distinct and increasing")

	g.AddEdge(v1, v2)
	g.AddEdge(v2, v3)

	d, ok := g.VertexData(v1)
	require.True(ok)
	require.Equal(1, d)
	require.ElementsMatch([]graph.Handle{v1, v3}, g.Neighbors(v2))

	g.RemoveVertex(v2)

	_, ok = g.VertexData(v2)
	require.False(ok, "removed handle must read as absent")
	require.False(g.IsAdjacent(v1, v3), "no direct v1-v3 edge was ever added")
	require.False(g.IsAdjacent(v1, v2))
	require.False(g.IsAdjacent(v2, v3))
	require.Empty(g.Neighbors(v1))
	require.Empty(g.Neighbors(v3))
}
