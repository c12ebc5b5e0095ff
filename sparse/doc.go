// Package sparse implements the edge-list istos storage engine.
//
// The engine keeps vertices in an insertion-ordered arena and edges as
// an explicit list of unordered handle pairs. For graphs with few
// edges relative to vertices this costs O(V+E) memory instead of the
// dense engine's O(V²).
//
// Adjacency is existential: the engine does not prevent duplicate
// parallel pairs from coexisting in the list, and a pair of vertices
// is adjacent as long as at least one matching entry exists in either
// orientation. RemoveEdge drops every entry matching the pair in
// either orientation, so a single removal always clears adjacency even
// when duplicates had accumulated.
//
// Complexity profile (V = live vertices, E = stored pairs):
//
//	AddVertex      O(1)
//	RemoveVertex   O(V + E)
//	AddEdge        O(V)    — endpoint validation
//	RemoveEdge     O(E)
//	IsAdjacent     O(E)
//	Neighbors      O(V·E)
//	memory         O(V + E)
//
// Observable semantics are identical to the dense engine's for every
// contract operation; only complexity differs.
package sparse
