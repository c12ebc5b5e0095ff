// Package dense implements the matrix-backed istos storage engine.
//
// The engine keeps an undirected adjacency matrix in packed triangular
// form: because the matrix is symmetric, only the upper triangle
// including the diagonal is stored — V·(V+1)/2 booleans instead of V².
// The diagonal is retained so self-loops are first-class edges.
//
// The packing is a row-major layout where row i holds columns i..V-1,
// so cell (x, y) with x ≤ y lives at offset
//
//	(2V - x - 1)·x/2 + y
//
// and the offset of any cell depends on the current vertex count V.
// Growing or shrinking the graph therefore re-interleaves the packed
// array rather than appending to it; the pure arithmetic for both
// directions lives in packing.go and is unit-tested in isolation.
//
// Complexity profile (V = live vertices):
//
//	AddVertex      O(V²)  — repack to the larger order
//	RemoveVertex   O(V²)  — excise one row/column from the packing
//	AddEdge        O(V)   — handle resolution dominates; O(1) lookup
//	RemoveEdge     O(V)
//	IsAdjacent     O(V)
//	Neighbors      O(V)
//	memory         O(V²/2)
//
// Handle→position resolution is a linear scan by design: the engine
// targets modest vertex counts where the packed matrix itself is the
// dominant cost, and keeping no auxiliary index keeps every mutation
// trivially consistent.
//
// Choose dense when the graph is dense enough that O(V²) bits are
// acceptable and adjacency checks dominate; choose the sparse engine
// when edges are few relative to vertices.
package dense
