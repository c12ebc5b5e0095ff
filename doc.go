// Package istos is a small in-memory storage library for undirected
// graphs with arbitrary per-vertex payloads.
//
// What is istos?
//
//	A generic, zero-IO library offering two interchangeable storage
//	engines behind a single capability contract:
//		• graph/    — the contract: Handle, Graph[T], WeightedGraph[T,W]
//		• dense/    — packed symmetric adjacency matrix, O(1) adjacency
//		• sparse/   — explicit edge list, O(V+E) memory
//		• weighted/ — decorator engine adding per-edge weights
//
// Why two engines?
//
//   - Dense trades O(V²) memory for constant-time adjacency checks;
//     the undirected matrix is stored packed (upper triangle plus
//     diagonal), halving memory while keeping self-loops first-class.
//   - Sparse keeps an explicit pair list, paying O(E) per adjacency
//     query but only O(V+E) memory — the right shape for thin graphs.
//
// Both engines expose identical observable semantics for every
// contract operation; only complexity differs, so callers can swap
// representations without behavior change.
//
// Vertex handles are opaque, strictly increasing and never recycled:
// once a vertex is removed its handle is permanently stale, and every
// operation treats a stale handle as an expected condition (comma-ok
// queries, silent no-op mutations) rather than an error.
//
// Quick ASCII example:
//
//	    v1──v2
//	         │
//	        v3
//
//	three vertices, two edges; removing v2 also removes both edges.
//
//	go get github.com/Augigogigi/istos
package istos
