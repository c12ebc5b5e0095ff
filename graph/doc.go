// Package graph defines the capability contract satisfied by every
// istos storage engine.
//
// The contract is deliberately small: vertex and edge mutation, payload
// access, an adjacency predicate, and neighbor enumeration. It carries
// no representation commitments — the dense and sparse packages provide
// interchangeable engines with identical observable semantics, and a
// caller holding a graph.Graph[T] may swap one for the other freely.
//
// Handle semantics:
//
//   - Handles are opaque unsigned integers, assigned by each engine
//     independently, strictly increasing, and never reused within one
//     engine instance — a removed vertex's handle stays permanently
//     stale instead of silently aliasing a later vertex.
//   - Staleness is an expected, recoverable condition, not an error:
//     queries report absence through a comma-ok boolean, mutations on
//     dead handles are silent no-ops, and no contract operation can
//     fail or panic for any sequence of calls.
//
// Payload semantics:
//
//	The payload type parameter T is copied by value on every read and
//	write, decoupling the caller's lifetime from engine storage. When
//	T contains pointers, maps or slices, the copy shares the
//	referenced memory — store value types if full isolation matters.
//
// Engines are single-owner, single-threaded structures: no internal
// locking is performed, and callers needing shared access must wrap an
// entire engine instance in their own synchronization.
package graph
