// Package weighted adds per-edge weights on top of any istos engine.
//
// weighted.Graph decorates an inner graph.Graph[T] (dense or sparse —
// anything satisfying the contract) and implements
// graph.WeightedGraph[T, W]. Weights live beside the inner engine in a
// map keyed by the orientation-normalized handle pair, so weight
// lookup is symmetric exactly like adjacency.
//
// Weight lookup is optional-returning: EdgeWeight reports absence both
// when the edge does not exist and when it exists but no weight was
// ever recorded for it. SetEdgeWeight refuses (as a silent no-op) to
// record a weight for a non-existent edge, and edge or vertex removal
// purges the affected weights, so a stale handle or removed edge can
// never resolve to a weight.
//
// All mutations must flow through the decorator: mutating the inner
// engine directly bypasses weight bookkeeping.
package weighted
