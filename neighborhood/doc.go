// Package neighborhood extracts rooted neighborhood subgraphs: the
// induced subgraph of all nodes within a bounded hop distance of a root.
//
// What
//
//   - Extract(g, root, r) returns the induced subgraph on every node at
//     hop distance ≤ r from root, with each member tagged by its exact
//     distance from the root.
//   - Radius 0 yields a single-member neighborhood (the root itself).
//   - Members are sorted by node id and edges by (U, V), so extraction
//     is deterministic for a fixed graph.
//
// Why
//
//	Rooted neighborhoods are the substructures the canonical encoder
//	fingerprints; the distance tag is what lets the encoder break
//	symmetry deterministically around the root.
//
// Ownership
//
//	A Neighborhood is a transient value: built on demand, consumed by
//	signature.Encode, and discarded. It holds copies of labels and
//	weights, never references into the source graph's internals.
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrNegativeRadius   if r < 0.
//   - core.ErrUnknownNode (wrapped) if root does not exist.
package neighborhood
