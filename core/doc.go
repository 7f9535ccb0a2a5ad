// Package core defines the central Graph, Node, and Edge types for
// labeled, attributed, undirected graphs, plus the Builder used to
// construct them.
//
// What
//
//   - Nodes carry a discrete label (e.g. atom type, residue code) and an
//     optional numeric weight (default 1.0).
//   - Edges are unordered node pairs carrying a label and an optional
//     numeric weight (default 1.0).
//   - Node ids are dense, zero-based integers assigned in insertion order.
//   - Graphs are immutable after Build(): every transformation is
//     "build a new Graph", never "mutate in place".
//
// Why
//
//   - Downstream feature extraction (bfs, neighborhood, signature,
//     vectorize) relies on a frozen topology: an immutable Graph can be
//     shared across goroutines with zero locking.
//   - Construction-time validation means malformed graphs (dangling edge
//     endpoints, duplicate edges, self-loops) fail fast and are never
//     silently repaired.
//
// Determinism
//
//	Neighbors(id) returns adjacent nodes sorted by neighbor id. All
//	traversals built on top of it (BFS layering, neighborhood extraction)
//	inherit a fully reproducible visit order.
//
// Errors
//
//   - ErrInvalidGraph   umbrella for construction failures (use errors.Is).
//   - ErrUnknownNode    an id is out of range (construction or query).
//   - ErrSelfLoop       an edge connects a node to itself.
//   - ErrDuplicateEdge  a second edge between the same endpoints.
//
// Usage
//
//	b := core.NewBuilder()
//	c := b.AddNode("C")
//	o := b.AddNode("O", core.WithNodeWeight(2))
//	_ = b.AddEdge(c, o, "double")
//	g, err := b.Build()
package core
