// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path (hop) distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a root node.
//   - Returns a Result containing:
//   - Order: visit sequence (root first, layer by layer)
//   - Dist: map from node id → hop distance from the root
//   - Parent: map from node id → predecessor in the BFS tree
//   - Honors a radius bound via WithMaxDepth: expansion stops at depth R,
//     so nodes beyond R are absent from Dist.
//   - Supports an OnVisit hook and context cancellation.
//
// Why
//
//	Hop distances within a bounded radius are the raw material for
//	neighborhood extraction and pairwise-distance feature hashing: every
//	(root, radius) neighborhood and every (root, other, distance) pair
//	in the vectorizer is derived from one truncated BFS per root.
//
// Determinism
//
//	core.Graph.Neighbors returns adjacency sorted by node id and BFS
//	enqueues in that order, so Order is fully reproducible.
//
// Complexity (V = |nodes|, E = |edges| inside the radius)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, root, bfs.WithMaxDepth(3))
//	if err != nil { ... }
//	for id, d := range res.Dist { ... }
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - core.ErrUnknownNode (wrapped) if the root id does not exist.
//   - ErrOptionViolation if an invalid Option is supplied (negative depth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
