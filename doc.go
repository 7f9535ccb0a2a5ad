// Package graphvec turns labeled graphs into sparse numeric feature
// vectors — deterministic, explicit neighborhood-pair feature maps for
// graph similarity, kernel methods, and downstream ML.
//
// 🚀 What is graphvec?
//
//	A small, composable library that brings together:
//		• Core primitives: immutable labeled, weighted graphs built once, read concurrently
//		• Distances: breadth-first hop distances with depth caps and visit hooks
//		• Neighborhoods: induced subgraphs of bounded radius around any root
//		• Signatures: canonical 64-bit codes via iterative label refinement
//		• Features: pair hashing folded into a fixed 2^bits space, sparse vectors & Gram matrices
//		• Batch: concurrent vectorization of graph collections with shared caching
//
// ✨ Why choose graphvec?
//
//   - Deterministic — identical graphs yield identical vectors, across runs and machines
//   - Renumbering-invariant — node IDs never leak into features, only structure and labels do
//   - Sparse-first — vectors store only nonzero entries, dense views on demand
//   - Tunable — radius, distance, bit width, normalization, and weight functions per vectorizer
//
// Everything is organized under focused subpackages:
//
//	core/         — Graph, Builder, nodes, edges, deterministic adjacency
//	bfs/          — shortest hop distances, parents, visit order
//	neighborhood/ — radius-bounded induced subgraph extraction
//	signature/    — canonical neighborhood encoding (refinement + hashing)
//	feature/      — sparse vectors, matrices, dot/cosine/Gram
//	vectorize/    — the feature map: single graph, per-node, and batch
//	gen/          — deterministic graph generators for tests and benchmarks
//
// Quick ASCII example:
//
//	    C───C───O        →  v ∈ ℝ^(2^bits),  v[h(sig_u, sig_w, r, d)] += w
//
//	a three-atom chain becomes a handful of indexed pair features.
//
// Dive into examples/ for molecule similarity, Gram matrices over graph
// families, and per-node fingerprints.
//
//	go get github.com/katalvlaran/graphvec
package graphvec
