// Package vectorize turns labeled graphs into fixed-dimensionality
// feature vectors: an explicit feature map approximating the
// Neighborhood Subgraph Pairwise Distance kernel.
//
// What
//
//	For every pair of nodes (u, w) within MaxDistance hops of each other
//	and every radius r ≤ MaxRadius, the canonical signatures of the two
//	r-neighborhoods are combined with (r, distance) into one 64-bit
//	feature id, folded into [0, 2^Bits) by bit-masking, and accumulated
//	into a sparse vector. Vector dot products then approximate the
//	substructure-similarity kernel without any pairwise kernel matrix.
//
// Pair orientation
//
//	Pairs are unordered: each {u, w} at distance d contributes exactly
//	once per radius, and the two signatures are ordered numerically
//	(min ‖ max) before hashing. Swapping which endpoint plays "root"
//	therefore cannot change the accumulated vector.
//
// Weights
//
//	Each contribution weighs nodeWeight(u) × nodeWeight(w) × the sum,
//	over all shortest u→w paths, of the per-path edge weight products.
//	Aggregating over every shortest path (not one arbitrary tree path)
//	keeps the weight a function of the unordered pair alone, so
//	renumbering invariance holds with an edge weight fn too. Defaults
//	are uniform 1.0; override with WithNodeWeightFn / WithEdgeWeightFn.
//
// Determinism & concurrency
//
//	Vectorize is deterministic and stateless: identical graphs yield
//	bit-identical vectors, and one Vectorizer may serve many goroutines.
//	Each graph's accumulator is confined to a single goroutine;
//	VectorizeMany parallelizes across graphs with an errgroup worker
//	pool, preserving input order in the output matrix.
//
// Configuration
//
//	vz, err := vectorize.New(
//	    vectorize.WithMaxRadius(2),
//	    vectorize.WithMaxDistance(4),
//	    vectorize.WithBits(20),
//	    vectorize.WithNormalization(true),
//	)
//
//	Violations (negative radius/distance, Bits outside [1,63],
//	non-positive parallelism or cache capacity) surface as
//	ErrOptionViolation from New, before any graph is processed.
//
// Expected non-errors
//
//	Hash-fold index collisions accumulate by summation; normalizing a
//	zero vector leaves it zero. Neither is ever reported as an error.
package vectorize
