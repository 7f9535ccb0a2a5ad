// Package feature provides the numeric output types of graph
// vectorization: sparse, fixed-dimensionality feature vectors and
// row-ordered feature matrices.
//
// What
//
//   - Vector: a sparse vector over the index space [0, 2^bits), backed
//     by an ordered red-black tree so every iteration (Entries, Values,
//     Dot, Equal) is index-ascending and deterministic.
//   - Matrix: an ordered sequence of equal-dimension vectors with dense
//     (gonum mat.Dense) and Gram (pairwise dot-product, mat.SymDense)
//     exports, the kernel-approximation surface.
//
// Why sparse
//
//	A bitsize of 20 means 2^20 ≈ 1M dimensions, of which a typical
//	graph touches a few hundred. Only nonzero entries are stored; Dense()
//	materializes the full array and is meant for small bitsizes (tests,
//	Gram/Dense exports).
//
// Numerics
//
//   - Norm/Normalize use SIMD dot products (github.com/viterin/vek) over
//     the nonzero values.
//   - Normalizing a zero vector is a documented no-op, never an error.
//   - Hash-fold index collisions accumulate by summation (Add); they are
//     accepted noise of the fold, not errors.
//
// Misuse (wrong bits, out-of-range index) panics at the call site, the
// same constructor-validation discipline as the gen package's weight
// functions; dimension mismatches between two vectors are runtime errors
// (ErrDimMismatch).
package feature
