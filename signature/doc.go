// Package signature computes canonical, renumbering-invariant
// fingerprints of rooted neighborhood subgraphs.
//
// What
//
//	Encode maps a neighborhood.Neighborhood to a 64-bit Signature such
//	that two neighborhoods that are isomorphic under a root- and
//	label-preserving bijection always produce the same value, while
//	structurally or label-distinct neighborhoods collide only with the
//	probability inherent to a 64-bit hash.
//
// How
//
//	Iterative color refinement (1-dimensional Weisfeiler-Lehman),
//	seeded with each node's (label, distance-from-root) pair and run for
//	exactly radius+1 rounds:
//
//	  color₀(v)   = h(label(v) ‖ dist(v))
//	  colorₖ₊₁(v) = h(colorₖ(v) ‖ sorted multiset of
//	                  (colorₖ(u), h(edgeLabel(v,u))) over neighbors u)
//
//	Multiset entries are ordered by (neighbor color, edge-label hash),
//	numeric ascending, a total and deterministic order. The signature is
//	h over the lexicographically sorted final colors mixed with the
//	radius, so the result is independent of the neighborhood's internal
//	node numbering. The round bound guarantees termination; it is a
//	truncation, not a convergence test.
//
//	h is xxhash64 (github.com/cespare/xxhash/v2) throughout: fixed,
//	seedless, stable across processes and platforms.
//
// Contract
//
//   - Deterministic and side-effect-free.
//   - Isomorphism-invariant (MUST); distinctness is probabilistic
//     (collision rate is a tunable of hash width, not a correctness
//     contract).
//   - The radius is part of a rooted neighborhood's identity: two
//     extractions that induce the same nodes and edges but were taken at
//     different radii (an isolated node at radius 0 vs 1, say) encode to
//     different signatures. Signatures of different radii live in
//     disjoint feature families and must never be conflated by a hash
//     accident.
package signature
