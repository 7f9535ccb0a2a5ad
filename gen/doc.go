// Package gen builds deterministic labeled graphs for tests, examples,
// and benchmarks: paths, cycles, stars, and seeded random graphs.
//
// Every generator is deterministic for a fixed (parameters, options,
// seed) triple, so golden vectors and signature fixtures stay stable.
// Generators validate their parameters and return sentinel errors;
// option constructors validate and panic on meaningless inputs
// (programmer error, caught at wiring time).
//
// Usage
//
//	g, err := gen.Cycle(6,
//	    gen.WithNodeLabels("C", "N"),
//	    gen.WithEdgeLabel("aromatic"),
//	    gen.WithWeightFn(gen.ConstantWeightFn(2)),
//	)
package gen
