package gen

import (
	"fmt"
	"math/rand"
)

// DefaultWeight is the weight produced when no WeightFn is configured.
const DefaultWeight float64 = 1

// WeightFn produces a node or edge weight given an optional *rand.Rand
// source. It must be deterministic for a given RNG seed; panics in
// constructors indicate programmer error in configuration.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
// Complexity: O(1) time, O(1) space.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("gen: ConstantWeightFn: value must be ≥ 0, got %g", value))
	}
	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min. If rng is nil, yields DefaultWeight
// to keep deterministic fallback behavior.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("gen: UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultWeight
		}
		if max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// resolveWeight applies fn if set, else DefaultWeight.
func resolveWeight(fn WeightFn, rng *rand.Rand) float64 {
	if fn == nil {
		return DefaultWeight
	}
	return fn(rng)
}
