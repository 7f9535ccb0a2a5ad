package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphvec/core"
	"github.com/katalvlaran/graphvec/gen"
)

// TestPath_Shape checks counts, labels, and the degenerate n=1 case.
func TestPath_Shape(t *testing.T) {
	g, err := gen.Path(4, gen.WithNodeLabels("A", "B"))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())

	// labels cycle A,B,A,B
	for i, want := range []string{"A", "B", "A", "B"} {
		lbl, lerr := g.NodeLabel(core.NodeID(i))
		require.NoError(t, lerr)
		assert.Equal(t, want, lbl)
	}

	single, err := gen.Path(1)
	require.NoError(t, err)
	assert.Equal(t, 1, single.NodeCount())
	assert.Equal(t, 0, single.EdgeCount())

	_, err = gen.Path(0)
	assert.ErrorIs(t, err, gen.ErrTooFewNodes)
}

// TestCycle_Shape checks ring degree regularity and minimum size.
func TestCycle_Shape(t *testing.T) {
	g, err := gen.Cycle(5, gen.WithEdgeLabel("ring"))
	require.NoError(t, err)
	assert.Equal(t, 5, g.EdgeCount())
	for _, id := range g.Nodes() {
		d, derr := g.Degree(id)
		require.NoError(t, derr)
		assert.Equal(t, 2, d)
	}
	e, ok := g.Edge(0, 4)
	require.True(t, ok, "closing edge must exist")
	assert.Equal(t, "ring", e.Label)

	_, err = gen.Cycle(2)
	assert.ErrorIs(t, err, gen.ErrTooFewNodes)
}

// TestStar_Shape checks hub/spoke degrees.
func TestStar_Shape(t *testing.T) {
	g, err := gen.Star(6)
	require.NoError(t, err)
	hub, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 5, hub)
	for i := 1; i < 6; i++ {
		d, derr := g.Degree(core.NodeID(i))
		require.NoError(t, derr)
		assert.Equal(t, 1, d)
	}
}

// TestRandom_DeterministicPerSeed: same seed, same graph; different
// seed, (almost surely) different edge set.
func TestRandom_DeterministicPerSeed(t *testing.T) {
	g1, err := gen.Random(20, 0.3, gen.WithSeed(7))
	require.NoError(t, err)
	g2, err := gen.Random(20, 0.3, gen.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, g1.Edges(), g2.Edges())

	g3, err := gen.Random(20, 0.3, gen.WithSeed(8))
	require.NoError(t, err)
	assert.NotEqual(t, g1.Edges(), g3.Edges())

	_, err = gen.Random(5, 1.5)
	assert.ErrorIs(t, err, gen.ErrBadProbability)
}

// TestWeightFns covers constant/uniform weighting and option panics.
func TestWeightFns(t *testing.T) {
	g, err := gen.Path(3,
		gen.WithWeightFn(gen.ConstantWeightFn(2.5)),
		gen.WithNodeWeightFn(gen.ConstantWeightFn(0.5)),
	)
	require.NoError(t, err)
	e, ok := g.Edge(0, 1)
	require.True(t, ok)
	assert.Equal(t, 2.5, e.Weight)
	w, err := g.NodeWeight(0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, w)

	assert.Panics(t, func() { gen.ConstantWeightFn(-1) })
	assert.Panics(t, func() { gen.UniformWeightFn(2, 1) })
	assert.Panics(t, func() { gen.WithWeightFn(nil) })
	assert.Panics(t, func() { gen.WithNodeLabels() })
}

// TestUniformWeightFn_Range samples the uniform distribution bounds.
func TestUniformWeightFn_Range(t *testing.T) {
	g, err := gen.Random(30, 0.2,
		gen.WithSeed(3),
		gen.WithWeightFn(gen.UniformWeightFn(1, 4)),
	)
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.Less(t, e.Weight, 4.0)
	}
}
