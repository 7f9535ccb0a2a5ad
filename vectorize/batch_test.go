package vectorize_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphvec/core"
	"github.com/katalvlaran/graphvec/vectorize"
)

// ringOf builds a labeled ring of n nodes (n ≥ 3), labels cycling A/B/C.
func ringOf(t *testing.T, n int) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	labels := []string{"A", "B", "C"}
	ids := make([]core.NodeID, n)
	for i := 0; i < n; i++ {
		ids[i] = b.AddNode(labels[i%len(labels)])
	}
	for i := 0; i < n; i++ {
		require.NoError(t, b.AddEdge(ids[i], ids[(i+1)%n], "e"))
	}
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

// TestVectorizeMany_OrderPreserved: row i equals Vectorize(graphs[i]),
// whatever the parallelism.
func TestVectorizeMany_OrderPreserved(t *testing.T) {
	graphs := make([]*core.Graph, 0, 8)
	for n := 3; n < 11; n++ {
		graphs = append(graphs, ringOf(t, n))
	}

	for _, par := range []int{1, 4} {
		vz, err := vectorize.New(vectorize.WithBits(12), vectorize.WithParallelism(par))
		require.NoError(t, err)

		m, err := vz.VectorizeMany(context.Background(), graphs)
		require.NoError(t, err)
		require.Equal(t, len(graphs), m.Rows())

		for i, g := range graphs {
			want, verr := vz.Vectorize(g)
			require.NoError(t, verr)
			assert.True(t, want.Equal(m.Row(i)), "parallelism %d, row %d", par, i)
		}
	}
}

// TestVectorizeMany_EmptyBatch: zero graphs yield an empty-matrix error
// surface only on export, not on vectorization itself.
func TestVectorizeMany_EmptyBatch(t *testing.T) {
	vz, err := vectorize.New(vectorize.WithBits(8))
	require.NoError(t, err)
	m, err := vz.VectorizeMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
}

// TestVectorizeMany_FirstErrorWins: a nil graph in the batch fails the
// whole call.
func TestVectorizeMany_FirstErrorWins(t *testing.T) {
	vz, err := vectorize.New(vectorize.WithBits(8))
	require.NoError(t, err)
	graphs := []*core.Graph{ringOf(t, 4), nil, ringOf(t, 5)}
	_, err = vz.VectorizeMany(context.Background(), graphs)
	assert.ErrorIs(t, err, vectorize.ErrGraphNil)
}

// TestVectorizeMany_Cancellation: a cancelled context aborts the batch.
func TestVectorizeMany_Cancellation(t *testing.T) {
	vz, err := vectorize.New(vectorize.WithBits(8), vectorize.WithParallelism(1))
	require.NoError(t, err)

	graphs := make([]*core.Graph, 64)
	for i := range graphs {
		graphs[i] = ringOf(t, 12)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = vz.VectorizeMany(ctx, graphs)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestVectorizeMany_GramRoundTrip: batch output feeds the kernel matrix.
func TestVectorizeMany_GramRoundTrip(t *testing.T) {
	vz, err := vectorize.New(vectorize.WithBits(12), vectorize.WithNormalization(true))
	require.NoError(t, err)

	// same ring twice plus a different one
	graphs := []*core.Graph{ringOf(t, 6), ringOf(t, 6), ringOf(t, 9)}
	m, err := vz.VectorizeMany(context.Background(), graphs)
	require.NoError(t, err)

	gram, err := m.Gram()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, gram.At(0, 0), 1e-12, "normalized self-similarity")
	assert.InDelta(t, 1.0, gram.At(0, 1), 1e-12, "identical graphs, kernel 1")
	assert.Less(t, gram.At(0, 2), 1.0, "different rings must not be fully similar")
	assert.Equal(t, gram.At(0, 2), gram.At(2, 0))
}

// TestVectorizeMany_SharedCache: one cached vectorizer across a batch of
// repeated graphs still matches the uncached output.
func TestVectorizeMany_SharedCache(t *testing.T) {
	g := ringOf(t, 8)
	graphs := []*core.Graph{g, g, g, g}

	plain, err := vectorize.New(vectorize.WithBits(12))
	require.NoError(t, err)
	cached, err := vectorize.New(vectorize.WithBits(12), vectorize.WithSignatureCache(128), vectorize.WithParallelism(4))
	require.NoError(t, err)

	want, err := plain.VectorizeMany(context.Background(), graphs)
	require.NoError(t, err)
	got, err := cached.VectorizeMany(context.Background(), graphs)
	require.NoError(t, err)

	for i := 0; i < want.Rows(); i++ {
		assert.True(t, want.Row(i).Equal(got.Row(i)), fmt.Sprintf("row %d", i))
	}
}
