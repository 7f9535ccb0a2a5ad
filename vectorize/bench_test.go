package vectorize_test

import (
	"context"
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/graphvec/core"
	"github.com/katalvlaran/graphvec/vectorize"
)

// randomGraph builds a seeded sparse labeled graph with n nodes.
func randomGraph(n int, seed int64) *core.Graph {
	rng := rand.New(rand.NewSource(seed))
	labels := []string{"C", "N", "O", "S", "H"}
	b := core.NewBuilder()
	for i := 0; i < n; i++ {
		b.AddNode(labels[rng.Intn(len(labels))])
	}
	// spanning path keeps it connected, plus ~n/2 random chords
	seen := make(map[[2]core.NodeID]bool)
	for i := 1; i < n; i++ {
		_ = b.AddEdge(core.NodeID(i-1), core.NodeID(i), "s")
		seen[[2]core.NodeID{core.NodeID(i - 1), core.NodeID(i)}] = true
	}
	for k := 0; k < n/2; k++ {
		u := core.NodeID(rng.Intn(n))
		v := core.NodeID(rng.Intn(n))
		if u == v {
			continue
		}
		if u > v {
			u, v = v, u
		}
		if seen[[2]core.NodeID{u, v}] {
			continue
		}
		seen[[2]core.NodeID{u, v}] = true
		_ = b.AddEdge(u, v, "d")
	}
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}

// BenchmarkVectorize_Medium measures one ~100-node graph end to end.
func BenchmarkVectorize_Medium(b *testing.B) {
	g := randomGraph(100, 1)
	vz, _ := vectorize.New(vectorize.WithBits(16))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = vz.Vectorize(g)
	}
}

// BenchmarkVectorize_CachedSignatures isolates the win of the shared
// signature cache on repeated vectorization of the same graph.
func BenchmarkVectorize_CachedSignatures(b *testing.B) {
	g := randomGraph(100, 2)
	vz, _ := vectorize.New(vectorize.WithBits(16), vectorize.WithSignatureCache(4096))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = vz.Vectorize(g)
	}
}

// BenchmarkVectorizeMany_Parallel measures batch throughput on a pool.
func BenchmarkVectorizeMany_Parallel(b *testing.B) {
	graphs := make([]*core.Graph, 32)
	for i := range graphs {
		graphs[i] = randomGraph(50, int64(i))
	}
	vz, _ := vectorize.New(vectorize.WithBits(14))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := vz.VectorizeMany(context.Background(), graphs); err != nil {
			b.Fatal("batch " + strconv.Itoa(i) + ": " + err.Error())
		}
	}
}
