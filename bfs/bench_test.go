package bfs_test

import (
	"testing"

	"github.com/katalvlaran/graphvec/bfs"
	"github.com/katalvlaran/graphvec/core"
)

// BenchmarkBFS_Chain measures a full traversal of a linear chain.
func BenchmarkBFS_Chain(b *testing.B) {
	const n = 10000
	bl := core.NewBuilder()
	prev := bl.AddNode("A")
	for i := 0; i < n; i++ {
		cur := bl.AddNode("A")
		_ = bl.AddEdge(prev, cur, "e")
		prev = cur
	}
	g, _ := bl.Build()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkDistances_Bounded measures radius-2 oracles on a binary tree,
// the dominant workload of neighborhood extraction.
func BenchmarkDistances_Bounded(b *testing.B) {
	const depth = 12 // 2^12 - 1 nodes
	n := (1 << depth) - 1
	bl := core.NewBuilder()
	for i := 0; i < n; i++ {
		bl.AddNode("A")
	}
	for i := 0; 2*i+2 < n; i++ {
		_ = bl.AddEdge(core.NodeID(i), core.NodeID(2*i+1), "e")
		_ = bl.AddEdge(core.NodeID(i), core.NodeID(2*i+2), "e")
	}
	g, _ := bl.Build()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Distances(g, core.NodeID(i%n), 2)
	}
}
