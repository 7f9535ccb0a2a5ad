package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphvec/bfs"
	"github.com/katalvlaran/graphvec/core"
)

// ExampleDistances shows radius-bounded hop distances on a small ring
// with one pendant node.
func ExampleDistances() {
	//   0 - 1
	//   |   |
	//   3 - 2 - 4
	b := core.NewBuilder()
	ids := make([]core.NodeID, 5)
	for i := range ids {
		ids[i] = b.AddNode("A")
	}
	_ = b.AddEdge(ids[0], ids[1], "e")
	_ = b.AddEdge(ids[1], ids[2], "e")
	_ = b.AddEdge(ids[2], ids[3], "e")
	_ = b.AddEdge(ids[3], ids[0], "e")
	_ = b.AddEdge(ids[2], ids[4], "e")
	g, _ := b.Build()

	dist, _ := bfs.Distances(g, ids[0], 2)
	for id := core.NodeID(0); int(id) < g.NodeCount(); id++ {
		if d, ok := dist[id]; ok {
			fmt.Printf("node %d at distance %d\n", id, d)
		}
	}
	// Output:
	// node 0 at distance 0
	// node 1 at distance 1
	// node 2 at distance 2
	// node 3 at distance 1
}

// ExampleBFS_withOnVisit counts nodes per BFS layer.
func ExampleBFS_withOnVisit() {
	b := core.NewBuilder()
	root := b.AddNode("R")
	for i := 0; i < 3; i++ {
		leaf := b.AddNode("L")
		_ = b.AddEdge(root, leaf, "e")
	}
	g, _ := b.Build()

	perLayer := map[int]int{}
	_, _ = bfs.BFS(g, root, bfs.WithOnVisit(func(_ core.NodeID, depth int) error {
		perLayer[depth]++
		return nil
	}))
	fmt.Println(perLayer[0], perLayer[1])
	// Output:
	// 1 3
}
