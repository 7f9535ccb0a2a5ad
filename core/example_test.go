package core_test

import (
	"fmt"

	"github.com/katalvlaran/graphvec/core"
)

// ExampleBuilder builds a tiny formaldehyde-like graph and inspects it.
func ExampleBuilder() {
	b := core.NewBuilder()
	c := b.AddNode("C")
	o := b.AddNode("O")
	h1 := b.AddNode("H")
	h2 := b.AddNode("H")
	_ = b.AddEdge(c, o, "double")
	_ = b.AddEdge(c, h1, "single")
	_ = b.AddEdge(c, h2, "single")

	g, err := b.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(g.NodeCount(), "nodes,", g.EdgeCount(), "edges")
	nbrs, _ := g.Neighbors(c)
	for _, n := range nbrs {
		lbl, _ := g.NodeLabel(n.ID)
		fmt.Printf("C -%s- %s\n", n.EdgeLabel, lbl)
	}
	// Output:
	// 4 nodes, 3 edges
	// C -double- O
	// C -single- H
	// C -single- H
}
