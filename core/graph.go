package core

import (
	"fmt"
	"sort"
)

// Graph is an immutable labeled, attributed, undirected graph.
// All read methods are safe for concurrent use without locking.
type Graph struct {
	id    uint64
	nodes []Node
	edges []Edge       // sorted by (U, V)
	adj   [][]Neighbor // adj[u] sorted by Neighbor.ID
}

// ID returns the process-unique identity assigned at Build time.
// It identifies the instance, not the structure: two structurally equal
// graphs have different IDs. Cache keys should include it.
func (g *Graph) ID() uint64 { return g.id }

// NodeCount returns the number of nodes.
// Complexity: O(1)
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
// Complexity: O(1)
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasNode reports whether id is a valid node id in this graph.
// Complexity: O(1)
func (g *Graph) HasNode(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Node returns the node with the given id.
// Complexity: O(1)
func (g *Graph) Node(id NodeID) (Node, error) {
	if !g.HasNode(id) {
		return Node{}, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	return g.nodes[id], nil
}

// NodeLabel returns the label of the node with the given id.
// Complexity: O(1)
func (g *Graph) NodeLabel(id NodeID) (string, error) {
	n, err := g.Node(id)
	if err != nil {
		return "", err
	}
	return n.Label, nil
}

// NodeWeight returns the weight of the node with the given id.
// Complexity: O(1)
func (g *Graph) NodeWeight(id NodeID) (float64, error) {
	n, err := g.Node(id)
	if err != nil {
		return 0, err
	}
	return n.Weight, nil
}

// Nodes returns all node ids in ascending order.
// The returned slice is fresh; callers may modify it.
// Complexity: O(V)
func (g *Graph) Nodes() []NodeID {
	ids := make([]NodeID, len(g.nodes))
	for i := range g.nodes {
		ids[i] = NodeID(i)
	}
	return ids
}

// Edges returns all edges sorted by (U, V).
// The returned slice is fresh; callers may modify it.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Neighbors returns the adjacency list of id, sorted by neighbor id.
// The returned slice is shared and must not be modified.
// Complexity: O(1)
func (g *Graph) Neighbors(id NodeID) ([]Neighbor, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	return g.adj[id], nil
}

// Degree returns the number of edges incident to id.
// Complexity: O(1)
func (g *Graph) Degree(id NodeID) (int, error) {
	if !g.HasNode(id) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	return len(g.adj[id]), nil
}

// Edge returns the edge between u and v (in either endpoint order)
// and whether it exists. Unknown ids simply report false.
// Complexity: O(log deg(u))
func (g *Graph) Edge(u, v NodeID) (Edge, bool) {
	if !g.HasNode(u) || !g.HasNode(v) || u == v {
		return Edge{}, false
	}
	nbrs := g.adj[u]
	i := sort.Search(len(nbrs), func(i int) bool { return nbrs[i].ID >= v })
	if i == len(nbrs) || nbrs[i].ID != v {
		return Edge{}, false
	}
	lo, hi := u, v
	if lo > hi {
		lo, hi = hi, lo
	}
	return Edge{U: lo, V: hi, Label: nbrs[i].EdgeLabel, Weight: nbrs[i].EdgeWeight}, true
}

// Permute rebuilds the graph under a node renumbering: node id i in the
// receiver becomes perm[i] in the result. perm must be a bijection on
// [0, NodeCount). Labels, weights, and topology are preserved.
//
// Mutation is deliberately absent from Graph; Permute is the canonical
// example of the rebuild-on-change discipline.
// Complexity: O(V + E log E)
func (g *Graph) Permute(perm []NodeID) (*Graph, error) {
	if len(perm) != len(g.nodes) {
		return nil, fmt.Errorf("%w: permutation length %d, want %d",
			ErrInvalidGraph, len(perm), len(g.nodes))
	}
	inverse := make([]NodeID, len(perm))
	taken := make([]bool, len(perm))
	for from, to := range perm {
		if to < 0 || int(to) >= len(perm) || taken[to] {
			return nil, fmt.Errorf("%w: not a permutation at index %d", ErrInvalidGraph, from)
		}
		taken[to] = true
		inverse[to] = NodeID(from)
	}

	b := NewBuilder()
	// Insert nodes in target-id order so that dense assignment matches perm.
	for to := range inverse {
		src := g.nodes[inverse[to]]
		b.AddNode(src.Label, WithNodeWeight(src.Weight))
	}
	for _, e := range g.edges {
		if err := b.AddEdge(perm[e.U], perm[e.V], e.Label, WithEdgeWeight(e.Weight)); err != nil {
			return nil, err
		}
	}

	return b.Build()
}
