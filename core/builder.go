package core

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// nextGraphID is the process-wide identity counter for built graphs.
var nextGraphID uint64

// Builder accumulates nodes and edges and produces an immutable Graph.
// A Builder is single-use: after Build() succeeds it must be discarded.
// Builders are not safe for concurrent use; Graphs are.
type Builder struct {
	nodes []Node
	edges []Edge
	seen  map[[2]NodeID]struct{} // endpoint pairs already added (u < v)
	err   error                  // first construction error, surfaced by Build
}

// NewBuilder returns an empty Builder.
// Complexity: O(1)
func NewBuilder() *Builder {
	return &Builder{seen: make(map[[2]NodeID]struct{})}
}

// AddNode appends a node with the given label and returns its id.
// Ids are dense and zero-based, assigned in insertion order.
// Complexity: O(1) amortized.
func (b *Builder) AddNode(label string, opts ...NodeOption) NodeID {
	n := Node{
		ID:     NodeID(len(b.nodes)),
		Label:  label,
		Weight: DefaultWeight,
	}
	for _, opt := range opts {
		opt(&n)
	}
	b.nodes = append(b.nodes, n)

	return n.ID
}

// AddEdge records an undirected edge between u and v. Endpoint order is
// irrelevant; the edge is normalized to u < v. The first violation
// (unknown endpoint, self-loop, duplicate edge) is returned immediately
// and also remembered, so Build fails even if the caller ignores it.
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(u, v NodeID, label string, opts ...EdgeOption) error {
	record := func(err error) error {
		if b.err == nil {
			b.err = err
		}
		return err
	}

	if u < 0 || int(u) >= len(b.nodes) {
		return record(fmt.Errorf("%w: %w: edge endpoint %d", ErrInvalidGraph, ErrUnknownNode, u))
	}
	if v < 0 || int(v) >= len(b.nodes) {
		return record(fmt.Errorf("%w: %w: edge endpoint %d", ErrInvalidGraph, ErrUnknownNode, v))
	}
	if u == v {
		return record(fmt.Errorf("%w: %w: node %d", ErrInvalidGraph, ErrSelfLoop, u))
	}
	if u > v {
		u, v = v, u
	}
	key := [2]NodeID{u, v}
	if _, dup := b.seen[key]; dup {
		return record(fmt.Errorf("%w: %w: (%d,%d)", ErrInvalidGraph, ErrDuplicateEdge, u, v))
	}
	b.seen[key] = struct{}{}

	e := Edge{U: u, V: v, Label: label, Weight: DefaultWeight}
	for _, opt := range opts {
		opt(&e)
	}
	b.edges = append(b.edges, e)

	return nil
}

// Build freezes the accumulated nodes and edges into an immutable Graph.
// Returns the first construction error recorded by AddEdge, if any.
// Complexity: O(V + E log E) (adjacency sort).
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}

	g := &Graph{
		id:    atomic.AddUint64(&nextGraphID, 1),
		nodes: append([]Node(nil), b.nodes...),
		edges: append([]Edge(nil), b.edges...),
		adj:   make([][]Neighbor, len(b.nodes)),
	}
	for _, e := range g.edges {
		g.adj[e.U] = append(g.adj[e.U], Neighbor{ID: e.V, EdgeLabel: e.Label, EdgeWeight: e.Weight})
		g.adj[e.V] = append(g.adj[e.V], Neighbor{ID: e.U, EdgeLabel: e.Label, EdgeWeight: e.Weight})
	}
	// Sorted adjacency is the determinism anchor for every traversal.
	for _, nbrs := range g.adj {
		sort.Slice(nbrs, func(i, j int) bool { return nbrs[i].ID < nbrs[j].ID })
	}
	sort.Slice(g.edges, func(i, j int) bool {
		if g.edges[i].U != g.edges[j].U {
			return g.edges[i].U < g.edges[j].U
		}
		return g.edges[i].V < g.edges[j].V
	})

	return g, nil
}
