package neighborhood

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/graphvec/bfs"
	"github.com/katalvlaran/graphvec/core"
)

// Sentinel errors for neighborhood extraction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("neighborhood: graph is nil")

	// ErrNegativeRadius is returned for a radius below zero.
	ErrNegativeRadius = errors.New("neighborhood: negative radius")
)

// Member is one node of a rooted neighborhood: its id in the source
// graph, its exact hop distance from the root, and copies of its label
// and weight.
type Member struct {
	ID     core.NodeID
	Dist   int
	Label  string
	Weight float64
}

// Edge is one induced edge of a rooted neighborhood. U < V always holds;
// both endpoints are source-graph node ids and are guaranteed members.
type Edge struct {
	U, V   core.NodeID
	Label  string
	Weight float64
}

// Neighborhood is the induced subgraph of all nodes within Radius hops
// of Root. Members are sorted by id, Edges by (U, V).
type Neighborhood struct {
	Root    core.NodeID
	Radius  int
	Members []Member
	Edges   []Edge
}

// Size returns the number of member nodes.
func (nb *Neighborhood) Size() int { return len(nb.Members) }

// Extract builds the rooted neighborhood of root at the given radius.
// It is a pure function of (g, root, radius): no caching, no side
// effects, deterministic output ordering.
// Complexity: O(V_r + E_r) over the nodes/edges inside the radius,
// plus O(V_r log V_r) for the member sort.
func Extract(g *core.Graph, root core.NodeID, radius int) (*Neighborhood, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeRadius, radius)
	}

	dist, err := bfs.Distances(g, root, radius)
	if err != nil {
		return nil, err
	}

	nb := &Neighborhood{
		Root:    root,
		Radius:  radius,
		Members: make([]Member, 0, len(dist)),
	}
	for id, d := range dist {
		label, _ := g.NodeLabel(id)
		weight, _ := g.NodeWeight(id)
		nb.Members = append(nb.Members, Member{ID: id, Dist: d, Label: label, Weight: weight})
	}
	sort.Slice(nb.Members, func(i, j int) bool { return nb.Members[i].ID < nb.Members[j].ID })

	// Induced edges: both endpoints inside the radius. Members are sorted
	// and adjacency is sorted, so the edge list comes out (U,V)-ordered
	// without a second sort.
	for _, m := range nb.Members {
		nbrs, nerr := g.Neighbors(m.ID)
		if nerr != nil {
			return nil, nerr
		}
		for _, nbr := range nbrs {
			if nbr.ID <= m.ID {
				continue // count each undirected edge once, from its low endpoint
			}
			if _, in := dist[nbr.ID]; !in {
				continue
			}
			nb.Edges = append(nb.Edges, Edge{
				U:      m.ID,
				V:      nbr.ID,
				Label:  nbr.EdgeLabel,
				Weight: nbr.EdgeWeight,
			})
		}
	}

	return nb, nil
}
