// Package core types: NodeID, Node, Edge, Neighbor, sentinel errors,
// and the functional options accepted by the Builder.
package core

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrInvalidGraph is the umbrella error wrapped by every construction
	// failure, so callers can match the whole family with errors.Is.
	ErrInvalidGraph = errors.New("core: invalid graph")

	// ErrUnknownNode indicates a node id that does not exist in the graph.
	ErrUnknownNode = errors.New("core: unknown node id")

	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge between the same endpoints.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// DefaultWeight is the node and edge weight used when none is supplied.
const DefaultWeight float64 = 1.0

// NodeID identifies a node within one Graph: dense, zero-based,
// assigned by the Builder in insertion order.
type NodeID int

// Node is a labeled, weighted graph node.
type Node struct {
	// ID is the dense zero-based identifier within its Graph.
	ID NodeID

	// Label is the discrete node token (atom type, residue code, ...).
	Label string

	// Weight is the node's importance scalar; DefaultWeight if unset.
	Weight float64
}

// Edge is an unordered, labeled, weighted connection between two nodes.
// U < V always holds after construction.
type Edge struct {
	// U and V are the endpoint ids, normalized so that U < V.
	U, V NodeID

	// Label is the discrete edge token (bond order, contact type, ...).
	Label string

	// Weight is the edge's importance scalar; DefaultWeight if unset.
	Weight float64
}

// Neighbor is one adjacency entry as returned by Graph.Neighbors:
// the node on the far side of an incident edge plus that edge's
// label and weight.
type Neighbor struct {
	ID         NodeID
	EdgeLabel  string
	EdgeWeight float64
}

// NodeOption configures a node at AddNode time.
type NodeOption func(*Node)

// WithNodeWeight overrides the default node weight.
func WithNodeWeight(w float64) NodeOption {
	return func(n *Node) { n.Weight = w }
}

// EdgeOption configures an edge at AddEdge time.
type EdgeOption func(*Edge)

// WithEdgeWeight overrides the default edge weight.
func WithEdgeWeight(w float64) EdgeOption {
	return func(e *Edge) { e.Weight = w }
}
