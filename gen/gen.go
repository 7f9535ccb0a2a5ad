package gen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/graphvec/core"
)

// Sentinel errors for generator parameters.
var (
	// ErrTooFewNodes indicates a node count below the topology's minimum.
	ErrTooFewNodes = errors.New("gen: too few nodes")

	// ErrBadProbability indicates an edge probability outside [0,1].
	ErrBadProbability = errors.New("gen: probability outside [0,1]")
)

// minimum node counts per topology.
const (
	minPathNodes  = 1
	minCycleNodes = 3
	minStarNodes  = 2
)

// Path builds the path graph P_n: nodes 0..n-1, edges (i-1,i).
// Complexity: O(n)
func Path(n int, opts ...Option) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%w: Path needs n ≥ %d, got %d", ErrTooFewNodes, minPathNodes, n)
	}
	cfg := newConfig(opts...)
	rng := cfg.rng()

	b := core.NewBuilder()
	addNodes(b, n, cfg, rng)
	for i := 1; i < n; i++ {
		if err := addEdge(b, core.NodeID(i-1), core.NodeID(i), cfg, rng); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// Cycle builds the cycle graph C_n: a path plus the closing edge.
// Complexity: O(n)
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%w: Cycle needs n ≥ %d, got %d", ErrTooFewNodes, minCycleNodes, n)
	}
	cfg := newConfig(opts...)
	rng := cfg.rng()

	b := core.NewBuilder()
	addNodes(b, n, cfg, rng)
	for i := 0; i < n; i++ {
		if err := addEdge(b, core.NodeID(i), core.NodeID((i+1)%n), cfg, rng); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// Star builds the star graph S_n: node 0 is the hub, nodes 1..n-1 spokes.
// Complexity: O(n)
func Star(n int, opts ...Option) (*core.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%w: Star needs n ≥ %d, got %d", ErrTooFewNodes, minStarNodes, n)
	}
	cfg := newConfig(opts...)
	rng := cfg.rng()

	b := core.NewBuilder()
	addNodes(b, n, cfg, rng)
	for i := 1; i < n; i++ {
		if err := addEdge(b, 0, core.NodeID(i), cfg, rng); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// Random builds a seeded Erdős–Rényi-style graph over a connecting
// spanning path: each non-path node pair gains an edge with probability
// p. Deterministic for a fixed seed.
// Complexity: O(n²)
func Random(n int, p float64, opts ...Option) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%w: Random needs n ≥ %d, got %d", ErrTooFewNodes, minPathNodes, n)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: %g", ErrBadProbability, p)
	}
	cfg := newConfig(opts...)
	rng := cfg.rng()

	b := core.NewBuilder()
	addNodes(b, n, cfg, rng)
	for i := 1; i < n; i++ {
		if err := addEdge(b, core.NodeID(i-1), core.NodeID(i), cfg, rng); err != nil {
			return nil, err
		}
	}
	for u := 0; u < n; u++ {
		for v := u + 2; v < n; v++ { // path edges (u,u+1) already present
			if rng.Float64() < p {
				if err := addEdge(b, core.NodeID(u), core.NodeID(v), cfg, rng); err != nil {
					return nil, err
				}
			}
		}
	}
	return b.Build()
}

// addNodes inserts n labeled, weighted nodes in index order.
func addNodes(b *core.Builder, n int, cfg config, rng *rand.Rand) {
	for i := 0; i < n; i++ {
		b.AddNode(cfg.labelAt(i), core.WithNodeWeight(resolveWeight(cfg.nodeWeight, rng)))
	}
}

// addEdge inserts one labeled, weighted edge.
func addEdge(b *core.Builder, u, v core.NodeID, cfg config, rng *rand.Rand) error {
	return b.AddEdge(u, v, cfg.edgeLabel, core.WithEdgeWeight(resolveWeight(cfg.weightFn, rng)))
}
