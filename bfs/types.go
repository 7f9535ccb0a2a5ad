// Package bfs options, errors, and result types.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/graphvec/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// NoDepthLimit disables the radius bound (explore the whole component).
const NoDepthLimit = -1

// Option configures BFS behavior via functional arguments. An invalid
// Option (e.g. MaxDepth < -1) is recorded internally and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth bounds expansion: nodes at depth > MaxDepth are never
	// enqueued. NoDepthLimit (-1) disables the bound; 0 visits only
	// the root.
	MaxDepth int

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id core.NodeID, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no depth limit,
// and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: NoDepthLimit,
		OnVisit:  func(core.NodeID, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth bounds the search radius:
//
//	d >= 0:          explore up to and including depth d
//	d == NoDepthLimit: explicit no limit
//	d < -1:          invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < NoDepthLimit {
			o.err = fmt.Errorf("%w: MaxDepth %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback run at each visit; returning an error
// from the callback stops the BFS.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	// Order lists visited nodes in visit sequence (root first).
	Order []core.NodeID

	// Dist maps each reached node to its hop distance from the root.
	// Nodes beyond MaxDepth or unreachable are absent.
	Dist map[core.NodeID]int

	// Parent maps each reached node (except the root) to its
	// predecessor in the BFS tree.
	Parent map[core.NodeID]core.NodeID
}
