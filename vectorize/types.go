// Package vectorize options, errors, and weighting strategies.
package vectorize

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/graphvec/core"
	"github.com/katalvlaran/graphvec/feature"
)

// Sentinel errors for vectorizer construction and execution.
var (
	// ErrOptionViolation is returned by New when a configuration value
	// is out of range.
	ErrOptionViolation = errors.New("vectorize: invalid option supplied")

	// ErrGraphNil is returned when a nil graph is vectorized.
	ErrGraphNil = errors.New("vectorize: graph is nil")
)

// Default configuration values.
const (
	// DefaultMaxRadius is the largest neighborhood radius considered.
	DefaultMaxRadius = 2

	// DefaultMaxDistance is the largest pairwise node distance considered.
	DefaultMaxDistance = 4

	// DefaultBits is the log2 of the output vector dimensionality.
	DefaultBits = 20
)

// NodeWeightFn maps a node to its contribution weight.
// The default reads the weight stored on the node (1.0 unless set).
type NodeWeightFn func(g *core.Graph, id core.NodeID) float64

// EdgeWeightFn maps an edge to its contribution weight; pair
// contributions multiply it along one shortest path between the pair.
// The default treats every edge as 1.0 (no path attenuation).
type EdgeWeightFn func(g *core.Graph, e core.Edge) float64

// Option configures a Vectorizer via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the recognized vectorizer configuration.
type Options struct {
	// MaxRadius is the largest neighborhood radius R; radii 0..R are used.
	MaxRadius int

	// MaxDistance is the largest pairwise hop distance D; pairs at
	// distances 0..D are used (0 = self-pairs only).
	MaxDistance int

	// Bits is the log2 of the vector dimensionality (length 2^Bits).
	Bits uint

	// Normalize enables L2 normalization of each output vector.
	Normalize bool

	// Parallelism bounds the VectorizeMany worker pool.
	Parallelism int

	// NodeWeight and EdgeWeight override uniform weighting.
	NodeWeight NodeWeightFn
	EdgeWeight EdgeWeightFn

	// SignatureCacheSize, when > 0, enables the cross-call LRU signature
	// cache keyed by (graph identity, root, radius).
	SignatureCacheSize int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the documented defaults: R=2, D=4, 2^20
// dimensions, no normalization, NumCPU parallelism, uniform weights,
// no cache.
func DefaultOptions() Options {
	return Options{
		MaxRadius:   DefaultMaxRadius,
		MaxDistance: DefaultMaxDistance,
		Bits:        DefaultBits,
		Parallelism: runtime.NumCPU(),
	}
}

// WithMaxRadius sets the largest neighborhood radius (must be ≥ 0).
func WithMaxRadius(r int) Option {
	return func(o *Options) {
		if r < 0 {
			o.err = fmt.Errorf("%w: MaxRadius %d", ErrOptionViolation, r)
			return
		}
		o.MaxRadius = r
	}
}

// WithMaxDistance sets the largest pairwise distance (must be ≥ 0).
func WithMaxDistance(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDistance %d", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithBits sets the log2 vector dimensionality (must be in [1,63]).
func WithBits(b uint) Option {
	return func(o *Options) {
		if b < 1 || b > feature.MaxBits {
			o.err = fmt.Errorf("%w: Bits %d outside [1,%d]", ErrOptionViolation, b, feature.MaxBits)
			return
		}
		o.Bits = b
	}
}

// WithNormalization toggles per-vector L2 normalization.
func WithNormalization(on bool) Option {
	return func(o *Options) { o.Normalize = on }
}

// WithParallelism bounds the VectorizeMany worker pool (must be ≥ 1).
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Parallelism %d", ErrOptionViolation, n)
			return
		}
		o.Parallelism = n
	}
}

// WithNodeWeightFn overrides the default node weighting strategy.
func WithNodeWeightFn(fn NodeWeightFn) Option {
	return func(o *Options) {
		if fn != nil {
			o.NodeWeight = fn
		}
	}
}

// WithEdgeWeightFn overrides the default edge weighting strategy.
func WithEdgeWeightFn(fn EdgeWeightFn) Option {
	return func(o *Options) {
		if fn != nil {
			o.EdgeWeight = fn
		}
	}
}

// WithSignatureCache enables an LRU cache of canonical signatures shared
// across Vectorize calls, keyed by (graph identity, root, radius).
// capacity must be ≥ 1.
func WithSignatureCache(capacity int) Option {
	return func(o *Options) {
		if capacity < 1 {
			o.err = fmt.Errorf("%w: SignatureCacheSize %d", ErrOptionViolation, capacity)
			return
		}
		o.SignatureCacheSize = capacity
	}
}
