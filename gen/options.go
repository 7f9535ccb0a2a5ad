package gen

import "math/rand"

// defaults used when the caller supplies no labeling options.
const (
	defaultNodeLabel = "v"
	defaultEdgeLabel = "e"
	defaultSeed      = 1
)

// Option customizes generator behavior by mutating a config before
// construction begins.
type Option func(*config)

// config is the resolved generator configuration.
type config struct {
	nodeLabels []string // cycled over node index
	edgeLabel  string
	weightFn   WeightFn // edge weights; nil = core default (1.0)
	nodeWeight WeightFn // node weights; nil = core default (1.0)
	seed       int64
}

// newConfig resolves options over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		nodeLabels: []string{defaultNodeLabel},
		edgeLabel:  defaultEdgeLabel,
		seed:       defaultSeed,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// labelAt returns the node label for index i (labels cycle).
func (c config) labelAt(i int) string {
	return c.nodeLabels[i%len(c.nodeLabels)]
}

// WithNodeLabels sets the node label cycle: node i gets labels[i mod n].
// Panics on an empty list.
func WithNodeLabels(labels ...string) Option {
	if len(labels) == 0 {
		panic("gen: WithNodeLabels() needs at least one label")
	}
	return func(c *config) { c.nodeLabels = labels }
}

// WithEdgeLabel sets the label applied to every generated edge.
func WithEdgeLabel(label string) Option {
	return func(c *config) { c.edgeLabel = label }
}

// WithWeightFn sets the edge-weight distribution. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("gen: WithWeightFn(nil)")
	}
	return func(c *config) { c.weightFn = fn }
}

// WithNodeWeightFn sets the node-weight distribution. Panics on nil.
func WithNodeWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("gen: WithNodeWeightFn(nil)")
	}
	return func(c *config) { c.nodeWeight = fn }
}

// WithSeed freezes the RNG for stochastic generators (Random).
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// rng builds the seeded source used by stochastic paths.
func (c config) rng() *rand.Rand {
	return rand.New(rand.NewSource(c.seed))
}
