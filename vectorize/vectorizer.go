package vectorize

import (
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/graphvec/bfs"
	"github.com/katalvlaran/graphvec/core"
	"github.com/katalvlaran/graphvec/feature"
	"github.com/katalvlaran/graphvec/signature"
)

// Vectorizer converts graphs into fixed-dimensionality feature vectors.
// Construct with New; a Vectorizer is immutable and safe for concurrent
// use by multiple goroutines.
type Vectorizer struct {
	opts  Options
	cache *lru.Cache[sigKey, signature.Signature] // nil when disabled
}

// New validates the configuration and returns a ready Vectorizer.
// All configuration errors surface here, before any graph is processed.
func New(opts ...Option) (*Vectorizer, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	vz := &Vectorizer{opts: o}
	if o.SignatureCacheSize > 0 {
		cache, err := lru.New[sigKey, signature.Signature](o.SignatureCacheSize)
		if err != nil {
			return nil, fmt.Errorf("%w: signature cache: %v", ErrOptionViolation, err)
		}
		vz.cache = cache
	}

	return vz, nil
}

// Options returns a copy of the effective configuration.
func (vz *Vectorizer) Options() Options {
	o := vz.opts
	o.err = nil
	return o
}

// Vectorize maps one graph to its feature vector: for every unordered
// node pair within MaxDistance hops and every radius ≤ MaxRadius, one
// masked pair-signature feature is accumulated. Deterministic: identical
// graph structure yields a bit-identical vector.
// Complexity: O(V·(V_D + E_D) + P·R) for P pairs inside the distance
// bound and R = MaxRadius+1 radii, plus signature extraction per
// (node, radius) once.
func (vz *Vectorizer) Vectorize(g *core.Graph) (*feature.Vector, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	vec := feature.NewVector(vz.opts.Bits)
	sigs := newSigSource(g, vz.cache)

	for _, u := range g.Nodes() {
		if err := vz.accumulateRoot(g, u, sigs, vec, true); err != nil {
			return nil, err
		}
	}

	if vz.opts.Normalize {
		vec.Normalize()
	}

	return vec, nil
}

// VectorizeNodes maps one graph to per-node feature vectors: slot i
// holds the features of every pair node i participates in (each pair
// contributes to both endpoints' vectors). Useful for node-level
// annotation and motif scoring on top of the same feature space.
func (vz *Vectorizer) VectorizeNodes(g *core.Graph) ([]*feature.Vector, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	sigs := newSigSource(g, vz.cache)
	out := make([]*feature.Vector, g.NodeCount())
	for i, u := range g.Nodes() {
		vec := feature.NewVector(vz.opts.Bits)
		if err := vz.accumulateRoot(g, u, sigs, vec, false); err != nil {
			return nil, err
		}
		if vz.opts.Normalize {
			vec.Normalize()
		}
		out[i] = vec
	}

	return out, nil
}

// accumulateRoot adds the contributions of all pairs rooted at u into
// vec. With dedup set, only partners w ≥ u are considered, so iterating
// every root counts each unordered pair exactly once (graph-level
// vectorization); without dedup all partners are taken (node-level
// vectorization, where each endpoint owns its own copy of the pair).
func (vz *Vectorizer) accumulateRoot(g *core.Graph, u core.NodeID, sigs *sigSource, vec *feature.Vector, dedup bool) error {
	res, err := bfs.BFS(g, u, bfs.WithMaxDepth(vz.opts.MaxDistance))
	if err != nil {
		return err
	}

	// Deterministic partner order: ascending node id.
	partners := make([]core.NodeID, 0, len(res.Dist))
	for w := range res.Dist {
		if dedup && w < u {
			continue
		}
		partners = append(partners, w)
	}
	sort.Slice(partners, func(i, j int) bool { return partners[i] < partners[j] })

	var pathW map[core.NodeID]float64
	if vz.opts.EdgeWeight != nil {
		pw, perr := vz.pathWeights(g, res)
		if perr != nil {
			return perr
		}
		pathW = pw
	}

	uw := vz.nodeWeight(g, u)
	for _, w := range partners {
		base := uw * vz.nodeWeight(g, w)
		if pathW != nil {
			base *= pathW[w]
		}
		dist := res.Dist[w]
		for r := 0; r <= vz.opts.MaxRadius; r++ {
			su, serr := sigs.get(u, r)
			if serr != nil {
				return serr
			}
			sw, serr := sigs.get(w, r)
			if serr != nil {
				return serr
			}
			vec.Add(fold(pairFeature(su, sw, r, dist), vz.opts.Bits), base)
		}
	}

	return nil
}

// nodeWeight applies the configured node weighting strategy.
func (vz *Vectorizer) nodeWeight(g *core.Graph, id core.NodeID) float64 {
	if vz.opts.NodeWeight != nil {
		return vz.opts.NodeWeight(g, id)
	}
	w, err := g.NodeWeight(id)
	if err != nil {
		return core.DefaultWeight
	}
	return w
}

// pathWeights aggregates the configured edge weights over every shortest
// path from the traversal root: weight(root) = 1, and a node at depth d
// sums weight(p) × fn(edge p-w) over all its neighbors p at depth d-1.
// Aggregating over the whole shortest-path DAG keeps the result a
// function of structure and weights alone; which parent BFS happened to
// reach a node through first never matters.
// Complexity: O(V_D + E_D) inside the distance bound.
func (vz *Vectorizer) pathWeights(g *core.Graph, res *bfs.Result) (map[core.NodeID]float64, error) {
	out := make(map[core.NodeID]float64, len(res.Dist))
	for _, w := range res.Order { // visit order is non-decreasing depth
		d := res.Dist[w]
		if d == 0 {
			out[w] = 1
			continue
		}
		nbrs, err := g.Neighbors(w)
		if err != nil {
			return nil, err
		}
		sum := 0.0
		for _, nbr := range nbrs {
			if pd, ok := res.Dist[nbr.ID]; !ok || pd != d-1 {
				continue
			}
			lo, hi := nbr.ID, w
			if lo > hi {
				lo, hi = hi, lo
			}
			e := core.Edge{U: lo, V: hi, Label: nbr.EdgeLabel, Weight: nbr.EdgeWeight}
			sum += out[nbr.ID] * vz.opts.EdgeWeight(g, e)
		}
		out[w] = sum
	}
	return out, nil
}
