package vectorize

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphvec/core"
	"github.com/katalvlaran/graphvec/feature"
)

// VectorizeMany vectorizes a batch of graphs on a bounded worker pool
// (WithParallelism) and returns one matrix row per input graph, row
// order matching input order. Graphs are independent computations: the
// only shared state is the read-only Vectorizer and, when enabled, the
// thread-safe signature cache.
//
// The first per-graph error cancels the group and is returned; ctx
// cancellation aborts remaining work the same way. Callers wanting
// skip-and-continue semantics should vectorize graph by graph.
func (vz *Vectorizer) VectorizeMany(ctx context.Context, graphs []*core.Graph) (*feature.Matrix, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	rows := make([]*feature.Vector, len(graphs))
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(vz.opts.Parallelism)

	for i, g := range graphs {
		i, g := i, g
		grp.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			vec, err := vz.Vectorize(g)
			if err != nil {
				return err
			}
			rows[i] = vec
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return feature.NewMatrix(rows...)
}
