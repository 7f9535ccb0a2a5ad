package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphvec/core"
)

// queueItem pairs a node id with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state for one traversal.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[core.NodeID]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from root, applying any
// number of functional Options. See the package documentation for the
// error surface.
func BFS(g *core.Graph, root core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(root) {
		return nil, fmt.Errorf("%w: root %d", core.ErrUnknownNode, root)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, 8),
		visited: make(map[core.NodeID]bool, 8),
		res: &Result{
			Order:  make([]core.NodeID, 0, 8),
			Dist:   make(map[core.NodeID]int, 8),
			Parent: make(map[core.NodeID]core.NodeID, 8),
		},
	}

	w.enqueue(root, 0)
	return w.res, w.loop()
}

// Distances is a convenience wrapper returning only the distance map of a
// radius-bounded BFS: every reachable node within maxDepth hops of root.
// maxDepth = NoDepthLimit explores the whole component.
func Distances(g *core.Graph, root core.NodeID, maxDepth int) (map[core.NodeID]int, error) {
	res, err := BFS(g, root, WithMaxDepth(maxDepth))
	if err != nil {
		return nil, err
	}
	return res.Dist, nil
}

// enqueue marks id visited at depth d and adds it to the queue.
func (w *walker) enqueue(id core.NodeID, d int) {
	w.visited[id] = true
	w.res.Dist[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}
	return nil
}

// expand enqueues each unseen neighbor of item, honoring MaxDepth.
// Expansion stops at the radius frontier: a node at depth MaxDepth is
// visited but its neighbors beyond the bound are never enqueued.
func (w *walker) expand(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth != NoDepthLimit && nextDepth > w.opts.MaxDepth {
		return nil
	}
	nbrs, err := w.graph.Neighbors(item.id)
	if err != nil {
		return err
	}
	for _, nbr := range nbrs {
		if w.visited[nbr.ID] {
			continue
		}
		w.res.Parent[nbr.ID] = item.id
		w.enqueue(nbr.ID, nextDepth)
	}
	return nil
}
