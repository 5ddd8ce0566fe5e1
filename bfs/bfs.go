package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/campusroute/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem[K comparable] struct {
	id    K
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K comparable] struct {
	graph   *core.Graph[K]
	opts    Options[K]
	ctx     context.Context
	queue   []queueItem[K]
	visited map[K]bool
	res     *Result[K]
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil, core.ErrUnknownNode or ErrOptionViolation for invalid
// input, ctx.Err() on cancellation, or a wrapped OnVisit error.
func BFS[K comparable](g *core.Graph[K], start K, opts ...Option[K]) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.ContainsNode(start) {
		return nil, fmt.Errorf("bfs: start: %w: %v", core.ErrUnknownNode, start)
	}

	n := g.NodeCount()
	w := &walker[K]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[K], 0, n),
		visited: make(map[K]bool, n),
		res: &Result[K]{
			Start:  start,
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}

	w.enqueue(start, 0)
	if err := w.loop(); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// enqueue marks id visited at depth d and adds it to the queue.
func (w *walker[K]) enqueue(id K, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem[K]{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[K]) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each unseen successor.
func (w *walker[K]) enqueueNeighbors(item queueItem[K]) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}

	return w.graph.VisitNeighbors(item.id, func(e core.Edge[K]) bool {
		if w.visited[e.To] || !w.opts.FilterNeighbor(item.id, e.To) {
			return true
		}
		w.res.Parent[e.To] = item.id
		w.enqueue(e.To, next)

		return true
	})
}
