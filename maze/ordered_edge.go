package maze

import (
	"context"
	"fmt"
)

// OrderedEdgeGenerator opens shuffled candidate walls until the destination
// becomes reachable. Cells off the solution may stay isolated.
type OrderedEdgeGenerator struct {
	src  Source
	opts []Option
}

// NewOrderedEdgeGenerator returns an ordered-edge generator drawing its shuffle from src.
func NewOrderedEdgeGenerator(src Source, opts ...Option) *OrderedEdgeGenerator {
	return &OrderedEdgeGenerator{src: src, opts: opts}
}

// Strategy returns OrderedEdge.
func (g *OrderedEdgeGenerator) Strategy() Strategy { return OrderedEdge }

// Generate shuffles every candidate wall of m and opens them in order until the destination is reachable.
func (g *OrderedEdgeGenerator) Generate(ctx context.Context, m *Maze) (int, error) {
	candidates := m.CandidateWalls()
	ShuffleWalls(g.src, candidates)
	return OpenUntilReachable(ctx, m, candidates, g.opts...)
}

// OpenUntilReachable opens candidates in the given order. Before each opening
// it checks whether the destination is already reachable from the origin and
// stops if so. It returns the number of walls opened.
//
// A candidate with an out-of-bounds or non-adjacent cell stops the run with
// ErrCellOutOfBounds or ErrNotAdjacent before that candidate is opened.
func OpenUntilReachable(ctx context.Context, m *Maze, candidates []Wall, opts ...Option) (int, error) {
	t := newOptions(opts).tracker(m)
	origin, dest := m.Origin(), m.Destination()

	opened := 0
	for _, w := range candidates {
		if err := ctx.Err(); err != nil {
			return opened, err
		}
		if t.connected(origin, dest) {
			break
		}
		ok, err := m.OpenWall(w.A, w.B)
		if err != nil {
			return opened, fmt.Errorf("candidate %s: %w", w, err)
		}
		if ok {
			t.opened(w.A, w.B)
			opened++
		}
	}
	return opened, nil
}
