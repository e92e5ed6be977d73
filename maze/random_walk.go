package maze

import "context"

// RandomWalkGenerator opens walls picked by sampling a random cell and a
// random direction until every cell is reachable from the origin.
type RandomWalkGenerator struct {
	src  Source
	opts options
}

// NewRandomWalkGenerator returns a random-walk generator sampling from src.
func NewRandomWalkGenerator(src Source, opts ...Option) *RandomWalkGenerator {
	return &RandomWalkGenerator{src: src, opts: newOptions(opts)}
}

// Strategy returns RandomWalk.
func (g *RandomWalkGenerator) Strategy() Strategy { return RandomWalk }

// Generate opens walls until m is fully connected. A sample that lands
// outside the grid or on an open wall is drawn again.
func (g *RandomWalkGenerator) Generate(ctx context.Context, m *Maze) (int, error) {
	t := g.opts.tracker(m)

	opened, attempts := 0, 0
	for !t.spanning() {
		if err := ctx.Err(); err != nil {
			return opened, err
		}
		for {
			if g.opts.maxAttempts > 0 && attempts >= g.opts.maxAttempts {
				return opened, ErrSamplingExhausted
			}
			attempts++

			cell := randomCell(g.src, m.Grid)
			next, ok := m.Neighbor(cell, Directions[g.src.IntN(len(Directions))])
			if ok && m.open(cell, next) {
				t.opened(cell, next)
				opened++
				break
			}
		}
	}
	return opened, nil
}
