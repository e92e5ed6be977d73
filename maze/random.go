package maze

import "math/rand/v2"

// Source is the randomness generators draw from. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewSource returns a deterministic PCG-backed source for the seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ShuffleWalls permutes walls in place.
func ShuffleWalls(src Source, walls []Wall) {
	src.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})
}

// randomCell picks a uniformly random cell of the grid.
func randomCell(src Source, g Grid) Cell {
	return Cell{X: src.IntN(g.width), Y: src.IntN(g.height)}
}
