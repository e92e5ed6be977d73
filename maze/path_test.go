package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortestPath(t *testing.T) {
	t.Run("two by two with an L-shaped passage", func(t *testing.T) {
		m := mustMaze(t, 2, 2,
			NewWall(Cell{0, 0}, Cell{1, 0}),
			NewWall(Cell{1, 0}, Cell{1, 1}),
		)
		assert.Equal(t, []Cell{{0, 0}, {1, 0}, {1, 1}}, m.ShortestPath())
	})

	t.Run("single cell", func(t *testing.T) {
		m := mustMaze(t, 1, 1)
		assert.Equal(t, []Cell{{0, 0}}, m.ShortestPath())
	})

	t.Run("unreachable destination yields an empty path", func(t *testing.T) {
		m := mustMaze(t, 3, 2)
		path := m.ShortestPath()
		assert.NotNil(t, path)
		assert.Empty(t, path)
	})

	t.Run("out of bounds endpoints yield an empty path", func(t *testing.T) {
		m := mustMaze(t, 2, 2)
		assert.Empty(t, m.PathBetween(Cell{0, 0}, Cell{2, 2}))
	})

	t.Run("prefers the shorter of two routes", func(t *testing.T) {
		// Route along the top and right edge is 4 steps; the detour through
		// the bottom-left takes 6.
		m := mustMaze(t, 3, 3,
			NewWall(Cell{0, 0}, Cell{1, 0}),
			NewWall(Cell{1, 0}, Cell{2, 0}),
			NewWall(Cell{2, 0}, Cell{2, 1}),
			NewWall(Cell{2, 1}, Cell{2, 2}),
			NewWall(Cell{0, 0}, Cell{0, 1}),
			NewWall(Cell{0, 1}, Cell{0, 2}),
			NewWall(Cell{0, 2}, Cell{1, 2}),
			NewWall(Cell{1, 2}, Cell{1, 1}),
			NewWall(Cell{1, 1}, Cell{2, 1}),
		)
		path := m.ShortestPath()
		assert.Len(t, path, 5)
		assertValidPath(t, m, path, m.Origin(), m.Destination())
	})

	t.Run("repeated calls are identical", func(t *testing.T) {
		m, err := New(6, 6)
		require.NoError(t, err)
		_, err = NewRandomWalkGenerator(NewSource(11)).Generate(ctx, m)
		require.NoError(t, err)

		first := m.ShortestPath()
		assert.Equal(t, first, m.ShortestPath())
		assert.Equal(t, first, m.ShortestPath())
	})
}

func TestIsWallOpenIsStable(t *testing.T) {
	for _, s := range Strategies {
		t.Run(s.String(), func(t *testing.T) {
			m, err := New(7, 5)
			require.NoError(t, err)
			g, err := NewGenerator(s, NewSource(21))
			require.NoError(t, err)
			_, err = g.Generate(ctx, m)
			require.NoError(t, err)

			for x := 0; x < m.Width(); x++ {
				for y := 0; y < m.Height(); y++ {
					cell := Cell{x, y}
					for _, d := range Directions {
						next := cell.Step(d)
						first := m.IsWallOpen(cell, next)
						for range 3 {
							assert.Equal(t, first, m.IsWallOpen(cell, next), "%s %s", cell, d)
						}
						assert.Equal(t, first, m.IsWallOpen(next, cell), "%s %s", cell, d)
					}
				}
			}
		})
	}
}

func TestPathLengthMatchesBFSDistance(t *testing.T) {
	m, err := New(9, 7)
	require.NoError(t, err)
	_, err = NewRandomWalkGenerator(NewSource(3)).Generate(ctx, m)
	require.NoError(t, err)

	dist := bfsDistances(m, m.Origin())
	path := m.ShortestPath()
	assertValidPath(t, m, path, m.Origin(), m.Destination())
	assert.Len(t, path, dist[m.Destination()]+1)
}

// assertValidPath checks endpoints, adjacency and openness of every step.
func assertValidPath(t *testing.T, m *Maze, path []Cell, from, to Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, from, path[0])
	assert.Equal(t, to, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.True(t, path[i-1].IsAdjacent(path[i]), "step %d: %s -> %s", i, path[i-1], path[i])
		assert.True(t, m.IsWallOpen(path[i-1], path[i]), "step %d: wall %s closed", i, NewWall(path[i-1], path[i]))
	}
}

// bfsDistances computes hop counts from origin with a plain slice queue.
func bfsDistances(m *Maze, origin Cell) map[Cell]int {
	dist := map[Cell]int{origin: 0}
	q := []Cell{origin}
	for len(q) > 0 {
		c := q[0]
		q = q[1:]
		for _, n := range m.Neighbors(c) {
			if _, ok := dist[n]; ok || !m.IsWallOpen(c, n) {
				continue
			}
			dist[n] = dist[c] + 1
			q = append(q, n)
		}
	}
	return dist
}
