package maze

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

var generatorDims = [][2]int{{1, 1}, {1, 6}, {6, 1}, {2, 2}, {3, 5}, {8, 8}, {12, 7}}

// trackerOptions runs each property under both reachability trackers.
var trackerOptions = map[string][]Option{
	"flood fill":    nil,
	"disjoint sets": {WithDisjointSets()},
}

func TestOrderedEdgeGenerator(t *testing.T) {
	for name, opts := range trackerOptions {
		for _, dims := range generatorDims {
			for seed := uint64(1); seed <= 5; seed++ {
				t.Run(fmt.Sprintf("%s/%dx%d/seed%d", name, dims[0], dims[1], seed), func(t *testing.T) {
					m, err := New(dims[0], dims[1])
					require.NoError(t, err)

					opened, err := NewOrderedEdgeGenerator(NewSource(seed), opts...).Generate(ctx, m)
					require.NoError(t, err)

					assert.True(t, m.DestinationReachable())
					assert.Equal(t, opened, m.OpenWallCount())
					assert.LessOrEqual(t, opened, len(m.CandidateWalls()))
					assertValidPath(t, m, m.ShortestPath(), m.Origin(), m.Destination())
					assertSymmetric(t, m)
				})
			}
		}
	}
}

func TestOpenUntilReachable(t *testing.T) {
	for name, opts := range trackerOptions {
		t.Run(name+"/stops at first success", func(t *testing.T) {
			m, err := New(2, 2)
			require.NoError(t, err)

			candidates := []Wall{
				NewWall(Cell{0, 0}, Cell{1, 0}),
				NewWall(Cell{1, 0}, Cell{1, 1}),
				NewWall(Cell{0, 0}, Cell{0, 1}),
				NewWall(Cell{0, 1}, Cell{1, 1}),
			}
			opened, err := OpenUntilReachable(ctx, m, candidates, opts...)
			require.NoError(t, err)

			assert.Equal(t, 2, opened)
			assert.False(t, m.IsWallOpen(Cell{0, 0}, Cell{0, 1}))
			assert.False(t, m.IsWallOpen(Cell{0, 1}, Cell{1, 1}))
			assert.Equal(t, []Cell{{0, 0}, {1, 0}, {1, 1}}, m.ShortestPath())
		})

		t.Run(name+"/corridor needs every wall", func(t *testing.T) {
			m, err := New(7, 1)
			require.NoError(t, err)

			candidates := m.CandidateWalls()
			ShuffleWalls(NewSource(9), candidates)
			opened, err := OpenUntilReachable(ctx, m, candidates, opts...)
			require.NoError(t, err)
			assert.Equal(t, 6, opened)
		})

		t.Run(name+"/already reachable opens nothing", func(t *testing.T) {
			m := mustMaze(t, 2, 1, NewWall(Cell{0, 0}, Cell{1, 0}))
			opened, err := OpenUntilReachable(ctx, m, m.CandidateWalls(), opts...)
			require.NoError(t, err)
			assert.Equal(t, 0, opened)
		})

		t.Run(name+"/out of bounds candidate is rejected", func(t *testing.T) {
			m, err := New(3, 2)
			require.NoError(t, err)

			candidates := []Wall{
				NewWall(Cell{0, 0}, Cell{1, 0}),
				NewWall(Cell{2, 0}, Cell{3, 0}),
				NewWall(Cell{1, 0}, Cell{1, 1}),
			}
			opened, err := OpenUntilReachable(ctx, m, candidates, opts...)
			assert.ErrorIs(t, err, ErrCellOutOfBounds)
			assert.Equal(t, 1, opened)
			assert.Equal(t, []Wall{NewWall(Cell{0, 0}, Cell{1, 0})}, m.OpenWalls())
			assert.False(t, m.DestinationReachable())
		})

		t.Run(name+"/non-adjacent candidate is rejected", func(t *testing.T) {
			m, err := New(3, 2)
			require.NoError(t, err)

			candidates := []Wall{NewWall(Cell{0, 0}, Cell{2, 1})}
			opened, err := OpenUntilReachable(ctx, m, candidates, opts...)
			assert.ErrorIs(t, err, ErrNotAdjacent)
			assert.Equal(t, 0, opened)
			assert.Zero(t, m.OpenWallCount())
		})
	}
}

func TestGeneratorsStopWhenContextIsDone(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	for name, opts := range trackerOptions {
		for _, s := range Strategies {
			t.Run(name+"/"+s.String(), func(t *testing.T) {
				m, err := New(40, 40)
				require.NoError(t, err)
				g, err := NewGenerator(s, NewSource(1), opts...)
				require.NoError(t, err)

				opened, err := g.Generate(canceled, m)
				assert.ErrorIs(t, err, context.Canceled)
				assert.Zero(t, opened)
				assert.Zero(t, m.OpenWallCount())
			})
		}
	}

	t.Run("expired deadline", func(t *testing.T) {
		expired, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()

		m, err := New(200, 200)
		require.NoError(t, err)
		_, err = NewRandomWalkGenerator(NewSource(1)).Generate(expired, m)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestOrderedEdgeNeverExceedsExhaustiveOpening(t *testing.T) {
	full, err := New(10, 10)
	require.NoError(t, err)
	for _, w := range full.CandidateWalls() {
		_, err := full.OpenWall(w.A, w.B)
		require.NoError(t, err)
	}

	for seed := uint64(0); seed < 10; seed++ {
		m, err := New(10, 10)
		require.NoError(t, err)
		_, err = NewOrderedEdgeGenerator(NewSource(seed)).Generate(ctx, m)
		require.NoError(t, err)
		assert.LessOrEqual(t, m.OpenWallCount(), full.OpenWallCount())
	}
}

func TestRandomWalkGenerator(t *testing.T) {
	for name, opts := range trackerOptions {
		for _, dims := range generatorDims {
			for seed := uint64(1); seed <= 3; seed++ {
				t.Run(fmt.Sprintf("%s/%dx%d/seed%d", name, dims[0], dims[1], seed), func(t *testing.T) {
					m, err := New(dims[0], dims[1])
					require.NoError(t, err)

					opened, err := NewRandomWalkGenerator(NewSource(seed), opts...).Generate(ctx, m)
					require.NoError(t, err)

					assert.True(t, m.FullyConnected())
					assert.Equal(t, opened, m.OpenWallCount())
					assert.GreaterOrEqual(t, opened, m.Size()-1)
					assertSymmetric(t, m)
				})
			}
		}
	}

	t.Run("every pair of cells is joined", func(t *testing.T) {
		m, err := New(4, 3)
		require.NoError(t, err)
		_, err = NewRandomWalkGenerator(NewSource(42)).Generate(ctx, m)
		require.NoError(t, err)

		for x1 := 0; x1 < m.Width(); x1++ {
			for y1 := 0; y1 < m.Height(); y1++ {
				for x2 := 0; x2 < m.Width(); x2++ {
					for y2 := 0; y2 < m.Height(); y2++ {
						from, to := Cell{x1, y1}, Cell{x2, y2}
						assertValidPath(t, m, m.PathBetween(from, to), from, to)
					}
				}
			}
		}
	})

	t.Run("attempt cap", func(t *testing.T) {
		m, err := New(5, 5)
		require.NoError(t, err)

		opened, err := NewRandomWalkGenerator(NewSource(1), WithMaxAttempts(1)).Generate(ctx, m)
		assert.ErrorIs(t, err, ErrSamplingExhausted)
		assert.LessOrEqual(t, opened, 1)
		assert.False(t, m.FullyConnected())
	})
}

func TestWilsonGenerator(t *testing.T) {
	for _, dims := range generatorDims {
		for seed := uint64(1); seed <= 3; seed++ {
			t.Run(fmt.Sprintf("%dx%d/seed%d", dims[0], dims[1], seed), func(t *testing.T) {
				m, err := New(dims[0], dims[1])
				require.NoError(t, err)

				opened, err := NewWilsonGenerator(NewSource(seed)).Generate(ctx, m)
				require.NoError(t, err)

				assert.True(t, m.FullyConnected())
				assert.Equal(t, m.Size()-1, opened)
				assert.Equal(t, m.Size()-1, m.OpenWallCount())
			})
		}
	}
}

func TestGeneratorsAreDeterministicPerSeed(t *testing.T) {
	for _, s := range Strategies {
		t.Run(s.String(), func(t *testing.T) {
			build := func() *Maze {
				m, err := New(9, 6)
				require.NoError(t, err)
				g, err := NewGenerator(s, NewSource(77))
				require.NoError(t, err)
				_, err = g.Generate(ctx, m)
				require.NoError(t, err)
				return m
			}

			a, b := build(), build()
			assert.Equal(t, a.OpenWalls(), b.OpenWalls())
			assert.Equal(t, a.ShortestPath(), b.ShortestPath())
		})
	}
}

func TestStrategies(t *testing.T) {
	t.Run("names round trip", func(t *testing.T) {
		for _, s := range Strategies {
			parsed, err := ParseStrategy(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("parsing is lenient on case and spaces", func(t *testing.T) {
		s, err := ParseStrategy("  Random-Walk ")
		require.NoError(t, err)
		assert.Equal(t, RandomWalk, s)
	})

	t.Run("unknown names are rejected", func(t *testing.T) {
		_, err := ParseStrategy("prim")
		assert.ErrorIs(t, err, ErrUnknownStrategy)

		_, err = NewGenerator(Strategy(99), NewSource(1))
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("generator reports its strategy", func(t *testing.T) {
		for _, s := range Strategies {
			g, err := NewGenerator(s, NewSource(1))
			require.NoError(t, err)
			assert.Equal(t, s, g.Strategy())
		}
	})
}

// assertSymmetric checks that every open wall is open from both sides.
func assertSymmetric(t *testing.T, m *Maze) {
	t.Helper()
	for _, w := range m.OpenWalls() {
		assert.True(t, m.IsWallOpen(w.A, w.B))
		assert.True(t, m.IsWallOpen(w.B, w.A))
	}
}
