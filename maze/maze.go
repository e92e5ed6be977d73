/*
Package maze provides a rectangular maze of cells separated by walls, the
generators that open those walls, and the queries run on the result.

A Maze starts with every wall closed. Exactly one generator opens walls:
OrderedEdgeGenerator stops as soon as the destination is reachable from the
origin, RandomWalkGenerator keeps going until every cell is reachable, and
WilsonGenerator carves a spanning tree. Afterwards the maze is read-only and
answers openness, reachability and shortest-path queries.
*/
package maze

import "errors"

var (
	ErrInvalidDimensions = errors.New("maze dimensions must be positive")
	ErrCellOutOfBounds   = errors.New("cell is out of the maze")
	ErrNotAdjacent       = errors.New("cells are not adjacent")
	ErrUnknownStrategy   = errors.New("unknown generation strategy")
	ErrSamplingExhausted = errors.New("random sampling attempts exhausted")
)

// Maze is a grid together with the set of walls opened on it.
type Maze struct {
	Grid
	walls *WallSet
}

// New creates a maze of the given dimensions with every wall closed.
func New(width, height int) (*Maze, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	return &Maze{Grid: grid, walls: NewWallSet()}, nil
}

// OpenWall opens the wall between two adjacent in-bound cells.
// It returns false if the wall was already open.
func (m *Maze) OpenWall(c1, c2 Cell) (bool, error) {
	if !m.InBound(c1) || !m.InBound(c2) {
		return false, ErrCellOutOfBounds
	}
	if !c1.IsAdjacent(c2) {
		return false, ErrNotAdjacent
	}
	return m.walls.Open(c1, c2), nil
}

// IsWallOpen reports whether one can pass between c1 and c2.
func (m *Maze) IsWallOpen(c1, c2 Cell) bool {
	return m.walls.IsOpen(c1, c2)
}

// OpenWalls returns the open walls, sorted.
func (m *Maze) OpenWalls() []Wall {
	return m.walls.Walls()
}

// OpenWallCount returns the number of open walls.
func (m *Maze) OpenWallCount() int {
	return m.walls.Len()
}

// open is the unchecked variant used by generators, whose candidates are valid by construction.
func (m *Maze) open(c1, c2 Cell) bool {
	return m.walls.Open(c1, c2)
}
