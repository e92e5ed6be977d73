package maze

// Grid is the fixed width × height addressing of cells. It carries no mutable state.
type Grid struct {
	width  int
	height int
}

// NewGrid returns a grid of the given dimensions. Both must be at least 1.
func NewGrid(width, height int) (Grid, error) {
	if width < 1 || height < 1 {
		return Grid{}, ErrInvalidDimensions
	}
	return Grid{width: width, height: height}, nil
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g Grid) Height() int { return g.height }

// Size returns the number of cells.
func (g Grid) Size() int { return g.width * g.height }

// Origin returns the top-left cell.
func (g Grid) Origin() Cell { return Cell{X: 0, Y: 0} }

// Destination returns the bottom-right cell.
func (g Grid) Destination() Cell { return Cell{X: g.width - 1, Y: g.height - 1} }

// InBound checks if the cell lies inside the grid.
func (g Grid) InBound(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Neighbor returns the cell next to c in direction d, if it is inside the grid.
func (g Grid) Neighbor(c Cell, d Direction) (Cell, bool) {
	n := c.Step(d)
	return n, g.InBound(n)
}

// Neighbors returns the in-bound neighbors of c, in West, East, North, South order.
func (g Grid) Neighbors(c Cell) []Cell {
	result := make([]Cell, 0, len(Directions))
	for _, d := range Directions {
		if n, ok := g.Neighbor(c, d); ok {
			result = append(result, n)
		}
	}
	return result
}

// CandidateWalls returns every wall of the grid exactly once, canonical and
// ordered by cell then East before South.
func (g Grid) CandidateWalls() []Wall {
	walls := make([]Wall, 0, g.wallCount())
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			c := Cell{X: x, Y: y}
			if x < g.width-1 {
				walls = append(walls, NewWall(c, c.Step(East)))
			}
			if y < g.height-1 {
				walls = append(walls, NewWall(c, c.Step(South)))
			}
		}
	}
	return walls
}

// wallCount is the number of candidate walls.
func (g Grid) wallCount() int {
	return (g.width-1)*g.height + g.width*(g.height-1)
}

// index maps a cell to its row-major position.
func (g Grid) index(c Cell) int {
	return c.Y*g.width + c.X
}
