package maze

import "fmt"

// Cell is a single position in the maze grid.
type Cell struct {
	X int `json:"x"` // Column index of the cell
	Y int `json:"y"` // Row index of the cell
}

// String returns the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Less orders cells lexicographically on (x, y).
func (c Cell) Less(other Cell) bool {
	return c.X < other.X || (c.X == other.X && c.Y < other.Y)
}

// Step returns the cell one step away in direction d. The result may be out of bounds.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// IsAdjacent reports whether c and other differ by exactly one in exactly one axis.
func (c Cell) IsAdjacent(other Cell) bool {
	dx, dy := abs(c.X-other.X), abs(c.Y-other.Y)
	return dx+dy == 1
}

// Wall is the boundary between two grid-adjacent cells.
// A always precedes B, so a wall and its mirror compare equal.
type Wall struct {
	A Cell `json:"from"`
	B Cell `json:"to"`
}

// NewWall returns the canonical wall between c1 and c2.
func NewWall(c1, c2 Cell) Wall {
	if c2.Less(c1) {
		return Wall{A: c2, B: c1}
	}
	return Wall{A: c1, B: c2}
}

// String returns the wall as "(x1,y1)-(x2,y2)".
func (w Wall) String() string {
	return w.A.String() + "-" + w.B.String()
}

// Direction is one of the four axis directions.
type Direction int

// Direction constants
const (
	West Direction = iota
	East
	North
	South
)

// Directions lists the axis directions in sampling order.
var Directions = []Direction{West, East, North, South}

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case West:
		return "West"
	case East:
		return "East"
	case North:
		return "North"
	case South:
		return "South"
	default:
		return "Unknown"
	}
}

// Delta returns the x and y offsets for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case West:
		return -1, 0
	case East:
		return 1, 0
	case North:
		return 0, -1
	case South:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case West:
		return East
	case East:
		return West
	case North:
		return South
	case South:
		return North
	default:
		return d
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
