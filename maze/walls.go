package maze

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// passage is an ordered cell pair; WallSet stores both orientations of every open wall.
type passage struct {
	from Cell
	to   Cell
}

// WallSet is the set of open walls. It only grows.
type WallSet struct {
	open mapset.Set[passage]
}

// NewWallSet returns an empty wall set.
func NewWallSet() *WallSet {
	return &WallSet{open: mapset.New[passage]()}
}

// Open records the wall between c1 and c2 as passable in both directions.
// It returns false if the wall was already open.
func (s *WallSet) Open(c1, c2 Cell) bool {
	if s.open.Has(passage{from: c1, to: c2}) {
		return false
	}
	s.open.Put(passage{from: c1, to: c2})
	s.open.Put(passage{from: c2, to: c1})
	return true
}

// IsOpen reports whether the wall between c1 and c2 is passable.
func (s *WallSet) IsOpen(c1, c2 Cell) bool {
	return s.open.Has(passage{from: c1, to: c2})
}

// Len returns the number of open walls.
func (s *WallSet) Len() int {
	return s.open.Size() / 2
}

// Walls returns the open walls in canonical form, sorted.
func (s *WallSet) Walls() []Wall {
	walls := make([]Wall, 0, s.Len())
	s.open.Each(func(p passage) {
		if p.from.Less(p.to) {
			walls = append(walls, Wall{A: p.from, B: p.to})
		}
	})
	slices.SortFunc(walls, compareWalls)
	return walls
}

func compareWalls(a, b Wall) int {
	switch {
	case a.A.Less(b.A):
		return -1
	case b.A.Less(a.A):
		return 1
	case a.B.Less(b.B):
		return -1
	case b.B.Less(a.B):
		return 1
	default:
		return 0
	}
}
