package maze

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"
)

// flood walks open walls depth-first from origin. It stops early when target
// is popped and returns the number of visited cells and whether target was found.
// A nil target exhausts the frontier.
func (m *Maze) flood(origin Cell, target *Cell) (int, bool) {
	if !m.InBound(origin) {
		return 0, false
	}

	visited := mapset.New[Cell]()
	frontier := stack.New[Cell]()
	frontier.Push(origin)

	for frontier.Size() > 0 {
		cell := frontier.Pop()
		if target != nil && cell == *target {
			return visited.Size(), true
		}
		if visited.Has(cell) {
			continue
		}
		visited.Put(cell)

		for _, n := range m.Neighbors(cell) {
			if !visited.Has(n) && m.IsWallOpen(cell, n) {
				frontier.Push(n)
			}
		}
	}

	return visited.Size(), false
}

// IsReachable reports whether target can be reached from origin through open walls.
func (m *Maze) IsReachable(origin, target Cell) bool {
	if !m.InBound(target) {
		return false
	}
	_, found := m.flood(origin, &target)
	return found
}

// IsFullyConnected reports whether every cell can be reached from origin.
func (m *Maze) IsFullyConnected(origin Cell) bool {
	visited, _ := m.flood(origin, nil)
	return visited == m.Size()
}

// DestinationReachable reports whether the destination can be reached from the origin.
func (m *Maze) DestinationReachable() bool {
	return m.IsReachable(m.Origin(), m.Destination())
}

// FullyConnected reports whether every cell can be reached from the origin.
func (m *Maze) FullyConnected() bool {
	return m.IsFullyConnected(m.Origin())
}
