package maze

import (
	"slices"

	"github.com/zyedidia/generic/queue"
)

// ShortestPath returns a shortest path from the origin to the destination,
// or an empty path if the destination is unreachable.
func (m *Maze) ShortestPath() []Cell {
	return m.PathBetween(m.Origin(), m.Destination())
}

// PathBetween runs a breadth-first search from 'from' and rebuilds the path
// to 'to' through the predecessor map. The path includes both ends.
func (m *Maze) PathBetween(from, to Cell) []Cell {
	if !m.InBound(from) || !m.InBound(to) {
		return []Cell{}
	}

	prevs := make(map[Cell]Cell)
	frontier := queue.New[Cell]()
	frontier.Enqueue(from)

	for !frontier.Empty() {
		cell := frontier.Dequeue()
		if cell == to {
			return backtrack(prevs, from, to)
		}

		for _, n := range m.Neighbors(cell) {
			if !m.IsWallOpen(cell, n) {
				continue
			}
			// First discovery wins; the origin never gets a parent.
			if _, seen := prevs[n]; seen || n == from {
				continue
			}
			prevs[n] = cell
			frontier.Enqueue(n)
		}
	}

	return []Cell{}
}

// backtrack walks predecessors from to back to from and reverses the result.
func backtrack(prevs map[Cell]Cell, from, to Cell) []Cell {
	path := []Cell{to}
	for cur := to; cur != from; {
		prev, ok := prevs[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)
	return path
}
