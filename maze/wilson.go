package maze

import (
	"context"

	"github.com/zyedidia/generic/mapset"
)

// WilsonGenerator carves a uniform spanning tree with loop-erased random walks.
// Every cell ends up reachable through exactly one path.
type WilsonGenerator struct {
	src Source
}

// NewWilsonGenerator returns a Wilson generator sampling from src.
func NewWilsonGenerator(src Source) *WilsonGenerator {
	return &WilsonGenerator{src: src}
}

// Strategy returns Wilson.
func (g *WilsonGenerator) Strategy() Strategy { return Wilson }

// Generate grows the tree from a random cell until it covers the whole grid.
func (g *WilsonGenerator) Generate(ctx context.Context, m *Maze) (int, error) {
	inTree := mapset.New[Cell]()
	inTree.Put(randomCell(g.src, m.Grid))

	opened := 0
	for inTree.Size() < m.Size() {
		if err := ctx.Err(); err != nil {
			return opened, err
		}
		start := g.randomOutsideCell(m, inTree)
		exits := g.randomWalk(m, start, inTree)

		// Retrace the walk; overwritten exits have already erased its loops.
		for cell := start; !inTree.Has(cell); {
			next := exits[cell]
			if m.open(cell, next) {
				opened++
			}
			inTree.Put(cell)
			cell = next
		}
	}
	return opened, nil
}

// randomOutsideCell selects a random cell that is not yet part of the tree.
func (g *WilsonGenerator) randomOutsideCell(m *Maze, inTree mapset.Set[Cell]) Cell {
	for {
		cell := randomCell(g.src, m.Grid)
		if !inTree.Has(cell) {
			return cell
		}
	}
}

// randomWalk wanders from start until it hits the tree, recording the last exit taken from each cell.
func (g *WilsonGenerator) randomWalk(m *Maze, start Cell, inTree mapset.Set[Cell]) map[Cell]Cell {
	exits := make(map[Cell]Cell)
	cell := start
	for !inTree.Has(cell) {
		neighbors := m.Neighbors(cell)
		next := neighbors[g.src.IntN(len(neighbors))]
		exits[cell] = next
		cell = next
	}
	return exits
}
