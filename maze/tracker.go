package maze

import "github.com/spakin/disjoint"

// tracker answers the reachability questions generators ask between wall openings.
type tracker interface {
	// connected reports whether b is reachable from a.
	connected(a, b Cell) bool
	// spanning reports whether every cell is reachable from the origin.
	spanning() bool
	// opened is called after the wall between a and b is opened.
	opened(a, b Cell)
}

// floodTracker re-runs a flood fill on every question.
type floodTracker struct {
	m *Maze
}

func (t floodTracker) connected(a, b Cell) bool { return t.m.IsReachable(a, b) }
func (t floodTracker) spanning() bool           { return t.m.FullyConnected() }
func (t floodTracker) opened(Cell, Cell)        {}

// disjointSets tracks connected components with one disjoint-set element per cell.
type disjointSets struct {
	grid       Grid
	cells      []*disjoint.Element
	components int
}

// newDisjointSets builds the partition induced by the maze's currently open walls.
func newDisjointSets(m *Maze) *disjointSets {
	n := m.Size()
	ds := &disjointSets{
		grid:       m.Grid,
		cells:      make([]*disjoint.Element, n),
		components: n,
	}
	for i := range ds.cells {
		ds.cells[i] = disjoint.NewElement()
	}
	for _, w := range m.OpenWalls() {
		ds.opened(w.A, w.B)
	}
	return ds
}

func (ds *disjointSets) element(c Cell) *disjoint.Element {
	return ds.cells[ds.grid.index(c)]
}

func (ds *disjointSets) connected(a, b Cell) bool {
	return ds.element(a).Find() == ds.element(b).Find()
}

func (ds *disjointSets) spanning() bool { return ds.components == 1 }

func (ds *disjointSets) opened(a, b Cell) {
	ea, eb := ds.element(a), ds.element(b)
	if ea.Find() == eb.Find() {
		return
	}
	disjoint.Union(ea, eb)
	ds.components--
}
