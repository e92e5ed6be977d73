package render

import (
	"io"

	"github.com/beka-birhanu/vinom-maze/maze"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is the JSON form of a maze and its solution.
type Document struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	OpenWalls []maze.Wall `json:"open_walls"`
	Path      []maze.Cell `json:"path"`
}

// NewDocument collects the open walls of walls in canonical, row-major order.
func NewDocument(walls Walls, path []maze.Cell) Document {
	doc := Document{
		Width:     walls.Width(),
		Height:    walls.Height(),
		OpenWalls: []maze.Wall{},
		Path:      path,
	}
	if doc.Path == nil {
		doc.Path = []maze.Cell{}
	}

	for y := 0; y < walls.Height(); y++ {
		for x := 0; x < walls.Width(); x++ {
			cell := maze.Cell{X: x, Y: y}
			for _, d := range []maze.Direction{maze.East, maze.South} {
				next := cell.Step(d)
				if walls.IsWallOpen(cell, next) {
					doc.OpenWalls = append(doc.OpenWalls, maze.NewWall(cell, next))
				}
			}
		}
	}
	return doc
}

// JSON writes the indented document for the maze and path to w.
func JSON(w io.Writer, walls Walls, path []maze.Cell) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(walls, path))
}
