package render

import (
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/gookit/color"
)

// ASCIIOptions controls the text drawing.
type ASCIIOptions struct {
	Colorize  bool        // Wrap path markers in PathStyle escape codes
	PathStyle color.Style // Style for cells on the path
}

// DefaultASCIIOptions returns uncolored output with a bold red path style ready for Colorize.
func DefaultASCIIOptions() ASCIIOptions {
	return ASCIIOptions{PathStyle: color.Style{color.FgRed, color.OpBold}}
}

const pathMarker = " * "

// ASCII draws the maze as +---+ boxes, marking cells on path with " * ".
func ASCII(w io.Writer, walls Walls, path []maze.Cell, opts ASCIIOptions) error {
	_, err := io.WriteString(w, ASCIIString(walls, path, opts))
	return err
}

// ASCIIString returns the drawing ASCII writes.
func ASCIIString(walls Walls, path []maze.Cell, opts ASCIIOptions) string {
	onPath := make(map[maze.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	marker := pathMarker
	if opts.Colorize {
		marker = opts.PathStyle.Sprint(pathMarker)
	}

	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", walls.Width()) + "\n")

	for y := 0; y < walls.Height(); y++ {
		// Cell row
		output.WriteString("|")
		for x := 0; x < walls.Width(); x++ {
			cell := maze.Cell{X: x, Y: y}
			if onPath[cell] {
				output.WriteString(marker)
			} else {
				output.WriteString("   ")
			}
			if walls.IsWallOpen(cell, cell.Step(maze.East)) {
				output.WriteString(" ")
			} else {
				output.WriteString("|")
			}
		}
		output.WriteString("\n")

		// Wall row
		output.WriteString("+")
		for x := 0; x < walls.Width(); x++ {
			cell := maze.Cell{X: x, Y: y}
			if walls.IsWallOpen(cell, cell.Step(maze.South)) {
				output.WriteString("   +")
			} else {
				output.WriteString("---+")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}
