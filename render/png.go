/*
Package render turns a generated maze and its solution into output for people
and other programs: a PNG raster, an ASCII drawing and a JSON document.

Renderers only read the maze through the Walls interface; they never open
walls themselves.
*/
package render

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/beka-birhanu/vinom-maze/maze"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Walls is the read-only view of a maze a renderer needs.
type Walls interface {
	Width() int
	Height() int
	IsWallOpen(c1, c2 maze.Cell) bool
}

var ErrInvalidOptions = errors.New("invalid render options")

// Options controls the PNG raster.
type Options struct {
	CellSize   int        // Side of a square cell in pixels
	WallWidth  float32    // Stroke width of a wall segment
	PathWidth  float32    // Stroke width of the solution trace
	Background color.RGBA // Fill behind everything
	WallColor  color.RGBA // Color of closed walls
	PathColor  color.RGBA // Color of the solution trace
	Border     bool       // Draw the outer boundary as well as interior walls
	Label      string     // Optional caption in the top-left corner
}

// DefaultOptions returns 50px cells, black walls on light grey and an orange trace.
func DefaultOptions() Options {
	return Options{
		CellSize:   50,
		WallWidth:  5,
		PathWidth:  15,
		Background: color.RGBA{R: 211, G: 211, B: 211, A: 255},
		WallColor:  color.RGBA{A: 255},
		PathColor:  color.RGBA{R: 255, G: 87, B: 51, A: 255},
	}
}

// PNG encodes the maze, with path traced over it, to w.
func PNG(w io.Writer, walls Walls, path []maze.Cell, opts Options) error {
	img, err := Image(walls, path, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Image rasterizes the maze and path.
func Image(walls Walls, path []maze.Cell, opts Options) (*image.RGBA, error) {
	if opts.CellSize <= 0 || opts.WallWidth < 0 || opts.PathWidth < 0 {
		return nil, ErrInvalidOptions
	}

	size := float32(opts.CellSize)
	bounds := image.Rect(0, 0, walls.Width()*opts.CellSize, walls.Height()*opts.CellSize)
	img := image.NewRGBA(bounds)
	fill(img, opts.Background)

	wallLayer := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	for y := 0; y < walls.Height(); y++ {
		for x := 0; x < walls.Width(); x++ {
			cell := maze.Cell{X: x, Y: y}
			left, top := float32(x)*size, float32(y)*size
			if x < walls.Width()-1 && !walls.IsWallOpen(cell, cell.Step(maze.East)) {
				addStroke(wallLayer, left+size, top, left+size, top+size, opts.WallWidth)
			}
			if y < walls.Height()-1 && !walls.IsWallOpen(cell, cell.Step(maze.South)) {
				addStroke(wallLayer, left, top+size, left+size, top+size, opts.WallWidth)
			}
		}
	}
	if opts.Border {
		w, h := float32(bounds.Dx()), float32(bounds.Dy())
		addStroke(wallLayer, 0, 0, w, 0, opts.WallWidth)
		addStroke(wallLayer, w, 0, w, h, opts.WallWidth)
		addStroke(wallLayer, 0, h, w, h, opts.WallWidth)
		addStroke(wallLayer, 0, 0, 0, h, opts.WallWidth)
	}
	wallLayer.Draw(img, bounds, image.NewUniform(opts.WallColor), image.Point{})

	if len(path) > 0 {
		pathLayer := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
		center := func(c maze.Cell) (float32, float32) {
			return float32(c.X)*size + size/2, float32(c.Y)*size + size/2
		}
		x0, y0 := center(path[0])
		addDisc(pathLayer, x0, y0, opts.PathWidth/2)
		for _, c := range path[1:] {
			x1, y1 := center(c)
			addStroke(pathLayer, x0, y0, x1, y1, opts.PathWidth)
			x0, y0 = x1, y1
		}
		pathLayer.Draw(img, bounds, image.NewUniform(opts.PathColor), image.Point{})
	}

	if opts.Label != "" {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(opts.WallColor),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(4, 13),
		}
		d.DrawString(opts.Label)
	}

	return img, nil
}

func fill(img *image.RGBA, c color.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
}

// addStroke adds an axis-aligned segment of the given width with round caps.
func addStroke(z *vector.Rasterizer, x0, y0, x1, y1, width float32) {
	h := width / 2
	minX, maxX := min(x0, x1), max(x0, x1)
	minY, maxY := min(y0, y1), max(y0, y1)
	if y0 == y1 {
		addRect(z, minX, minY-h, maxX, maxY+h)
	} else {
		addRect(z, minX-h, minY, maxX+h, maxY)
	}
	addDisc(z, x0, y0, h)
	addDisc(z, x1, y1, h)
}

// addRect and addDisc wind the same way, so overlapping shapes merge instead of cancelling.
func addRect(z *vector.Rasterizer, x0, y0, x1, y1 float32) {
	z.MoveTo(x0, y0)
	z.LineTo(x1, y0)
	z.LineTo(x1, y1)
	z.LineTo(x0, y1)
	z.ClosePath()
}

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847

func addDisc(z *vector.Rasterizer, cx, cy, r float32) {
	if r <= 0 {
		return
	}
	k := kappa * r
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}
