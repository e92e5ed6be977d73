package mazeapi

import (
	"bytes"
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

const (
	generateTimeout = 5 * time.Second
	maxPNGPixels    = 16 << 20
)

var ErrNilGenerator = errors.New("maze generator must not be nil")

// MazeController serves generated mazes as JSON, PNG and text.
type MazeController struct {
	generator i.MazeGenerator
	pngOpts   render.Options
}

// NewMazeController initializes a MazeController that draws PNGs with pngOpts.
func NewMazeController(g i.MazeGenerator, pngOpts render.Options) (*MazeController, error) {
	if g == nil {
		return nil, ErrNilGenerator
	}
	return &MazeController{
		generator: g,
		pngOpts:   pngOpts,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/maze")
	{
		mazes.GET("", mc.mazeJSON)
		mazes.GET("/png", mc.mazePNG)
		mazes.GET("/ascii", mc.mazeASCII)
	}
}

// generate binds the query and runs the generator, writing the error response itself on failure.
func (mc *MazeController) generate(ctx *gin.Context) (*i.GeneratedMaze, bool) {
	var request MazeRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	timeoutCtx, cancel := context.WithTimeout(ctx.Request.Context(), generateTimeout)
	defer cancel()

	result, err := mc.generator.Generate(timeoutCtx, i.MazeSpec{
		Width:    request.Width,
		Height:   request.Height,
		Strategy: request.Strategy,
		Seed:     request.Seed,
	})
	if err != nil {
		switch {
		case isBadRequest(err):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "maze generation timed out"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		}
		return nil, false
	}

	ctx.Header("X-Maze-Id", result.ID.String())
	ctx.Header("X-Maze-Fingerprint", result.Fingerprint)
	return result, true
}

func isBadRequest(err error) bool {
	return errors.Is(err, maze.ErrInvalidDimensions) ||
		errors.Is(err, maze.ErrUnknownStrategy) ||
		errors.Is(err, service.ErrDimensionTooLarge)
}

// mazeJSON handles GET /maze.
func (mc *MazeController) mazeJSON(ctx *gin.Context) {
	result, ok := mc.generate(ctx)
	if !ok {
		return
	}

	doc := render.NewDocument(result.Maze, result.Path)
	response := &MazeResponse{
		ID:             result.ID,
		Width:          doc.Width,
		Height:         doc.Height,
		Strategy:       result.Strategy.String(),
		Seed:           result.Seed,
		Fingerprint:    result.Fingerprint,
		OpenWalls:      doc.OpenWalls,
		Path:           doc.Path,
		PathLength:     len(doc.Path),
		FullyConnected: result.FullyConnected,
		ElapsedMS:      float64(result.Elapsed.Microseconds()) / 1000,
	}

	ctx.JSON(http.StatusOK, response)
}

// mazePNG handles GET /maze/png.
func (mc *MazeController) mazePNG(ctx *gin.Context) {
	result, ok := mc.generate(ctx)
	if !ok {
		return
	}

	var buf bytes.Buffer
	opts := fitOptions(mc.pngOpts, result.Maze.Width(), result.Maze.Height())
	if err := render.PNG(&buf, result.Maze, result.Path, opts); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while drawing maze"})
		return
	}

	ctx.Data(http.StatusOK, "image/png", buf.Bytes())
}

// mazeASCII handles GET /maze/ascii.
func (mc *MazeController) mazeASCII(ctx *gin.Context) {
	result, ok := mc.generate(ctx)
	if !ok {
		return
	}

	text := render.ASCIIString(result.Maze, result.Path, render.DefaultASCIIOptions())
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

// fitOptions shrinks the cell size, and the strokes with it, so a width x height
// maze stays under maxPNGPixels.
func fitOptions(opts render.Options, width, height int) render.Options {
	cells := width * height
	if cells == 0 || opts.CellSize*opts.CellSize*cells <= maxPNGPixels {
		return opts
	}

	size := int(math.Sqrt(float64(maxPNGPixels) / float64(cells)))
	size = max(size, 2)
	scale := float32(size) / float32(opts.CellSize)
	opts.CellSize = size
	opts.WallWidth *= scale
	opts.PathWidth *= scale
	return opts
}
