package i

import (
	"context"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// MazeSpec describes the maze a caller asks for.
type MazeSpec struct {
	Width    int
	Height   int
	Strategy string // One of maze.Strategies by name; empty means ordered-edge
	Seed     uint64 // Zero lets the generator pick one
}

// GeneratedMaze is a finished maze together with its solution and provenance.
type GeneratedMaze struct {
	ID             uuid.UUID
	Strategy       maze.Strategy
	Seed           uint64 // The seed actually used, so the maze can be reproduced
	Maze           *maze.Maze
	Path           []maze.Cell
	Opened         int    // Walls opened by the generator
	FullyConnected bool   // Every cell reachable from the origin
	Fingerprint    string // Hash of the dimensions and open walls
	Elapsed        time.Duration
}

// MazeGenerator builds and solves mazes on request.
type MazeGenerator interface {
	// Generate builds a maze for spec, solves it from origin to destination
	// and returns the result. Invalid dimensions or strategy names are errors.
	Generate(ctx context.Context, spec MazeSpec) (*GeneratedMaze, error)
}
