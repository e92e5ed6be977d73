// Package mazeapi exposes maze generation over HTTP.
package mazeapi

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// MazeRequest is the query string accepted by every maze route.
type MazeRequest struct {
	Width    int    `form:"width" binding:"required,min=1"`
	Height   int    `form:"height" binding:"required,min=1"`
	Strategy string `form:"strategy"`
	Seed     uint64 `form:"seed"`
}

// MazeResponse is a generated maze with its solution.
type MazeResponse struct {
	ID             uuid.UUID   `json:"id"`
	Width          int         `json:"width"`
	Height         int         `json:"height"`
	Strategy       string      `json:"strategy"`
	Seed           uint64      `json:"seed"`
	Fingerprint    string      `json:"fingerprint"`
	OpenWalls      []maze.Wall `json:"open_walls"`
	Path           []maze.Cell `json:"path"`
	PathLength     int         `json:"path_length"`
	FullyConnected bool        `json:"fully_connected"`
	ElapsedMS      float64     `json:"elapsed_ms"`
}
