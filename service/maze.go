package service

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/zeebo/xxh3"
)

const (
	defaultMaxDimension = 200
)

var (
	ErrDimensionTooLarge = errors.New("maze dimension too large")
	ErrNilLogger         = errors.New("logger must not be nil")
)

type MazeOptions struct {
	MaxDimension int  // Largest accepted width or height
	DisjointSets bool // Track reachability with union-find
	MaxAttempts  int  // Cap on random-walk samples; zero is unbounded
	Now          func() time.Time
}

type MazeService struct {
	logger i.Logger
	opts   *MazeOptions
}

func NewMazeService(logger i.Logger, opts *MazeOptions) (i.MazeGenerator, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}

	if opts == nil {
		opts = &MazeOptions{}
	}

	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &MazeService{
		logger: logger,
		opts:   opts,
	}, nil
}

// Generate implements i.MazeGenerator.
func (s *MazeService) Generate(ctx context.Context, spec i.MazeSpec) (*i.GeneratedMaze, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	strategy := maze.OrderedEdge
	if spec.Strategy != "" {
		var err error
		strategy, err = maze.ParseStrategy(spec.Strategy)
		if err != nil {
			return nil, err
		}
	}

	if spec.Width > s.opts.MaxDimension || spec.Height > s.opts.MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrDimensionTooLarge, spec.Width, spec.Height, s.opts.MaxDimension)
	}

	m, err := maze.New(spec.Width, spec.Height)
	if err != nil {
		return nil, err
	}

	seed := spec.Seed
	if seed == 0 {
		seed = uint64(s.opts.Now().UnixNano()) | 1
	}

	var genOpts []maze.Option
	if s.opts.DisjointSets {
		genOpts = append(genOpts, maze.WithDisjointSets())
	}
	if s.opts.MaxAttempts > 0 {
		genOpts = append(genOpts, maze.WithMaxAttempts(s.opts.MaxAttempts))
	}

	gen, err := maze.NewGenerator(strategy, maze.NewSource(seed), genOpts...)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	opened, err := gen.Generate(ctx, m)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Generating %s maze %dx%d with seed %d: %v", strategy, spec.Width, spec.Height, seed, err))
		return nil, fmt.Errorf("generating %s maze: %w", strategy, err)
	}
	path := m.ShortestPath()
	elapsed := time.Since(start)

	result := &i.GeneratedMaze{
		ID:             uuid.New(),
		Strategy:       strategy,
		Seed:           seed,
		Maze:           m,
		Path:           path,
		Opened:         opened,
		FullyConnected: m.FullyConnected(),
		Fingerprint:    Fingerprint(m),
		Elapsed:        elapsed,
	}

	s.logger.Info(fmt.Sprintf("Generated %s maze %s (%dx%d, %s cells): %s open walls, path length %s, seed %d, took %s",
		strategy, result.ID, spec.Width, spec.Height,
		humanize.Comma(int64(m.Size())), humanize.Comma(int64(opened)), humanize.Comma(int64(len(path))),
		seed, elapsed))

	return result, nil
}

// Fingerprint hashes the dimensions and the sorted open walls of m with xxh3.
// Two mazes with the same fingerprint have the same layout.
func Fingerprint(m *maze.Maze) string {
	h := xxh3.New()
	var buf [8]byte
	write := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = h.Write(buf[:])
	}

	write(m.Width())
	write(m.Height())
	for _, w := range m.OpenWalls() {
		write(w.A.X)
		write(w.A.Y)
		write(w.B.X)
		write(w.B.Y)
	}

	return fmt.Sprintf("%016x", h.Sum64())
}
