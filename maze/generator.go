package maze

import (
	"context"
	"fmt"
	"strings"
)

// Generator opens walls of a freshly created maze. It returns the number of walls it opened.
// Generation stops with ctx's error once ctx is done; walls opened so far stay open.
type Generator interface {
	Generate(ctx context.Context, m *Maze) (int, error)
	Strategy() Strategy
}

// Strategy names a generation algorithm.
type Strategy int

// Available strategies
const (
	OrderedEdge Strategy = iota
	RandomWalk
	Wilson
)

// Strategies lists every strategy in declaration order.
var Strategies = []Strategy{OrderedEdge, RandomWalk, Wilson}

// String returns the strategy's name as used in configuration and queries.
func (s Strategy) String() string {
	switch s {
	case OrderedEdge:
		return "ordered-edge"
	case RandomWalk:
		return "random-walk"
	case Wilson:
		return "wilson"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy resolves a strategy name. Matching ignores case and surrounding spaces.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range Strategies {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Option tunes a generator.
type Option func(*options)

type options struct {
	disjointSets bool
	maxAttempts  int
}

// WithDisjointSets answers reachability with a union-find instead of a flood fill after every opening.
func WithDisjointSets() Option {
	return func(o *options) { o.disjointSets = true }
}

// WithMaxAttempts caps how many cell/direction samples the random-walk generator draws. Zero means no cap.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) tracker(m *Maze) tracker {
	if o.disjointSets {
		return newDisjointSets(m)
	}
	return floodTracker{m: m}
}

// NewGenerator builds the generator for a strategy.
func NewGenerator(s Strategy, src Source, opts ...Option) (Generator, error) {
	switch s {
	case OrderedEdge:
		return NewOrderedEdgeGenerator(src, opts...), nil
	case RandomWalk:
		return NewRandomWalkGenerator(src, opts...), nil
	case Wilson:
		return NewWilsonGenerator(src), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
	}
}
