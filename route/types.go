package route

import (
	"errors"

	"github.com/adlayan/atlas/core"
)

// Sentinel errors for route execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("route: graph is nil")

	// ErrRegionNil is returned if either endpoint is nil.
	ErrRegionNil = errors.New("route: source and destination must be non-nil")
)

// GroupCost pairs a group with its aggregated interior cost along a route.
type GroupCost struct {
	Group core.Group
	Cost  int
}

// RouteResult is the immutable outcome of one ShortestRoute query.
type RouteResult struct {
	// Path holds the region names from source to destination, inclusive.
	Path []string

	// TotalCost is the sum of Cost over interior regions only;
	// the endpoints never contribute.
	TotalCost int

	// GroupCosts lists (group, cost) pairs in first-appearance order along
	// the path. A group seen only at an endpoint is present with cost zero.
	GroupCosts []GroupCost

	// PeakGroup is the pair with the maximum cost; on a tie the group
	// appearing first along the path wins.
	PeakGroup GroupCost
}

// Option configures a traversal via functional arguments.
type Option func(*Options)

// Options holds the optional callbacks observing a traversal.
// Hooks must not mutate the graph.
type Options struct {
	// OnEnqueue is called when a region is discovered and enqueued,
	// with its name and hop depth from the source.
	OnEnqueue func(name string, depth int)

	// OnDequeue is called when a region is popped from the frontier,
	// immediately before its neighbors are expanded.
	OnDequeue func(name string, depth int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(string, int) {},
		OnDequeue: func(string, int) {},
	}
}

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue(fn func(name string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a region leaves the frontier.
func WithOnDequeue(fn func(name string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
