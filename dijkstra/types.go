// Package dijkstra defines configuration options for the weighted
// shortest-path search.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors for option validation.
var (
	// ErrBadMaxDistance indicates that MaxDistance was set to a negative
	// or NaN value, which is not meaningful for a distance cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to a
	// non-positive or NaN value, which would treat every edge (including
	// zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the weighted search.
//
// MaxDistance      – cap on cumulative weight to explore; frontier nodes
// beyond it are never expanded. Default is +Inf (no cap).
//
// InfEdgeThreshold – edges whose weight is ≥ this threshold are treated
// as impassable obstacles and skipped. Default is +Inf (no obstacles).
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum cumulative-weight threshold.
// Vertices whose shortest distance would exceed this value are not
// explored; a target beyond it is reported as not found.
// Must pass a non-negative value; negative or NaN values panic with
// ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Edges with weight ≥ threshold are skipped entirely.
// Must pass a positive value; zero, negative, or NaN values panic with
// ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - MaxDistance:      +Inf (no distance cap; explore all reachable).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
