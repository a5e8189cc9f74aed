// Package search defines options and results for the search strategies.
package search

import (
	"context"

	"github.com/felixgeelhaar/bolt/v3"
)

// Strategy names, used in log events.
const (
	NameDepthFirst   = "dfs"
	NameBreadthFirst = "bfs"
	NameUniformCost  = "ucs"
	NameBestFirst    = "astar"
)

// Option configures a search via functional arguments.
type Option[S comparable] func(*Options[S])

// Options holds parameters and callbacks shared by every strategy.
type Options[S comparable] struct {
	// Ctx is checked once per frontier pop. Cancellation aborts the search
	// with ctx.Err() and no result.
	Ctx context.Context

	// Logger receives debug events at start and finish and a trace event per
	// expansion. Nil disables logging.
	Logger *bolt.Logger

	// OnExpand is called when a state is about to be expanded, with its depth
	// in actions from the start. Returning an error aborts the search.
	OnExpand func(state S, depth int) error

	// OnGenerate is called for every successor node added to the frontier.
	OnGenerate func(state S, depth int)
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no logger
//   - no-op hooks
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:        context.Background(),
		Logger:     nil,
		OnExpand:   func(S, int) error { return nil },
		OnGenerate: func(S, int) {},
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes search events to l.
func WithLogger[S comparable](l *bolt.Logger) Option[S] {
	return func(o *Options[S]) {
		o.Logger = l
	}
}

// WithOnExpand registers a callback run before each expansion; returning an
// error from it stops the search.
func WithOnExpand[S comparable](fn func(state S, depth int) error) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnGenerate registers a callback run for each generated successor node.
func WithOnGenerate[S comparable](fn func(state S, depth int)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnGenerate = fn
		}
	}
}

// Result is the outcome of one search.
//
// Found distinguishes success from exhaustion. Actions is never nil: it is
// empty both when the search is exhausted and when the start state already
// satisfies the goal test (Found == true).
type Result[S comparable, A any] struct {
	// Actions leads from the start state to a goal, in order.
	Actions []A

	// Found reports whether a goal was reached.
	Found bool

	// Cost is the problem's ActionCost of Actions; zero when not found.
	Cost float64

	// Expanded lists states in the order they were expanded.
	Expanded []S

	// Generated counts successor nodes pushed onto the frontier.
	Generated int
}

// Len returns the number of actions in the path.
func (r *Result[S, A]) Len() int { return len(r.Actions) }
