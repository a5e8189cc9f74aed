package search

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/statespace/explored"
	"github.com/katalvlaran/statespace/problem"
	"github.com/katalvlaran/statespace/trace"
)

// runner holds the state one strategy invocation owns exclusively:
// the node arena, the explored set and the result being built.
type runner[S comparable, A any] struct {
	name   string
	p      problem.Problem[S, A]
	opts   Options[S]
	arena  *trace.Arena[S, A]
	closed *explored.Set[S]
	res    *Result[S, A]
}

// newRunner applies opts, checks the problem contract and logs the start.
func newRunner[S comparable, A any](name string, p problem.Problem[S, A], opts []Option[S]) (*runner[S, A], error) {
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if err := problem.Check(p); err != nil {
		return nil, err
	}

	r := &runner[S, A]{
		name:   name,
		p:      p,
		opts:   o,
		arena:  trace.NewArena[S, A](64),
		closed: explored.New[S](64),
		res: &Result[S, A]{
			Actions:  []A{},
			Expanded: make([]S, 0, 64),
		},
	}
	if l := o.Logger; l != nil {
		l.Debug().Str("strategy", name).Msg("search started")
	}

	return r, nil
}

// cancelled returns the context error once the search context is done.
func (r *runner[S, A]) cancelled() error {
	select {
	case <-r.opts.Ctx.Done():
		return r.opts.Ctx.Err()
	default:
		return nil
	}
}

// expand records h as expanded, runs OnExpand and returns the checked
// successors of its state.
func (r *runner[S, A]) expand(h trace.Handle) ([]problem.Transition[S, A], error) {
	n := r.arena.Node(h)
	r.res.Expanded = append(r.res.Expanded, n.State)
	if l := r.opts.Logger; l != nil {
		l.Trace().
			Str("strategy", r.name).
			Str("state", fmt.Sprint(n.State)).
			Int("depth", n.Depth).
			Msg("expand")
	}
	if err := r.opts.OnExpand(n.State, n.Depth); err != nil {
		return nil, fmt.Errorf("search: OnExpand at %v: %w", n.State, err)
	}

	succ := r.p.Successors(n.State)
	for _, t := range succ {
		if err := problem.CheckTransition(t); err != nil {
			return nil, fmt.Errorf("search: successors of %v: %w", n.State, err)
		}
	}

	return succ, nil
}

// generate records the child of parent reached through t, with cumulative
// cost, and runs OnGenerate.
func (r *runner[S, A]) generate(parent trace.Handle, t problem.Transition[S, A], cost float64) trace.Handle {
	h := r.arena.Add(parent, t.State, t.Action, cost)
	r.res.Generated++
	r.opts.OnGenerate(t.State, r.arena.Node(h).Depth)

	return h
}

// actionCost asks the problem for the cost of actions and checks the answer.
func (r *runner[S, A]) actionCost(actions []A) (float64, error) {
	c := r.p.ActionCost(actions)
	if err := problem.CheckCost("ActionCost", c); err != nil {
		return 0, err
	}

	return c, nil
}

// found finalises a successful search ending at h.
func (r *runner[S, A]) found(h trace.Handle) (*Result[S, A], error) {
	actions := r.arena.Path(h)
	cost, err := r.actionCost(actions)
	if err != nil {
		return nil, err
	}
	r.res.Actions = actions
	r.res.Found = true
	r.res.Cost = cost
	r.logFinish()

	return r.res, nil
}

// exhausted finalises a search whose frontier emptied without a goal.
func (r *runner[S, A]) exhausted() (*Result[S, A], error) {
	r.logFinish()

	return r.res, nil
}

func (r *runner[S, A]) logFinish() {
	l := r.opts.Logger
	if l == nil {
		return
	}
	l.Debug().
		Str("strategy", r.name).
		Bool("found", r.res.Found).
		Int("expanded", len(r.res.Expanded)).
		Int("generated", r.res.Generated).
		Int("actions", len(r.res.Actions)).
		Str("cost", strconv.FormatFloat(r.res.Cost, 'g', -1, 64)).
		Msg("search finished")
}
