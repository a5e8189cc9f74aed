package search

import (
	"fmt"

	"github.com/katalvlaran/statespace/frontier"
	"github.com/katalvlaran/statespace/problem"
	"github.com/katalvlaran/statespace/trace"
)

// UniformCost expands the node with the least total path cost first.
//
// The priority of a node is the problem's ActionCost over the full action
// sequence that reaches it, never an independently accumulated sum, so the
// cost used for ordering and the cost reported in Result agree. The first goal
// popped is of minimal cost when step costs are non-negative.
func UniformCost[S comparable, A any](p problem.Problem[S, A], opts ...Option[S]) (*Result[S, A], error) {
	return bestFirst(NameUniformCost, p, problem.Zero[S, A], opts)
}

// BestFirst runs A*: the priority of a node is its path cost (ActionCost of
// its actions) plus h(state, p). A nil h means problem.Zero, in which case the
// expansion order and the result are identical to UniformCost.
//
// An explored state is never re-expanded, so the returned path is
// cost-optimal only when h is consistent: h(s) <= step cost + h(s') for every
// transition s→s', and h is zero on goals. An admissible but inconsistent h
// can close a state through a costlier path first and return a costlier
// goal. h is not checked for either property, only for returning
// non-negative numbers.
func BestFirst[S comparable, A any](p problem.Problem[S, A], h problem.Heuristic[S, A], opts ...Option[S]) (*Result[S, A], error) {
	if h == nil {
		h = problem.Zero[S, A]
	}

	return bestFirst(NameBestFirst, p, h, opts)
}

// bestFirst is the loop shared by UniformCost and BestFirst.
//
// Steps:
//  1. Queue the start node with priority h(start).
//  2. Pop the lowest-priority node (insertion order breaks ties).
//     If its state is a goal, return its path.
//  3. If the state is unexplored, mark it explored; for each successor whose
//     state is not explored, compute g = ActionCost(path + action) and
//     f = g + h(successor), then push it, or lower the priority of the queued
//     node for that state when f is smaller.
//  4. Repeat until the frontier is empty.
func bestFirst[S comparable, A any](name string, p problem.Problem[S, A], h problem.Heuristic[S, A], opts []Option[S]) (*Result[S, A], error) {
	r, err := newRunner(name, p, opts)
	if err != nil {
		return nil, err
	}

	start := p.Start()
	f0, err := estimate(h, p, start)
	if err != nil {
		return nil, err
	}
	pq := frontier.NewPriorityQueue[S, trace.Handle](16)
	pq.Update(start, r.arena.Root(start), f0)

	var (
		succ []problem.Transition[S, A]
		g, f float64
	)
	for !pq.Empty() {
		if err = r.cancelled(); err != nil {
			return nil, err
		}
		_, cur, _, _ := pq.Pop()
		n := r.arena.Node(cur)

		if p.IsGoal(n.State) {
			return r.found(cur)
		}
		if !r.closed.Add(n.State) {
			continue
		}

		if succ, err = r.expand(cur); err != nil {
			return nil, err
		}
		for _, t := range succ {
			if r.closed.Has(t.State) {
				continue
			}
			if g, err = r.actionCost(r.arena.Extend(cur, t.Action)); err != nil {
				return nil, err
			}
			if f, err = estimate(h, p, t.State); err != nil {
				return nil, err
			}
			f += g
			// skip offers that would not lower a queued entry
			if old, ok := pq.Priority(t.State); ok && old <= f {
				continue
			}
			pq.Update(t.State, r.generate(cur, t, g), f)
		}
	}

	return r.exhausted()
}

// estimate evaluates h at state and checks the contract.
func estimate[S comparable, A any](h problem.Heuristic[S, A], p problem.Problem[S, A], state S) (float64, error) {
	v := h(state, p)
	if err := problem.CheckCost("heuristic", v); err != nil {
		return 0, fmt.Errorf("search: estimate at %v: %w", state, err)
	}

	return v, nil
}
