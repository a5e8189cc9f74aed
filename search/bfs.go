package search

import (
	"github.com/katalvlaran/statespace/frontier"
	"github.com/katalvlaran/statespace/problem"
	"github.com/katalvlaran/statespace/trace"
)

// BreadthFirst searches the shallowest nodes first using a FIFO frontier.
//
// A state is marked explored as soon as it is first enqueued, so it is
// enqueued and expanded at most once, and the goal test runs when a node is
// dequeued. Each depth level is exhausted before the next begins, so the
// returned path has the fewest actions among all paths to a goal.
func BreadthFirst[S comparable, A any](p problem.Problem[S, A], opts ...Option[S]) (*Result[S, A], error) {
	r, err := newRunner(NameBreadthFirst, p, opts)
	if err != nil {
		return nil, err
	}

	start := p.Start()
	queue := frontier.NewQueue[trace.Handle](16)
	r.closed.Add(start)
	queue.Push(r.arena.Root(start))

	var succ []problem.Transition[S, A]
	for !queue.Empty() {
		if err = r.cancelled(); err != nil {
			return nil, err
		}
		h, _ := queue.Pop()
		n := r.arena.Node(h)

		if p.IsGoal(n.State) {
			return r.found(h)
		}

		if succ, err = r.expand(h); err != nil {
			return nil, err
		}
		for _, t := range succ {
			// first time seen?
			if r.closed.Add(t.State) {
				queue.Push(r.generate(h, t, n.Cost+t.Cost))
			}
		}
	}

	return r.exhausted()
}
