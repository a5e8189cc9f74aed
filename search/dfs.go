package search

import (
	"github.com/katalvlaran/statespace/frontier"
	"github.com/katalvlaran/statespace/problem"
	"github.com/katalvlaran/statespace/trace"
)

// DepthFirst searches the deepest nodes first using a LIFO frontier.
//
// Steps:
//  1. Push the start node.
//  2. Pop a node. If its state is a goal, return its path.
//  3. If the state is unexplored, mark it explored and push every successor
//     whose state is not yet explored, each with a back-reference to the
//     popped node. Already explored states are discarded.
//  4. Repeat until the frontier is empty (Found == false).
//
// The result ignores cost and is not optimal. DepthFirst terminates on finite
// state spaces, cycles included, because no state is expanded twice.
func DepthFirst[S comparable, A any](p problem.Problem[S, A], opts ...Option[S]) (*Result[S, A], error) {
	r, err := newRunner(NameDepthFirst, p, opts)
	if err != nil {
		return nil, err
	}

	stack := frontier.NewStack[trace.Handle](16)
	stack.Push(r.arena.Root(p.Start()))

	var succ []problem.Transition[S, A]
	for !stack.Empty() {
		if err = r.cancelled(); err != nil {
			return nil, err
		}
		h, _ := stack.Pop()
		n := r.arena.Node(h)

		if p.IsGoal(n.State) {
			return r.found(h)
		}
		if !r.closed.Add(n.State) {
			continue // already expanded through another branch
		}

		if succ, err = r.expand(h); err != nil {
			return nil, err
		}
		for _, t := range succ {
			if r.closed.Has(t.State) {
				continue
			}
			stack.Push(r.generate(h, t, n.Cost+t.Cost))
		}
	}

	return r.exhausted()
}
