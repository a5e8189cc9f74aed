// Package search implements the classic graph-search strategies over any
// problem.Problem: depth-first, breadth-first, uniform-cost and best-first
// (A*) search.
//
// What
//
//   - DepthFirst (DFS):    LIFO frontier; complete on finite spaces, not optimal.
//   - BreadthFirst (BFS):  FIFO frontier; fewest actions to a goal.
//   - UniformCost (UCS):   priority = ActionCost(path); least-cost goal.
//   - BestFirst (AStar):   priority = ActionCost(path) + heuristic(state);
//     least-cost goal for consistent heuristics.
//
// Every strategy keeps an explored set so that no state is expanded twice,
// records nodes in a trace.Arena and rebuilds the action sequence by walking
// parent handles back from the goal.
//
// When is a state explored?
//
//	DepthFirst, UniformCost and BestFirst mark a state explored when it is
//	expanded; successors already explored are never pushed again.
//	BreadthFirst marks a state as soon as it is first enqueued, which keeps
//	every state in the queue at most once and preserves the fewest-actions
//	guarantee.
//
// Determinism
//
//	Successors are pushed in the order the problem returns them and priority
//	ties are broken by insertion order, so the same problem always yields the
//	same expansion order and the same actions. UniformCost and BestFirst with
//	problem.Zero share one loop and therefore expand identically.
//
// Results
//
//	A search returns *Result with Found set when a goal was reached. Actions
//	is never nil. A start state that already satisfies the goal test yields
//	Found == true with no actions and nothing expanded; an exhausted frontier
//	yields Found == false with no actions. Only the complete strategies make
//	the latter a proof that no path exists: DepthFirst is complete only on
//	finite spaces.
//
// Usage
//
//	res, err := search.BreadthFirst[string, digraph.Edge](g)
//	if err != nil {
//	    // problem.ErrContractViolation, problem.ErrMalformedTransition,
//	    // context errors or hook errors
//	}
//	if res.Found {
//	    fmt.Println(res.Actions, res.Cost)
//	}
//
//	res, err = search.BestFirst(maze, gridworld.Manhattan,
//	    search.WithContext[gridworld.Pos](ctx),
//	    search.WithLogger[gridworld.Pos](logger),
//	    search.WithOnExpand(func(p gridworld.Pos, depth int) error { return nil }),
//	)
//
// Options
//
//   - DefaultOptions():   background context, no logger, no-op hooks.
//   - WithContext(ctx):   cancellation, checked once per frontier pop.
//   - WithLogger(l):      bolt logger for start/finish (debug) and expansions (trace).
//   - WithOnExpand(fn):   hook before each expansion; an error aborts the search.
//   - WithOnGenerate(fn): hook for each node pushed onto the frontier.
//
// Concurrency
//
//	A call is synchronous and owns its frontier, explored set and arena.
//	Concurrent calls are safe as long as the Problem itself is.
//
// Complexity (b = branching factor, d = solution depth, N = reachable states)
//
//   - DepthFirst, BreadthFirst: O(N·b) time, O(N) memory.
//   - UniformCost, BestFirst:   O(N·b·(d + log N)) time (ActionCost replays the
//     path of every generated node), O(N) memory.
package search
