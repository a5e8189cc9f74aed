// Package statespace is a small, dependency-light toolkit for solving
// problems posed as a state space: a start state, a goal test, successor
// transitions and a path cost.
//
// Any type implementing problem.Problem can be searched with one of four
// strategies:
//
//	search.DepthFirst   (DFS)    LIFO frontier, not optimal
//	search.BreadthFirst (BFS)    FIFO frontier, fewest actions
//	search.UniformCost  (UCS)    least path cost
//	search.BestFirst    (AStar)  path cost plus a heuristic
//
// Every strategy returns a search.Result: the action sequence from the start
// to the first goal found (empty when none is reachable), its cost as
// reported by the problem, and the states in the order they were expanded.
//
// Subpackages:
//
//	problem/   the Problem contract, Transition, Heuristic, contract checks
//	frontier/  stack, queue and updatable priority queue
//	explored/  insertion-ordered closed set
//	trace/     node arena with parent links and path reconstruction
//	search/    the four strategies, options, logging hooks
//	digraph/   weighted directed graph as a Problem
//	gridworld/ text mazes as a Problem, Manhattan/Euclidean heuristics
//
// Quick example:
//
//	g := digraph.New("A", "D")
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "D", 1)
//	res, err := search.UniformCost[string, digraph.Edge](g)
//	// res.Actions == [A→B B→D], res.Cost == 2
package statespace
