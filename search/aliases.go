package search

import "github.com/katalvlaran/statespace/problem"

// Short names for the four strategies. Generic functions cannot be bound to
// package-level variables without instantiation, so these are thin wrappers.

// DFS is DepthFirst.
func DFS[S comparable, A any](p problem.Problem[S, A], opts ...Option[S]) (*Result[S, A], error) {
	return DepthFirst(p, opts...)
}

// BFS is BreadthFirst.
func BFS[S comparable, A any](p problem.Problem[S, A], opts ...Option[S]) (*Result[S, A], error) {
	return BreadthFirst(p, opts...)
}

// UCS is UniformCost.
func UCS[S comparable, A any](p problem.Problem[S, A], opts ...Option[S]) (*Result[S, A], error) {
	return UniformCost(p, opts...)
}

// AStar is BestFirst.
func AStar[S comparable, A any](p problem.Problem[S, A], h problem.Heuristic[S, A], opts ...Option[S]) (*Result[S, A], error) {
	return BestFirst(p, h, opts...)
}
