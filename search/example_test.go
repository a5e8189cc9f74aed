package search_test

import (
	"fmt"

	"github.com/katalvlaran/statespace/digraph"
	"github.com/katalvlaran/statespace/gridworld"
	"github.com/katalvlaran/statespace/problem"
	"github.com/katalvlaran/statespace/search"
)

// ExampleBreadthFirst shows breadth-first search preferring the shallower
// path even though it is more expensive.
//
//	A ─1─▶ B ─5─▶ D
//	│             ▲
//	5             1
//	▼             │
//	C ────────────┘
func ExampleBreadthFirst() {
	g := digraph.New("A", "D")
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("A", "C", 5)
	_ = g.AddEdge("B", "D", 5)
	_ = g.AddEdge("C", "D", 1)

	res, err := search.BreadthFirst[string, digraph.Edge](g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Actions, res.Cost)
	// Output:
	// [A→B B→D] 6
}

// ExampleUniformCost finds the cheapest route; A* with the zero heuristic
// agrees with it.
func ExampleUniformCost() {
	g := digraph.New("A", "D")
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "D", 1)
	_ = g.AddEdge("A", "C", 1)
	_ = g.AddEdge("C", "D", 10)

	ucs, _ := search.UniformCost[string, digraph.Edge](g)
	astar, _ := search.BestFirst[string, digraph.Edge](g, nil)
	fmt.Println(ucs.Actions, ucs.Cost)
	fmt.Println(astar.Actions, astar.Cost)
	// Output:
	// [A→B B→D] 2
	// [A→B B→D] 2
}

// ExampleDepthFirst terminates on a cycle A⇄B.
func ExampleDepthFirst() {
	g := digraph.New("A", "D")
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "A", 1)
	_ = g.AddEdge("B", "D", 1)

	res, _ := search.DepthFirst[string, digraph.Edge](g)
	fmt.Println(res.Found, res.Actions, res.Expanded)
	// Output:
	// true [A→B B→D] [A B]
}

// ExampleBestFirst solves a small maze with the Manhattan heuristic.
func ExampleBestFirst() {
	maze, err := gridworld.Parse([]string{
		"%%%%%%%",
		"%    P%",
		"% %%% %",
		"%  %  %",
		"%%   %%",
		"%. %%%%",
		"%%%%%%%",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := search.BestFirst(maze, gridworld.Manhattan)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Actions)
	fmt.Println("cost:", res.Cost)
	// Output:
	// [South South West South West West South West]
	// cost: 8
}

// ExampleUniformCost_funcs describes a problem with plain functions:
// count from 1 to 10 using +1 (cost 1) or ×2 (cost 1).
func ExampleUniformCost_funcs() {
	p := problem.Funcs[int, string]{
		StartFn:  func() int { return 1 },
		IsGoalFn: func(n int) bool { return n == 10 },
		SuccessorsFn: func(n int) []problem.Transition[int, string] {
			if n > 10 {
				return nil
			}

			return []problem.Transition[int, string]{
				{State: n + 1, Action: "+1", Cost: 1},
				{State: n * 2, Action: "x2", Cost: 1},
			}
		},
		ActionCostFn: func(a []string) float64 { return float64(len(a)) },
	}

	res, _ := search.UniformCost[int, string](p)
	fmt.Println(res.Actions)
	// Output:
	// [+1 x2 +1 x2]
}

// ExampleBreadthFirst_unreachable shows the exhausted outcome.
func ExampleBreadthFirst_unreachable() {
	g := digraph.New("A", "Z")
	_ = g.AddEdge("A", "B", 1)

	res, _ := search.BFS[string, digraph.Edge](g)
	fmt.Println(res.Found, len(res.Actions), res.Expanded)
	// Output:
	// false 0 [A B]
}
