package search_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/digraph"
	"github.com/katalvlaran/statespace/problem"
	"github.com/katalvlaran/statespace/search"
)

type (
	edge   = digraph.Edge
	result = search.Result[string, edge]
)

// strategy is a uniform signature over the four entry points.
type strategy struct {
	name string
	run  func(p problem.Problem[string, edge], opts ...search.Option[string]) (*result, error)
}

// strategies lists every entry point, A* with the zero heuristic.
var strategies = []strategy{
	{"dfs", search.DepthFirst[string, edge]},
	{"bfs", search.BreadthFirst[string, edge]},
	{"ucs", search.UniformCost[string, edge]},
	{"astar", func(p problem.Problem[string, edge], opts ...search.Option[string]) (*result, error) {
		return search.BestFirst(p, nil, opts...)
	}},
}

// weighted is one edge of a test graph.
type weighted struct {
	from, to string
	cost     float64
}

// buildGraph creates a digraph from start to goal with edges in the given
// order.
func buildGraph(t testing.TB, start, goal string, edges ...weighted) *digraph.Graph {
	t.Helper()
	g := digraph.New(start, goal)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to, e.cost))
	}

	return g
}

// path builds the action sequence visiting vertices in order.
func path(vertices ...string) []edge {
	out := make([]edge, 0, len(vertices))
	for i := 1; i < len(vertices); i++ {
		out = append(out, edge{From: vertices[i-1], To: vertices[i]})
	}

	return out
}

// randomGraph returns a seeded random digraph on n vertices "v0".."v{n-1}",
// start v0 and goal v{n-1}, with integer costs in [0, 9], plus its edge list.
func randomGraph(t testing.TB, seed int64, n int, density float64) (*digraph.Graph, []weighted) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	name := func(i int) string { return fmt.Sprintf("v%d", i) }
	var edges []weighted
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v || rng.Float64() >= density {
				continue
			}
			edges = append(edges, weighted{name(u), name(v), float64(rng.Intn(10))})
		}
	}

	return buildGraph(t, name(0), name(n-1), edges...), edges
}

// shortest runs Bellman-Ford from src over edges, using weight(e) as the
// edge length; reverse walks edges backwards. Unreached vertices are +Inf.
func shortest(edges []weighted, src string, weight func(weighted) float64, reverse bool) map[string]float64 {
	dist := map[string]float64{src: 0}
	get := func(v string) float64 {
		if d, ok := dist[v]; ok {
			return d
		}

		return math.Inf(1)
	}
	for changed := true; changed; {
		changed = false
		for _, e := range edges {
			u, v := e.from, e.to
			if reverse {
				u, v = v, u
			}
			if d := get(u) + weight(e); d < get(v) {
				dist[v] = d
				changed = true
			}
		}
	}

	return dist
}

func cost(e weighted) float64 { return e.cost }

func hop(weighted) float64 { return 1 }
