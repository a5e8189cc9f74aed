package digraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/digraph"
	"github.com/katalvlaran/statespace/problem"
)

func TestGraph_AddEdgeErrors(t *testing.T) {
	g := digraph.New("A", "D")
	assert.ErrorIs(t, g.AddEdge("", "B", 1), digraph.ErrEmptyID)
	assert.ErrorIs(t, g.AddEdge("A", "B", -1), digraph.ErrNegativeCost)
	assert.ErrorIs(t, g.AddEdge("A", "B", math.NaN()), digraph.ErrNegativeCost)
	assert.ErrorIs(t, g.AddEdge("A", "B", math.Inf(1)), digraph.ErrNegativeCost)
	require.NoError(t, g.AddEdge("A", "B", 1))
	assert.ErrorIs(t, g.AddEdge("A", "B", 2), digraph.ErrDuplicateEdge)
	assert.ErrorIs(t, g.AddVertex(""), digraph.ErrEmptyID)
}

func TestGraph_ProblemContract(t *testing.T) {
	g := digraph.New("A", "D")
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 5))
	require.NoError(t, g.AddEdge("B", "D", 5))

	assert.NoError(t, problem.Check[string, digraph.Edge](g))
	assert.Equal(t, "A", g.Start())
	assert.True(t, g.IsGoal("D"))
	assert.False(t, g.IsGoal("A"))
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())

	succ := g.Successors("A")
	require.Len(t, succ, 2)
	assert.Equal(t, "B", succ[0].State)
	assert.Equal(t, digraph.Edge{From: "A", To: "B"}, succ[0].Action)
	assert.Equal(t, 1.0, succ[0].Cost)
	assert.Equal(t, "C", succ[1].State)
	assert.Empty(t, g.Successors("D"))

	path := []digraph.Edge{{From: "A", To: "B"}, {From: "B", To: "D"}}
	assert.Equal(t, 6.0, g.ActionCost(path))
	assert.Equal(t, 0.0, g.ActionCost(nil))
	assert.True(t, math.IsInf(g.ActionCost([]digraph.Edge{{From: "B", To: "D"}}), 1))
	assert.True(t, math.IsInf(g.ActionCost([]digraph.Edge{{From: "A", To: "D"}}), 1))
}

func TestGraph_NoStart(t *testing.T) {
	g := digraph.New("")
	err := problem.Check[string, digraph.Edge](g)
	assert.ErrorIs(t, err, problem.ErrContractViolation)
	assert.ErrorIs(t, err, digraph.ErrNoStart)
}

func TestGraph_NilValidate(t *testing.T) {
	var g *digraph.Graph
	assert.NotPanics(t, func() {
		err := problem.Check[string, digraph.Edge](g)
		assert.ErrorIs(t, err, problem.ErrContractViolation)
	})
}

func TestEdge_String(t *testing.T) {
	assert.Equal(t, "A→B", digraph.Edge{From: "A", To: "B"}.String())
}
