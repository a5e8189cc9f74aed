// Package digraph provides an explicit weighted directed graph that is also a
// search problem: states are vertex IDs, actions are edges, and the goal test
// is membership in a set of goal vertices.
//
// Successors are returned in edge insertion order, so the order edges are
// added fixes the tie-breaking of every strategy.
//
// The graph is not safe for concurrent mutation. Searching it concurrently is
// safe once construction is finished.
package digraph

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/statespace/problem"
)

// Sentinel errors for graph construction.
var (
	// ErrEmptyID is returned when a vertex ID is empty.
	ErrEmptyID = errors.New("digraph: vertex ID is empty")

	// ErrNegativeCost is returned for a negative, NaN or infinite edge cost.
	ErrNegativeCost = errors.New("digraph: edge cost must be finite and non-negative")

	// ErrDuplicateEdge is returned when from→to already exists.
	ErrDuplicateEdge = errors.New("digraph: edge already exists")

	// ErrNoStart is reported by Validate when no start vertex is set.
	ErrNoStart = errors.New("digraph: start vertex not set")
)

// Edge is an action: move along From→To.
type Edge struct {
	From, To string
}

// String renders the edge as "From→To".
func (e Edge) String() string { return e.From + "→" + e.To }

// arc is one outgoing edge in an adjacency list.
type arc struct {
	to   string
	cost float64
}

// Graph is a weighted directed graph with a start vertex and goal vertices.
type Graph struct {
	start string
	goals map[string]bool
	adj   map[string][]arc
}

var _ problem.Problem[string, Edge] = (*Graph)(nil)

// New returns a graph searching from start towards any of goals.
// The start and goal vertices are added to the graph.
func New(start string, goals ...string) *Graph {
	g := &Graph{
		goals: make(map[string]bool, len(goals)),
		adj:   make(map[string][]arc),
	}
	if start != "" {
		_ = g.SetStart(start)
	}
	for _, id := range goals {
		_ = g.AddGoal(id) // empty IDs are skipped
	}

	return g
}

// AddVertex adds id with no edges. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyID
	}
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = nil
	}

	return nil
}

// SetStart sets the start vertex, adding it if needed.
func (g *Graph) SetStart(id string) error {
	if err := g.AddVertex(id); err != nil {
		return err
	}
	g.start = id

	return nil
}

// AddGoal marks id as a goal vertex, adding it if needed.
func (g *Graph) AddGoal(id string) error {
	if err := g.AddVertex(id); err != nil {
		return err
	}
	g.goals[id] = true

	return nil
}

// AddEdge adds the directed edge from→to with the given cost, creating both
// vertices if needed.
func (g *Graph) AddEdge(from, to string, cost float64) error {
	if from == "" || to == "" {
		return ErrEmptyID
	}
	if math.IsNaN(cost) || math.IsInf(cost, 0) || cost < 0 {
		return fmt.Errorf("%w: %s→%s cost=%g", ErrNegativeCost, from, to, cost)
	}
	if _, ok := g.Cost(from, to); ok {
		return fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, from, to)
	}
	_ = g.AddVertex(to)
	g.adj[from] = append(g.adj[from], arc{to: to, cost: cost})

	return nil
}

// Cost returns the cost of from→to and whether the edge exists.
func (g *Graph) Cost(from, to string) (float64, bool) {
	for _, a := range g.adj[from] {
		if a.to == to {
			return a.cost, true
		}
	}

	return 0, false
}

// Vertices returns all vertex IDs sorted ascending.
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Validate reports ErrNoStart when the start vertex is missing, and a
// contract violation for a nil graph.
func (g *Graph) Validate() error {
	if g == nil {
		return fmt.Errorf("%w: graph is nil", problem.ErrContractViolation)
	}
	if g.start == "" {
		return ErrNoStart
	}

	return nil
}

// Start returns the start vertex.
func (g *Graph) Start() string { return g.start }

// IsGoal reports whether id is a goal vertex.
func (g *Graph) IsGoal(id string) bool { return g.goals[id] }

// Successors returns the outgoing edges of id in insertion order.
func (g *Graph) Successors(id string) []problem.Transition[string, Edge] {
	arcs := g.adj[id]
	out := make([]problem.Transition[string, Edge], len(arcs))
	for i, a := range arcs {
		out[i] = problem.Transition[string, Edge]{
			State:  a.to,
			Action: Edge{From: id, To: a.to},
			Cost:   a.cost,
		}
	}

	return out
}

// ActionCost sums edge costs along actions walked from the start vertex.
// A sequence that leaves the graph or is not connected costs +Inf.
func (g *Graph) ActionCost(actions []Edge) float64 {
	cur := g.start
	var total float64
	for _, e := range actions {
		if e.From != cur {
			return math.Inf(1)
		}
		c, ok := g.Cost(e.From, e.To)
		if !ok {
			return math.Inf(1)
		}
		total += c
		cur = e.To
	}

	return total
}
