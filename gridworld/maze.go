package gridworld

import (
	"fmt"
	"math"

	"github.com/katalvlaran/statespace/problem"
)

// Maze is an immutable grid search problem. Build it with Parse.
// costs[y][x] is the entry cost of an open cell, or 0 for a wall.
type Maze struct {
	width, height int
	start         Pos
	goals         map[Pos]bool
	goalList      []Pos // goals in row-major order
	costs         [][]float64
	minCost       float64 // cheapest entry cost of any open cell
}

var _ problem.Problem[Pos, Dir] = (*Maze)(nil)

// Parse builds a Maze from text rows. See the package documentation for the
// legend. Complexity: O(W×H).
func Parse(rows []string) (*Maze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	m := &Maze{
		width:   w,
		height:  h,
		goals:   make(map[Pos]bool),
		costs:   make([][]float64, h),
		minCost: math.Inf(1),
	}
	starts := 0
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		m.costs[y] = make([]float64, w)
		for x := 0; x < w; x++ {
			c := row[x]
			cost := 1.0
			switch {
			case c == Wall:
				continue
			case c == Start:
				m.start = Pos{x, y}
				starts++
			case c == Goal:
				m.goals[Pos{x, y}] = true
				m.goalList = append(m.goalList, Pos{x, y})
			case c == Open:
			case c >= '1' && c <= '9':
				cost = float64(c - '0')
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownCell, c, x, y)
			}
			m.costs[y][x] = cost
			m.minCost = math.Min(m.minCost, cost)
		}
	}
	if starts != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrNoStart, starts)
	}
	if len(m.goals) == 0 {
		return nil, ErrNoGoal
	}

	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// InBounds reports whether p lies within the grid.
func (m *Maze) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// IsWall reports whether p is a wall or outside the grid.
func (m *Maze) IsWall(p Pos) bool {
	return !m.InBounds(p) || m.costs[p.Y][p.X] == 0
}

// Goals returns the goal cells in row-major order.
func (m *Maze) Goals() []Pos {
	out := make([]Pos, len(m.goalList))
	copy(out, m.goalList)

	return out
}

// Start returns the start cell.
func (m *Maze) Start() Pos { return m.start }

// IsGoal reports whether p is a goal cell.
func (m *Maze) IsGoal(p Pos) bool { return m.goals[p] }

// Successors returns the open neighbours of p in North, South, East, West
// order, each costing the entry cost of the neighbour.
func (m *Maze) Successors(p Pos) []problem.Transition[Pos, Dir] {
	out := make([]problem.Transition[Pos, Dir], 0, len(directions))
	for _, d := range directions {
		next := Pos{p.X + d.dx, p.Y + d.dy}
		if m.IsWall(next) {
			continue
		}
		out = append(out, problem.Transition[Pos, Dir]{
			State:  next,
			Action: d.dir,
			Cost:   m.costs[next.Y][next.X],
		})
	}

	return out
}

// ActionCost replays actions from the start and sums entry costs. A move into
// a wall, off the grid, or an unknown direction makes the sequence cost +Inf.
func (m *Maze) ActionCost(actions []Dir) float64 {
	p := m.start
	var total float64
	for _, a := range actions {
		dx, dy, ok := a.Offset()
		if !ok {
			return math.Inf(1)
		}
		p = Pos{p.X + dx, p.Y + dy}
		if m.IsWall(p) {
			return math.Inf(1)
		}
		total += m.costs[p.Y][p.X]
	}

	return total
}

// Manhattan returns the Manhattan distance from p to the nearest goal scaled by
// the cheapest entry cost. It returns 0 when pr is not a *Maze.
func Manhattan(p Pos, pr problem.Problem[Pos, Dir]) float64 {
	m, ok := pr.(*Maze)
	if !ok {
		return 0
	}
	best := math.Inf(1)
	for _, g := range m.goalList {
		d := math.Abs(float64(p.X-g.X)) + math.Abs(float64(p.Y-g.Y))
		best = math.Min(best, d)
	}

	return best * m.minCost
}

// Euclidean returns the straight-line distance from p to the nearest goal
// scaled by the cheapest entry cost. It returns 0 when pr is not a *Maze.
func Euclidean(p Pos, pr problem.Problem[Pos, Dir]) float64 {
	m, ok := pr.(*Maze)
	if !ok {
		return 0
	}
	best := math.Inf(1)
	for _, g := range m.goalList {
		best = math.Min(best, math.Hypot(float64(p.X-g.X), float64(p.Y-g.Y)))
	}

	return best * m.minCost
}
