// Package gridworld treats a rectangular text maze as a search problem.
//
// What:
//
//   - Maze is parsed from rows of text:
//     '%' wall, 'P' start, '.' goal, ' ' open cell (cost 1),
//     '1'..'9' open cell whose entry cost is the digit.
//   - States are Pos{X, Y} (Y grows downwards); actions are North, South,
//     East and West, generated in that order.
//   - Entering a cell costs the cell's entry cost; ActionCost replays moves
//     from the start and returns +Inf for a move into a wall or off the grid.
//   - Manhattan and Euclidean are admissible heuristics: the distance to the
//     nearest goal times the cheapest entry cost in the maze.
//
// Why:
//
//   - Small, readable fixtures for the strategies in package search.
//   - Weighted cells let uniform-cost and A* diverge from breadth-first.
//
// Errors:
//
//   - ErrEmptyGrid:      no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrUnknownCell:    a character outside the legend.
//   - ErrNoStart:        no 'P', or more than one.
//   - ErrNoGoal:         no '.'.
package gridworld
