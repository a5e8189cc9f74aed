// Package gridworld defines positions, directions and sentinel errors.
package gridworld

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridworld: maze must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridworld: all rows must have the same length")
	// ErrUnknownCell indicates a character outside the maze legend.
	ErrUnknownCell = errors.New("gridworld: unknown cell character")
	// ErrNoStart indicates the maze has no start cell or more than one.
	ErrNoStart = errors.New("gridworld: maze must have exactly one start 'P'")
	// ErrNoGoal indicates the maze has no goal cell.
	ErrNoGoal = errors.New("gridworld: maze must have at least one goal '.'")
)

// Legend characters.
const (
	Wall  = '%'
	Start = 'P'
	Goal  = '.'
	Open  = ' '
)

// Pos is a cell coordinate. X grows to the east, Y to the south.
type Pos struct {
	X, Y int
}

// String formats the position as "(x,y)".
func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Dir is a move between orthogonally adjacent cells.
type Dir string

// Directions in successor order.
const (
	North Dir = "North"
	South Dir = "South"
	East  Dir = "East"
	West  Dir = "West"
)

// directions fixes the successor order; offsets are {dx, dy}.
var directions = [...]struct {
	dir    Dir
	dx, dy int
}{
	{North, 0, -1},
	{South, 0, 1},
	{East, 1, 0},
	{West, -1, 0},
}

// Offset returns the {dx, dy} step of d, and false for an unknown direction.
func (d Dir) Offset() (dx, dy int, ok bool) {
	for _, m := range directions {
		if m.dir == d {
			return m.dx, m.dy, true
		}
	}

	return 0, 0, false
}
