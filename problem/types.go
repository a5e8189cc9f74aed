// Package problem provides the search problem contract, transitions,
// heuristics and the sentinel errors shared across statespace.
package problem

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for problem contract enforcement.
var (
	// ErrContractViolation indicates a Problem or Heuristic failed to supply a
	// required operation, or returned a value outside its contract.
	ErrContractViolation = errors.New("problem: contract violation")

	// ErrMalformedTransition indicates a successor entry does not describe a
	// valid (state, action, non-negative cost) triple.
	ErrMalformedTransition = errors.New("problem: malformed transition")

	// ErrIllegalAction is returned by Replay when no successor of the current
	// state is reached by the requested action.
	ErrIllegalAction = errors.New("problem: illegal action")
)

// Problem describes a search problem over states S and actions A.
// All methods are pure queries; a search never mutates a state.
type Problem[S comparable, A any] interface {
	// Start returns the initial state.
	Start() S

	// IsGoal reports whether state satisfies the goal test. It must return
	// the same answer for the same state within one search.
	IsGoal(state S) bool

	// Successors returns the transitions leaving state. An empty slice marks a
	// dead end. The order fixes tie-breaking: earlier entries win ties.
	Successors(state S) []Transition[S, A]

	// ActionCost returns the total cost of replaying actions from Start.
	// For any path a search generates it must equal the sum of step costs.
	ActionCost(actions []A) float64
}

// Transition is one edge of the state-space graph.
type Transition[S comparable, A any] struct {
	State  S       // successor state
	Action A       // action leading to State
	Cost   float64 // step cost, must be non-negative and finite
}

// Heuristic estimates the remaining cost from state to the nearest goal.
// It must be pure and return a non-negative number.
type Heuristic[S comparable, A any] func(state S, p Problem[S, A]) float64

// Zero is the trivial heuristic. It always returns 0.
func Zero[S comparable, A any](S, Problem[S, A]) float64 {
	return 0
}

// Validator is implemented by problems that can report missing operations
// before a search starts.
type Validator interface {
	Validate() error
}

// Check verifies that p can be searched: it must be non-nil and, if it
// implements Validator, Validate must succeed.
func Check[S comparable, A any](p Problem[S, A]) error {
	if p == nil {
		return fmt.Errorf("%w: problem is nil", ErrContractViolation)
	}
	if v, ok := p.(Validator); ok {
		if err := v.Validate(); err != nil {
			if errors.Is(err, ErrContractViolation) {
				return err
			}

			return fmt.Errorf("%w: %w", ErrContractViolation, err)
		}
	}

	return nil
}

// CheckTransition returns ErrMalformedTransition when t's step cost is
// negative, NaN or infinite.
func CheckTransition[S comparable, A any](t Transition[S, A]) error {
	switch {
	case math.IsNaN(t.Cost):
		return fmt.Errorf("%w: step cost to %v is NaN", ErrMalformedTransition, t.State)
	case math.IsInf(t.Cost, 0):
		return fmt.Errorf("%w: step cost to %v is infinite", ErrMalformedTransition, t.State)
	case t.Cost < 0:
		return fmt.Errorf("%w: step cost to %v is negative (%g)", ErrMalformedTransition, t.State, t.Cost)
	}

	return nil
}

// CheckCost returns ErrContractViolation when a value produced by ActionCost
// or a Heuristic is negative or NaN. what names the producer in the message.
func CheckCost(what string, v float64) error {
	if math.IsNaN(v) || v < 0 {
		return fmt.Errorf("%w: %s returned %g", ErrContractViolation, what, v)
	}

	return nil
}
