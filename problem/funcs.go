package problem

import (
	"fmt"
	"strings"
)

// Funcs adapts plain functions to the Problem interface. Every field is
// required; Validate reports the missing ones and calling a method whose
// function is nil panics with ErrContractViolation. No default is ever
// substituted.
type Funcs[S comparable, A any] struct {
	StartFn      func() S
	IsGoalFn     func(state S) bool
	SuccessorsFn func(state S) []Transition[S, A]
	ActionCostFn func(actions []A) float64
}

// Validate returns ErrContractViolation listing every nil function field.
func (f Funcs[S, A]) Validate() error {
	var missing []string
	if f.StartFn == nil {
		missing = append(missing, "Start")
	}
	if f.IsGoalFn == nil {
		missing = append(missing, "IsGoal")
	}
	if f.SuccessorsFn == nil {
		missing = append(missing, "Successors")
	}
	if f.ActionCostFn == nil {
		missing = append(missing, "ActionCost")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: not implemented: %s", ErrContractViolation, strings.Join(missing, ", "))
	}

	return nil
}

// Start calls StartFn.
func (f Funcs[S, A]) Start() S {
	if f.StartFn == nil {
		notImplemented("Start")
	}

	return f.StartFn()
}

// IsGoal calls IsGoalFn.
func (f Funcs[S, A]) IsGoal(state S) bool {
	if f.IsGoalFn == nil {
		notImplemented("IsGoal")
	}

	return f.IsGoalFn(state)
}

// Successors calls SuccessorsFn.
func (f Funcs[S, A]) Successors(state S) []Transition[S, A] {
	if f.SuccessorsFn == nil {
		notImplemented("Successors")
	}

	return f.SuccessorsFn(state)
}

// ActionCost calls ActionCostFn.
func (f Funcs[S, A]) ActionCost(actions []A) float64 {
	if f.ActionCostFn == nil {
		notImplemented("ActionCost")
	}

	return f.ActionCostFn(actions)
}

func notImplemented(op string) {
	panic(fmt.Errorf("%w: %s not implemented", ErrContractViolation, op))
}
