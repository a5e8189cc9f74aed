// Package problem defines the contract a caller implements to describe a
// state-space search problem, together with the heuristic signature consumed
// by informed strategies and the sentinel errors shared by the whole module.
//
// What
//
//   - Problem[S, A]: Start, IsGoal, Successors and ActionCost.
//   - Transition[S, A]: one (successor state, action, step cost) triple.
//   - Heuristic[S, A]: estimate of the remaining cost from a state to a goal.
//   - Zero: the trivial heuristic; best-first search with Zero behaves exactly
//     like uniform-cost search.
//   - Funcs[S, A]: adapts four plain functions to the Problem interface.
//   - Replay: walks an action sequence from the start state through Successors.
//
// States
//
//	S must be comparable. Equality of S is state identity: it keys the
//	explored set and frontier de-duplication, so two values describing the
//	same configuration must compare equal.
//
// Errors
//
//   - ErrContractViolation   a required operation is missing, or an operation
//     returned a value outside its contract (negative or NaN cost/estimate).
//   - ErrMalformedTransition a successor carries a negative, NaN or infinite
//     step cost.
//   - ErrIllegalAction       Replay found no transition for a requested action.
//
// Heuristics are never checked for admissibility. A heuristic that overestimates
// silently degrades the optimality of best-first search; that is the caller's
// risk, not a fault.
package problem
