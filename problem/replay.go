package problem

import "fmt"

// Replay walks actions from p.Start() through p.Successors. At every step it
// follows the first transition whose action equals the requested one, which
// matches the tie-break order the strategies use.
//
// It returns the final state and the sum of step costs along the walk, or
// ErrIllegalAction when a step has no matching transition. An empty sequence
// yields the start state and zero cost.
func Replay[S comparable, A comparable](p Problem[S, A], actions []A) (S, float64, error) {
	var zero S
	if err := Check(p); err != nil {
		return zero, 0, err
	}

	state := p.Start()
	var total float64
	for i, a := range actions {
		moved := false
		for _, t := range p.Successors(state) {
			if t.Action != a {
				continue
			}
			if err := CheckTransition(t); err != nil {
				return zero, 0, err
			}
			state = t.State
			total += t.Cost
			moved = true
			break
		}
		if !moved {
			return zero, 0, fmt.Errorf("%w: step %d (%v) from %v", ErrIllegalAction, i, a, state)
		}
	}

	return state, total, nil
}
