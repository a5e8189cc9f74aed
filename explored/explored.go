// Package explored provides the closed set of a search: the states that have
// already been expanded (or, for breadth-first search, already enqueued).
//
// Membership only grows during one search. There is no Remove:
// once a state is in the set it is never expanded again.
package explored

// Set is an insertion-ordered set of states. The zero value is empty and
// ready to use.
type Set[S comparable] struct {
	seen  map[S]struct{}
	order []S
}

// New returns an empty set with room for capacity states.
func New[S comparable](capacity int) *Set[S] {
	return &Set[S]{
		seen:  make(map[S]struct{}, capacity),
		order: make([]S, 0, capacity),
	}
}

// Add inserts s and reports whether it was not already present.
func (x *Set[S]) Add(s S) bool {
	if x.seen == nil {
		x.seen = make(map[S]struct{})
	}
	if _, ok := x.seen[s]; ok {
		return false
	}
	x.seen[s] = struct{}{}
	x.order = append(x.order, s)

	return true
}

// Has reports whether s is in the set.
func (x *Set[S]) Has(s S) bool {
	_, ok := x.seen[s]

	return ok
}

// Len returns the number of states in the set.
func (x *Set[S]) Len() int { return len(x.order) }

// Members returns a copy of the states in insertion order.
func (x *Set[S]) Members() []S {
	out := make([]S, len(x.order))
	copy(out, x.order)

	return out
}
