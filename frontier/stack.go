package frontier

// Stack is a LIFO container. The zero value is an empty stack.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack with room for capacity items.
func NewStack[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push adds v on top.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the most recently pushed item.
// ok is false when the stack is empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return v, false
	}
	v = s.items[n-1]
	var zero T
	s.items[n-1] = zero // release reference
	s.items = s.items[:n-1]

	return v, true
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}

	return s.items[len(s.items)-1], true
}

// Len returns the number of items.
func (s *Stack[T]) Len() int { return len(s.items) }

// Empty reports whether the stack holds no items.
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }
