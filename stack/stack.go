// Package stack provides a generic LIFO container used to hold pending work
// in place of call stack recursion
package stack

// Stack is a last-in first-out list of values backed by a slice
type Stack[E any] struct {
	items []E
	high  int
}

// New creates an empty Stack with room for sizeHint values before growing
func New[E any](sizeHint int) *Stack[E] {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Stack[E]{items: make([]E, 0, sizeHint)}
}

// Len returns the number of values on the stack
func (s *Stack[E]) Len() int {
	return len(s.items)
}

// HighWater returns the largest Len the stack has reached
func (s *Stack[E]) HighWater() int {
	return s.high
}

// Push adds x to the top of the stack
func (s *Stack[E]) Push(x E) {
	s.items = append(s.items, x)
	if len(s.items) > s.high {
		s.high = len(s.items)
	}
}

// Pop removes and returns the top value.
// ok is false when the stack is empty.
func (s *Stack[E]) Pop() (x E, ok bool) {
	n := len(s.items)
	if n == 0 {
		return x, false
	}
	x = s.items[n-1]
	var zero E
	s.items[n-1] = zero // release the reference held by the backing array
	s.items = s.items[:n-1]
	return x, true
}
