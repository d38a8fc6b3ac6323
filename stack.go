// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duplex

// Stack is a slice-backed LIFO sequence. The top of the stack is the end
// of the slice, so Push and Pop are O(1) amortized.
//
// Stack is not synchronized. It is the building block of Queue, which owns
// its two stacks exclusively and serializes access under its own mutex.
//
// The zero value is an empty stack ready for use.
type Stack[T any] struct {
	buf []T
}

// Push adds an element to the top of the stack.
// The element is passed by pointer to avoid copying large structs;
// the stack stores a copy of the pointed-to value.
func (s *Stack[T]) Push(elem *T) {
	s.buf = append(s.buf, *elem)
}

// Pop removes and returns the top element.
// Returns (zero-value, ErrWouldBlock) if the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	n := len(s.buf)
	if n == 0 {
		var zero T
		return zero, ErrWouldBlock
	}
	elem := s.buf[n-1]
	var zero T
	s.buf[n-1] = zero // release the slot for GC
	s.buf = s.buf[:n-1]
	return elem, nil
}

// Peek returns the top element without removing it.
// Returns (zero-value, ErrWouldBlock) if the stack is empty.
// Pop returns the same element Peek reported, absent intervening mutation.
func (s *Stack[T]) Peek() (T, error) {
	n := len(s.buf)
	if n == 0 {
		var zero T
		return zero, ErrWouldBlock
	}
	return s.buf[n-1], nil
}

// Clear resets the stack to empty, releasing carried values but keeping
// the underlying buffer for reuse.
func (s *Stack[T]) Clear() {
	var zero T
	for i := range s.buf {
		s.buf[i] = zero
	}
	s.buf = s.buf[:0]
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return len(s.buf)
}
