// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import "slices"

// A stack is a slice-backed LIFO with amortised constant-time pushing and
// constant-time popping. The zero value is an empty stack.
type stack[T any] struct {
	s []T
}

// len returns the number of elements in the stack.
func (s *stack[T]) len() int {
	return len(s.s)
}

func (s *stack[T]) push(x T) {
	s.s = append(s.s, x)
}

// pop removes and returns the top element of the stack. It panics if the
// stack is empty.
func (s *stack[T]) pop() T {
	n := len(s.s)
	if n == 0 {
		panic("pop from empty stack")
	}
	x := s.s[n-1]
	var zero T
	s.s[n-1] = zero // don't retain references beyond the stack's length
	s.s = s.s[:n-1]
	return x
}

// peekAt returns the i'th element from the bottom of the stack. Like indexing
// a slice, it panics if `i` is not in `[0,s.len())`.
func (s *stack[T]) peekAt(i int) T {
	return s.s[i]
}

// peekFromTop returns the i'th element from the top of the stack, i.e.
// `peekFromTop(0)` is the element that [stack.pop] would return.
func (s *stack[T]) peekFromTop(i int) T {
	return s.s[len(s.s)-1-i]
}

// popAllFrom pops every element of `from`, pushing each onto `s`, and returns
// the number of elements moved. The elements therefore end up on `s` in the
// reverse of their order on `from`, and `from` is left empty. It is
// O(from.len()).
func (s *stack[T]) popAllFrom(from *stack[T]) int {
	n := from.len()
	s.grow(n)
	for range n {
		s.push(from.pop())
	}
	return n
}

// grow ensures that at least `n` more elements can be pushed without
// reallocation.
func (s *stack[T]) grow(n int) {
	s.s = slices.Grow(s.s, n)
}

// reset empties the stack, keeping its allocated buffer.
func (s *stack[T]) reset() {
	clear(s.s)
	s.s = s.s[:0]
}
