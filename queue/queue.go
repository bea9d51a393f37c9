// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package queue implements a first-in-first-out queue built from two stacks,
// with amortised constant-time pushing and popping. The queue is also an
// [collection.Indexed] collection, addressable by position in FIFO order
// without being consumed.
package queue

import (
	"fmt"
	"iter"
	"slices"

	"github.com/wanqingrongruo/RNCollection/collection"
)

// A Queue is a FIFO container.
type Queue[T any] interface {
	// Push adds an element to the back of the queue.
	Push(T)
	// Pop removes and returns the element at the front of the queue. If the
	// queue is empty, it returns the zero value and false.
	Pop() (T, bool)
}

var (
	_ Queue[int]               = (*FIFO[int])(nil)
	_ collection.Indexed[int]  = (*FIFO[int])(nil)
	_ collection.Sequence[int] = (*FIFO[int])(nil)
)

// A FIFO is a queue over two stacks. Pushed elements are placed on `incoming`
// and popped from `outgoing`; `outgoing` is only refilled, by moving the whole
// of `incoming` onto it, when a pop finds it empty. Every element is therefore
// moved at most once, which is the source of the amortised O(1) cost.
//
// The logical contents, front to back, are always `reverse(outgoing)`
// followed by `incoming`.
//
// The zero value is an empty queue ready for use. A FIFO is not safe for
// concurrent use; see [Locked].
type FIFO[T any] struct {
	incoming stack[T] // push order; bottom is oldest
	outgoing stack[T] // reverse pop order; top is the front of the queue
	moves    int      // elements ever moved from incoming to outgoing
}

// Of returns a queue holding `elems`, with `elems[0]` at the front. It is
// equivalent to pushing each element in order, but places them directly in
// the queue's pop-ready storage. `elems` is not retained.
func Of[T any](elems ...T) *FIFO[T] {
	q := new(FIFO[T])
	q.outgoing.s = slices.Clone(elems)
	slices.Reverse(q.outgoing.s)
	return q
}

// Len returns the number of elements in the queue.
func (q *FIFO[T]) Len() int {
	return q.incoming.len() + q.outgoing.len()
}

// Push adds `x` to the back of the queue.
func (q *FIFO[T]) Push(x T) {
	q.incoming.push(x)
}

// Pop removes and returns the element at the front of the queue. If the queue
// is empty, it returns the zero value and false, and has no other effect.
func (q *FIFO[T]) Pop() (T, bool) {
	if q.outgoing.len() == 0 {
		q.moves += q.outgoing.popAllFrom(&q.incoming)
	}
	if q.outgoing.len() == 0 {
		var zero T
		return zero, false
	}
	return q.outgoing.pop(), true
}

// Peek returns the element at the front of the queue without removing it, or
// the zero value and false if the queue is empty. Unlike [FIFO.Pop], it never
// moves elements between the internal stacks.
func (q *FIFO[T]) Peek() (T, bool) {
	return collection.First[T](q)
}

// Grow pre-allocates space for `n` more pushes. It does not limit the size of
// the queue.
func (q *FIFO[T]) Grow(n int) {
	q.incoming.grow(n)
}

// Clear removes all elements from the queue.
func (q *FIFO[T]) Clear() {
	q.incoming.reset()
	q.outgoing.reset()
}

// StartIndex returns the position of the front of the queue, which is always
// 0.
func (q *FIFO[T]) StartIndex() int {
	return 0
}

// EndIndex returns the position one past the back of the queue, which is
// equal to [FIFO.Len].
func (q *FIFO[T]) EndIndex() int {
	return q.Len()
}

// IndexAfter returns `i+1`. It panics with an error wrapping
// [collection.ErrOutOfRange] unless `i` is a valid position.
func (q *FIFO[T]) IndexAfter(i int) int {
	collection.CheckIndexAfter(i, q.StartIndex(), q.EndIndex())
	return i + 1
}

// At returns the element at position `i`, counting from 0 at the front of the
// queue. It panics with an error wrapping [collection.ErrOutOfRange] unless
// `i` is in `[0, q.Len())`. At never modifies the queue.
func (q *FIFO[T]) At(i int) T {
	collection.CheckIndex(i, q.StartIndex(), q.EndIndex())
	n := q.outgoing.len()
	if i < n {
		return q.outgoing.peekFromTop(i)
	}
	return q.incoming.peekAt(i - n)
}

// All returns an iterator over the queue's elements, front to back, without
// consuming them. The queue MUST NOT be modified during iteration.
func (q *FIFO[T]) All() iter.Seq[T] {
	return collection.All[T](q)
}

// MakeIterator returns a fresh cursor over the queue's elements, front to
// back. Reading from it does not pop from the queue.
func (q *FIFO[T]) MakeIterator() collection.Iterator[T] {
	return collection.NewIndexingIterator[T](q)
}

// String formats the queue's elements, front to back, like a slice.
func (q *FIFO[T]) String() string {
	return fmt.Sprint(slices.Collect(q.All()))
}
