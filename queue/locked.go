// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import (
	"slices"
	"sync"
)

// A Locked queue wraps a [FIFO] with a mutex, making it safe for concurrent
// use. Readers that don't move elements between the FIFO's internal stacks
// share a read lock.
type Locked[T any] struct {
	mu sync.RWMutex
	q  FIFO[T]
}

var _ Queue[int] = (*Locked[int])(nil)

// NewLocked constructs a new [Locked] queue holding `elems`, front first.
func NewLocked[T any](elems ...T) *Locked[T] {
	return &Locked[T]{q: *Of(elems...)}
}

// Push is equivalent to [FIFO.Push].
func (l *Locked[T]) Push(x T) {
	l.mu.Lock()
	l.q.Push(x)
	l.mu.Unlock()
}

// Pop is equivalent to [FIFO.Pop].
func (l *Locked[T]) Pop() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Pop()
}

// Len is equivalent to [FIFO.Len].
func (l *Locked[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.q.Len()
}

// Peek is equivalent to [FIFO.Peek].
func (l *Locked[T]) Peek() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.q.Peek()
}

// Snapshot returns a copy of the queue's elements, front to back.
func (l *Locked[T]) Snapshot() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Collect(l.q.All())
}
