// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package collection

// An IndexingIterator is a one-shot [Iterator] over an [Indexed] collection.
// It reads positions without mutating the collection, so any number of
// IndexingIterators can traverse the same collection independently.
//
// The collection MUST NOT be modified while the iterator is in use.
type IndexingIterator[T any] struct {
	c    Indexed[T]
	next int
	done bool
}

var _ Iterator[int] = (*IndexingIterator[int])(nil)

// NewIndexingIterator returns an iterator starting at `c.StartIndex()`.
func NewIndexingIterator[T any](c Indexed[T]) *IndexingIterator[T] {
	return &IndexingIterator[T]{
		c:    c,
		next: c.StartIndex(),
	}
}

// Next implements [Iterator].
func (it *IndexingIterator[T]) Next() (T, bool) {
	if it.done || it.next == it.c.EndIndex() {
		it.done = true
		var zero T
		return zero, false
	}
	x := it.c.At(it.next)
	it.next = it.c.IndexAfter(it.next)
	return x, true
}
