// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package collection

import "iter"

// IsEmpty reports whether `c` has no elements.
func IsEmpty[T any](c Indexed[T]) bool {
	return c.StartIndex() == c.EndIndex()
}

// Count returns the number of elements in `c` by walking from its start to
// its end with [Indexed.IndexAfter]. It is O(n).
func Count[T any](c Indexed[T]) int {
	var n int
	for i, end := c.StartIndex(), c.EndIndex(); i != end; i = c.IndexAfter(i) {
		n++
	}
	return n
}

// First returns the first element of `c` and true, or the zero value and
// false if `c` is empty.
func First[T any](c Indexed[T]) (T, bool) {
	if IsEmpty(c) {
		var zero T
		return zero, false
	}
	return c.At(c.StartIndex()), true
}

// All returns an iterator over the elements of `c`, in order. Every call to
// the returned function starts again from [Indexed.StartIndex].
func All[T any](c Indexed[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, end := c.StartIndex(), c.EndIndex(); i != end; i = c.IndexAfter(i) {
			if !yield(c.At(i)) {
				return
			}
		}
	}
}

// Map returns the result of applying `fn` to every element of `c`, in order.
func Map[T, U any](c Indexed[T], fn func(T) U) []U {
	out := make([]U, 0, c.EndIndex()-c.StartIndex())
	for x := range All(c) {
		out = append(out, fn(x))
	}
	return out
}

// AppendTo appends all elements of `c` to `dst` and returns the extended
// slice.
func AppendTo[T any](dst []T, c Indexed[T]) []T {
	for x := range All(c) {
		dst = append(dst, x)
	}
	return dst
}

// Collect drains `it`, returning every remaining element. It never returns if
// `it` is infinite; see [Take].
func Collect[T any](it Iterator[T]) []T {
	var out []T
	for {
		x, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, x)
	}
}

// Take consumes and returns up to `n` elements from `it`. Fewer are returned
// only if `it` is exhausted first.
func Take[T any](it Iterator[T], n int) []T {
	out := make([]T, 0, max(n, 0))
	for range n {
		x, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, x)
	}
	return out
}

// Seq adapts `it` to an [iter.Seq]. Elements are consumed from `it` as they
// are yielded so, unlike [All], the result can only be ranged over once.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			x, ok := it.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}
