// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package collection defines the minimal iteration contracts shared by the
// module's containers and generators, along with operations derived purely
// from them.
//
// Two styles of traversal are supported. An [Iterator] is a one-shot cursor
// that is consumed as it is read. An [Indexed] collection is addressed by
// position and can be traversed any number of times without being consumed.
package collection

import (
	"errors"
	"fmt"
)

// An Iterator is a one-shot cursor. Next returns the next element and true,
// or the zero value and false once the underlying sequence is exhausted.
// Implementations that can end MUST keep returning false after the first
// false. Infinite iterators never return false.
type Iterator[T any] interface {
	Next() (T, bool)
}

// A Sequence can produce fresh [Iterator]s over its elements.
type Sequence[T any] interface {
	MakeIterator() Iterator[T]
}

// An Indexed collection exposes forward, position-based access to its
// elements. Valid positions are in `[StartIndex(), EndIndex())`.
//
// IndexAfter(i) MUST panic with an error wrapping [ErrOutOfRange] if `i` is
// not a valid position, and so MUST At(i). Neither may mutate the collection.
type Indexed[T any] interface {
	StartIndex() int
	EndIndex() int
	IndexAfter(i int) int
	At(i int) T
}

// ErrOutOfRange is the error wrapped by panics raised when an [Indexed]
// collection is accessed at an invalid position.
var ErrOutOfRange = errors.New("index out of range")

// CheckIndex panics with an error wrapping [ErrOutOfRange] if `i` is not in
// `[start, end)`.
func CheckIndex(i, start, end int) {
	if i < start || i >= end {
		panic(fmt.Errorf("%w: %d not in [%d,%d)", ErrOutOfRange, i, start, end))
	}
}

// CheckIndexAfter panics with an error wrapping [ErrOutOfRange] if there is
// no position after `i`, i.e. if `i` is not in `[start, end)`.
func CheckIndexAfter(i, start, end int) {
	if i < start || i >= end {
		panic(fmt.Errorf("%w: no index after %d in [%d,%d)", ErrOutOfRange, i, start, end))
	}
}
