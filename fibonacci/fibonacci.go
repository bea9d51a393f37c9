// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fibonacci provides cursors over the Fibonacci sequence F(0)=0,
// F(1)=1, F(n)=F(n-1)+F(n-2), implementing [collection.Iterator].
package fibonacci

import (
	"github.com/holiman/uint256"
	"golang.org/x/exp/constraints"

	"github.com/wanqingrongruo/RNCollection/collection"
)

var (
	_ collection.Sequence[*uint256.Int] = Sequence{}
	_ collection.Sequence[uint64]       = BoundedSequence[uint64]{}
)

// An Iterator is an infinite cursor over the Fibonacci sequence. Terms are
// computed modulo 2^256, which is exact up to and including F(370); see
// [Iterator.Wrapped].
type Iterator struct {
	a, b               uint256.Int // F(n), F(n+1)
	aWrapped, bWrapped bool
	lastWrapped        bool
	n                  uint64
}

// New returns an [Iterator] whose first term is F(0).
func New() *Iterator {
	it := new(Iterator)
	it.b.SetOne()
	return it
}

// Next returns the next term of the sequence. The returned value is owned by
// the caller. The boolean is always true.
func (it *Iterator) Next() (*uint256.Int, bool) {
	v := it.a.Clone()
	it.lastWrapped = it.aWrapped

	var c uint256.Int
	_, overflow := c.AddOverflow(&it.a, &it.b)
	cWrapped := overflow || it.bWrapped

	it.a, it.b = it.b, c
	it.aWrapped, it.bWrapped = it.bWrapped, cWrapped
	it.n++
	return v, true
}

// Wrapped reports whether the term most recently returned by [Iterator.Next]
// was reduced modulo 2^256, in which case it is not the true Fibonacci
// number. Once true, it remains true.
func (it *Iterator) Wrapped() bool {
	return it.lastWrapped
}

// Index returns the number of terms returned so far, which is also the index
// of the next term.
func (it *Iterator) Index() uint64 {
	return it.n
}

// A Sequence is the Fibonacci sequence. Every call to MakeIterator starts
// again from F(0).
type Sequence struct{}

// MakeIterator returns [New].
func (Sequence) MakeIterator() collection.Iterator[*uint256.Int] {
	return New()
}

// A Bounded cursor yields the Fibonacci numbers representable by `T`, after
// which it is exhausted.
type Bounded[T constraints.Unsigned] struct {
	a, b     T
	aOK, bOK bool
}

// NewBounded returns a [Bounded] cursor whose first term is F(0).
func NewBounded[T constraints.Unsigned]() *Bounded[T] {
	return &Bounded[T]{
		b:   1,
		aOK: true,
		bOK: true,
	}
}

// Next returns the next term of the sequence, or false if the next term would
// overflow `T`.
func (it *Bounded[T]) Next() (T, bool) {
	if !it.aOK {
		return 0, false
	}
	v := it.a

	c := it.a + it.b
	cOK := it.bOK && c >= it.b // unsigned addition wrapped iff the sum is smaller than an addend

	it.a, it.b = it.b, c
	it.aOK, it.bOK = it.bOK, cOK
	return v, true
}

// A BoundedSequence is the Fibonacci sequence truncated to the terms
// representable by `T`.
type BoundedSequence[T constraints.Unsigned] struct{}

// MakeIterator returns [NewBounded].
func (BoundedSequence[T]) MakeIterator() collection.Iterator[T] {
	return NewBounded[T]()
}

// Uint64s returns the first `n` Fibonacci numbers, or all 94 that fit in a
// uint64 if `n` is larger.
func Uint64s(n int) []uint64 {
	return collection.Take[uint64](NewBounded[uint64](), n)
}
