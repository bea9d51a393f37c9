// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func all[T any](q Queue[T]) []T {
	var got []T
	for {
		x, ok := q.Pop()
		if !ok {
			break
		}
		got = append(got, x)
	}
	return got
}

func TestFIFO(t *testing.T) {
	diff := func(t *testing.T, got, want []int) {
		t.Helper()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%T.Pop() until !ok; diff (-want +got):\n%s", FIFO[int]{}, diff)
		}
	}

	t.Run("disjoint_Push_Pop", func(t *testing.T) {
		var q FIFO[int]

		var want []int
		for i := range 5 {
			q.Push(i)
			want = append(want, i)
		}
		diff(t, all[int](&q), want)
	})

	t.Run("interleaved_Push_Pop", func(t *testing.T) {
		var q FIFO[int]

		rng := rand.New(rand.NewPCG(0, 0)) //nolint:gosec // Reproducibility is useful in tests

		var got, want []int
		for i := range 1000 {
			q.Push(i)
			want = append(want, i)

			if rng.IntN(4) == 0 {
				x, ok := q.Pop()
				if ok {
					got = append(got, x)
				}
			}
		}

		got = append(got, all[int](&q)...)
		diff(t, got, want)
	})
}

func TestFIFOAgainstReferenceModel(t *testing.T) {
	var (
		q     FIFO[int]
		model []int
		ops   int
	)
	rng := rand.New(rand.NewPCG(0, 1)) //nolint:gosec // Reproducibility is useful in tests

	for i := range 10_000 {
		ops++
		if rng.IntN(3) == 0 {
			got, gotOK := q.Pop()
			var want int
			wantOK := len(model) > 0
			if wantOK {
				want, model = model[0], model[1:]
			}
			require.Equalf(t, wantOK, gotOK, "%T.Pop() ok after %d ops", q, ops)
			require.Equalf(t, want, got, "%T.Pop() after %d ops", q, ops)
		} else {
			q.Push(i)
			model = append(model, i)
		}

		require.Equal(t, len(model), q.Len(), "Len()")
		assert.Equal(t, q.Len(), q.incoming.len()+q.outgoing.len(), "Len() == len(incoming)+len(outgoing)")
		if i%97 == 0 {
			if diff := cmp.Diff(model, slices.Collect(q.All()), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("%T.All() diff (-reference +got):\n%s", q, diff)
			}
		}
	}
	assert.LessOrEqual(t, q.moves, ops, "total element moves between stacks")
}

func TestRefillOnlyWhenOutgoingEmpty(t *testing.T) {
	q := Of(1, 2)
	q.Push(3)
	q.Push(4)

	x, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, 1, x)
	assert.Equal(t, 0, q.moves, "elements moved while outgoing non-empty")
	assert.Equal(t, 2, q.incoming.len(), "incoming length")

	_, _ = q.Pop() // 2
	x, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, x)
	assert.Equal(t, 2, q.moves, "all of incoming moved at once")
	assert.Zero(t, q.incoming.len(), "incoming length after refill")
}

func TestPopEmpty(t *testing.T) {
	tests := []struct {
		name string
		q    *FIFO[string]
	}{
		{
			name: "zero_value",
			q:    new(FIFO[string]),
		},
		{
			name: "Of_nothing",
			q:    Of[string](),
		},
		{
			name: "drained",
			q: func() *FIFO[string] {
				q := Of("a", "b")
				q.Push("c")
				all[string](q)
				return q
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 3 {
				got, ok := tt.q.Pop()
				assert.False(t, ok, "Pop() ok")
				assert.Zero(t, got, "Pop() value")
				assert.Zero(t, tt.q.Len(), "Len()")
			}
			_, ok := tt.q.Peek()
			assert.False(t, ok, "Peek() ok")
		})
	}
}

func TestOf(t *testing.T) {
	in := []int{11, 12, 13, 14}
	q := Of(in...)
	in[0] = 0 // MUST NOT be reflected in the queue

	got, ok := q.Pop()
	require.True(t, ok, "first Pop() ok")
	require.Equal(t, 11, got, "first Pop()")

	if diff := cmp.Diff([]int{12, 13, 14}, all[int](q)); diff != "" {
		t.Errorf("draining remainder of Of(11,12,13,14); diff (-want +got):\n%s", diff)
	}
	_, ok = q.Pop()
	assert.False(t, ok, "Pop() after draining")
}

func TestOfEquivalentToPush(t *testing.T) {
	var pushed FIFO[int]
	for i := range 10 {
		pushed.Push(i)
	}
	lit := Of(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	if diff := cmp.Diff(&pushed, lit, CmpOpt[int]()); diff != "" {
		t.Errorf("Of() vs Push(); diff (-pushed +Of):\n%s", diff)
	}
	if diff := cmp.Diff(all[int](&pushed), all[int](lit)); diff != "" {
		t.Errorf("Pop() sequence of Of() vs Push(); diff (-pushed +Of):\n%s", diff)
	}
}

func TestClear(t *testing.T) {
	q := Of(1, 2, 3)
	q.Push(4)
	q.Clear()

	assert.Zero(t, q.Len(), "Len() after Clear()")
	_, ok := q.Pop()
	assert.False(t, ok, "Pop() after Clear()")

	q.Push(5)
	got, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 5, got, "Pop() after Clear() then Push()")
}

func TestGrow(t *testing.T) {
	var q FIFO[int]
	q.Grow(64)
	assert.GreaterOrEqual(t, cap(q.incoming.s), 64, "capacity after Grow(64)")
	assert.Zero(t, q.Len(), "Grow() MUST NOT add elements")
}

func TestString(t *testing.T) {
	q := Of(1, 2)
	q.Push(3)
	assert.Equal(t, "[1 2 3]", q.String())
	assert.Equal(t, "[]", new(FIFO[int]).String())
}
