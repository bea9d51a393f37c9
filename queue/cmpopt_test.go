// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCmpOpt(t *testing.T) {
	pushed := func(xs ...int) *FIFO[int] {
		q := new(FIFO[int])
		for _, x := range xs {
			q.Push(x)
		}
		return q
	}

	tests := []struct {
		name   string
		a, b   *FIFO[int]
		wantEq bool
	}{
		{
			name:   "both_nil",
			wantEq: true,
		},
		{
			name:   "nil_vs_empty",
			a:      new(FIFO[int]),
			wantEq: false,
		},
		{
			name:   "empty_vs_drained",
			a:      new(FIFO[int]),
			b:      func() *FIFO[int] { q := Of(1); q.Pop(); return q }(),
			wantEq: true,
		},
		{
			name:   "same_contents_different_stacks",
			a:      Of(1, 2, 3),
			b:      pushed(1, 2, 3),
			wantEq: true,
		},
		{
			name:   "different_order",
			a:      Of(1, 2, 3),
			b:      Of(1, 3, 2),
			wantEq: false,
		},
		{
			name:   "prefix",
			a:      Of(1, 2),
			b:      pushed(1, 2, 3),
			wantEq: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantEq, cmp.Equal(tt.a, tt.b, CmpOpt[int]()))
		})
	}
}
