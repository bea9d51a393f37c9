// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !prod && !nocmpopts

package queue

import (
	"slices"

	"github.com/google/go-cmp/cmp"
)

// CmpOpt returns a configuration for [cmp.Diff] to compare [FIFO] pointers in
// tests. Queues are considered equal if they hold equal elements in the same
// order, regardless of how those elements are split between the internal
// stacks. A nil pointer is only equal to another nil pointer.
func CmpOpt[T any]() cmp.Option {
	return cmp.Transformer("FIFOContents", func(q *FIFO[T]) *[]T {
		if q == nil {
			return nil
		}
		s := slices.Collect(q.All())
		if s == nil {
			s = []T{}
		}
		return &s
	})
}
