// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/wanqingrongruo/RNCollection/collection"
	"github.com/wanqingrongruo/RNCollection/fibonacci"
	"github.com/wanqingrongruo/RNCollection/queue"
)

func run(ctx context.Context, log logging.Logger, cfg *config) error {
	for _, step := range []func(logging.Logger, *config){
		fibonacciTerms,
		traverseQueue,
		drainLiteral,
	} {
		if err := ctx.Err(); err != nil {
			return err
		}
		step(log, cfg)
	}
	return nil
}

func fibonacciTerms(log logging.Logger, cfg *config) {
	log = log.With(zap.String("sequence", "fibonacci"))

	it := fibonacci.New()
	for range cfg.fibTerms {
		n := it.Index()
		x, _ := it.Next()
		log.Info("term",
			zap.Uint64("n", n),
			zap.String("value", x.Dec()),
			zap.Bool("wrapped", it.Wrapped()),
		)
	}
}

func traverseQueue(log logging.Logger, cfg *config) {
	log = log.With(zap.String("queue", "pushed"))

	var q queue.FIFO[int]
	q.Grow(cfg.count)
	for i := 1; i <= cfg.count; i++ {
		q.Push(i)
	}

	it := q.MakeIterator()
	for x, ok := it.Next(); ok; x, ok = it.Next() {
		log.Debug("element", zap.Int("value", x))
	}

	first, hasFirst := collection.First[int](&q)
	log.Info("queue traversed",
		zap.Ints("elements", collection.AppendTo[int](nil, &q)),
		zap.Bool("isEmpty", collection.IsEmpty[int](&q)),
		zap.Int("count", collection.Count[int](&q)),
		zap.Int("first", first),
		zap.Bool("hasFirst", hasFirst),
		zap.Ints("doubled", collection.Map(&q, func(x int) int { return x * 2 })),
	)
}

func drainLiteral(log logging.Logger, cfg *config) {
	log = log.With(zap.String("queue", "literal"))

	q := queue.Of(cfg.literal...)
	log.Info("constructed", zap.Stringer("elements", q))

	var popped []int
	for {
		x, ok := q.Pop()
		if !ok {
			break
		}
		popped = append(popped, x)
		log.Debug("popped", zap.Int("value", x), zap.Int("remaining", q.Len()))
	}
	log.Info("drained", zap.Ints("popped", popped))
}
