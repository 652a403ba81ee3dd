// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bq

import (
	"context"
	"time"
)

// Sink receives elements drained from a Queue, one at a time, in
// take-order. A *Queue[T] itself satisfies Sink[T] via Add, which is how
// DrainTo detects and rejects draining a queue into itself.
//
// Implementations invoked as a drain sink run while the source queue's
// mutex is held: they must not call back into that queue.
type Sink[T any] interface {
	Add(elem T) error
}

// SinkFunc adapts a plain function to a Sink.
type SinkFunc[T any] func(elem T) error

// Add calls f(elem).
func (f SinkFunc[T]) Add(elem T) error { return f(elem) }

// Producer is the write side of a Queue: non-blocking, timed, and
// indefinitely-blocking enqueue, per spec §4.E's enqueue table.
//
// A *Queue[T] satisfies Producer[T], so callers that should only ever
// submit work can be handed a Producer[T] view of a shared queue.
type Producer[T any] interface {
	Add(elem T) error
	Offer(elem T) (bool, error)
	OfferTimeout(ctx context.Context, elem T, timeout time.Duration) (bool, error)
	Put(ctx context.Context, elem T) error
}

// Consumer is the read side of a Queue: non-blocking, timed, and
// indefinitely-blocking dequeue, per spec §4.E's dequeue table.
type Consumer[T any] interface {
	Remove() (T, error)
	Poll() (T, bool)
	PollTimeout(ctx context.Context, timeout time.Duration) (T, bool, error)
	Take(ctx context.Context) (T, error)
	Peek() (T, bool)
}
