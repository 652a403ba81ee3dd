// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bq

import (
	"context"
	"sync"
	"time"

	"code.hybscloud.com/bq/atomicx"
)

// Queue is a bounded, thread-safe, blocking FIFO queue: producers block
// while it is full, consumers block while it is empty. A single mutex
// guards a ring buffer; two wait queues (notEmpty, notFull) implement the
// condition-variable protocol described in spec §4.D over that mutex.
//
// Every exported method that reads or changes the held elements acquires
// the queue's lock; Cap and Fair read values fixed at construction and
// Arrivals reads an atomic counter, so those three do not lock. None of
// the methods recursively lock.
type Queue[T any] struct {
	mu   locker
	ring *ring[T]
	fair bool

	notEmpty waitQueue
	notFull  waitQueue

	// arrivals counts every successful Put/Add/Offer, fair or not, giving
	// tests a monotonically increasing sequence number independent of
	// wall-clock time to assert enqueue ordering against.
	arrivals *atomicx.Counter
}

// New creates a non-fair Queue with the given capacity.
func New[T any](capacity int) (*Queue[T], error) {
	return NewFair[T](capacity, false)
}

// NewFair creates a Queue with the given capacity and fairness discipline.
// When fair is true, goroutines contending for the queue's lock are
// admitted in strict arrival order (spec §4.D).
func NewFair[T any](capacity int, fair bool) (*Queue[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	q := &Queue[T]{
		ring:     newRing[T](capacity),
		fair:     fair,
		arrivals: atomicx.NewCounter(0),
	}
	if fair {
		q.mu = &fifoMutex{}
	} else {
		q.mu = &sync.Mutex{}
	}
	return q, nil
}

// NewFromSlice creates a Queue seeded with the elements of initial, in
// slice order, per spec §4.E's seeded-constructor semantics: takeIndex=0,
// count=len(initial), putIndex=len(initial) mod capacity.
func NewFromSlice[T any](capacity int, fair bool, initial []T) (*Queue[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if initial == nil {
		return nil, invalidArgError(ErrNullCollection, "collection")
	}
	if len(initial) > capacity {
		return nil, invalidArgError(ErrCollectionTooLarge, "collection")
	}
	q, err := NewFair[T](capacity, fair)
	if err != nil {
		return nil, err
	}
	for _, v := range initial {
		q.ring.enqueue(v)
	}
	q.arrivals.AddAndGet(int64(len(initial)))
	return q, nil
}

// Cap returns the queue's fixed capacity.
func (q *Queue[T]) Cap() int { return q.ring.cap() }

// Fair reports whether the queue uses the fair (strict-FIFO) admission
// discipline.
func (q *Queue[T]) Fair() bool { return q.fair }

// Len returns the number of elements currently held.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ring.len()
}

// Remaining returns capacity() - count(). RemainingCapacity is an alias
// of it for callers porting code that uses that name.
func (q *Queue[T]) Remaining() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ring.cap() - q.ring.len()
}

// RemainingCapacity is an alias of Remaining, matching spec §4.E's name.
func (q *Queue[T]) RemainingCapacity() int { return q.Remaining() }

// Arrivals returns the total number of elements ever accepted by Add,
// Offer, OfferTimeout, or Put (including the initial seed, if any), as a
// monotonically increasing sequence number. Tests use it to assert
// enqueue ordering without depending on wall-clock timing.
func (q *Queue[T]) Arrivals() int64 { return q.arrivals.Get() }

// IsEmpty reports whether the queue currently holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ring.empty()
}

// IsFull reports whether the queue is at capacity.
func (q *Queue[T]) IsFull() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ring.full()
}

// Contains reports whether any held element satisfies equal.
func (q *Queue[T]) Contains(equal func(T) bool) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := 0; i < q.ring.len(); i++ {
		if equal(q.ring.at(i)) {
			return true
		}
	}
	return false
}

// Peek returns the head element without removing it, and false if the
// queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ring.peek()
}

// ToSlice returns a snapshot of the elements currently held, head first.
func (q *Queue[T]) ToSlice() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ring.snapshot()
}

// Add inserts elem without blocking, failing with ErrQueueFull if the
// queue is at capacity.
func (q *Queue[T]) Add(elem T) error {
	if isNilElement(elem) {
		return invalidArgError(ErrNullElement, "element")
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.ring.full() {
		return ErrQueueFull
	}
	q.enqueueLocked(elem)
	return nil
}

// Offer inserts elem without blocking, returning false instead of an
// error if the queue is at capacity.
func (q *Queue[T]) Offer(elem T) (bool, error) {
	if isNilElement(elem) {
		return false, invalidArgError(ErrNullElement, "element")
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.ring.full() {
		return false, nil
	}
	q.enqueueLocked(elem)
	return true, nil
}

// OfferTimeout inserts elem, waiting up to timeout for a free slot if the
// queue is full. Returns false (not an error) on timeout, and
// ErrInterrupted if ctx is canceled first.
func (q *Queue[T]) OfferTimeout(ctx context.Context, elem T, timeout time.Duration) (bool, error) {
	if isNilElement(elem) {
		return false, invalidArgError(ErrNullElement, "element")
	}
	deadline := time.Now().Add(timeout)
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.ring.full() {
		result := wait(q.mu, &q.notFull, ctx, true, deadline)
		switch result {
		case waitTimedOut:
			return false, nil
		case waitCanceled:
			return false, ctxErr(ctx)
		}
		// waitSignaled: loop back and re-check the predicate (spurious
		// wakeups and races with other producers are both possible).
	}
	q.enqueueLocked(elem)
	return true, nil
}

// Put inserts elem, blocking indefinitely until a slot is free or ctx is
// canceled.
func (q *Queue[T]) Put(ctx context.Context, elem T) error {
	if isNilElement(elem) {
		return invalidArgError(ErrNullElement, "element")
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.ring.full() {
		if wait(q.mu, &q.notFull, ctx, false, time.Time{}) == waitCanceled {
			return ctxErr(ctx)
		}
	}
	q.enqueueLocked(elem)
	return nil
}

// enqueueLocked stores elem and wakes one consumer. Caller must hold mu.
func (q *Queue[T]) enqueueLocked(elem T) {
	q.ring.enqueue(elem)
	q.arrivals.IncrementAndGet()
	q.notEmpty.signalOne(q.mu)
}

// Poll removes and returns the head element without blocking, returning
// false if the queue is empty.
func (q *Queue[T]) Poll() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.ring.empty() {
		var zero T
		return zero, false
	}
	return q.dequeueLocked(), true
}

// PollTimeout removes and returns the head element, waiting up to timeout
// if the queue is empty. Returns (_, false, nil) on timeout and
// (_, false, ErrInterrupted) if ctx is canceled first.
func (q *Queue[T]) PollTimeout(ctx context.Context, timeout time.Duration) (T, bool, error) {
	deadline := time.Now().Add(timeout)
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.ring.empty() {
		result := wait(q.mu, &q.notEmpty, ctx, true, deadline)
		switch result {
		case waitTimedOut:
			var zero T
			return zero, false, nil
		case waitCanceled:
			var zero T
			return zero, false, ctxErr(ctx)
		}
	}
	return q.dequeueLocked(), true, nil
}

// Take removes and returns the head element, blocking indefinitely until
// one is available or ctx is canceled.
func (q *Queue[T]) Take(ctx context.Context) (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.ring.empty() {
		if wait(q.mu, &q.notEmpty, ctx, false, time.Time{}) == waitCanceled {
			var zero T
			return zero, ctxErr(ctx)
		}
	}
	return q.dequeueLocked(), nil
}

// Remove removes and returns the head element without blocking, failing
// with ErrQueueEmpty if the queue is empty.
func (q *Queue[T]) Remove() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.ring.empty() {
		var zero T
		return zero, ErrQueueEmpty
	}
	return q.dequeueLocked(), nil
}

// dequeueLocked removes the head element and wakes one producer. Caller
// must hold mu.
func (q *Queue[T]) dequeueLocked() T {
	v := q.ring.dequeue()
	q.notFull.signalOne(q.mu)
	return v
}

// PutAll is a convenience that calls Put for every element of elems, in
// order, stopping at the first error. It returns the number of elements
// successfully put before that error (or len(elems) on full success), so
// a caller that gets a non-nil error can still tell how much of the
// batch landed. It is not atomic as a batch (spec §1 explicitly excludes
// multi-producer batch-put atomicity): a concurrent drain or take may
// interleave with individual Put calls.
func (q *Queue[T]) PutAll(ctx context.Context, elems []T) (int, error) {
	for i, e := range elems {
		if err := q.Put(ctx, e); err != nil {
			return i, err
		}
	}
	return len(elems), nil
}

// ctxErr converts a done context into ErrInterrupted, preserving
// context.Canceled/DeadlineExceeded distinctions via errors.Is chaining.
func ctxErr(ctx context.Context) error {
	return &interruptedError{cause: ctx.Err()}
}

type interruptedError struct {
	cause error
}

func (e *interruptedError) Error() string {
	return ErrInterrupted.Error() + ": " + e.cause.Error()
}

func (e *interruptedError) Unwrap() []error {
	return []error{ErrInterrupted, e.cause}
}
