// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bq provides a bounded, thread-safe, blocking FIFO queue for
// producer/consumer hand-off between goroutines.
//
// Unlike the lock-free queues in this organization's lfq package, bq
// blocks: producers wait when the queue is full, consumers wait when it is
// empty. Waits are both timed and cancelable via context.Context, and an
// optional fair mode gives waiting goroutines strict FIFO admission into
// the queue's critical section.
//
// # Quick Start
//
//	q, err := bq.New[int](16)
//	if err != nil {
//	    // capacity <= 0
//	}
//
//	// Producer
//	go func() {
//	    if err := q.Put(ctx, 42); err != nil {
//	        // ctx canceled before a slot opened up
//	    }
//	}()
//
//	// Consumer
//	v, err := q.Take(ctx)
//
// # Fairness
//
// Fair mode trades throughput for strict ordering: goroutines contending
// for the queue's internal lock are admitted in the order they arrived,
// and a producer that arrives while the queue is full queues behind any
// producer that arrived earlier, even if a slot frees up in between.
//
//	q, err := bq.NewFair[Job](8, true)
//
// Non-fair mode (the default) permits barging: a newly arrived goroutine
// may acquire the lock ahead of one that has been waiting, which usually
// gives better throughput under contention.
//
// # Timed and Non-blocking Operations
//
//	ok, err := q.Offer(job)                       // never blocks
//	ok, err := q.OfferTimeout(ctx, job, time.Second) // blocks up to 1s
//	v, ok, err := q.PollTimeout(ctx, time.Second)
//
// # Draining
//
// DrainTo and its variants move elements out of the queue in bulk under a
// single lock acquisition, unblocking any producers waiting for room:
//
//	var collected []Job
//	n, err := q.DrainToN(bq.SinkFunc[Job](func(j Job) error {
//	    collected = append(collected, j)
//	    return nil
//	}), 10)
//
// # Atomics
//
// The bq/atomicx subpackage exposes the Flag and Counter primitives,
// backed by [code.hybscloud.com/atomix]. The queue uses a Counter
// internally for its arrival sequence.
//
// # Thread Safety
//
// Every exported method that reads or changes the held elements acquires
// the queue's internal lock, including Len and IsEmpty. Cap and Fair read
// values fixed at construction and Arrivals reads an atomic counter, so
// those three do not lock. No recursive locking is required or supported.
package bq
