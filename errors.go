// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bq

import (
	"errors"
	"fmt"
)

// ErrInvalidCapacity indicates a constructor was called with capacity <= 0.
var ErrInvalidCapacity = errors.New("bq: capacity must be positive")

// ErrNullCollection indicates a nil collection was passed to a constructor
// or to a drain operation, where the parameter is named "collection".
var ErrNullCollection = errors.New("bq: collection must not be nil")

// ErrCollectionTooLarge indicates a seeding collection's size exceeds the
// queue's capacity.
var ErrCollectionTooLarge = errors.New("bq: collection size exceeds capacity")

// ErrSelfDrain indicates a DrainTo call whose sink is the queue itself.
var ErrSelfDrain = errors.New("bq: cannot drain a queue into itself")

// ErrNullElement indicates an absent (nil) element was passed to Add,
// Offer, OfferTimeout, or Put for an element type that admits nil.
var ErrNullElement = errors.New("bq: element must not be nil")

// ErrQueueFull indicates Add was called on a full queue.
var ErrQueueFull = errors.New("bq: queue is full")

// ErrQueueEmpty indicates Remove was called on an empty queue.
var ErrQueueEmpty = errors.New("bq: queue is empty")

// ErrInterrupted indicates a blocking wait was aborted because its
// context.Context was canceled or its deadline expired. No element was
// taken or inserted as a side effect.
//
// Example:
//
//	if err := q.Put(ctx, job); err != nil {
//	    if bq.IsInterrupted(err) {
//	        return nil // caller gave up waiting, nothing was enqueued
//	    }
//	    return err
//	}
var ErrInterrupted = errors.New("bq: wait interrupted")

// IsInterrupted reports whether err indicates a canceled or expired wait.
func IsInterrupted(err error) bool {
	return errors.Is(err, ErrInterrupted)
}

// IsQueueFull reports whether err indicates a full queue rejected an Add.
func IsQueueFull(err error) bool {
	return errors.Is(err, ErrQueueFull)
}

// IsQueueEmpty reports whether err indicates an empty queue rejected a Remove.
func IsQueueEmpty(err error) bool {
	return errors.Is(err, ErrQueueEmpty)
}

// invalidArgError wraps a sentinel error with the offending parameter name,
// matching spec requirements that NullCollection/CollectionTooLarge/
// SelfDrain/NullElement name their parameter.
func invalidArgError(sentinel error, param string) error {
	return fmt.Errorf("%w: parameter %q", sentinel, param)
}
