// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bq

// DrainTo moves every element currently held into sink, in take-order,
// under a single lock acquisition. It returns the number of elements
// moved. Fails with ErrNullCollection if sink is nil and ErrSelfDrain if
// sink is this same queue (spec §4.E, scenario 5).
func (q *Queue[T]) DrainTo(sink Sink[T]) (int, error) {
	return q.drain(sink, -1, nil)
}

// DrainToN moves up to max elements in take-order. max <= 0 moves none.
// Same failure modes as DrainTo.
func (q *Queue[T]) DrainToN(sink Sink[T], max int) (int, error) {
	if max < 0 {
		max = 0
	}
	return q.drain(sink, max, nil)
}

// DrainToMatching moves every held element for which predicate returns
// true, preserving the relative order of the elements left behind
// (gap-closing). Same failure modes as DrainTo.
//
// predicate is invoked while the queue's lock is held: it must be a pure
// decision function that does not call back into this queue (spec §6).
func (q *Queue[T]) DrainToMatching(sink Sink[T], predicate func(T) bool) (int, error) {
	return q.drain(sink, -1, predicate)
}

// drain implements all three public drain forms. Exactly one of (max >= 0)
// or (predicate != nil) should be set; max < 0 and predicate == nil means
// "drain everything".
func (q *Queue[T]) drain(sink Sink[T], max int, predicate func(T) bool) (int, error) {
	if sink == nil {
		return 0, invalidArgError(ErrNullCollection, "collection")
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	if self, ok := sink.(*Queue[T]); ok && self == q {
		return 0, invalidArgError(ErrSelfDrain, "collection")
	}

	var elems []T
	switch {
	case predicate != nil:
		elems = q.ring.removeMatching(predicate)
	case max >= 0:
		elems = q.ring.removeFront(max)
	default:
		elems = q.ring.removeFront(q.ring.len())
	}

	moved := 0
	for _, e := range elems {
		if err := sink.Add(e); err != nil {
			// Rollback: the element that failed to insert, and every
			// element still undrained after it, must be restored to the
			// head of the queue in their original order (spec §4.F).
			q.restoreLocked(elems[moved:])
			if moved > 0 {
				q.signalFreedProducers(moved)
			}
			return moved, err
		}
		moved++
	}

	if moved > 0 {
		q.signalFreedProducers(moved)
	}
	return moved, nil
}

// restoreLocked re-inserts remaining (a contiguous suffix of the elements
// just removed, in their original take-order) at the head of the ring,
// ahead of whatever is already there. Caller must hold the lock.
func (q *Queue[T]) restoreLocked(remaining []T) {
	if len(remaining) == 0 {
		return
	}
	rest := q.ring.snapshot()
	merged := make([]T, 0, len(remaining)+len(rest))
	merged = append(merged, remaining...)
	merged = append(merged, rest...)
	q.ring.rebuild(merged)
}

// signalFreedProducers wakes up to n producers waiting on notFull, one
// per freed slot, matching spec §4.E's "a full queue whose drain removes
// k elements unblocks up to k waiting producers."
func (q *Queue[T]) signalFreedProducers(n int) {
	for i := 0; i < n; i++ {
		q.notFull.signalOne(q.mu)
	}
}
