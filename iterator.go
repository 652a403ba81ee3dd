// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bq

// Iterator traverses a snapshot of the queue taken under its lock at
// construction time (spec §9: "snapshot-at-construction under the mutex
// is the simplest correct realization"). It never raises a
// concurrent-modification error, reflects the queue's state at some
// moment during the call to Iterator, and may miss later insertions or
// still show later removals.
type Iterator[T any] struct {
	items []T
	pos   int
}

// Iterator returns a weakly consistent iterator over the elements held at
// the moment of the call, head first.
func (q *Queue[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{items: q.ToSlice()}
}

// Next reports whether a further element is available and, if so,
// advances past it.
func (it *Iterator[T]) Next() bool {
	if it.pos >= len(it.items) {
		return false
	}
	it.pos++
	return true
}

// Value returns the element most recently advanced past by Next. It must
// only be called after a call to Next that returned true.
func (it *Iterator[T]) Value() T {
	return it.items[it.pos-1]
}

// Len returns the number of elements in the snapshot this iterator was
// constructed from, regardless of how far it has advanced.
func (it *Iterator[T]) Len() int {
	return len(it.items)
}
