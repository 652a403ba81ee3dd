// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bq

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewInvalidCapacity(t *testing.T) {
	if _, err := New[int](0); !errors.Is(err, ErrInvalidCapacity) {
		t.Fatalf("New(0): got %v, want ErrInvalidCapacity", err)
	}
	if _, err := New[int](-1); !errors.Is(err, ErrInvalidCapacity) {
		t.Fatalf("New(-1): got %v, want ErrInvalidCapacity", err)
	}
}

func TestNewFromSliceValidation(t *testing.T) {
	if _, err := NewFromSlice[int](4, false, nil); !errors.Is(err, ErrNullCollection) {
		t.Fatalf("nil collection: got %v, want ErrNullCollection", err)
	}
	if _, err := NewFromSlice[int](2, false, []int{1, 2, 3}); !errors.Is(err, ErrCollectionTooLarge) {
		t.Fatalf("oversized collection: got %v, want ErrCollectionTooLarge", err)
	}
}

// Scenario 1 from spec §8: seed and drain.
func TestSeedAndDrainInOrder(t *testing.T) {
	seed := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
	q, err := NewFromSlice[string](9, false, seed)
	if err != nil {
		t.Fatalf("NewFromSlice: %v", err)
	}
	for i, want := range seed {
		v, ok := q.Poll()
		if !ok || v != want {
			t.Fatalf("poll %d: got (%q, %v), want (%q, true)", i, v, ok, want)
		}
	}
	if v, ok := q.Poll(); ok {
		t.Fatalf("poll after drain: got (%q, true), want empty", v)
	}
	if got := q.Len(); got != 0 {
		t.Fatalf("Len after drain: got %d, want 0", got)
	}
}

func TestAddOfferPutFull(t *testing.T) {
	q, _ := New[int](2)
	if err := q.Add(1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	ok, err := q.Offer(2)
	if !ok || err != nil {
		t.Fatalf("Offer: got (%v, %v), want (true, nil)", ok, err)
	}
	if err := q.Add(3); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("Add on full queue: got %v, want ErrQueueFull", err)
	}
	if ok, _ := q.Offer(3); ok {
		t.Fatalf("Offer on full queue: got true, want false")
	}
}

func TestRemovePollEmpty(t *testing.T) {
	q, _ := New[int](1)
	if _, err := q.Remove(); !errors.Is(err, ErrQueueEmpty) {
		t.Fatalf("Remove on empty queue: got %v, want ErrQueueEmpty", err)
	}
	if v, ok := q.Poll(); ok {
		t.Fatalf("Poll on empty queue: got (%v, true), want empty", v)
	}
}

func TestCapacityIntrospection(t *testing.T) {
	q, _ := New[int](5)
	_ = q.Add(1)
	_ = q.Add(2)
	if q.Cap() != 5 {
		t.Fatalf("Cap: got %d, want 5", q.Cap())
	}
	if q.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", q.Len())
	}
	if q.Remaining() != 3 {
		t.Fatalf("Remaining: got %d, want 3", q.Remaining())
	}
	if q.RemainingCapacity()+q.Len() != q.Cap() {
		t.Fatalf("remaining + count != capacity")
	}
	if q.IsEmpty() || q.IsFull() {
		t.Fatalf("IsEmpty/IsFull wrong for partially filled queue")
	}
}

func TestArrivalsSequence(t *testing.T) {
	q, _ := NewFromSlice[int](5, false, []int{1, 2})
	if got := q.Arrivals(); got != 2 {
		t.Fatalf("Arrivals after seed: got %d, want 2", got)
	}
	_ = q.Add(3)
	if got := q.Arrivals(); got != 3 {
		t.Fatalf("Arrivals after Add: got %d, want 3", got)
	}
}

func TestPeekDoesNotRemove(t *testing.T) {
	q, _ := New[int](2)
	_ = q.Add(7)
	v, ok := q.Peek()
	if !ok || v != 7 {
		t.Fatalf("Peek: got (%d, %v), want (7, true)", v, ok)
	}
	if q.Len() != 1 {
		t.Fatalf("Peek should not remove: Len got %d, want 1", q.Len())
	}
}

func TestContains(t *testing.T) {
	q, _ := NewFromSlice[int](4, false, []int{1, 2, 3})
	if !q.Contains(func(v int) bool { return v == 2 }) {
		t.Fatalf("Contains(2): got false, want true")
	}
	if q.Contains(func(v int) bool { return v == 99 }) {
		t.Fatalf("Contains(99): got true, want false")
	}
}

func TestToSliceSnapshot(t *testing.T) {
	q, _ := NewFromSlice[int](4, false, []int{1, 2, 3})
	got := q.ToSlice()
	want := []int{1, 2, 3}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("ToSlice[%d]: got %d, want %d", i, got[i], v)
		}
	}
}

// Scenario 2 from spec §8: block-then-take unblock.
func TestBlockThenTakeUnblock(t *testing.T) {
	q, _ := NewFromSlice[string](2, false, []string{"x", "y"})
	ctx := context.Background()

	putDone := make(chan error, 1)
	go func() {
		putDone <- q.Put(ctx, "z")
	}()

	time.Sleep(20 * time.Millisecond)
	select {
	case err := <-putDone:
		t.Fatalf("Put on full queue returned early: %v", err)
	default:
	}

	v, err := q.Take(ctx)
	if err != nil || v != "x" {
		t.Fatalf("first Take: got (%q, %v), want (\"x\", nil)", v, err)
	}

	select {
	case err := <-putDone:
		if err != nil {
			t.Fatalf("Put: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("Put did not unblock after a slot freed")
	}

	for _, want := range []string{"y", "z"} {
		v, err := q.Take(ctx)
		if err != nil || v != want {
			t.Fatalf("Take: got (%q, %v), want (%q, nil)", v, err, want)
		}
	}
}

// Scenario 4 from spec §8: timed offer interruption.
func TestOfferTimeoutInterrupted(t *testing.T) {
	q, _ := NewFromSlice[int](1, false, []int{1})
	ctx, cancel := context.WithCancel(context.Background())

	result := make(chan error, 1)
	go func() {
		_, err := q.OfferTimeout(ctx, 2, time.Hour)
		result <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-result:
		if !IsInterrupted(err) {
			t.Fatalf("OfferTimeout after cancel: got %v, want ErrInterrupted", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("OfferTimeout did not return after context cancellation")
	}
	if q.Len() != 1 {
		t.Fatalf("queue count changed by a failed offer: got %d, want 1", q.Len())
	}
}

func TestPollTimeoutExpires(t *testing.T) {
	q, _ := New[int](1)
	v, ok, err := q.PollTimeout(context.Background(), 20*time.Millisecond)
	if ok || err != nil {
		t.Fatalf("PollTimeout on empty queue: got (%d, %v, %v), want (0, false, nil)", v, ok, err)
	}
}

func TestPutAll(t *testing.T) {
	q, _ := New[int](5)
	if n, err := q.PutAll(context.Background(), []int{1, 2, 3}); err != nil || n != 3 {
		t.Fatalf("PutAll: got (%d, %v), want (3, nil)", n, err)
	}
	for _, want := range []int{1, 2, 3} {
		v, err := q.Take(context.Background())
		if err != nil || v != want {
			t.Fatalf("Take after PutAll: got (%d, %v), want (%d, nil)", v, err, want)
		}
	}
}

func TestIterator(t *testing.T) {
	q, _ := NewFromSlice[int](4, false, []int{1, 2, 3})
	it := q.Iterator()
	var got []int
	for it.Next() {
		got = append(got, it.Value())
	}
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("iterator length: got %d, want %d", len(got), len(want))
	}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("iterator[%d]: got %d, want %d", i, got[i], v)
		}
	}
}
