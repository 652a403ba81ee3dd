// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bq

// Builder provides a fluent API for configuring and creating a Queue,
// mirroring this organization's lock-free Builder but selecting among
// spec §4.E's three constructor forms instead of algorithm variants.
//
// Example:
//
//	q, err := bq.NewBuilder[Job](16).Fair().Build()
type Builder[T any] struct {
	capacity int
	fair     bool
	initial  []T
}

// NewBuilder creates a Queue builder with the given capacity.
func NewBuilder[T any](capacity int) *Builder[T] {
	return &Builder[T]{capacity: capacity}
}

// Fair enables the strict-FIFO waiter-admission discipline.
func (b *Builder[T]) Fair() *Builder[T] {
	b.fair = true
	return b
}

// Seed supplies an initial collection, in traversal order, per spec
// §4.E's seeded constructor.
func (b *Builder[T]) Seed(initial []T) *Builder[T] {
	b.initial = initial
	return b
}

// Build constructs the configured Queue.
func (b *Builder[T]) Build() (*Queue[T], error) {
	if b.initial != nil {
		return NewFromSlice[T](b.capacity, b.fair, b.initial)
	}
	return NewFair[T](b.capacity, b.fair)
}
