// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomicx

import "code.hybscloud.com/atomix"

// Counter is a mutually-exclusive 64-bit signed integer with the full
// get/set/compare-and-swap/read-modify-write surface. The zero value holds 0.
type Counter struct {
	v atomix.Int64
}

// NewCounter returns a Counter initialized to initial.
func NewCounter(initial int64) *Counter {
	c := &Counter{}
	c.v.StoreRelease(initial)
	return c
}

// Get returns the current value.
func (c *Counter) Get() int64 {
	return c.v.LoadAcquire()
}

// Set stores a new value.
func (c *Counter) Set(val int64) {
	c.v.StoreRelease(val)
}

// GetAndSet atomically stores new and returns the previous value.
func (c *Counter) GetAndSet(new int64) int64 {
	for {
		old := c.v.LoadAcquire()
		if c.v.CompareAndSwapAcqRel(old, new) {
			return old
		}
	}
}

// CompareAndSet sets the value to new if the current value equals
// expected, reporting whether it did so. Never fails spuriously.
func (c *Counter) CompareAndSet(expected, new int64) bool {
	return c.v.CompareAndSwapAcqRel(expected, new)
}

// WeakCompareAndSet behaves like CompareAndSet but is permitted to fail
// spuriously. This implementation has no spurious-failure window.
func (c *Counter) WeakCompareAndSet(expected, new int64) bool {
	return c.v.CompareAndSwapAcqRel(expected, new)
}

// GetAndIncrement atomically increments by 1 and returns the prior value.
func (c *Counter) GetAndIncrement() int64 { return c.GetAndAdd(1) }

// GetAndDecrement atomically decrements by 1 and returns the prior value.
func (c *Counter) GetAndDecrement() int64 { return c.GetAndAdd(-1) }

// IncrementAndGet atomically increments by 1 and returns the new value.
func (c *Counter) IncrementAndGet() int64 { return c.AddAndGet(1) }

// DecrementAndGet atomically decrements by 1 and returns the new value.
func (c *Counter) DecrementAndGet() int64 { return c.AddAndGet(-1) }

// GetAndAdd atomically adds delta and returns the value prior to the add.
func (c *Counter) GetAndAdd(delta int64) int64 {
	return c.v.AddAcqRel(delta) - delta
}

// AddAndGet atomically adds delta and returns the updated value.
func (c *Counter) AddAndGet(delta int64) int64 {
	return c.v.AddAcqRel(delta)
}

// Int32 truncates the current value to a signed 32-bit integer, matching
// the narrowing-conversion truncation semantics of a plain Go int32(x)
// conversion.
func (c *Counter) Int32() int32 {
	return int32(c.Get())
}

// Int16 truncates the current value to a signed 16-bit integer.
func (c *Counter) Int16() int16 {
	return int16(c.Get())
}
