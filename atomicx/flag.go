// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package atomicx provides atomic boolean and integer scalars with a full
// get/set/compare-and-swap/read-modify-write surface, backed by
// [code.hybscloud.com/atomix]'s explicit-memory-ordering primitives.
package atomicx

import "code.hybscloud.com/atomix"

// Flag is a mutually-exclusive boolean: every Set happens-before every
// subsequent Get observed by any goroutine. The zero value is false.
type Flag struct {
	v atomix.Bool
}

// NewFlag returns a Flag initialized to initial.
func NewFlag(initial bool) *Flag {
	f := &Flag{}
	f.v.StoreRelease(initial)
	return f
}

// Get returns the current value.
func (f *Flag) Get() bool {
	return f.v.LoadAcquire()
}

// Set stores a new value.
func (f *Flag) Set(val bool) {
	f.v.StoreRelease(val)
}

// CompareAndSet sets the value to new if the current value equals
// expected, reporting whether it did so. Never fails spuriously.
func (f *Flag) CompareAndSet(expected, new bool) bool {
	return f.v.CompareAndSwapAcqRel(expected, new)
}

// WeakCompareAndSet behaves like CompareAndSet but may fail spuriously
// even when the current value equals expected. This implementation has no
// spurious-failure window and always behaves like CompareAndSet, which
// satisfies the weaker contract.
func (f *Flag) WeakCompareAndSet(expected, new bool) bool {
	return f.v.CompareAndSwapAcqRel(expected, new)
}

// GetAndSet atomically stores new and returns the previous value.
func (f *Flag) GetAndSet(new bool) bool {
	for {
		old := f.v.LoadAcquire()
		if f.v.CompareAndSwapAcqRel(old, new) {
			return old
		}
	}
}
