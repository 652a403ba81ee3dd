// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomicx_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/bq/atomicx"
)

func TestFlagGetSet(t *testing.T) {
	f := atomicx.NewFlag(false)
	if f.Get() != false {
		t.Fatalf("Get: got true, want false")
	}
	f.Set(true)
	if !f.Get() {
		t.Fatalf("Get: got false, want true")
	}
}

func TestFlagCompareAndSet(t *testing.T) {
	f := atomicx.NewFlag(false)
	if f.CompareAndSet(true, false) {
		t.Fatalf("CompareAndSet: expected mismatch to fail")
	}
	if !f.CompareAndSet(false, true) {
		t.Fatalf("CompareAndSet: expected match to succeed")
	}
	if !f.Get() {
		t.Fatalf("Get after CompareAndSet: got false, want true")
	}
}

func TestFlagGetAndSet(t *testing.T) {
	f := atomicx.NewFlag(false)
	if old := f.GetAndSet(true); old != false {
		t.Fatalf("GetAndSet: got old=%v, want false", old)
	}
	if !f.Get() {
		t.Fatalf("Get after GetAndSet: got false, want true")
	}
}

func TestFlagConcurrentCompareAndSet(t *testing.T) {
	f := atomicx.NewFlag(false)
	const n = 64
	var wg sync.WaitGroup
	wins := atomicx.NewCounter(0)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if f.CompareAndSet(false, true) {
				wins.IncrementAndGet()
			}
		}()
	}
	wg.Wait()
	if got := wins.Get(); got != 1 {
		t.Fatalf("exactly one goroutine should win the CAS race, got %d", got)
	}
}
