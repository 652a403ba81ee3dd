// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bq

import "reflect"

// isNilElement reports whether elem is a nil value of a type that admits
// nil (channel, function, interface, map, pointer, slice, or unsafe
// pointer). Go generics cannot compare an arbitrary T to nil directly, so
// the check goes through reflection for every element; element types that
// do not admit nil (int, string, a plain struct) are reported as never nil.
func isNilElement[T any](elem T) bool {
	v := reflect.ValueOf(elem)
	switch v.Kind() {
	case reflect.Invalid:
		// T is itself an interface type and elem is a bare nil interface
		// value, with no concrete type to report a Kind for.
		return true
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
