// Package validate holds the input checks shared by the container and graph
// packages.
package validate

import "reflect"

// IsNil reports whether v is a missing-equivalent value: a nil interface or a
// nil pointer, map, slice, channel or function. Values of non-nillable kinds
// (numbers, strings, structs, arrays) are never missing.
func IsNil[T any](v T) bool {
	x := any(v)
	if x == nil {
		return true
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
