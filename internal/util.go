// Package internal holds small helpers shared by the public packages.
package internal

import "reflect"

// IsTypedNil reports whether v is nil or a typed-nil wrapped in a non-nil
// interface (a nil *T, map, slice, func, or channel passed as any).
func IsTypedNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
