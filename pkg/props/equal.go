package props

import "reflect"

// ShallowEqual compares two bags key by key using [Identical]. Both bags
// must hold the same set of keys; nested values are never descended into.
func ShallowEqual(a, b Props) bool {
	if len(a) != len(b) {
		return false
	}
	for key, av := range a {
		bv, ok := b[key]
		if !ok {
			return false
		}
		if !Identical(av, bv) {
			return false
		}
	}
	return true
}

// Identical reports whether a and b are the same value in the reference
// sense: comparable values compare with ==, maps and pointers by address,
// slices by backing array and length. Functions have no identity in Go, so
// two non-nil functions are never identical; a derived prop holding a
// closure therefore always counts as changed.
func Identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return comparableEqual(a, b)
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ta.Kind() {
	case reflect.Map:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}
		return va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Slice:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}
		return va.Len() == vb.Len() && va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Func:
		return va.IsNil() && vb.IsNil()
	default:
		// structs or arrays holding non-comparable fields
		return false
	}
}

// IsPlain reports whether v is a usable property bag: a non-nil Props.
func IsPlain(v Props) bool {
	return v != nil
}

// comparableEqual is a == b for values whose static type is comparable but
// may still hold non-comparable dynamic values in interface fields.
func comparableEqual(a, b any) (equal bool) {
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return a == b
}
