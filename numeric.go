package mathstuff

import (
	"math"
	"reflect"
	"strconv"
)

// toFloat converts v to a float64 when v is any Go numeric kind, including
// named types. Bools, strings, and everything else report false.
func toFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// toInt converts v to an int when v holds an integral numeric value.
func toInt(v any) (int, bool) {
	f, ok := toFloat(v)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// parseFloat is toFloat extended to accept numeric strings. Template hosts
// frequently hand coordinates through as strings, so filters that consume
// lat/lon values parse them here.
func parseFloat(v any) (float64, bool) {
	if f, ok := toFloat(v); ok {
		return f, true
	}
	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// toSlice normalizes a collection argument to []any. A []any passes
// through; any other slice or array kind is unpacked via reflection, and
// a string iterates as a collection of one-character strings. name
// identifies the calling filter in the error message.
func toSlice(name string, v any) ([]any, error) {
	if items, ok := v.([]any); ok {
		return items, nil
	}
	if v == nil {
		return nil, invalidArgf("%s: collection must not be nil", name)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return items, nil
	case reflect.String:
		s := rv.String()
		items := make([]any, 0, len(s))
		for _, r := range s {
			items = append(items, string(r))
		}
		return items, nil
	}
	return nil, invalidArgf("%s: %T is not a collection", name, v)
}

// hashable reports whether v can be used as a map key at runtime. Values
// that fail this check (slices, maps, or values wrapping them) route set
// operations to the order-preserving scan path.
//
// The check must be value-aware, not type-level: a comparable static type
// can still wrap an incomparable value (an interface field or [N]any
// element holding a slice), and inserting such a value into a map panics.
func hashable(v any) bool {
	if v == nil {
		return true
	}
	return canHash(reflect.ValueOf(v))
}

func canHash(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func:
		return false
	case reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return canHash(rv.Elem())
	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if !canHash(rv.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			if !canHash(rv.Field(i)) {
				return false
			}
		}
		return true
	}
	return true
}
