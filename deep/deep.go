// SPDX-License-Identifier: MIT

package deep

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Getter returns a function reading the value at path inside a container.
// The result is nil when the path does not resolve.
// Complexity: O(len(path)) per call.
func Getter(path string, opts ...Option) func(obj any) any {
	keys := split(path, opts)

	return func(obj any) any {
		v, ok := walk(reflect.ValueOf(obj), keys)
		if !ok || !v.CanInterface() {
			return nil
		}

		return v.Interface()
	}
}

// Setter returns a function writing value at path inside a container.
// It reports whether the write happened.
// Complexity: O(len(path)) per call.
func Setter(path string, opts ...Option) func(obj any, value any) bool {
	keys := split(path, opts)
	parent, last := keys[:len(keys)-1], keys[len(keys)-1]

	return func(obj any, value any) bool {
		p, ok := walk(reflect.ValueOf(obj), parent)
		if !ok {
			return false
		}

		return assign(indirect(p), last, value)
	}
}

func split(path string, opts []Option) []string {
	return strings.Split(path, gatherOptions(opts...).sep)
}

// walk follows keys from v; the returned value is addressable whenever the
// container chain allows it (pointers, slices).
func walk(v reflect.Value, keys []string) (reflect.Value, bool) {
	for _, key := range keys {
		v = indirect(v)
		if !v.IsValid() {
			return reflect.Value{}, false
		}
		switch v.Kind() {
		case reflect.Map:
			kv, ok := mapKey(v, key)
			if !ok {
				return reflect.Value{}, false
			}
			v = v.MapIndex(kv)
		case reflect.Slice, reflect.Array:
			i, ok := index(v, key)
			if !ok {
				return reflect.Value{}, false
			}
			v = v.Index(i)
		case reflect.Struct:
			v = field(v, key)
		default:
			return reflect.Value{}, false
		}
		if !v.IsValid() {
			return reflect.Value{}, false
		}
	}

	return v, true
}

// assign writes value under key inside container v.
func assign(v reflect.Value, key string, value any) bool {
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Map:
		kv, ok := mapKey(v, key)
		if !ok || v.IsNil() {
			return false
		}
		val, ok := convert(value, v.Type().Elem())
		if !ok {
			return false
		}
		v.SetMapIndex(kv, val)
		return true
	case reflect.Slice, reflect.Array:
		i, ok := index(v, key)
		if !ok {
			return false
		}
		return store(v.Index(i), value)
	case reflect.Struct:
		return store(field(v, key), value)
	}

	return false
}

// store writes value into an addressable element.
func store(dst reflect.Value, value any) bool {
	if !dst.IsValid() || !dst.CanSet() {
		return false
	}
	val, ok := convert(value, dst.Type())
	if !ok {
		return false
	}
	dst.Set(val)

	return true
}

// convert adapts value to type t: direct assignment, or numeric conversion
// into a float- or integer-kinded target.
func convert(value any, t reflect.Type) (reflect.Value, bool) {
	if value == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Map, reflect.Slice, reflect.Pointer:
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(value)
	if rv.Type().AssignableTo(t) {
		return rv, true
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		if rv.CanConvert(t) {
			return rv.Convert(t), true
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return integer(rv, t)
	}

	return reflect.Value{}, false
}

// integer truncates a numeric rv toward zero into the integer type t.
// NaN and ±Inf store 0; values outside t's range are refused.
func integer(rv reflect.Value, t reflect.Type) (reflect.Value, bool) {
	out := reflect.New(t).Elem()
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return out, true
		}
		f = math.Trunc(f)
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return reflect.Value{}, false
		}
		rv = reflect.ValueOf(int64(f))
	}

	switch {
	case rv.CanInt():
		i := rv.Int()
		if out.CanUint() {
			if i < 0 || out.OverflowUint(uint64(i)) {
				return reflect.Value{}, false
			}
			out.SetUint(uint64(i))
			return out, true
		}
		if out.OverflowInt(i) {
			return reflect.Value{}, false
		}
		out.SetInt(i)
	case rv.CanUint():
		u := rv.Uint()
		if out.CanUint() {
			if out.OverflowUint(u) {
				return reflect.Value{}, false
			}
			out.SetUint(u)
			return out, true
		}
		if u > math.MaxInt64 || out.OverflowInt(int64(u)) {
			return reflect.Value{}, false
		}
		out.SetInt(int64(u))
	default:
		return reflect.Value{}, false
	}

	return out, true
}

// indirect unwraps interfaces and non-nil pointers.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}

	return v
}

func mapKey(m reflect.Value, key string) (reflect.Value, bool) {
	kt := m.Type().Key()
	if kt.Kind() != reflect.String {
		return reflect.Value{}, false
	}

	return reflect.ValueOf(key).Convert(kt), true
}

func index(v reflect.Value, key string) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= v.Len() {
		return 0, false
	}

	return i, true
}

// field resolves an exported struct field by name, then by json tag.
func field(v reflect.Value, key string) reflect.Value {
	t := v.Type()
	if sf, ok := t.FieldByName(key); ok && sf.IsExported() {
		return v.FieldByIndex(sf.Index)
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if name, _, _ := strings.Cut(sf.Tag.Get("json"), ","); name == key {
			return v.Field(i)
		}
	}

	return reflect.Value{}
}
