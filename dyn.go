// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnref

import (
	"reflect"
	"unsafe"
)

// Dynamic binds resolve the compatibility check at bind time instead of
// compile time: the named member is looked up via reflection, checked
// against the target signature, and materialized as an ordinary typed
// reference. The reflection cost is paid once at bind; the call path is
// a plain func invocation (one bind-time allocation for the method value).

// Method binds the named nullary method of recv.
// Returns ErrIncompatible for a nil receiver, ErrNotFound if no such
// method exists, ErrIncompatible if its signature is not func() R.
// The bound method value captures recv, so mutations through a pointer
// receiver are visible to later calls.
func Method[R any](recv any, name string) (Ref[R], error) {
	rv := reflect.ValueOf(recv)
	if !rv.IsValid() {
		return Ref[R]{}, ErrIncompatible
	}
	m := rv.MethodByName(name)
	if !m.IsValid() {
		return Ref[R]{}, ErrNotFound
	}
	fn, ok := m.Interface().(func() R)
	if !ok {
		return Ref[R]{}, ErrIncompatible
	}
	return Bind(&fn), nil
}

// Method1 binds the named unary method of recv.
func Method1[A, R any](recv any, name string) (Ref1[A, R], error) {
	rv := reflect.ValueOf(recv)
	if !rv.IsValid() {
		return Ref1[A, R]{}, ErrIncompatible
	}
	m := rv.MethodByName(name)
	if !m.IsValid() {
		return Ref1[A, R]{}, ErrNotFound
	}
	fn, ok := m.Interface().(func(A) R)
	if !ok {
		return Ref1[A, R]{}, ErrIncompatible
	}
	return Bind1(&fn), nil
}

// Method2 binds the named binary method of recv.
func Method2[A, B, R any](recv any, name string) (Ref2[A, B, R], error) {
	rv := reflect.ValueOf(recv)
	if !rv.IsValid() {
		return Ref2[A, B, R]{}, ErrIncompatible
	}
	m := rv.MethodByName(name)
	if !m.IsValid() {
		return Ref2[A, B, R]{}, ErrNotFound
	}
	fn, ok := m.Interface().(func(A, B) R)
	if !ok {
		return Ref2[A, B, R]{}, ErrIncompatible
	}
	return Bind2(&fn), nil
}

// thunkLoad reads the handle as R directly. Field accessor fast path:
// the handle addresses the field's storage, so a call is a single load.
func thunkLoad[R any](p unsafe.Pointer) R {
	return *(*R)(p)
}

// FieldOf binds the named exported struct field of recv as a nullary
// read accessor. recv must be a non-nil pointer to a struct and the
// field type must be exactly R. The accessor aliases the field: writes
// to the field are observed by later calls. No allocation, and no
// reflection on the call path.
func FieldOf[R any](recv any, name string) (Ref[R], error) {
	rv := reflect.ValueOf(recv)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return Ref[R]{}, ErrIncompatible
	}
	sf, ok := rv.Elem().Type().FieldByName(name)
	if !ok {
		return Ref[R]{}, ErrNotFound
	}
	if !sf.IsExported() {
		return Ref[R]{}, ErrNotFound
	}
	fv := rv.Elem().FieldByName(name)
	if fv.Type() != reflect.TypeFor[R]() {
		return Ref[R]{}, ErrIncompatible
	}
	return Ref[R]{target: fv.Addr().UnsafePointer(), dispatch: thunkLoad[R]}, nil
}

// Func1 binds an arbitrary unary func value.
// Exact signatures bind directly. Signatures whose single result is
// convertible to R bind through a converting adapter (allocated once at
// bind; each call then pays one reflective invocation). Anything else
// returns ErrIncompatible.
func Func1[A, R any](fn any) (Ref1[A, R], error) {
	if fn == nil {
		return Ref1[A, R]{}, ErrIncompatible
	}
	if direct, ok := fn.(func(A) R); ok {
		return Bind1(&direct), nil
	}
	rv := reflect.ValueOf(fn)
	rt := rv.Type()
	if rt.Kind() != reflect.Func || rt.IsVariadic() || rt.NumIn() != 1 || rt.NumOut() != 1 {
		return Ref1[A, R]{}, ErrIncompatible
	}
	if rt.In(0) != reflect.TypeFor[A]() || !rt.Out(0).ConvertibleTo(reflect.TypeFor[R]()) {
		return Ref1[A, R]{}, ErrIncompatible
	}
	out := reflect.TypeFor[R]()
	adapter := func(a A) R {
		res := rv.Call([]reflect.Value{reflect.ValueOf(a)})[0]
		return res.Convert(out).Interface().(R)
	}
	return Bind1(&adapter), nil
}
