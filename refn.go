// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnref

import "unsafe"

// Ref2 is a non-owning reference to a binary callable func(A, B) R.
// Same representation and contract as [Ref].
type Ref2[A, B, R any] struct {
	target   unsafe.Pointer
	dispatch func(unsafe.Pointer, A, B) R
}

func thunkFunc2[A, B, R any](p unsafe.Pointer, a A, b B) R {
	return (*(*func(A, B) R)(p))(a, b)
}

// Bind2 binds f as a binary reference. A nil pointer binds unbound.
func Bind2[A, B, R any](f *func(A, B) R) Ref2[A, B, R] {
	if f == nil {
		return Ref2[A, B, R]{}
	}
	return Ref2[A, B, R]{target: unsafe.Pointer(f), dispatch: thunkFunc2[A, B, R]}
}

// Bound reports whether the reference is bound.
func (r Ref2[A, B, R]) Bound() bool {
	return r.target != nil
}

// Clear resets the reference to the unbound state.
func (r *Ref2[A, B, R]) Clear() {
	r.target = nil
	r.dispatch = nil
}

// Swap exchanges the bindings of r and o.
func (r *Ref2[A, B, R]) Swap(o *Ref2[A, B, R]) {
	r.target, o.target = o.target, r.target
	r.dispatch, o.dispatch = o.dispatch, r.dispatch
}

// Call invokes the referenced callable. Precondition: r is bound.
func (r Ref2[A, B, R]) Call(a A, b B) R {
	return r.dispatch(r.target, a, b)
}

// TryCall is the checked variant of Call.
func (r Ref2[A, B, R]) TryCall(a A, b B) (R, error) {
	if r.target == nil {
		var zero R
		return zero, ErrUnbound
	}
	return r.dispatch(r.target, a, b), nil
}

// Ref3 is a non-owning reference to a ternary callable func(A, B, C) R.
// Higher arities pack arguments in a struct.
type Ref3[A, B, C, R any] struct {
	target   unsafe.Pointer
	dispatch func(unsafe.Pointer, A, B, C) R
}

func thunkFunc3[A, B, C, R any](p unsafe.Pointer, a A, b B, c C) R {
	return (*(*func(A, B, C) R)(p))(a, b, c)
}

// Bind3 binds f as a ternary reference. A nil pointer binds unbound.
func Bind3[A, B, C, R any](f *func(A, B, C) R) Ref3[A, B, C, R] {
	if f == nil {
		return Ref3[A, B, C, R]{}
	}
	return Ref3[A, B, C, R]{target: unsafe.Pointer(f), dispatch: thunkFunc3[A, B, C, R]}
}

// Bound reports whether the reference is bound.
func (r Ref3[A, B, C, R]) Bound() bool {
	return r.target != nil
}

// Clear resets the reference to the unbound state.
func (r *Ref3[A, B, C, R]) Clear() {
	r.target = nil
	r.dispatch = nil
}

// Swap exchanges the bindings of r and o.
func (r *Ref3[A, B, C, R]) Swap(o *Ref3[A, B, C, R]) {
	r.target, o.target = o.target, r.target
	r.dispatch, o.dispatch = o.dispatch, r.dispatch
}

// Call invokes the referenced callable. Precondition: r is bound.
func (r Ref3[A, B, C, R]) Call(a A, b B, c C) R {
	return r.dispatch(r.target, a, b, c)
}

// TryCall is the checked variant of Call.
func (r Ref3[A, B, C, R]) TryCall(a A, b B, c C) (R, error) {
	if r.target == nil {
		var zero R
		return zero, ErrUnbound
	}
	return r.dispatch(r.target, a, b, c), nil
}

// Swap2 exchanges the bindings of two binary references.
func Swap2[A, B, R any](a, b *Ref2[A, B, R]) {
	a.Swap(b)
}

// Swap3 exchanges the bindings of two ternary references.
func Swap3[A, B, C, R any](a, b *Ref3[A, B, C, R]) {
	a.Swap(b)
}
