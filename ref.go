// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnref

import "unsafe"

// Ref is a non-owning reference to a nullary callable returning R.
//
// The representation is two words: an opaque handle to the callable's
// storage and a dispatch thunk instantiated per bound type. Both are set
// together on bind and cleared together on Clear; no partially-bound
// state is observable. The zero value is the unbound reference.
//
// Binding never copies the callable: later mutations of the bound
// variable or functor are observed through every copy of the reference.
// Copying a Ref copies the two words and aliases the same callable.
//
// Thread safety is that of a raw two-word value: concurrent reads are
// safe, concurrent mutation of the same Ref requires external
// synchronization.
type Ref[R any] struct {
	target   unsafe.Pointer
	dispatch func(unsafe.Pointer) R
}

// thunkFunc reinterprets the handle as *func() R and invokes it.
// Named generic function produces a static function value per type
// instantiation, avoiding the heap allocation that anonymous closures incur.
func thunkFunc[R any](p unsafe.Pointer) R {
	return (*(*func() R)(p))()
}

// Bind binds f as a nullary reference. A nil pointer binds unbound.
// The reference aliases *f: assigning a different func to *f redirects
// every subsequent Call through the same reference.
func Bind[R any](f *func() R) Ref[R] {
	if f == nil {
		return Ref[R]{}
	}
	return Ref[R]{target: unsafe.Pointer(f), dispatch: thunkFunc[R]}
}

// Bound reports whether the reference is bound. Never invokes the callable.
func (r Ref[R]) Bound() bool {
	return r.target != nil
}

// Clear resets the reference to the unbound state, clearing handle and
// thunk together. The referenced callable is unaffected.
func (r *Ref[R]) Clear() {
	r.target = nil
	r.dispatch = nil
}

// Swap exchanges the bindings of r and o. The underlying callables are
// unaffected.
func (r *Ref[R]) Swap(o *Ref[R]) {
	r.target, o.target = o.target, r.target
	r.dispatch, o.dispatch = o.dispatch, r.dispatch
}

// Call invokes the referenced callable. Precondition: r is bound.
// Calling an unbound reference panics (nil thunk call); the callable's
// own panics propagate unchanged.
func (r Ref[R]) Call() R {
	return r.dispatch(r.target)
}

// TryCall is the checked variant of Call.
// Returns ErrUnbound instead of panicking when r is unbound.
func (r Ref[R]) TryCall() (R, error) {
	if r.target == nil {
		var zero R
		return zero, ErrUnbound
	}
	return r.dispatch(r.target), nil
}

// Ref1 is a non-owning reference to a unary callable func(A) R.
// Same representation and contract as [Ref].
type Ref1[A, R any] struct {
	target   unsafe.Pointer
	dispatch func(unsafe.Pointer, A) R
}

// thunkFunc1 reinterprets the handle as *func(A) R and invokes it.
func thunkFunc1[A, R any](p unsafe.Pointer, a A) R {
	return (*(*func(A) R)(p))(a)
}

// Bind1 binds f as a unary reference. A nil pointer binds unbound.
func Bind1[A, R any](f *func(A) R) Ref1[A, R] {
	if f == nil {
		return Ref1[A, R]{}
	}
	return Ref1[A, R]{target: unsafe.Pointer(f), dispatch: thunkFunc1[A, R]}
}

// Bound reports whether the reference is bound. Never invokes the callable.
func (r Ref1[A, R]) Bound() bool {
	return r.target != nil
}

// Clear resets the reference to the unbound state.
func (r *Ref1[A, R]) Clear() {
	r.target = nil
	r.dispatch = nil
}

// Swap exchanges the bindings of r and o.
func (r *Ref1[A, R]) Swap(o *Ref1[A, R]) {
	r.target, o.target = o.target, r.target
	r.dispatch, o.dispatch = o.dispatch, r.dispatch
}

// Call invokes the referenced callable with a. Precondition: r is bound.
func (r Ref1[A, R]) Call(a A) R {
	return r.dispatch(r.target, a)
}

// TryCall is the checked variant of Call.
func (r Ref1[A, R]) TryCall(a A) (R, error) {
	if r.target == nil {
		var zero R
		return zero, ErrUnbound
	}
	return r.dispatch(r.target, a), nil
}

// Swap exchanges the bindings of two nullary references.
func Swap[R any](a, b *Ref[R]) {
	a.Swap(b)
}

// Swap1 exchanges the bindings of two unary references.
func Swap1[A, R any](a, b *Ref1[A, R]) {
	a.Swap(b)
}
