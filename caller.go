// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnref

import "unsafe"

// Caller constrains functor-like values invocable with no arguments.
// The constraint is the compile-time compatibility check for BindCaller:
// a type whose Call method does not match the target signature simply
// fails to instantiate the bind.
type Caller[R any] interface {
	Call() R
}

// Caller1 constrains functor-like values invocable with one argument.
type Caller1[A, R any] interface {
	Call(A) R
}

// Caller2 constrains functor-like values invocable with two arguments.
type Caller2[A, B, R any] interface {
	Call(A, B) R
}

// Caller3 constrains functor-like values invocable with three arguments.
type Caller3[A, B, C, R any] interface {
	Call(A, B, C) R
}

func thunkCaller[F Caller[R], R any](p unsafe.Pointer) R {
	return (*(*F)(p)).Call()
}

func thunkCaller1[F Caller1[A, R], A, R any](p unsafe.Pointer, a A) R {
	return (*(*F)(p)).Call(a)
}

func thunkCaller2[F Caller2[A, B, R], A, B, R any](p unsafe.Pointer, a A, b B) R {
	return (*(*F)(p)).Call(a, b)
}

func thunkCaller3[F Caller3[A, B, C, R], A, B, C, R any](p unsafe.Pointer, a A, b B, c C) R {
	return (*(*F)(p)).Call(a, b, c)
}

// BindCaller binds a functor-like value through its Call method.
// The reference aliases *f: mutations of the functor's state are visible
// through every copy. Functors with pointer-receiver Call methods
// instantiate F with the pointer type and pass the pointer's address.
func BindCaller[F Caller[R], R any](f *F) Ref[R] {
	if f == nil {
		return Ref[R]{}
	}
	return Ref[R]{target: unsafe.Pointer(f), dispatch: thunkCaller[F, R]}
}

// BindCaller1 binds a unary functor-like value through its Call method.
func BindCaller1[F Caller1[A, R], A, R any](f *F) Ref1[A, R] {
	if f == nil {
		return Ref1[A, R]{}
	}
	return Ref1[A, R]{target: unsafe.Pointer(f), dispatch: thunkCaller1[F, A, R]}
}

// BindCaller2 binds a binary functor-like value through its Call method.
func BindCaller2[F Caller2[A, B, R], A, B, R any](f *F) Ref2[A, B, R] {
	if f == nil {
		return Ref2[A, B, R]{}
	}
	return Ref2[A, B, R]{target: unsafe.Pointer(f), dispatch: thunkCaller2[F, A, B, R]}
}

// BindCaller3 binds a ternary functor-like value through its Call method.
func BindCaller3[F Caller3[A, B, C, R], A, B, C, R any](f *F) Ref3[A, B, C, R] {
	if f == nil {
		return Ref3[A, B, C, R]{}
	}
	return Ref3[A, B, C, R]{target: unsafe.Pointer(f), dispatch: thunkCaller3[F, A, B, C, R]}
}
