// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnref

import (
	"code.hybscloud.com/kont"
)

// Invoke is the effect operation for calling a nullary reference.
// Perform(Invoke[R]{Ref: r}) resumes with the call result.
type Invoke[R any] struct {
	kont.Phantom[R]
	Ref Ref[R]
}

// DispatchInvoke calls through the carried reference.
// Returns ErrUnbound without invoking anything when the reference is empty.
func (op Invoke[R]) DispatchInvoke() (kont.Resumed, error) {
	v, err := op.Ref.TryCall()
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Invoke1 is the effect operation for calling a unary reference.
type Invoke1[A, R any] struct {
	kont.Phantom[R]
	Ref Ref1[A, R]
	Arg A
}

// DispatchInvoke calls through the carried reference with the carried argument.
func (op Invoke1[A, R]) DispatchInvoke() (kont.Resumed, error) {
	v, err := op.Ref.TryCall(op.Arg)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Invoke2 is the effect operation for calling a binary reference.
type Invoke2[A, B, R any] struct {
	kont.Phantom[R]
	Ref  Ref2[A, B, R]
	Arg1 A
	Arg2 B
}

// DispatchInvoke calls through the carried reference with the carried arguments.
func (op Invoke2[A, B, R]) DispatchInvoke() (kont.Resumed, error) {
	v, err := op.Ref.TryCall(op.Arg1, op.Arg2)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Invoke3 is the effect operation for calling a ternary reference.
type Invoke3[A, B, C, R any] struct {
	kont.Phantom[R]
	Ref  Ref3[A, B, C, R]
	Arg1 A
	Arg2 B
	Arg3 C
}

// DispatchInvoke calls through the carried reference with the carried arguments.
func (op Invoke3[A, B, C, R]) DispatchInvoke() (kont.Resumed, error) {
	v, err := op.Ref.TryCall(op.Arg1, op.Arg2, op.Arg3)
	if err != nil {
		return nil, err
	}
	return v, nil
}
