// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnref

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a computation until the first pending invocation.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](m kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(m)
}

// Advance dispatches the suspended invocation.
//
// On success (nil error), the suspension is consumed and the computation
// advances to the next pending invocation or completion.
// On ErrUnbound, the suspension is unconsumed; the operation carries its
// reference by value, so the error is permanent and the suspension
// should be discarded.
func Advance[R any](susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	iop, ok := susp.Op().(invokeDispatcher)
	if !ok {
		panic("fnref: unhandled effect in Advance")
	}
	v, err := iop.DispatchInvoke()
	if err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}
