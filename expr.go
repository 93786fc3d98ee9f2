// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnref

import (
	"code.hybscloud.com/kont"
)

// exprReturnFrame is the pre-allocated terminal frame shared by all
// Expr-world constructors, avoiding per-construction boxing.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame construction.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

// ExprApply defers invocation of a nullary reference (Expr-world).
// Fuses ExprPerform(Invoke) + ExprReturn.
func ExprApply[R any](r Ref[R]) kont.Expr[R] {
	ef := kont.AcquireEffectFrame()
	ef.Operation = Invoke[R]{Ref: r}
	ef.Resume = identityResume
	ef.Next = exprReturnFrame
	return kont.ExprSuspend[R](ef)
}

// ExprApply1 defers invocation of a unary reference (Expr-world).
func ExprApply1[A, R any](r Ref1[A, R], a A) kont.Expr[R] {
	ef := kont.AcquireEffectFrame()
	ef.Operation = Invoke1[A, R]{Ref: r, Arg: a}
	ef.Resume = identityResume
	ef.Next = exprReturnFrame
	return kont.ExprSuspend[R](ef)
}

// ExprApply2 defers invocation of a binary reference (Expr-world).
func ExprApply2[A, B, R any](r Ref2[A, B, R], a A, b B) kont.Expr[R] {
	ef := kont.AcquireEffectFrame()
	ef.Operation = Invoke2[A, B, R]{Ref: r, Arg1: a, Arg2: b}
	ef.Resume = identityResume
	ef.Next = exprReturnFrame
	return kont.ExprSuspend[R](ef)
}

func callBindUnwind[R, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(R) kont.Expr[B])
	result := f(current.(R))
	return kont.Erased(result.Value), result.Frame
}

// ExprCallBind1 invokes r with a and passes the result to f (Expr-world).
// Fuses ExprPerform(Invoke1) + ExprBind.
func ExprCallBind1[A, R, B any](r Ref1[A, R], a A, f func(R) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = callBindUnwind[R, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Invoke1[A, R]{Ref: r, Arg: a}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}
