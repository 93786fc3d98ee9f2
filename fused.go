// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnref

import (
	"code.hybscloud.com/kont"
)

// Apply defers invocation of a nullary reference as an effect.
// Wraps Perform(Invoke[R]{Ref: r}).
func Apply[R any](r Ref[R]) kont.Eff[R] {
	return kont.Perform(Invoke[R]{Ref: r})
}

// Apply1 defers invocation of a unary reference with argument a.
func Apply1[A, R any](r Ref1[A, R], a A) kont.Eff[R] {
	return kont.Perform(Invoke1[A, R]{Ref: r, Arg: a})
}

// Apply2 defers invocation of a binary reference.
func Apply2[A, B, R any](r Ref2[A, B, R], a A, b B) kont.Eff[R] {
	return kont.Perform(Invoke2[A, B, R]{Ref: r, Arg1: a, Arg2: b})
}

// Apply3 defers invocation of a ternary reference.
func Apply3[A, B, C, R any](r Ref3[A, B, C, R], a A, b B, c C) kont.Eff[R] {
	return kont.Perform(Invoke3[A, B, C, R]{Ref: r, Arg1: a, Arg2: b, Arg3: c})
}

// CallThen invokes r, discards the result, and continues with next.
// Fuses Apply + Then.
func CallThen[R, B any](r Ref[R], next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(Apply(r), next)
}

// CallThen1 invokes r with a, discards the result, and continues with next.
// Fuses Apply1 + Then.
func CallThen1[A, R, B any](r Ref1[A, R], a A, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(Apply1(r, a), next)
}

// CallBind invokes r and passes the result to f.
// Fuses Apply + Bind.
func CallBind[R, B any](r Ref[R], f func(R) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(Apply(r), f)
}

// CallBind1 invokes r with a and passes the result to f.
// Fuses Apply1 + Bind.
func CallBind1[A, R, B any](r Ref1[A, R], a A, f func(R) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(Apply1(r, a), f)
}
