// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnref

import (
	"code.hybscloud.com/kont"
)

// Iterate drives a bound step callable to a fixpoint.
// The callable returns Left(nextState) to continue or Right(result) to
// finish; each round is a deferred invoke effect, so stepping and checked
// evaluation observe every iteration.
func Iterate[S, A any](r Ref1[S, kont.Either[S, A]], initial S) kont.Eff[A] {
	return kont.Bind(Apply1(r, initial), func(e kont.Either[S, A]) kont.Eff[A] {
		if left, ok := e.GetLeft(); ok {
			return Iterate(r, left)
		}
		right, _ := e.GetRight()
		return kont.Pure(right)
	})
}
