// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnref_test

import (
	"code.hybscloud.com/fnref"
	"code.hybscloud.com/kont"
)

// tally is a mutable functor with a pointer-receiver Call.
// Used by aliasing tests: every alias of a reference bound to the same
// tally observes the accumulated count.
type tally struct {
	n int
}

func (t *tally) Call(d int) int {
	t.n += d
	return t.n
}

// adder is an immutable functor with a value-receiver Call.
type adder struct {
	base int
}

func (a adder) Call(x int) int {
	return a.base + x
}

// execStep drives a computation to completion via Step+Advance loop.
// Used by stepping tests to exercise the one-invocation-at-a-time path.
func execStep[R any](m kont.Expr[R]) R {
	result, susp := fnref.Step[R](m)
	for susp != nil {
		var err error
		result, susp, err = fnref.Advance(susp)
		if err != nil {
			panic(err)
		}
	}
	return result
}
