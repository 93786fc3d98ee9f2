// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnref_test

import (
	"testing"
	"testing/quick"

	"code.hybscloud.com/fnref"
)

// TestPropertyIdentity proves that for any argument, invoking through a
// bound reference produces exactly the callable's own result.
func TestPropertyIdentity(t *testing.T) {
	f := func(x int) int { return x*3 + 1 }
	r := fnref.Bind1(&f)

	propertyIdentity := func(x int) bool {
		return r.Call(x) == f(x)
	}
	if err := quick.Check(propertyIdentity, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyRebindLastWins proves that after any sequence of rebinds,
// invocation always dispatches to the last bound callable.
func TestPropertyRebindLastWins(t *testing.T) {
	propertyRebind := func(x int, swapped bool) bool {
		f1 := func(v int) int { return v + 1 }
		f2 := func(v int) int { return v * 2 }
		r := fnref.Bind1(&f1)
		r = fnref.Bind1(&f2)
		if swapped {
			r = fnref.Bind1(&f1)
			return r.Call(x) == f1(x)
		}
		return r.Call(x) == f2(x)
	}
	if err := quick.Check(propertyRebind, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertySwapInvolution proves that swapping twice restores the
// original dispatch targets for any argument.
func TestPropertySwapInvolution(t *testing.T) {
	propertySwap := func(x int) bool {
		f1 := func(v int) int { return v - 7 }
		f2 := func(v int) int { return v * v }
		r1 := fnref.Bind1(&f1)
		r2 := fnref.Bind1(&f2)
		fnref.Swap1(&r1, &r2)
		fnref.Swap1(&r1, &r2)
		return r1.Call(x) == f1(x) && r2.Call(x) == f2(x)
	}
	if err := quick.Check(propertySwap, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyMailboxFIFO proves that for any arbitrarily generated
// payload, the mailbox delivers every pending invocation exactly once,
// in posting order.
func TestPropertyMailboxFIFO(t *testing.T) {
	skipRace(t)

	propertyFIFO := func(payload []int) bool {
		negate := func(x int) int { return -x }
		mb := fnref.NewMailbox1(fnref.Bind1(&negate), 4)

		// Single-threaded interleave: one post, one poll per element,
		// so the bounded capacity never back-pressures.
		for _, v := range payload {
			if err := mb.Post(v); err != nil {
				return false
			}
			got, err := mb.Poll()
			if err != nil || got != -v {
				return false
			}
		}
		mb.Close()
		_, err := mb.Poll()
		return err == fnref.ErrClosed
	}
	if err := quick.Check(propertyFIFO, nil); err != nil {
		t.Error(err)
	}
}
