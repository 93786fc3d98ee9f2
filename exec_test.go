// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnref_test

import (
	"testing"

	"code.hybscloud.com/fnref"
	"code.hybscloud.com/kont"
)

func TestExecApply(t *testing.T) {
	f := func(x int) int { return x + 1 }
	r := fnref.Bind1(&f)
	if got := fnref.Exec(fnref.Apply1(r, 5)); got != 6 {
		t.Fatalf("got %d, want 6", got)
	}
}

func TestExecChain(t *testing.T) {
	double := func(x int) int { return x * 2 }
	inc := func(x int) int { return x + 1 }
	rd := fnref.Bind1(&double)
	ri := fnref.Bind1(&inc)

	m := fnref.CallBind1(rd, 5, func(v int) kont.Eff[int] {
		return fnref.Apply1(ri, v)
	})
	if got := fnref.Exec(m); got != 11 {
		t.Fatalf("got %d, want 11", got)
	}
}

func TestExecCallThen(t *testing.T) {
	calls := 0
	effect := func() struct{} {
		calls++
		return struct{}{}
	}
	re := fnref.Bind(&effect)
	m := fnref.CallThen(re, fnref.CallThen(re, kont.Pure("done")))
	if got := fnref.Exec(m); got != "done" {
		t.Fatalf("got %q, want done", got)
	}
	if calls != 2 {
		t.Fatalf("calls is %d, want 2", calls)
	}
}

func TestExecExpr(t *testing.T) {
	f := func(a, b int) int { return a * b }
	r := fnref.Bind2(&f)
	if got := fnref.ExecExpr(fnref.ExprApply2(r, 6, 7)); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestExecUnboundPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Exec through unbound reference did not panic")
		}
	}()
	var r fnref.Ref1[int, int]
	fnref.Exec(fnref.Apply1(r, 5))
}

func TestExecEitherRight(t *testing.T) {
	f := func(x int) int { return x + 1 }
	r := fnref.Bind1(&f)
	result := fnref.ExecEither(fnref.Apply1(r, 41))
	v, ok := result.GetRight()
	if !ok || v != 42 {
		t.Fatalf("got (%v, %v), want Right(42)", v, ok)
	}
}

func TestExecEitherUnbound(t *testing.T) {
	inc := func(x int) int { return x + 1 }
	ri := fnref.Bind1(&inc)
	var unbound fnref.Ref1[int, int]

	// The bound head dispatches; the unbound tail short-circuits.
	m := fnref.CallBind1(ri, 1, func(v int) kont.Eff[int] {
		return fnref.Apply1(unbound, v)
	})
	result := fnref.ExecEither(m)
	errVal, isErr := result.GetLeft()
	if !isErr || errVal != fnref.ErrUnbound {
		t.Fatalf("got (%v, %v), want Left(ErrUnbound)", errVal, isErr)
	}
}

func TestExecEitherExpr(t *testing.T) {
	var r fnref.Ref[int]
	result := fnref.ExecEitherExpr(fnref.ExprApply(r))
	if errVal, isErr := result.GetLeft(); !isErr || errVal != fnref.ErrUnbound {
		t.Fatalf("got (%v, %v), want Left(ErrUnbound)", errVal, isErr)
	}
}

func TestReflectRoundTrip(t *testing.T) {
	f := func(x int) int { return x - 1 }
	r := fnref.Bind1(&f)
	m := fnref.Reflect(fnref.Reify(fnref.Apply1(r, 43)))
	if got := fnref.Exec(m); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}
