// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnref

import (
	"code.hybscloud.com/kont"
)

// invokeDispatcher is the structural interface for invoke operations.
// DispatchInvoke returns ErrUnbound at the dispatch boundary when the
// operation's reference is empty.
type invokeDispatcher interface {
	DispatchInvoke() (kont.Resumed, error)
}

// invokeHandler implements kont.Handler for invoke effects.
// Unchecked world: dispatching through an unbound reference panics,
// mirroring the Call precondition.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type invokeHandler[R any] struct{}

// Dispatch implements kont.Handler via structural interface assertion.
func (invokeHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	iop, ok := op.(invokeDispatcher)
	if !ok {
		panic("fnref: unhandled effect in invokeHandler")
	}
	v, err := iop.DispatchInvoke()
	if err != nil {
		panic("fnref: invoke through unbound reference")
	}
	return v, true
}

// Exec runs a Cont-world computation, dispatching every invoke effect
// immediately. Panics if the computation invokes an unbound reference;
// use ExecEither for the checked variant.
func Exec[R any](m kont.Eff[R]) R {
	return kont.Handle(m, invokeHandler[R]{})
}

// ExecExpr runs an Expr-world computation, dispatching every invoke
// effect immediately.
func ExecExpr[R any](m kont.Expr[R]) R {
	return kont.HandleExpr(m, invokeHandler[R]{})
}
