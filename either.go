// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnref

import (
	"code.hybscloud.com/kont"
)

// checkedHandler handles invoke effects with error short-circuiting.
// Dispatch through an unbound reference discards the rest of the
// computation and returns Left(ErrUnbound).
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type checkedHandler[R any] struct{}

// Dispatch implements kont.Handler for the checked invoke world.
func (checkedHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	iop, ok := op.(invokeDispatcher)
	if !ok {
		panic("fnref: unhandled effect in checkedHandler")
	}
	v, err := iop.DispatchInvoke()
	if err != nil {
		return kont.Left[error, R](err), false
	}
	return v, true
}

// ExecEither runs a Cont-world computation with checked dispatch.
// Returns Either[error, R] — Right on success, Left(ErrUnbound) if any
// invoke effect reaches an unbound reference.
func ExecEither[R any](m kont.Eff[R]) kont.Either[error, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[error, R]](m, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	return kont.Handle(wrapped, checkedHandler[R]{})
}

// ExecEitherExpr runs an Expr-world computation with checked dispatch.
// Returns Either[error, R] — Right on success, Left(ErrUnbound) if any
// invoke effect reaches an unbound reference.
func ExecEitherExpr[R any](m kont.Expr[R]) kont.Either[error, R] {
	wrapped := kont.ExprMap(m, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	return kont.HandleExpr(wrapped, checkedHandler[R]{})
}
