// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fnref provides lightweight non-owning references to callables,
// with deferred invocation via algebraic effects on [code.hybscloud.com/kont].
//
// A reference is a two-word value: an opaque handle to the callable's
// storage and a statically instantiated dispatch thunk. Binding never
// copies the callable and never allocates; invocation is one indirect call.
//
// # Architecture
//
//   - References: [Ref], [Ref1], [Ref2], [Ref3] — one type per arity
//     (Go has no variadic type parameters). The zero value is unbound.
//   - Binding: [Bind]/[Bind1]/[Bind2]/[Bind3] for function lvalues,
//     [BindCaller]..[BindCaller3] for functor-like values via the [Caller]
//     constraints. Compatibility is checked at compile time.
//   - Dynamic binding: [Method]/[Method1]/[Method2], [FieldOf], [Func1]
//     perform the compatibility check at bind time via reflection and
//     return an error for incompatible callables.
//   - Invocation: Call is the unchecked fast path (bound reference is a
//     precondition; calling unbound panics). TryCall is the checked
//     variant returning [ErrUnbound].
//
// # Effect World
//
//   - Operations: [Invoke], [Invoke1], [Invoke2], [Invoke3].
//   - Cont-world: [Apply]..[Apply3], [CallThen], [CallThen1], [CallBind],
//     [CallBind1], [Iterate]. Run with [Exec] (unchecked) or [ExecEither]
//     (unbound references short-circuit to Left). Bridge via [Reify] and
//     [Reflect].
//   - Expr-world: [ExprApply]..[ExprApply2], [ExprCallBind1].
//   - Stepping: [Step] and [Advance] evaluate one invocation at a time,
//     making deferred callbacks easy to integrate with a proactor loop.
//
// # Mailbox
//
// [Mailbox1] queues pending invocations in a bounded lock-free SPSC ring
// from [code.hybscloud.com/lfq]. Post and Poll are non-blocking and return
// [code.hybscloud.com/iox.ErrWouldBlock] on backpressure; Wait and Drain
// variants block past the boundary using adaptive backoff.
//
// # Example
//
//	f := func(x int) int { return x + 1 }
//	r := fnref.Bind1(&f)
//	r.Call(5) // 6
//
//	_, susp := fnref.Step[int](fnref.ExprApply1(r, 41))
//	result, _, _ := fnref.Advance(susp) // 42
package fnref
