// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnref

import "errors"

var (
	// ErrUnbound is returned by checked invocation through an unbound
	// reference. The unchecked Call path panics instead.
	ErrUnbound = errors.New("fnref: unbound reference")

	// ErrClosed is returned by mailbox operations after Close, once the
	// pending queue has been drained.
	ErrClosed = errors.New("fnref: mailbox closed")

	// ErrNotFound is returned by dynamic binds when the named method or
	// field does not exist on the receiver.
	ErrNotFound = errors.New("fnref: member not found")

	// ErrIncompatible is returned by dynamic binds when the callable's
	// signature cannot produce the reference's result type.
	ErrIncompatible = errors.New("fnref: callable incompatible with signature")
)
