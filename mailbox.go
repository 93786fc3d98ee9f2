// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnref

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// Mailbox1 queues pending invocations of a unary reference.
// Arguments are held in a bounded lock-free SPSC ring until the consumer
// side polls them through the bound reference.
//
// Concurrency contract: at most one posting goroutine and one polling
// goroutine (single-producer single-consumer). The reference is fixed at
// construction; its bound callable runs on the polling goroutine.
type Mailbox1[A, R any] struct {
	ref     Ref1[A, R]
	pending lfq.SPSC[A]
	closed  atomix.Uint32
	// postSlot is the single producer-side enqueue slot.
	// Safe under the SPSC contract; avoids per-Post heap escape.
	postSlot A
	serial   Serial
}

// NewMailbox1 creates a mailbox delivering to r with the given bounded
// capacity. An unbound r is permitted; Poll then reports ErrUnbound.
func NewMailbox1[A, R any](r Ref1[A, R], capacity int) *Mailbox1[A, R] {
	mb := &Mailbox1[A, R]{ref: r, serial: nextSerial()}
	mb.pending.Init(capacity)
	return mb
}

// Serial returns the serial number assigned to this mailbox.
func (mb *Mailbox1[A, R]) Serial() Serial {
	return mb.serial
}

// Ref returns the reference invocations are delivered to.
func (mb *Mailbox1[A, R]) Ref() Ref1[A, R] {
	return mb.ref
}

// Post enqueues one pending invocation.
// Non-blocking: returns iox.ErrWouldBlock if the bounded queue is full,
// ErrClosed after Close.
func (mb *Mailbox1[A, R]) Post(a A) error {
	if mb.closed.Load() != 0 {
		return ErrClosed
	}
	mb.postSlot = a
	return mb.pending.Enqueue(&mb.postSlot)
}

// PostWait enqueues one pending invocation, waiting past the full
// boundary with adaptive backoff (iox.Backoff).
func (mb *Mailbox1[A, R]) PostWait(a A) error {
	var bo iox.Backoff
	for {
		err := mb.Post(a)
		if err == nil || err == ErrClosed {
			return err
		}
		bo.Wait()
	}
}

// Poll dequeues one pending argument and invokes the reference with it.
// Non-blocking: returns iox.ErrWouldBlock if the queue is empty,
// ErrClosed once closed and drained, ErrUnbound if the reference is empty.
// Pending invocations enqueued before Close are still delivered.
func (mb *Mailbox1[A, R]) Poll() (R, error) {
	a, err := mb.pending.Dequeue()
	if err != nil {
		var zero R
		if mb.closed.Load() != 0 {
			return zero, ErrClosed
		}
		return zero, err
	}
	return mb.ref.TryCall(a)
}

// PollWait dequeues and invokes one pending invocation, waiting past the
// empty boundary with adaptive backoff (iox.Backoff).
// Returns ErrClosed once the mailbox is closed and drained.
func (mb *Mailbox1[A, R]) PollWait() (R, error) {
	var bo iox.Backoff
	for {
		v, err := mb.Poll()
		if err == nil || err == ErrClosed || err == ErrUnbound {
			return v, err
		}
		bo.Wait()
	}
}

// Close signals the producer side is done. Idempotent.
// Post fails with ErrClosed immediately; Poll drains remaining entries
// and then reports ErrClosed.
func (mb *Mailbox1[A, R]) Close() {
	mb.closed.Add(1)
}

// Closed reports whether Close has been called.
func (mb *Mailbox1[A, R]) Closed() bool {
	return mb.closed.Load() != 0
}
