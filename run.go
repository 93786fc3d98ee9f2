// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnref

import (
	"code.hybscloud.com/iox"
)

// Drain polls until the pending queue is empty, collecting results in
// posting order. Non-blocking: stops at the empty boundary with a nil
// error. Returns ErrClosed if the mailbox is closed and drained, or
// ErrUnbound if the mailbox's reference is empty; results collected
// before the error are returned either way.
func (mb *Mailbox1[A, R]) Drain() ([]R, error) {
	var results []R
	for {
		v, err := mb.Poll()
		if err != nil {
			if err == ErrClosed || err == ErrUnbound {
				return results, err
			}
			return results, nil
		}
		results = append(results, v)
	}
}

// DrainWait drains until the mailbox is closed and empty, collecting
// results in posting order. Waits at the empty boundary with adaptive
// backoff (iox.Backoff), without spawning goroutines or creating
// channels. Returns ErrUnbound if the mailbox's reference is empty.
func (mb *Mailbox1[A, R]) DrainWait() ([]R, error) {
	var results []R
	var bo iox.Backoff
	for {
		v, err := mb.Poll()
		if err == nil {
			results = append(results, v)
			bo.Reset()
			continue
		}
		if err == ErrClosed {
			return results, nil
		}
		if err == ErrUnbound {
			return results, err
		}
		bo.Wait()
	}
}
