// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duplex

import (
	"time"

	"code.hybscloud.com/iox"
)

// Await blocks until a value arrives on the endpoint's inbox, then
// dequeues and returns it. Polls with adaptive backoff ([iox.Backoff]),
// yielding between checks rather than spinning.
//
// Await returns an error only when the channel closes with the inbox
// drained (ErrClosed); there is no other way to interrupt it. Callers
// needing a bounded wait use AwaitTimeout.
//
// A successful HasNext followed by an empty Receive on the same iteration
// means another consumer drained the inbox between the check and the take.
// That violates the single-consumer contract and panics.
func (ep Endpoint) Await() (Box, error) {
	var bo iox.Backoff
	for {
		if ep.HasNext() {
			b, err := ep.Receive()
			if err != nil {
				panic("duplex: inbox drained between check and take; second consumer on a single-consumer endpoint")
			}
			return b, nil
		}
		if ep.ch.Closed() {
			// Re-check the inbox: a value may have landed before Close.
			if b, err := ep.Receive(); err == nil {
				return b, nil
			}
			return Box{}, ErrClosed
		}
		bo.Wait()
	}
}

// AwaitTimeout blocks like Await, but gives up once timeout has elapsed,
// returning (Box{}, ErrWouldBlock) on expiry. After the deadline passes it
// still makes exactly one more non-blocking attempt, so AwaitTimeout(0) on
// an empty inbox returns immediately without entering the wait loop.
//
// Returns ErrClosed if the channel closes with the inbox drained before
// the deadline.
func (ep Endpoint) AwaitTimeout(timeout time.Duration) (Box, error) {
	deadline := time.Now().Add(timeout)
	var bo iox.Backoff
	for {
		b, err := ep.Receive()
		if err == nil {
			return b, nil
		}
		if IsClosed(err) {
			return Box{}, err
		}
		if !time.Now().Before(deadline) {
			return Box{}, ErrWouldBlock
		}
		bo.Wait()
	}
}
