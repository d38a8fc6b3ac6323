// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duplex

import "code.hybscloud.com/atomix"

// Channel is a bidirectional message channel: two unbounded queues of Box
// values, one per direction, in a single allocation.
//
// A Channel is never used directly; Sender and Receiver return the two
// mirrored Endpoint views over its queues. Whatever the sender view pushes
// onto its outbox, the receiver view observes on its inbox, and vice versa
// for replies.
type Channel struct {
	inbox  Queue[Box]
	outbox Queue[Box]
	closed atomix.Bool
	serial Serial
}

// NewChannel creates a channel with two empty queues.
func NewChannel() *Channel {
	return &Channel{serial: nextSerial()}
}

// Serial returns the serial number assigned to this channel.
func (c *Channel) Serial() Serial {
	return c.serial
}

// Close marks the channel closed. Both endpoints observe it: Send fails
// with ErrClosed, and Receive switches from ErrWouldBlock to ErrClosed
// once the inbox is drained. Queued items remain receivable.
//
// Close never blocks and is safe to call from either side, more than once.
func (c *Channel) Close() {
	c.closed.StoreRelease(true)
}

// Closed reports whether Close has been called on the channel.
func (c *Channel) Closed() bool {
	return c.closed.LoadAcquire()
}

// Endpoint is one view of a channel: a pair of references to the channel's
// own queues, oriented so that out on one endpoint is in on its peer.
//
// An Endpoint is a lightweight handle. Constructing one never copies queue
// contents, and it must not outlive its Channel. Exactly one goroutine
// should send on an endpoint and exactly one should receive from it.
type Endpoint struct {
	in  *Queue[Box]
	out *Queue[Box]
	ch  *Channel
}

// Sender returns the canonical view of the channel:
// in aliases the channel inbox, out aliases the channel outbox.
func (c *Channel) Sender() Endpoint {
	return Endpoint{in: &c.inbox, out: &c.outbox, ch: c}
}

// Receiver returns the mirrored view of the channel:
// in aliases the channel outbox, out aliases the channel inbox.
func (c *Channel) Receiver() Endpoint {
	return Endpoint{in: &c.outbox, out: &c.inbox, ch: c}
}

// Channel returns the channel this endpoint views.
func (ep Endpoint) Channel() *Channel {
	return ep.ch
}

// Send packs v and enqueues it on the endpoint's outbox. Amortized O(1).
// The outbox is unbounded, so Send never blocks; it fails only with
// ErrClosed after the channel has been closed.
func (ep Endpoint) Send(v any) error {
	if ep.ch.Closed() {
		return ErrClosed
	}
	b := Pack(v)
	return ep.out.Enqueue(&b)
}

// Receive dequeues the next Box from the endpoint's inbox (non-blocking).
// Returns (Box{}, ErrWouldBlock) when the inbox is empty and the channel
// is open, and (Box{}, ErrClosed) when it is empty and closed.
func (ep Endpoint) Receive() (Box, error) {
	b, err := ep.in.Dequeue()
	if err != nil && ep.ch.Closed() {
		return Box{}, ErrClosed
	}
	return b, err
}

// HasNext reports whether a value is queued on the endpoint's inbox.
// Non-blocking; items queued before Close keep reporting true until drained.
func (ep Endpoint) HasNext() bool {
	_, err := ep.in.Peek()
	return err == nil
}

// Recv receives the next value and extracts it as type T.
// The checked counterpart of Receive+Unpack. Empty and closed inboxes
// report ErrWouldBlock and ErrClosed as Receive does; a payload of
// another type yields (zero-value, ErrTypeMismatch) with the Box
// consumed.
func Recv[T any](ep Endpoint) (T, error) {
	b, err := ep.Receive()
	if err != nil {
		var zero T
		return zero, err
	}
	v, ok := As[T](b)
	if !ok {
		var zero T
		return zero, ErrTypeMismatch
	}
	return v, nil
}
