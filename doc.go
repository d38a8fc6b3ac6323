// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package duplex provides unbounded amortized FIFO queues and a
// bidirectional single-producer single-consumer channel built on them.
//
// The package has three layers:
//
//   - Stack: a slice-backed LIFO, the building block. Owned by a Queue,
//     never shared.
//   - Queue: two Stacks (front, rear) forming an amortized-O(1) FIFO via
//     lazy reversal (a banker's queue), guarded by a mutex.
//   - Channel: a pair of Queues with two mirrored Endpoint views, carrying
//     type-erased Box values in both directions.
//
// # Quick Start
//
//	ch := duplex.NewChannel()
//	s, r := ch.Sender(), ch.Receiver()
//
//	s.Send("ping")
//	b, _ := r.Receive()
//	fmt.Println(duplex.Unpack[string](b)) // "ping"
//
//	r.Send("pong") // replies travel the opposite queue
//	b, _ = s.Receive()
//
// # Amortized FIFO
//
// Enqueue always pushes onto the rear stack in O(1). Dequeue pops from the
// front stack; when the front is exhausted the rear is reversed into a new
// front in one O(n) rotation. The rotation fires at most once per batch of
// n enqueues, so every operation is amortized O(1). Singleton fronts
// trigger an eager rotation of the rear (with a move-single shortcut when
// the rear holds exactly one element) so that a drained front never leaves
// elements stranded in the rear.
//
// # Channel Views
//
// A Channel owns two queues. Sender returns the canonical view
// (in=inbox, out=outbox); Receiver returns the mirrored view
// (in=outbox, out=inbox). Both views alias the channel's own queue
// storage — constructing a view never copies queue contents — so whatever
// one side sends, the other observes on its inbox, in both directions.
//
// # Blocking Receive
//
// Receive is non-blocking and returns ErrWouldBlock when the inbox is
// empty. Await blocks until an item arrives, yielding between polls with
// [code.hybscloud.com/iox.Backoff] rather than spinning. AwaitTimeout
// bounds the wait and makes one final non-blocking attempt once the
// deadline passes:
//
//	b, err := r.AwaitTimeout(50 * time.Millisecond)
//	if duplex.IsWouldBlock(err) {
//	    // nothing arrived in time
//	}
//
// # Error Handling
//
// Absence is not failure. Empty dequeues, empty receives, and timeout
// expiry return [ErrWouldBlock], a control-flow signal sourced from
// [code.hybscloud.com/iox] for ecosystem consistency. After Close, a
// drained endpoint returns [ErrClosed] instead, and Send fails with
// [ErrClosed] immediately.
//
// Unpacking a Box as the wrong type is a programmer error and panics;
// use As for a checked extraction.
//
// # Thread Safety
//
// Each Queue serializes enqueue, dequeue, and peek under its own mutex:
// a rotation mutates both stacks and must be atomic with respect to the
// opposite endpoint. Within that guarantee the access pattern is SPSC per
// direction — exactly one goroutine sends on each endpoint and exactly
// one receives. Attaching a second consumer to an endpoint violates the
// contract; Await detects the resulting drained-between-check-and-take
// state and panics.
//
// Queues are length-aware: Len is accurate under the mutex, unlike the
// lock-free queues in [code.hybscloud.com/lfq] which omit it.
//
// There is no fan-out and no priority ordering. For bounded lock-free
// transport, use lfq instead; duplex trades boundedness for unbounded
// buffering with amortized-O(1) operations.
//
// # Race Detection
//
// Queue operations synchronize through a mutex and are fully visible to
// Go's race detector. The channel close flag is different: it is an
// atomix value using plain loads/stores with hardware ordering, which
// the detector sees as unsynchronized accesses. Closing a channel while
// the peer goroutine polls it is correct but reported as a race; tests
// exercising that pattern are skipped under the detector via
// [RaceEnabled], the same discipline [code.hybscloud.com/lfq] applies to
// its lock-free paths.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// adaptive backoff, and [code.hybscloud.com/atomix] for the channel
// serial and close counters.
package duplex
