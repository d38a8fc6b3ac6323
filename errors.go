// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duplex

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For Dequeue/Peek: the queue is empty.
// For Receive: the inbox is empty (no value yet).
// For AwaitTimeout: the deadline expired before a value arrived.
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// retry, wait with Await/AwaitTimeout, or treat the silence as a
// higher-level condition — never propagate it as an error.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrClosed indicates the channel has been closed and the inbox is fully
// drained. Unlike ErrWouldBlock it is terminal: no further value can ever
// arrive on the endpoint.
//
// Send returns ErrClosed immediately after Close. Receive keeps returning
// queued items until the inbox is empty, then switches from ErrWouldBlock
// to ErrClosed.
var ErrClosed = errors.New("duplex: channel closed")

// ErrTypeMismatch indicates a typed receive found a payload of another
// type. The value is consumed: endpoints agree on payload types by
// convention, so a mismatch is a protocol fault, not a retry condition.
var ErrTypeMismatch = errors.New("duplex: payload type mismatch")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsClosed reports whether err indicates a closed, drained channel.
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil or ErrWouldBlock.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
