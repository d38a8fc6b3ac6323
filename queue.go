// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duplex

import "sync"

// Queue is an unbounded FIFO built from two stacks.
//
// Enqueue pushes onto the rear stack; Dequeue pops from the front stack.
// When the front is exhausted, the rear is reversed into a new front in one
// O(n) rotation. The rotation fires at most once per batch of n enqueues,
// so all operations are amortized O(1) (a banker's queue).
//
// Representation invariant: the FIFO content equals front ++ reverse(rear),
// and after any Dequeue or Peek the front is empty only if the rear is
// empty too — no element is left stranded solely in the rear.
//
// All operations are serialized under one mutex. A rotation mutates both
// stacks, so the pair must be updated atomically with respect to other
// callers. Access pattern is single-producer single-consumer; the mutex
// guards the producer/consumer overlap, not multi-consumer fan-out.
//
// The zero value is an empty queue ready for use.
type Queue[T any] struct {
	mu    sync.Mutex
	front Stack[T]
	rear  Stack[T]
}

// NewQueue creates an empty queue.
// Equivalent to new(Queue[T]); provided for symmetry with NewChannel.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue adds an element to the tail of the queue. O(1).
// The element is passed by pointer to avoid copying large structs; the
// queue stores a copy of the pointed-to value.
//
// The queue is unbounded, so Enqueue always succeeds. The error result
// keeps the signature aligned with bounded producers such as
// [code.hybscloud.com/lfq.Producer].
func (q *Queue[T]) Enqueue(elem *T) error {
	q.mu.Lock()
	q.rear.Push(elem)
	q.mu.Unlock()
	return nil
}

// Dequeue removes and returns the element at the head of the queue.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
// Amortized O(1); worst case O(n) when a rotation fires.
func (q *Queue[T]) Dequeue() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	switch q.front.Len() {
	case 0:
		if q.rear.Len() == 0 {
			var zero T
			return zero, ErrWouldBlock
		}
		q.rotate()
		return q.front.Pop()
	case 1:
		// Popping the last front element would strand the rear;
		// refill eagerly so the invariant holds on return.
		elem, _ := q.front.Pop()
		q.refill()
		return elem, nil
	default:
		return q.front.Pop()
	}
}

// Peek returns the element at the head of the queue without removing it.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
//
// Peek performs the same rotations as Dequeue, so repeated peeks after a
// drained front stay O(1); the head is left in place and the subsequent
// Dequeue returns the same element.
func (q *Queue[T]) Peek() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	switch q.front.Len() {
	case 0:
		if q.rear.Len() == 0 {
			var zero T
			return zero, ErrWouldBlock
		}
		q.rotate()
	case 1:
		if q.rear.Len() > 0 {
			head, _ := q.front.Pop()
			q.refill()
			q.front.Push(&head)
		}
	}
	return q.front.Peek()
}

// Len returns the number of queued elements.
// Accurate under the queue mutex.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	n := q.front.Len() + q.rear.Len()
	q.mu.Unlock()
	return n
}

// rotate reverses the rear stack into the front stack.
// Precondition: front is empty, rear is not. The rear buffer is reversed
// in place and becomes the new front; the drained front buffer is recycled
// as the new rear to amortize allocations. Callers hold q.mu.
func (q *Queue[T]) rotate() {
	buf := q.rear.buf
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	q.rear.buf = q.front.buf[:0]
	q.front.buf = buf
}

// refill moves the rear into the just-drained front.
// A rear of exactly one element is moved directly, avoiding a redundant
// reversal; longer rears take the full rotation. Callers hold q.mu.
func (q *Queue[T]) refill() {
	switch q.rear.Len() {
	case 0:
	case 1:
		elem, _ := q.rear.Pop()
		q.front.Push(&elem)
	default:
		q.rotate()
	}
}
