// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duplex_test

import (
	"errors"
	"sync"
	"testing"

	"code.hybscloud.com/duplex"
	"code.hybscloud.com/iox"
)

// TestQueueEmpty verifies the empty-queue contract on a fresh queue.
func TestQueueEmpty(t *testing.T) {
	q := duplex.NewQueue[int]()

	if _, err := q.Dequeue(); !errors.Is(err, duplex.ErrWouldBlock) {
		t.Fatalf("Dequeue on empty: got %v, want ErrWouldBlock", err)
	}
	if _, err := q.Peek(); !errors.Is(err, duplex.ErrWouldBlock) {
		t.Fatalf("Peek on empty: got %v, want ErrWouldBlock", err)
	}
	if q.Len() != 0 {
		t.Fatalf("Len on empty: got %d, want 0", q.Len())
	}
}

// TestQueueFIFO verifies that n enqueues followed by n dequeues preserve
// order, and that the queue is empty and reusable afterwards.
func TestQueueFIFO(t *testing.T) {
	var q duplex.Queue[int]

	const n = 100
	for i := range n {
		v := i
		if err := q.Enqueue(&v); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}
	if q.Len() != n {
		t.Fatalf("Len: got %d, want %d", q.Len(), n)
	}

	for i := range n {
		got, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue(%d): %v", i, err)
		}
		if got != i {
			t.Fatalf("Dequeue(%d): got %d, want %d", i, got, i)
		}
	}

	if _, err := q.Dequeue(); !errors.Is(err, duplex.ErrWouldBlock) {
		t.Fatalf("Dequeue after drain: got %v, want ErrWouldBlock", err)
	}

	// Drained queue accepts a fresh batch.
	v := 7
	q.Enqueue(&v)
	if got, err := q.Dequeue(); err != nil || got != 7 {
		t.Fatalf("Dequeue after reuse: got (%d, %v), want (7, nil)", got, err)
	}
}

// TestQueueInterleaved verifies FIFO order under interleaved operations:
// enqueue(1), enqueue(2), dequeue→1, enqueue(3), dequeue→2, dequeue→3.
func TestQueueInterleaved(t *testing.T) {
	var q duplex.Queue[int]

	enq := func(v int) {
		if err := q.Enqueue(&v); err != nil {
			t.Fatalf("Enqueue(%d): %v", v, err)
		}
	}
	deq := func(want int) {
		got, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue: %v", err)
		}
		if got != want {
			t.Fatalf("Dequeue: got %d, want %d", got, want)
		}
	}

	enq(1)
	enq(2)
	deq(1)
	enq(3)
	deq(2)
	deq(3)

	if _, err := q.Dequeue(); !errors.Is(err, duplex.ErrWouldBlock) {
		t.Fatalf("Dequeue after drain: got %v, want ErrWouldBlock", err)
	}
}

// TestQueuePeekIdempotent verifies that consecutive peeks return the same
// element and the next dequeue returns exactly that element.
func TestQueuePeekIdempotent(t *testing.T) {
	var q duplex.Queue[string]

	for _, v := range []string{"a", "b", "c"} {
		q.Enqueue(&v)
	}

	first, err := q.Peek()
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	for i := range 3 {
		got, err := q.Peek()
		if err != nil {
			t.Fatalf("Peek(%d): %v", i, err)
		}
		if got != first {
			t.Fatalf("Peek(%d): got %q, want %q", i, got, first)
		}
	}
	if q.Len() != 3 {
		t.Fatalf("Len after peeks: got %d, want 3", q.Len())
	}

	got, err := q.Dequeue()
	if err != nil {
		t.Fatalf("Dequeue: %v", err)
	}
	if got != first {
		t.Fatalf("Dequeue: got %q, want peeked %q", got, first)
	}
}

// TestQueueRotation drives every rotation case of the two-stack dequeue:
// an exhausted front (full reversal), a singleton front over an empty,
// singleton, and longer rear. Order must hold across all of them.
func TestQueueRotation(t *testing.T) {
	var q duplex.Queue[int]

	// front empty, rear empty
	if _, err := q.Dequeue(); !errors.Is(err, duplex.ErrWouldBlock) {
		t.Fatalf("Dequeue on empty: got %v, want ErrWouldBlock", err)
	}

	// front empty, rear non-empty: full reversal
	for i := 1; i <= 2; i++ {
		v := i
		q.Enqueue(&v)
	}
	if got, _ := q.Dequeue(); got != 1 {
		t.Fatalf("Dequeue after rotation: got %d, want 1", got)
	}

	// front singleton, rear singleton: move-single shortcut
	v := 3
	q.Enqueue(&v)
	if got, _ := q.Dequeue(); got != 2 {
		t.Fatalf("Dequeue singleton front: got %d, want 2", got)
	}
	if q.Len() != 1 {
		t.Fatalf("Len after shortcut: got %d, want 1", q.Len())
	}

	// front singleton, rear longer: full reversal behind the head
	for i := 4; i <= 6; i++ {
		v := i
		q.Enqueue(&v)
	}
	for want := 3; want <= 6; want++ {
		got, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue(%d): %v", want, err)
		}
		if got != want {
			t.Fatalf("Dequeue: got %d, want %d", got, want)
		}
	}

	// front singleton, rear empty: plain drain
	v = 7
	q.Enqueue(&v)
	if got, _ := q.Dequeue(); got != 7 {
		t.Fatalf("Dequeue last: got %d, want 7", got)
	}
	if q.Len() != 0 {
		t.Fatalf("Len after drain: got %d, want 0", q.Len())
	}
}

// TestQueuePeekRotates verifies that Peek performs the same rotations as
// Dequeue, so nothing stays stranded in the rear after a peek.
func TestQueuePeekRotates(t *testing.T) {
	var q duplex.Queue[int]

	// Exhausted front: peek must rotate and expose the oldest element.
	for i := 1; i <= 3; i++ {
		v := i
		q.Enqueue(&v)
	}
	if got, err := q.Peek(); err != nil || got != 1 {
		t.Fatalf("Peek after enqueues: got (%d, %v), want (1, nil)", got, err)
	}

	// Singleton front over a non-empty rear: peek keeps the head in place
	// while pulling the rear forward.
	q.Dequeue() // 1
	q.Dequeue() // 2, front now holds only 3
	v := 4
	q.Enqueue(&v)
	if got, err := q.Peek(); err != nil || got != 3 {
		t.Fatalf("Peek singleton front: got (%d, %v), want (3, nil)", got, err)
	}
	if got, _ := q.Dequeue(); got != 3 {
		t.Fatalf("Dequeue after peek: got %d, want 3", got)
	}
	if got, _ := q.Dequeue(); got != 4 {
		t.Fatalf("Dequeue after peek: got %d, want 4", got)
	}
}

// TestQueueConcurrentSPSC runs one producer and one consumer goroutine
// against a single queue and verifies lossless in-order delivery. The
// mutex-guarded queue is race-detector clean, unlike lock-free variants.
func TestQueueConcurrentSPSC(t *testing.T) {
	var q duplex.Queue[int]
	const n = 10000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range n {
			v := i
			q.Enqueue(&v)
		}
	}()

	bo := iox.Backoff{}
	for want := range n {
		for {
			got, err := q.Dequeue()
			if err != nil {
				bo.Wait()
				continue
			}
			bo.Reset()
			if got != want {
				t.Fatalf("Dequeue: got %d, want %d", got, want)
			}
			break
		}
	}
	wg.Wait()

	if q.Len() != 0 {
		t.Fatalf("Len after drain: got %d, want 0", q.Len())
	}
}
