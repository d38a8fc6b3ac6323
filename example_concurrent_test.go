// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples that close a channel while a peer goroutine
// polls it. The atomix close flag uses plain loads/stores with hardware
// ordering, which appear as regular memory accesses to Go's race detector.
// The examples are correct; they're excluded from race testing.

package duplex_test

import (
	"fmt"

	"code.hybscloud.com/duplex"
)

// ExampleNewChannel demonstrates a bidirectional request/reply exchange
// over the two mirrored views of one channel.
func ExampleNewChannel() {
	ch := duplex.NewChannel()
	s, r := ch.Sender(), ch.Receiver()

	// Worker: doubles every request until the channel closes.
	go func() {
		for {
			b, err := r.Await()
			if err != nil {
				return // ErrClosed
			}
			r.Send(duplex.Unpack[int](b) * 2)
		}
	}()

	for _, n := range []int{1, 2, 3} {
		s.Send(n)
		b, _ := s.Await()
		fmt.Println(duplex.Unpack[int](b))
	}
	ch.Close()

	// Output:
	// 2
	// 4
	// 6
}
