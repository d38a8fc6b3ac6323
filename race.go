// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package duplex

// RaceEnabled is true when the race detector is active.
// Used by tests to skip cross-goroutine Close scenarios: the channel's
// atomix close flag uses plain loads/stores with hardware ordering, which
// the detector cannot track and reports as false positives.
const RaceEnabled = true
