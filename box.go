// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duplex

// Box is a type-erased single-value carrier.
//
// A Box is created by Pack and consumed by Unpack or As. Channel transport
// carries Box values so that one channel can move payloads of any type;
// the two endpoints agree on payload types by convention.
//
// The zero Box carries nil.
type Box struct {
	v any
}

// Pack wraps a value of any type into a Box. Total: always succeeds.
func Pack(v any) Box {
	return Box{v: v}
}

// Unpack extracts the value carried by b as type T.
//
// The carried value must be of type T: a mismatch is a programmer error
// and panics. Callers that control both ends of a channel are responsible
// for type agreement; use As when the payload type is not certain.
func Unpack[T any](b Box) T {
	return b.v.(T)
}

// As extracts the value carried by b as type T, reporting whether the
// carried value is of that type. The checked counterpart of Unpack.
func As[T any](b Box) (T, bool) {
	v, ok := b.v.(T)
	return v, ok
}
