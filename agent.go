// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mart

import "fmt"

// Producer attempts to hand one good of type G into an exchange.
//
// Produce is synchronous and non-blocking: a single call attempts the
// exchange once and returns immediately. It returns nil on success.
// On failure it returns a Recall carrying the rejected good and a fault in
// the flaw domain (I, D); retrying past an insufficiency is the caller's
// responsibility (see Deliver).
type Producer[G, I, D any] interface {
	fmt.Stringer
	Produce(good G) *Recall[G, I, D]
}

// Consumer attempts to obtain one good of type G from an exchange.
//
// Consume is synchronous and non-blocking: a single call attempts the
// exchange once and returns immediately. On failure it returns a Failure
// with a fault in the flaw domain (I, D); retrying past an insufficiency is
// the caller's responsibility (see Draw).
type Consumer[G, I, D any] interface {
	fmt.Stringer
	Consume() (G, *Failure[I, D])
}

// Keyed is the capability a good must expose to be routed by a Distributor.
type Keyed[K comparable] interface {
	// Key returns the routing key of the good.
	Key() K
}
