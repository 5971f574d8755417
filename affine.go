// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import (
	"fmt"
	"sync/atomic"
)

// Affine wraps a Continuation with one-shot enforcement. A reactive
// continuation is logically single-use (spec.md §4.1: "Ownership is
// exclusive ... invocation consumes it"); Affine makes that contract
// checkable at runtime instead of merely documented.
//
// Used by UniqueConsumerSignalConsumer.Await to hold the signal's single
// outstanding waiter. A second outstanding await is rejected separately,
// by a panic in the signal's own await check, before it could overwrite
// the first waiter; Affine guards the stored waiter against being
// invoked twice.
type Affine[V any] struct {
	used atomic.Uintptr
	k    Continuation[V]
}

// OnceContinuation wraps k so that a second call panics.
func OnceContinuation[V any](k Continuation[V]) *Affine[V] {
	return &Affine[V]{k: k}
}

// Call invokes the wrapped continuation. Panics with a "reactor: ..."
// diagnostic if called more than once, per spec.md §4.6's contract on
// single-consumer signals.
func (a *Affine[V]) Call(rt Runtime, v V) {
	if a.used.Add(1) != 1 {
		panic(fmt.Sprintf("reactor: affine continuation invoked twice (contract violation): %v", v))
	}
	a.k(rt, v)
}

// TryCall attempts to invoke the wrapped continuation, reporting whether
// this was the first (and only permitted) call.
func (a *Affine[V]) TryCall(rt Runtime, v V) bool {
	if a.used.Add(1) != 1 {
		return false
	}
	a.k(rt, v)
	return true
}

// Discard marks the continuation as consumed without invoking it.
func (a *Affine[V]) Discard() {
	a.used.Store(1)
}
