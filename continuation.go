// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

// Continuation represents "the rest of the computation" awaiting a value
// of type V (spec.md §4.1). It is a plain function type rather than an
// interface: any func(Runtime, V) literal already satisfies it, matching
// spec.md's "any user-supplied single-shot callable ... is also a
// continuation" — there is nothing to implement.
//
// A Continuation is logically single-use: the scheduler (or whichever
// Process invokes it) owns it between enqueue and invocation, and
// invocation consumes it. Nothing in the type system enforces this for
// ordinary Continuation values, matching the teacher's own distinction
// between plain closures and the affine-checked wrapper (see Affine);
// reach for OnceContinuation where the single-use contract must be
// checked rather than merely assumed.
type Continuation[V any] func(rt Runtime, v V)

// ContMap returns a continuation of V1 that applies f before invoking c.
// f is logically consumed at invocation time (it must not be called more
// than once through the returned continuation).
//
// This is a package-level function rather than a method on Continuation
// because it introduces a fresh type parameter (V1) the receiver does not
// already bind — Go methods cannot do that. The teacher package follows
// the identical shape for its own Map/Bind/Then over Cont[R, A].
func ContMap[V1, V2 any](c Continuation[V2], f func(V1) V2) Continuation[V1] {
	return func(rt Runtime, v V1) {
		c(rt, f(v))
	}
}

// ContPause returns a continuation of V that, when invoked, enqueues a
// next-instant continuation calling c with the same value (spec.md §4.1).
// Pause acts before c's body runs: the value is captured this instant,
// but c does not observe it until the next one.
func ContPause[V any](c Continuation[V]) Continuation[V] {
	return func(rt Runtime, v V) {
		rt.OnNext(func(rt Runtime) {
			c(rt, v)
		})
	}
}
