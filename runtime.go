// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

// Runtime is the scheduling handle threaded through every Process and
// Continuation call. It exposes the three registration banks described in
// spec.md §3: continuations registered with OnCurrent run before the
// current instant drains, OnEnd runs once OnCurrent is empty (with
// OnCurrent itself empty for the duration), and OnNext runs starting at
// the next instant.
//
// Both SequentialRuntime and the parallel scheduler's per-worker handle
// implement Runtime; Process and Continuation code is written against the
// interface and never against a concrete scheduler, so combinators work
// unmodified under either deployment form (spec.md §5).
type Runtime interface {
	// OnCurrent registers a thunk to run before the current instant's
	// current-phase queue is considered drained.
	OnCurrent(f func(rt Runtime))

	// OnNext registers a thunk to run starting at the next instant.
	OnNext(f func(rt Runtime))

	// OnEnd registers a thunk to run once the current-phase queue is
	// empty, with no current-phase work pending.
	OnEnd(f func(rt Runtime))
}
