// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package reactor provides a synchronous reactive runtime in Go.
//
// Computations are expressed as [Process] values built from a small set
// of combinators (Map, Pause, Flatten, AndThen, Then, Join, MultiJoin,
// WhileLoop, IfElse) and executed by a scheduler that advances in
// discrete instants: every continuation ready in the current instant
// runs before any continuation deferred to the next one.
//
// # Instants and Phases
//
// Each instant has two phases. Phase A drains every continuation
// registered for the current instant, including ones registered by other
// continuations running in the same phase. Phase B then drains
// end-of-instant continuations, with anything they register landing in
// the next instant rather than being re-run immediately.
//
// # Signals
//
// Four signal families cover the spectrum from pure presence (PureSignal)
// through multi-producer/multi-consumer value accumulation (ValueSignal)
// to the two single-owner variants (UniqueProducerSignal,
// UniqueConsumerSignal) used when a signal's contract should bind one
// side of the handshake to at most one outstanding operation.
//
// # Schedulers
//
// [SequentialRuntime] runs on a single goroutine with no locking.
// [ParallelRuntime] spreads the same algorithm across a fixed worker
// pool, synchronized at each instant boundary by a cyclic barrier.
package reactor
