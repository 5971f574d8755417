// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import "sync"

// ucSignalState backs a unique-consumer signal: any number of producer
// handles may Emit (folded via Gather, same as ValueSignal), but only the
// single consumer handle may Await, and it may have at most one
// outstanding Await in flight at a time — a second concurrent Await is a
// contract violation (spec.md §4.5, §7).
type ucSignalState[V, G any] struct {
	mu             sync.Mutex
	gather         func(V, G) V
	defaultValue   func() V
	currentValue   V
	status         bool
	callbacks      []Continuation[struct{}]
	waitingPresent []Continuation[bool]
	waitingAwait   *Affine[V]
}

func (s *ucSignalState[V, G]) emit(rt Runtime, g G) {
	s.mu.Lock()
	callbacks := s.callbacks
	s.callbacks = nil
	waiting := s.waitingPresent
	s.waitingPresent = nil
	s.currentValue = s.gather(s.currentValue, g)
	s.status = true
	s.mu.Unlock()

	for _, c := range callbacks {
		c := c
		rt.OnCurrent(func(rt Runtime) { c(rt, struct{}{}) })
	}
	for _, c := range waiting {
		c := c
		rt.OnCurrent(func(rt Runtime) { c(rt, true) })
	}

	rt.OnEnd(func(rt Runtime) {
		s.mu.Lock()
		value := s.currentValue
		s.currentValue = s.defaultValue()
		pending := s.waitingAwait
		s.waitingAwait = nil
		s.status = false
		s.mu.Unlock()
		if pending != nil {
			rt.OnCurrent(func(rt Runtime) {
				pending.Call(rt, value)
			})
		}
	})
}

func (s *ucSignalState[V, G]) onSignal(rt Runtime, c Continuation[struct{}]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status {
		rt.OnCurrent(func(rt Runtime) { c(rt, struct{}{}) })
		return
	}
	s.callbacks = append(s.callbacks, c)
}

// await registers c as the signal's single outstanding awaiter. Calling
// this while one is already pending is a contract violation: the
// teacher-language original hits unreachable!() in the same situation,
// so this panics rather than silently dropping or queuing the new call.
func (s *ucSignalState[V, G]) await(c Continuation[V]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.waitingAwait != nil {
		panic("reactor: unique-consumer signal already has an outstanding Await (contract violation)")
	}
	s.waitingAwait = OnceContinuation(c)
}

func (s *ucSignalState[V, G]) testPresent(rt Runtime, c Continuation[bool]) {
	s.mu.Lock()
	if s.status {
		s.mu.Unlock()
		rt.OnCurrent(func(rt Runtime) { c(rt, true) })
		return
	}
	firstWaiter := len(s.waitingPresent) == 0
	s.waitingPresent = append(s.waitingPresent, c)
	s.mu.Unlock()

	if firstWaiter {
		rt.OnEnd(func(rt Runtime) {
			s.mu.Lock()
			waiting := s.waitingPresent
			s.waitingPresent = nil
			s.mu.Unlock()
			for _, c := range waiting {
				c := c
				rt.OnCurrent(func(rt Runtime) { c(rt, false) })
			}
		})
	}
}

// UniqueConsumerSignalProducer is a write handle on a unique-consumer
// signal; any number of these may exist and each may Emit freely
// (spec.md §4.5).
type UniqueConsumerSignalProducer[V, G any] struct {
	state *ucSignalState[V, G]
}

// UniqueConsumerSignalConsumer is the single read handle on a
// unique-consumer signal. Construction hands out exactly one, mirroring
// UniqueProducerSignalProducer's symmetric contract.
type UniqueConsumerSignalConsumer[V, G any] struct {
	state *ucSignalState[V, G]
}

// NewUniqueConsumerSignal returns the paired producer and consumer
// handles. defaultValue is a thunk (rather than a fixed zero value)
// because V may need fresh allocation per instant — matching the
// teacher-language original's Fn() -> V default.
func NewUniqueConsumerSignal[V, G any](defaultValue func() V, gather func(V, G) V) (UniqueConsumerSignalProducer[V, G], UniqueConsumerSignalConsumer[V, G]) {
	state := &ucSignalState[V, G]{
		gather:       gather,
		defaultValue: defaultValue,
		currentValue: defaultValue(),
	}
	return UniqueConsumerSignalProducer[V, G]{state: state}, UniqueConsumerSignalConsumer[V, G]{state: state}
}

// AwaitImmediate completes the first instant the signal is emitted in,
// current instant included, without observing the folded value. Any
// number of outstanding AwaitImmediate calls may coexist.
func (p UniqueConsumerSignalProducer[V, G]) AwaitImmediate() ProcessMut[struct{}] {
	return ucAwaitImmediate[V, G]{state: p.state}
}

// Emit runs value to get a payload, folds it into the signal, and
// completes once value's own effects are done.
func (p UniqueConsumerSignalProducer[V, G]) Emit(value Process[G]) Process[struct{}] {
	return ucEmit[V, G]{state: p.state, value: value}
}

// EmitMut is Emit's ProcessMut variant.
func (p UniqueConsumerSignalProducer[V, G]) EmitMut(value ProcessMut[G]) ProcessMut[struct{}] {
	return ucEmitMut[V, G]{state: p.state, value: value}
}

// Present completes with true if the signal is emitted during the
// instant it is called in, or false once that instant ends without one.
func (p UniqueConsumerSignalProducer[V, G]) Present() ProcessMut[bool] {
	return ucPresent[V, G]{state: p.state}
}

// Await completes at the end of the instant in which it is called with
// the value folded by every emission observed during that instant. If
// the signal is not emitted in that instant, Await keeps waiting and
// completes at the end of the next instant in which it is emitted. It
// panics if a previous Await on this consumer is still outstanding
// (spec.md §4.5, §7) — the consumer handle is single-owner, so this
// signals misuse rather than legitimate concurrent demand.
func (c UniqueConsumerSignalConsumer[V, G]) Await() Process[V] {
	return ucAwait[V, G]{state: c.state}
}

type ucAwaitImmediate[V, G any] struct {
	state *ucSignalState[V, G]
}

func (p ucAwaitImmediate[V, G]) Call(rt Runtime, next Continuation[struct{}]) {
	p.state.onSignal(rt, next)
}

func (p ucAwaitImmediate[V, G]) CallMut(rt Runtime, next Continuation[MutStep[struct{}]]) {
	state := p.state
	p.state.onSignal(rt, func(rt Runtime, v struct{}) {
		next(rt, MutStep[struct{}]{Next: ucAwaitImmediate[V, G]{state: state}, Value: v})
	})
}

type ucAwait[V, G any] struct {
	state *ucSignalState[V, G]
}

func (p ucAwait[V, G]) Call(rt Runtime, next Continuation[V]) {
	p.state.await(next)
}

type ucEmit[V, G any] struct {
	state *ucSignalState[V, G]
	value Process[G]
}

func (p ucEmit[V, G]) Call(rt Runtime, next Continuation[struct{}]) {
	state := p.state
	p.value.Call(rt, func(rt Runtime, v G) {
		state.emit(rt, v)
		next(rt, struct{}{})
	})
}

type ucEmitMut[V, G any] struct {
	state *ucSignalState[V, G]
	value ProcessMut[G]
}

func (p ucEmitMut[V, G]) Call(rt Runtime, next Continuation[struct{}]) {
	ucEmit[V, G]{state: p.state, value: p.value}.Call(rt, next)
}

func (p ucEmitMut[V, G]) CallMut(rt Runtime, next Continuation[MutStep[struct{}]]) {
	state := p.state
	p.value.CallMut(rt, func(rt Runtime, step MutStep[G]) {
		state.emit(rt, step.Value)
		next(rt, MutStep[struct{}]{Next: ucEmitMut[V, G]{state: state, value: step.Next}, Value: struct{}{}})
	})
}

type ucPresent[V, G any] struct {
	state *ucSignalState[V, G]
}

func (p ucPresent[V, G]) Call(rt Runtime, next Continuation[bool]) {
	p.state.testPresent(rt, next)
}

func (p ucPresent[V, G]) CallMut(rt Runtime, next Continuation[MutStep[bool]]) {
	state := p.state
	p.state.testPresent(rt, func(rt Runtime, present bool) {
		next(rt, MutStep[bool]{Next: ucPresent[V, G]{state: state}, Value: present})
	})
}
