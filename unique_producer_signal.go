// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import "sync"

// upSignalState backs a unique-producer signal: exactly one producer
// handle may Emit, but any number of consumer handles may AwaitImmediate
// or Present (spec.md §4.5). Unlike ValueSignal there is no fold: each
// emit simply overwrites current_value, broadcast to every
// waiter.
type upSignalState[V any] struct {
	mu             sync.Mutex
	status         bool
	defaultValue   V
	currentValue   V
	callbacks      []Continuation[V]
	waitingPresent []Continuation[bool]
}

func (s *upSignalState[V]) emit(rt Runtime, v V) {
	s.mu.Lock()
	s.currentValue = v
	s.status = true
	callbacks := s.callbacks
	s.callbacks = nil
	waiting := s.waitingPresent
	s.waitingPresent = nil
	s.mu.Unlock()

	for _, c := range callbacks {
		c := c
		rt.OnCurrent(func(rt Runtime) { c(rt, v) })
	}
	for _, c := range waiting {
		c := c
		rt.OnCurrent(func(rt Runtime) { c(rt, true) })
	}

	rt.OnEnd(func(rt Runtime) {
		s.mu.Lock()
		s.currentValue = s.defaultValue
		s.status = false
		s.mu.Unlock()
	})
}

func (s *upSignalState[V]) onSignal(rt Runtime, c Continuation[V]) {
	s.mu.Lock()
	if s.status {
		v := s.currentValue
		s.mu.Unlock()
		rt.OnCurrent(func(rt Runtime) { c(rt, v) })
		return
	}
	s.callbacks = append(s.callbacks, c)
	s.mu.Unlock()
}

func (s *upSignalState[V]) testPresent(rt Runtime, c Continuation[bool]) {
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

// UniqueProducerSignalProducer is the single write handle on a
// unique-producer signal (spec.md §4.5). Copy it and the compiler will
// let you, same as the consumer handle — the contract is enforced by
// construction (NewUniqueProducerSignal hands out exactly one) rather
// than by a runtime check, since Go has no ownership types to encode it.
type UniqueProducerSignalProducer[V any] struct {
	state *upSignalState[V]
}

// UniqueProducerSignalConsumer is a read handle on a unique-producer
// signal. Unlike UniqueConsumerSignalConsumer (see
// unique_consumer_signal.go), any number of these may exist and each may
// await freely — per SPEC_FULL.md §9's supplemented feature, AwaitImmediate is
// replicated: every outstanding waiter sees every emission, there is no
// single-consumer restriction on this side of the signal.
type UniqueProducerSignalConsumer[V any] struct {
	state *upSignalState[V]
}

// NewUniqueProducerSignal returns the paired producer and consumer
// handles for a fresh signal reset to defaultValue at the end of each
// instant.
func NewUniqueProducerSignal[V any](defaultValue V) (UniqueProducerSignalProducer[V], UniqueProducerSignalConsumer[V]) {
	state := &upSignalState[V]{defaultValue: defaultValue, currentValue: defaultValue}
	return UniqueProducerSignalProducer[V]{state: state}, UniqueProducerSignalConsumer[V]{state: state}
}

// Emit runs value to get a payload, publishes it to every waiter, and
// completes once value's own effects are done.
func (p UniqueProducerSignalProducer[V]) Emit(value Process[V]) Process[struct{}] {
	return upEmit[V]{state: p.state, value: value}
}

// EmitMut is Emit's ProcessMut variant.
func (p UniqueProducerSignalProducer[V]) EmitMut(value ProcessMut[V]) ProcessMut[struct{}] {
	return upEmitMut[V]{state: p.state, value: value}
}

// AwaitImmediate completes the first instant the signal is emitted in,
// current instant included, with the emitted value.
func (c UniqueProducerSignalConsumer[V]) AwaitImmediate() ProcessMut[V] {
	return upAwaitImmediate[V]{state: c.state}
}

// Present completes with true if the signal is emitted during the
// instant it is called in, or false once that instant ends without one.
func (c UniqueProducerSignalConsumer[V]) Present() ProcessMut[bool] {
	return upPresent[V]{state: c.state}
}

type upAwaitImmediate[V any] struct {
	state *upSignalState[V]
}

func (p upAwaitImmediate[V]) Call(rt Runtime, next Continuation[V]) {
	p.state.onSignal(rt, next)
}

func (p upAwaitImmediate[V]) CallMut(rt Runtime, next Continuation[MutStep[V]]) {
	state := p.state
	p.state.onSignal(rt, func(rt Runtime, v V) {
		next(rt, MutStep[V]{Next: upAwaitImmediate[V]{state: state}, Value: v})
	})
}

type upEmit[V any] struct {
	state *upSignalState[V]
	value Process[V]
}

func (p upEmit[V]) Call(rt Runtime, next Continuation[struct{}]) {
	state := p.state
	p.value.Call(rt, func(rt Runtime, v V) {
		state.emit(rt, v)
		next(rt, struct{}{})
	})
}

type upEmitMut[V any] struct {
	state *upSignalState[V]
	value ProcessMut[V]
}

func (p upEmitMut[V]) Call(rt Runtime, next Continuation[struct{}]) {
	upEmit[V]{state: p.state, value: p.value}.Call(rt, next)
}

func (p upEmitMut[V]) CallMut(rt Runtime, next Continuation[MutStep[struct{}]]) {
	state := p.state
	p.value.CallMut(rt, func(rt Runtime, step MutStep[V]) {
		state.emit(rt, step.Value)
		next(rt, MutStep[struct{}]{Next: upEmitMut[V]{state: state, value: step.Next}, Value: struct{}{}})
	})
}

type upPresent[V any] struct {
	state *upSignalState[V]
}

func (p upPresent[V]) Call(rt Runtime, next Continuation[bool]) {
	p.state.testPresent(rt, next)
}

func (p upPresent[V]) CallMut(rt Runtime, next Continuation[MutStep[bool]]) {
	state := p.state
	p.state.testPresent(rt, func(rt Runtime, present bool) {
		next(rt, MutStep[bool]{Next: upPresent[V]{state: state}, Value: present})
	})
}
