// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import "sync"

// valueSignalState is the multi-producer, multi-consumer signal state of
// spec.md §4.5: every emission within an instant is folded into the
// current value via Gather, consumers that Await see that folded value
// once the instant ends, and the value resets to its default at the next
// instant.
type valueSignalState[V, G any] struct {
	mu             sync.Mutex
	gather         func(V, G) V
	defaultValue   V
	currentValue   V
	status         bool
	callbacks      []Continuation[struct{}]
	waitingPresent []Continuation[bool]
	waitingAwait   []Continuation[V]
}

func (s *valueSignalState[V, G]) emit(rt Runtime, g G) {
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
		awaiters := s.waitingAwait
		s.waitingAwait = nil
		value := s.currentValue
		s.currentValue = s.defaultValue
		s.status = false
		s.mu.Unlock()
		for _, c := range awaiters {
			c, value := c, value
			rt.OnCurrent(func(rt Runtime) { c(rt, value) })
		}
	})
}

func (s *valueSignalState[V, G]) onSignal(rt Runtime, c Continuation[struct{}]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status {
		rt.OnCurrent(func(rt Runtime) { c(rt, struct{}{}) })
		return
	}
	s.callbacks = append(s.callbacks, c)
}

// await registers c to be resolved with the folded value at the end of
// the first instant, the current one included, in which the signal is
// emitted, regardless of whether the signal has been emitted yet in the
// current instant — value signals impose no bound on outstanding awaiters
// (spec.md §4.5 distinguishes this from the unique-consumer family).
func (s *valueSignalState[V, G]) await(c Continuation[V]) {
	s.mu.Lock()
	s.waitingAwait = append(s.waitingAwait, c)
	s.mu.Unlock()
}

func (s *valueSignalState[V, G]) testPresent(rt Runtime, c Continuation[bool]) {
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

// ValueSignal is a multi-producer, multi-consumer signal that folds every
// emission's payload of type G into a running value of type V via Gather
// (spec.md §3, §4.5).
type ValueSignal[V, G any] struct {
	state *valueSignalState[V, G]
}

// NewValueSignal creates a ValueSignal with the given reset value and
// associative fold function; gather should not assume any particular
// order across emissions within the same instant.
func NewValueSignal[V, G any](defaultValue V, gather func(V, G) V) ValueSignal[V, G] {
	return ValueSignal[V, G]{state: &valueSignalState[V, G]{
		gather:       gather,
		defaultValue: defaultValue,
		currentValue: defaultValue,
	}}
}

// AwaitImmediate completes the first instant the signal is emitted in,
// current instant included, without observing the folded value.
func (s ValueSignal[V, G]) AwaitImmediate() ProcessMut[struct{}] {
	return vAwaitImmediate[V, G]{state: s.state}
}

// Await completes at the end of the instant in which it is called with
// the value folded by every emission observed during that instant. If
// the signal is not emitted in that instant, Await keeps waiting and
// completes at the end of the next instant in which it is emitted.
func (s ValueSignal[V, G]) Await() ProcessMut[V] {
	return vAwait[V, G]{state: s.state}
}

// Emit runs value to get a payload, folds it into the signal, and
// completes with that payload (spec.md §4.5).
func (s ValueSignal[V, G]) Emit(value Process[G]) Process[G] {
	return vEmit[V, G]{state: s.state, value: value}
}

// EmitMut is Emit's ProcessMut variant.
func (s ValueSignal[V, G]) EmitMut(value ProcessMut[G]) ProcessMut[G] {
	return vEmitMut[V, G]{state: s.state, value: value}
}

// Present completes with true if the signal is emitted during the
// instant it is called in, or false once that instant ends without one.
func (s ValueSignal[V, G]) Present() ProcessMut[bool] {
	return vPresent[V, G]{state: s.state}
}

type vAwaitImmediate[V, G any] struct {
	state *valueSignalState[V, G]
}

func (p vAwaitImmediate[V, G]) Call(rt Runtime, next Continuation[struct{}]) {
	p.state.onSignal(rt, next)
}

func (p vAwaitImmediate[V, G]) CallMut(rt Runtime, next Continuation[MutStep[struct{}]]) {
	state := p.state
	p.state.onSignal(rt, func(rt Runtime, v struct{}) {
		next(rt, MutStep[struct{}]{Next: vAwaitImmediate[V, G]{state: state}, Value: v})
	})
}

type vAwait[V, G any] struct {
	state *valueSignalState[V, G]
}

func (p vAwait[V, G]) Call(rt Runtime, next Continuation[V]) {
	p.state.await(next)
}

func (p vAwait[V, G]) CallMut(rt Runtime, next Continuation[MutStep[V]]) {
	state := p.state
	p.state.await(func(rt Runtime, v V) {
		next(rt, MutStep[V]{Next: vAwait[V, G]{state: state}, Value: v})
	})
}

type vEmit[V, G any] struct {
	state *valueSignalState[V, G]
	value Process[G]
}

func (p vEmit[V, G]) Call(rt Runtime, next Continuation[G]) {
	state := p.state
	p.value.Call(rt, func(rt Runtime, v G) {
		state.emit(rt, v)
		next(rt, v)
	})
}

type vEmitMut[V, G any] struct {
	state *valueSignalState[V, G]
	value ProcessMut[G]
}

func (p vEmitMut[V, G]) Call(rt Runtime, next Continuation[G]) {
	vEmit[V, G]{state: p.state, value: p.value}.Call(rt, next)
}

func (p vEmitMut[V, G]) CallMut(rt Runtime, next Continuation[MutStep[G]]) {
	state := p.state
	p.value.CallMut(rt, func(rt Runtime, step MutStep[G]) {
		state.emit(rt, step.Value)
		next(rt, MutStep[G]{Next: vEmitMut[V, G]{state: state, value: step.Next}, Value: step.Value})
	})
}

type vPresent[V, G any] struct {
	state *valueSignalState[V, G]
}

func (p vPresent[V, G]) Call(rt Runtime, next Continuation[bool]) {
	p.state.testPresent(rt, next)
}

func (p vPresent[V, G]) CallMut(rt Runtime, next Continuation[MutStep[bool]]) {
	state := p.state
	p.state.testPresent(rt, func(rt Runtime, present bool) {
		next(rt, MutStep[bool]{Next: vPresent[V, G]{state: state}, Value: present})
	})
}
