// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import "sync"

// pureSignalState is the lock-guarded state backing a PureSignal: an
// on/off flag for the current instant plus the two waiter lists spec.md
// §4.5 describes — callbacks fired on emit, and present-testers resolved
// either by an emit (true) or by reaching end-of-instant unresolved
// (false).
type pureSignalState struct {
	mu             sync.Mutex
	status         bool
	callbacks      []Continuation[struct{}]
	waitingPresent []Continuation[bool]
}

func (s *pureSignalState) emit(rt Runtime) {
	s.mu.Lock()
	callbacks := s.callbacks
	s.callbacks = nil
	waiting := s.waitingPresent
	s.waitingPresent = nil
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
		s.status = false
		s.mu.Unlock()
	})
}

func (s *pureSignalState) onSignal(rt Runtime, c Continuation[struct{}]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status {
		rt.OnCurrent(func(rt Runtime) { c(rt, struct{}{}) })
		return
	}
	s.callbacks = append(s.callbacks, c)
}

// testPresent implements SPEC_FULL.md §9's supplemented Present() dedup: the
// first tester to arrive in an instant where the signal is absent
// schedules a single end-of-instant hook that resolves every tester
// accumulated by then as false; later testers in the same instant just
// append to the list the hook will drain, rather than each scheduling
// their own hook.
func (s *pureSignalState) testPresent(rt Runtime, c Continuation[bool]) {
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

// PureSignal is a presence-only broadcast signal (spec.md §3, §4.5): it
// carries no value, only whether it was emitted during the current
// instant.
type PureSignal struct {
	state *pureSignalState
}

// NewPureSignal creates a signal that starts absent.
func NewPureSignal() PureSignal {
	return PureSignal{state: &pureSignalState{}}
}

// AwaitImmediate returns a process that completes the first instant —
// current instant included — in which the signal is emitted.
func (s PureSignal) AwaitImmediate() ProcessMut[struct{}] {
	return pureAwaitImmediate{state: s.state}
}

// Emit returns a process that emits the signal in the current instant
// and immediately completes.
func (s PureSignal) Emit() ProcessMut[struct{}] {
	return pureEmit{state: s.state}
}

// Present returns a process that completes with true if the signal is
// emitted during the current instant, or false once the instant ends
// without an emission (spec.md §4.5).
func (s PureSignal) Present() ProcessMut[bool] {
	return pureTestPresent{state: s.state}
}

type pureAwaitImmediate struct {
	state *pureSignalState
}

func (p pureAwaitImmediate) Call(rt Runtime, next Continuation[struct{}]) {
	p.state.onSignal(rt, next)
}

func (p pureAwaitImmediate) CallMut(rt Runtime, next Continuation[MutStep[struct{}]]) {
	state := p.state
	p.state.onSignal(rt, func(rt Runtime, v struct{}) {
		next(rt, MutStep[struct{}]{Next: pureAwaitImmediate{state: state}, Value: v})
	})
}

type pureEmit struct {
	state *pureSignalState
}

func (p pureEmit) Call(rt Runtime, next Continuation[struct{}]) {
	p.state.emit(rt)
	next(rt, struct{}{})
}

func (p pureEmit) CallMut(rt Runtime, next Continuation[MutStep[struct{}]]) {
	p.state.emit(rt)
	next(rt, MutStep[struct{}]{Next: p, Value: struct{}{}})
}

type pureTestPresent struct {
	state *pureSignalState
}

func (p pureTestPresent) Call(rt Runtime, next Continuation[bool]) {
	p.state.testPresent(rt, next)
}

func (p pureTestPresent) CallMut(rt Runtime, next Continuation[MutStep[bool]]) {
	state := p.state
	p.state.testPresent(rt, func(rt Runtime, present bool) {
		next(rt, MutStep[bool]{Next: pureTestPresent{state: state}, Value: present})
	})
}
