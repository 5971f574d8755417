// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

// LoopStatus is the tagged Continue | Exit(V) variant WhileLoop uses to
// decide between restart and termination (spec.md §3). Built as a small
// struct with an exported constructor pair rather than an interface,
// since there is nothing to dispatch on beyond the single bool.
type LoopStatus[V any] struct {
	exit  bool
	value V
}

// Continue signals WhileLoop should restart its process.
func Continue[V any]() LoopStatus[V] {
	return LoopStatus[V]{}
}

// Exit signals WhileLoop should terminate with value v.
func Exit[V any](v V) LoopStatus[V] {
	return LoopStatus[V]{exit: true, value: v}
}

// IsExit reports whether this status is Exit.
func (s LoopStatus[V]) IsExit() bool { return s.exit }

// Value returns the Exit payload. Only meaningful when IsExit is true.
func (s LoopStatus[V]) Value() V { return s.value }

// whileLoop is the Process produced by WhileLoop.
type whileLoop[V any] struct {
	p ProcessMut[LoopStatus[V]]
}

// WhileLoop re-invokes p on every Continue, invoking next with the Exit
// payload once p produces one (spec.md §4.2, §8 property 5).
func WhileLoop[V any](p ProcessMut[LoopStatus[V]]) Process[V] {
	return whileLoop[V]{p: p}
}

func (w whileLoop[V]) Call(rt Runtime, next Continuation[V]) {
	w.p.CallMut(rt, func(rt Runtime, step MutStep[LoopStatus[V]]) {
		if step.Value.IsExit() {
			next(rt, step.Value.Value())
			return
		}
		WhileLoop[V](step.Next).Call(rt, next)
	})
}

// ifElseProcess is the Process produced by IfElse.
type ifElseProcess[V any] struct {
	cond Process[bool]
	p, q Process[V]
}

// IfElse evaluates cond, then dispatches to p (true) or q (false)
// (spec.md §4.2).
func IfElse[V any](cond Process[bool], p, q Process[V]) Process[V] {
	return ifElseProcess[V]{cond: cond, p: p, q: q}
}

func (i ifElseProcess[V]) Call(rt Runtime, next Continuation[V]) {
	p, q := i.p, i.q
	i.cond.Call(rt, func(rt Runtime, cond bool) {
		if cond {
			p.Call(rt, next)
		} else {
			q.Call(rt, next)
		}
	})
}

// ifElseProcessMut is the ProcessMut produced by IfElseMut. The mutable
// variant rebuilds itself with the same rebuilt cond process in both
// branches, per spec.md §4.2.
type ifElseProcessMut[V any] struct {
	cond ProcessMut[bool]
	p, q ProcessMut[V]
}

// IfElseMut is IfElse's ProcessMut variant.
func IfElseMut[V any](cond ProcessMut[bool], p, q ProcessMut[V]) ProcessMut[V] {
	return ifElseProcessMut[V]{cond: cond, p: p, q: q}
}

func (i ifElseProcessMut[V]) Call(rt Runtime, next Continuation[V]) {
	IfElse[V](i.cond, i.p, i.q).Call(rt, next)
}

func (i ifElseProcessMut[V]) CallMut(rt Runtime, next Continuation[MutStep[V]]) {
	p, q := i.p, i.q
	i.cond.CallMut(rt, func(rt Runtime, condStep MutStep[bool]) {
		if condStep.Value {
			p.CallMut(rt, func(rt Runtime, pStep MutStep[V]) {
				next(rt, MutStep[V]{Next: IfElseMut[V](condStep.Next, pStep.Next, q), Value: pStep.Value})
			})
		} else {
			q.CallMut(rt, func(rt Runtime, qStep MutStep[V]) {
				next(rt, MutStep[V]{Next: IfElseMut[V](condStep.Next, p, qStep.Next), Value: qStep.Value})
			})
		}
	})
}
