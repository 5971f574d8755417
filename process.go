// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

// Process is a reactive computation producing a value of type V via
// continuation passing (spec.md §3/§4.2). Call eventually invokes next
// exactly once, possibly from a later instant.
//
// Combinators (Map, Pause, Flatten, AndThen, Then, Join, MultiJoin,
// IfElse) are package-level generic functions, not methods: most of them
// introduce a value type the receiver's own type parameter does not
// bind, which Go methods cannot do. See continuation.go's ContMap for the
// same shape at the Continuation level.
type Process[V any] interface {
	Call(rt Runtime, next Continuation[V])
}

// MutStep bundles the rebuilt process and its produced value, the Go
// stand-in for the teacher-language tuple (Self, Value) returned by
// ProcessMut.call_mut. Mirrors how the teacher's own Expr type bundles
// {Value, Frame} for its defunctionalized continuations (see DESIGN.md).
type MutStep[V any] struct {
	Next  ProcessMut[V]
	Value V
}

// ProcessMut is a Process that, after producing its value, also yields a
// freshly rebuilt equivalent process so it can be restarted by WhileLoop
// (spec.md §4.2). CallMut's continuation receives a MutStep rather than a
// two-tuple since Go lacks anonymous tuples.
type ProcessMut[V any] interface {
	Process[V]
	CallMut(rt Runtime, next Continuation[MutStep[V]])
}

// value is the Process produced by Value; it simply forwards its payload
// to the continuation.
type value[V any] struct {
	v V
}

// Value lifts v into a Process that immediately invokes its continuation
// with v, in the current instant (spec.md §6, §8 property 2:
// Execute(Value(v)) == v).
func Value[V any](v V) ProcessMut[V] {
	return value[V]{v: v}
}

func (p value[V]) Call(rt Runtime, next Continuation[V]) {
	next(rt, p.v)
}

func (p value[V]) CallMut(rt Runtime, next Continuation[MutStep[V]]) {
	next(rt, MutStep[V]{Next: p, Value: p.v})
}

// mapProcess is the Process produced by Map.
type mapProcess[V1, V2 any] struct {
	p Process[V1]
	f func(V1) V2
}

// Map returns a process producing f(v) where v is p's value. f is
// logically consumed the moment p's continuation fires.
func Map[V1, V2 any](p Process[V1], f func(V1) V2) Process[V2] {
	return mapProcess[V1, V2]{p: p, f: f}
}

func (m mapProcess[V1, V2]) Call(rt Runtime, next Continuation[V2]) {
	f := m.f
	m.p.Call(rt, func(rt Runtime, v V1) {
		next(rt, f(v))
	})
}

// mapProcessMut is the ProcessMut produced by MapMut. Unlike mapProcess's
// f, this f may be called on every loop iteration, so (per spec.md §4.2's
// "ProcessMut combinators thread a freshly reconstructed node back
// through next") the rebuilt node reuses the same f rather than a copy —
// mirroring the teacher's FnMut requirement on the Rust side.
type mapProcessMut[V1, V2 any] struct {
	p ProcessMut[V1]
	f func(V1) V2
}

// MapMut is Map's ProcessMut variant: f is re-applied on every
// WhileLoop restart, threaded through via the rebuilt node.
func MapMut[V1, V2 any](p ProcessMut[V1], f func(V1) V2) ProcessMut[V2] {
	return mapProcessMut[V1, V2]{p: p, f: f}
}

func (m mapProcessMut[V1, V2]) Call(rt Runtime, next Continuation[V2]) {
	Map[V1, V2](m.p, m.f).Call(rt, next)
}

func (m mapProcessMut[V1, V2]) CallMut(rt Runtime, next Continuation[MutStep[V2]]) {
	f := m.f
	m.p.CallMut(rt, func(rt Runtime, step MutStep[V1]) {
		next(rt, MutStep[V2]{Next: MapMut[V1, V2](step.Next, f), Value: f(step.Value)})
	})
}

// pauseProcess is the Process produced by Pause.
type pauseProcess[V any] struct {
	p Process[V]
}

// Pause defers invocation of p itself (and therefore its tail
// continuation) to the next instant (spec.md §4.2). This is distinct from
// ContPause, which defers only the firing of an already-running
// continuation.
func Pause[V any](p Process[V]) Process[V] {
	return pauseProcess[V]{p: p}
}

func (p pauseProcess[V]) Call(rt Runtime, next Continuation[V]) {
	inner := p.p
	rt.OnNext(func(rt Runtime) {
		inner.Call(rt, next)
	})
}

// pauseProcessMut is the ProcessMut produced by PauseMut.
type pauseProcessMut[V any] struct {
	p ProcessMut[V]
}

// PauseMut is Pause's ProcessMut variant.
func PauseMut[V any](p ProcessMut[V]) ProcessMut[V] {
	return pauseProcessMut[V]{p: p}
}

func (p pauseProcessMut[V]) Call(rt Runtime, next Continuation[V]) {
	Pause[V](p.p).Call(rt, next)
}

func (p pauseProcessMut[V]) CallMut(rt Runtime, next Continuation[MutStep[V]]) {
	inner := p.p
	rt.OnNext(func(rt Runtime) {
		inner.CallMut(rt, func(rt Runtime, step MutStep[V]) {
			next(rt, MutStep[V]{Next: PauseMut[V](step.Next), Value: step.Value})
		})
	})
}

// flattenProcess is the Process produced by Flatten.
type flattenProcess[V any] struct {
	p Process[Process[V]]
}

// Flatten runs the outer process, then the inner process it produces;
// the exposed value is the inner process's value (spec.md §4.2).
func Flatten[V any](p Process[Process[V]]) Process[V] {
	return flattenProcess[V]{p: p}
}

func (f flattenProcess[V]) Call(rt Runtime, next Continuation[V]) {
	f.p.Call(rt, func(rt Runtime, inner Process[V]) {
		inner.Call(rt, next)
	})
}

// flattenProcessMut is the ProcessMut produced by FlattenMut.
type flattenProcessMut[V any] struct {
	p ProcessMut[ProcessMut[V]]
}

// FlattenMut is Flatten's ProcessMut variant.
func FlattenMut[V any](p ProcessMut[ProcessMut[V]]) ProcessMut[V] {
	return flattenProcessMut[V]{p: p}
}

func (f flattenProcessMut[V]) Call(rt Runtime, next Continuation[V]) {
	f.p.Call(rt, func(rt Runtime, inner ProcessMut[V]) {
		inner.Call(rt, next)
	})
}

func (f flattenProcessMut[V]) CallMut(rt Runtime, next Continuation[MutStep[V]]) {
	f.p.CallMut(rt, func(rt Runtime, outer MutStep[ProcessMut[V]]) {
		outer.Value.CallMut(rt, func(rt Runtime, inner MutStep[V]) {
			next(rt, MutStep[V]{Next: FlattenMut[V](outer.Next), Value: inner.Value})
		})
	})
}

// AndThen is map(f).flatten(): run p, feed its value to f, run the
// resulting process (spec.md §4.2).
func AndThen[V1, V2 any](p Process[V1], f func(V1) Process[V2]) Process[V2] {
	return Flatten[V2](Map[V1, Process[V2]](p, f))
}

// AndThenMut is AndThen's ProcessMut variant.
func AndThenMut[V1, V2 any](p ProcessMut[V1], f func(V1) ProcessMut[V2]) ProcessMut[V2] {
	return FlattenMut[V2](MapMut[V1, ProcessMut[V2]](p, f))
}

// thenProcess is the Process produced by Then.
type thenProcess[V1, V2 any] struct {
	p Process[V1]
	q Process[V2]
}

// Then runs p for effect, discards its value, then runs q. Within a
// single instant p's effects strictly precede q's (spec.md §4.2's
// ordering contract).
func Then[V1, V2 any](p Process[V1], q Process[V2]) Process[V2] {
	return thenProcess[V1, V2]{p: p, q: q}
}

func (t thenProcess[V1, V2]) Call(rt Runtime, next Continuation[V2]) {
	q := t.q
	t.p.Call(rt, func(rt Runtime, _ V1) {
		q.Call(rt, next)
	})
}

// thenProcessMut is the ProcessMut produced by ThenMut.
type thenProcessMut[V1, V2 any] struct {
	p ProcessMut[V1]
	q ProcessMut[V2]
}

// ThenMut is Then's ProcessMut variant.
func ThenMut[V1, V2 any](p ProcessMut[V1], q ProcessMut[V2]) ProcessMut[V2] {
	return thenProcessMut[V1, V2]{p: p, q: q}
}

func (t thenProcessMut[V1, V2]) Call(rt Runtime, next Continuation[V2]) {
	Then[V1, V2](t.p, t.q).Call(rt, next)
}

func (t thenProcessMut[V1, V2]) CallMut(rt Runtime, next Continuation[MutStep[V2]]) {
	q := t.q
	t.p.CallMut(rt, func(rt Runtime, pStep MutStep[V1]) {
		q.CallMut(rt, func(rt Runtime, qStep MutStep[V2]) {
			next(rt, MutStep[V2]{Next: ThenMut[V1, V2](pStep.Next, qStep.Next), Value: qStep.Value})
		})
	})
}
