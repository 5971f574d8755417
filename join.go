// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import "sync"

// Pair is the value produced by Join: the two branches' results in input
// order.
type Pair[V1, V2 any] struct {
	First  V1
	Second V2
}

// joinPoint is the two-slot rendezvous cell described in spec.md §9:
// "implement a two-slot (or n-slot for multi-join) cell behind a lock,
// holding Option<V1>, Option<V2>, and Option<Continuation>. The last
// filler consumes the continuation."
type joinPoint[V1, V2 any] struct {
	mu   sync.Mutex
	v1   *V1
	v2   *V2
	next Continuation[Pair[V1, V2]]
	done bool
}

func (jp *joinPoint[V1, V2]) fillFirst(rt Runtime, v V1) {
	jp.mu.Lock()
	jp.v1 = &v
	jp.tryFire(rt)
}

func (jp *joinPoint[V1, V2]) fillSecond(rt Runtime, v V2) {
	jp.mu.Lock()
	jp.v2 = &v
	jp.tryFire(rt)
}

// tryFire must be called with jp.mu held; it releases the lock itself.
func (jp *joinPoint[V1, V2]) tryFire(rt Runtime) {
	if jp.done || jp.v1 == nil || jp.v2 == nil {
		jp.mu.Unlock()
		return
	}
	jp.done = true
	v1, v2, next := *jp.v1, *jp.v2, jp.next
	jp.mu.Unlock()
	next(rt, Pair[V1, V2]{First: v1, Second: v2})
}

// joinProcess is the Process produced by Join.
type joinProcess[V1, V2 any] struct {
	p1 Process[V1]
	p2 Process[V2]
}

// Join runs p1 and p2 concurrently within the cooperative model — both
// are seeded into the current instant's queue, with no ordering imposed
// between their effects — and fires next once both have produced a value
// (spec.md §4.2, §5).
func Join[V1, V2 any](p1 Process[V1], p2 Process[V2]) Process[Pair[V1, V2]] {
	return joinProcess[V1, V2]{p1: p1, p2: p2}
}

func (j joinProcess[V1, V2]) Call(rt Runtime, next Continuation[Pair[V1, V2]]) {
	jp := &joinPoint[V1, V2]{next: next}
	p1, p2 := j.p1, j.p2
	rt.OnCurrent(func(rt Runtime) {
		p1.Call(rt, jp.fillFirst)
	})
	rt.OnCurrent(func(rt Runtime) {
		p2.Call(rt, jp.fillSecond)
	})
}

// joinPointMut additionally carries the rebuilt sub-processes so the
// rebuilt Join node can be threaded back through next (spec.md §4.2).
type joinPointMut[V1, V2 any] struct {
	mu   sync.Mutex
	v1   *V1
	v2   *V2
	p1   ProcessMut[V1]
	p2   ProcessMut[V2]
	next Continuation[MutStep[Pair[V1, V2]]]
	done bool
}

func (jp *joinPointMut[V1, V2]) fillFirst(rt Runtime, step MutStep[V1]) {
	jp.mu.Lock()
	jp.v1, jp.p1 = &step.Value, step.Next
	jp.tryFire(rt)
}

func (jp *joinPointMut[V1, V2]) fillSecond(rt Runtime, step MutStep[V2]) {
	jp.mu.Lock()
	jp.v2, jp.p2 = &step.Value, step.Next
	jp.tryFire(rt)
}

func (jp *joinPointMut[V1, V2]) tryFire(rt Runtime) {
	if jp.done || jp.v1 == nil || jp.v2 == nil {
		jp.mu.Unlock()
		return
	}
	jp.done = true
	v1, v2, p1, p2, next := *jp.v1, *jp.v2, jp.p1, jp.p2, jp.next
	jp.mu.Unlock()
	next(rt, MutStep[Pair[V1, V2]]{
		Next:  JoinMut[V1, V2](p1, p2),
		Value: Pair[V1, V2]{First: v1, Second: v2},
	})
}

// joinProcessMut is the ProcessMut produced by JoinMut.
type joinProcessMut[V1, V2 any] struct {
	p1 ProcessMut[V1]
	p2 ProcessMut[V2]
}

// JoinMut is Join's ProcessMut variant.
func JoinMut[V1, V2 any](p1 ProcessMut[V1], p2 ProcessMut[V2]) ProcessMut[Pair[V1, V2]] {
	return joinProcessMut[V1, V2]{p1: p1, p2: p2}
}

func (j joinProcessMut[V1, V2]) Call(rt Runtime, next Continuation[Pair[V1, V2]]) {
	Join[V1, V2](j.p1, j.p2).Call(rt, next)
}

func (j joinProcessMut[V1, V2]) CallMut(rt Runtime, next Continuation[MutStep[Pair[V1, V2]]]) {
	jp := &joinPointMut[V1, V2]{next: next}
	p1, p2 := j.p1, j.p2
	rt.OnCurrent(func(rt Runtime) {
		p1.CallMut(rt, jp.fillFirst)
	})
	rt.OnCurrent(func(rt Runtime) {
		p2.CallMut(rt, jp.fillSecond)
	})
}

// multiJoinPoint is MultiJoin's n-ary rendezvous.
type multiJoinPoint[V any] struct {
	mu      sync.Mutex
	results []V
	filled  []bool
	remain  int
	next    Continuation[[]V]
	done    bool
}

func (jp *multiJoinPoint[V]) fill(rt Runtime, i int, v V) {
	jp.mu.Lock()
	if !jp.filled[i] {
		jp.filled[i] = true
		jp.results[i] = v
		jp.remain--
	}
	if jp.done || jp.remain > 0 {
		jp.mu.Unlock()
		return
	}
	jp.done = true
	results, next := jp.results, jp.next
	jp.mu.Unlock()
	next(rt, results)
}

// multiJoinProcess is the Process produced by MultiJoin.
type multiJoinProcess[V any] struct {
	ps []Process[V]
}

// MultiJoin is Join's n-ary generalization: the continuation fires with
// an ordered slice of results aligned to input order once every process
// has produced a value (spec.md §4.2).
func MultiJoin[V any](ps []Process[V]) Process[[]V] {
	return multiJoinProcess[V]{ps: ps}
}

func (m multiJoinProcess[V]) Call(rt Runtime, next Continuation[[]V]) {
	n := len(m.ps)
	jp := &multiJoinPoint[V]{
		results: make([]V, n),
		filled:  make([]bool, n),
		remain:  n,
		next:    next,
	}
	if n == 0 {
		next(rt, jp.results)
		return
	}
	for i, p := range m.ps {
		i, p := i, p
		rt.OnCurrent(func(rt Runtime) {
			p.Call(rt, func(rt Runtime, v V) {
				jp.fill(rt, i, v)
			})
		})
	}
}

// multiJoinPointMut additionally threads back the rebuilt sub-processes.
type multiJoinPointMut[V any] struct {
	mu      sync.Mutex
	results []V
	procs   []ProcessMut[V]
	filled  []bool
	remain  int
	next    Continuation[MutStep[[]V]]
	done    bool
}

func (jp *multiJoinPointMut[V]) fill(rt Runtime, i int, step MutStep[V]) {
	jp.mu.Lock()
	if !jp.filled[i] {
		jp.filled[i] = true
		jp.results[i] = step.Value
		jp.procs[i] = step.Next
		jp.remain--
	}
	if jp.done || jp.remain > 0 {
		jp.mu.Unlock()
		return
	}
	jp.done = true
	results, procs, next := jp.results, jp.procs, jp.next
	jp.mu.Unlock()
	next(rt, MutStep[[]V]{Next: MultiJoinMut[V](procs), Value: results})
}

// multiJoinProcessMut is the ProcessMut produced by MultiJoinMut.
type multiJoinProcessMut[V any] struct {
	ps []ProcessMut[V]
}

// MultiJoinMut is MultiJoin's ProcessMut variant.
func MultiJoinMut[V any](ps []ProcessMut[V]) ProcessMut[[]V] {
	return multiJoinProcessMut[V]{ps: ps}
}

func (m multiJoinProcessMut[V]) Call(rt Runtime, next Continuation[[]V]) {
	ps := make([]Process[V], len(m.ps))
	for i, p := range m.ps {
		ps[i] = p
	}
	MultiJoin[V](ps).Call(rt, next)
}

func (m multiJoinProcessMut[V]) CallMut(rt Runtime, next Continuation[MutStep[[]V]]) {
	n := len(m.ps)
	jp := &multiJoinPointMut[V]{
		results: make([]V, n),
		procs:   make([]ProcessMut[V], n),
		filled:  make([]bool, n),
		remain:  n,
		next:    next,
	}
	if n == 0 {
		next(rt, MutStep[[]V]{Next: MultiJoinMut[V](jp.procs), Value: jp.results})
		return
	}
	for i, p := range m.ps {
		i, p := i, p
		rt.OnCurrent(func(rt Runtime) {
			p.CallMut(rt, func(rt Runtime, step MutStep[V]) {
				jp.fill(rt, i, step)
			})
		})
	}
}
