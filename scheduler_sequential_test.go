// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import (
	"testing"
	"time"
)

type recordingObserver struct {
	instants []time.Duration
	pending  []int
}

func (r *recordingObserver) ObserveInstant(_ int, d time.Duration, pending int) {
	r.instants = append(r.instants, d)
	r.pending = append(r.pending, pending)
}

func (r *recordingObserver) ObserveWorker(int, int, int) {}

func TestSequentialRuntimeInstantOrdering(t *testing.T) {
	var order []string
	rt := NewSequentialRuntime()
	rt.OnCurrent(func(rt Runtime) { order = append(order, "current-1") })
	rt.OnEnd(func(rt Runtime) { order = append(order, "end-1") })
	rt.OnCurrent(func(rt Runtime) {
		order = append(order, "current-2")
		rt.OnEnd(func(rt Runtime) { order = append(order, "end-2") })
	})

	more := rt.Instant()
	want := []string{"current-2", "current-1", "end-2", "end-1"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
	if more {
		t.Fatal("Instant() = true, want false: nothing left queued")
	}
}

func TestSequentialRuntimeObserver(t *testing.T) {
	obs := &recordingObserver{}
	rt := NewSequentialRuntime(WithSequentialObserver(obs))
	rt.OnCurrent(func(rt Runtime) {})
	rt.Instant()
	if len(obs.instants) != 1 {
		t.Fatalf("len(instants) = %d, want 1", len(obs.instants))
	}
}

func TestExecutePanicsWithoutAResult(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic when process never produces a value")
		}
	}()
	p := neverProcess[int]{}
	Execute[int](p)
}

// neverProcess never invokes its continuation, modeling a process whose
// graph has a dangling await nothing will ever resolve.
type neverProcess[V any] struct{}

func (neverProcess[V]) Call(rt Runtime, next Continuation[V]) {}
