// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import "testing"

func TestAffineCallOnce(t *testing.T) {
	calls := 0
	a := OnceContinuation[int](func(rt Runtime, v int) { calls++ })
	rt := NewSequentialRuntime()
	a.Call(rt, 1)
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestAffineCallTwicePanics(t *testing.T) {
	a := OnceContinuation[int](func(rt Runtime, v int) {})
	rt := NewSequentialRuntime()
	a.Call(rt, 1)

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on second Call")
		}
	}()
	a.Call(rt, 2)
}

func TestAffineTryCall(t *testing.T) {
	a := OnceContinuation[int](func(rt Runtime, v int) {})
	rt := NewSequentialRuntime()
	if ok := a.TryCall(rt, 1); !ok {
		t.Fatal("first TryCall should succeed")
	}
	if ok := a.TryCall(rt, 2); ok {
		t.Fatal("second TryCall should fail")
	}
}

func TestAffineDiscard(t *testing.T) {
	calls := 0
	a := OnceContinuation[int](func(rt Runtime, v int) { calls++ })
	a.Discard()
	rt := NewSequentialRuntime()
	if ok := a.TryCall(rt, 1); ok {
		t.Fatal("TryCall after Discard should fail")
	}
	if calls != 0 {
		t.Fatalf("calls = %d, want 0", calls)
	}
}
