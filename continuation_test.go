// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import "testing"

func TestContinuationOnNextFiresNextInstant(t *testing.T) {
	n := 0
	rt := NewSequentialRuntime()
	rt.OnCurrent(func(rt Runtime) {
		rt.OnNext(func(rt Runtime) {
			n = 42
		})
	})
	if n != 0 {
		t.Fatalf("n = %d, want 0 before any instant", n)
	}
	if !rt.Instant() {
		t.Fatal("Instant() = false, want true (next-instant work pending)")
	}
	if n != 0 {
		t.Fatalf("n = %d, want 0 after first instant", n)
	}
	if rt.Instant() {
		t.Fatal("Instant() = true, want false (nothing left)")
	}
	if n != 42 {
		t.Fatalf("n = %d, want 42 after second instant", n)
	}
}

func TestContPause(t *testing.T) {
	n := 0
	rt := NewSequentialRuntime()
	c := ContPause[struct{}](func(rt Runtime, v struct{}) { n = 42 })
	rt.OnCurrent(func(rt Runtime) { c(rt, struct{}{}) })
	rt.Instant()
	if n != 0 {
		t.Fatalf("n = %d, want 0 after first instant", n)
	}
	rt.Instant()
	if n != 42 {
		t.Fatalf("n = %d, want 42 after second instant", n)
	}
}

func TestContMap(t *testing.T) {
	var got int
	c := ContMap[string, int](func(rt Runtime, v int) { got = v }, func(s string) int { return len(s) })
	rt := NewSequentialRuntime()
	rt.OnCurrent(func(rt Runtime) { c(rt, "hello") })
	rt.Execute()
	if got != 5 {
		t.Fatalf("got = %d, want 5", got)
	}
}
