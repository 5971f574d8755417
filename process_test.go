// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import "testing"

func TestProcessFlatten(t *testing.T) {
	got := Execute[int](Flatten[int](Value[Process[int]](Value[int](42))))
	if got != 42 {
		t.Fatalf("got = %d, want 42", got)
	}
}

func TestProcessPause(t *testing.T) {
	got := Execute[int](Map[int, int](Pause[int](Value[int](42)), func(v int) int { return v }))
	if got != 42 {
		t.Fatalf("got = %d, want 42", got)
	}
}

func TestProcessReturn(t *testing.T) {
	if got := Execute[int](Value[int](42)); got != 42 {
		t.Fatalf("got = %d, want 42", got)
	}
}

func TestProcessAndThen(t *testing.T) {
	got := Execute[int](AndThen[int, int](Value[int](1), func(v int) Process[int] {
		return Value[int](v + 41)
	}))
	if got != 42 {
		t.Fatalf("got = %d, want 42", got)
	}
}

func TestProcessThenOrdering(t *testing.T) {
	var order []int
	p := Then[struct{}, struct{}](
		Map[struct{}, struct{}](Value[struct{}](struct{}{}), func(struct{}) struct{} {
			order = append(order, 1)
			return struct{}{}
		}),
		Map[struct{}, struct{}](Value[struct{}](struct{}{}), func(struct{}) struct{} {
			order = append(order, 2)
			return struct{}{}
		}),
	)
	Execute[struct{}](p)
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("order = %v, want [1 2]", order)
	}
}

func TestProcessWhile(t *testing.T) {
	n := 0
	loop := WhileLoop[struct{}](MapMut[struct{}, LoopStatus[struct{}]](Value[struct{}](struct{}{}), func(struct{}) LoopStatus[struct{}] {
		n++
		if n == 42 {
			return Exit[struct{}](struct{}{})
		}
		return Continue[struct{}]()
	}))
	Execute[struct{}](loop)
	if n != 42 {
		t.Fatalf("n = %d, want 42", n)
	}
}

func TestProcessIfElse(t *testing.T) {
	p := IfElse[int](Value[bool](false),
		IfElse[int](Value[bool](true), Value[int](1), Value[int](2)),
		IfElse[int](Value[bool](true), Value[int](3), Value[int](4)),
	)
	if got := Execute[int](p); got != 3 {
		t.Fatalf("got = %d, want 3", got)
	}
}
