// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import (
	"context"
	"testing"

	"go.uber.org/goleak"
)

func TestProcessJoin(t *testing.T) {
	got := Execute[Pair[int, int]](Join[int, int](Value[int](42), Value[int](1337)))
	if got.First != 42 || got.Second != 1337 {
		t.Fatalf("got = %+v, want {42 1337}", got)
	}
}

func TestProcessMultiJoin(t *testing.T) {
	got := Execute[[]int](MultiJoin[int]([]Process[int]{Value[int](1), Value[int](2), Value[int](3)}))
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got = %v, want %v", got, want)
		}
	}
}

func TestProcessMultiJoinEmpty(t *testing.T) {
	got := Execute[[]int](MultiJoin[int](nil))
	if len(got) != 0 {
		t.Fatalf("got = %v, want empty", got)
	}
}

func TestParallelJoin(t *testing.T) {
	defer goleak.VerifyNone(t)
	got, err := ExecuteParallel[Pair[int, int]](context.Background(), Join[int, int](Value[int](15), Value[int](1337)), 4)
	if err != nil {
		t.Fatalf("ExecuteParallel: %v", err)
	}
	if got.First != 15 || got.Second != 1337 {
		t.Fatalf("got = %+v, want {15 1337}", got)
	}
}
