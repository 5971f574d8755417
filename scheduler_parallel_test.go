// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import (
	"context"
	"testing"

	"go.uber.org/goleak"
)

func TestParallelRuntimeReturn(t *testing.T) {
	defer goleak.VerifyNone(t)
	got, err := ExecuteParallel[int](context.Background(), Value[int](42), 8)
	if err != nil {
		t.Fatalf("ExecuteParallel: %v", err)
	}
	if got != 42 {
		t.Fatalf("got = %d, want 42", got)
	}
}

func TestParallelRuntimeWhileLoop(t *testing.T) {
	defer goleak.VerifyNone(t)
	n := 0
	loop := WhileLoop[struct{}](MapMut[struct{}, LoopStatus[struct{}]](Value[struct{}](struct{}{}), func(struct{}) LoopStatus[struct{}] {
		n++
		if n == 1000 {
			return Exit[struct{}](struct{}{})
		}
		return Continue[struct{}]()
	}))
	if _, err := ExecuteParallel[struct{}](context.Background(), loop, 4); err != nil {
		t.Fatalf("ExecuteParallel: %v", err)
	}
	if n != 1000 {
		t.Fatalf("n = %d, want 1000", n)
	}
}

func TestParallelRuntimeCancellation(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ExecuteParallel[struct{}](ctx, neverProcess[struct{}]{}, 2)
	if err == nil {
		t.Fatal("expected error from a cancelled context")
	}
}
