// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import "testing"

func sumGather(x, y int) int { return x + y }

// discard maps any process's value away to struct{}, so Then's two
// branches can be strung together regardless of their own value types.
func discard[V any](p Process[V]) Process[struct{}] {
	return Map[V, struct{}](p, func(V) struct{} { return struct{}{} })
}

func TestValueSignalAwaitSameInstant(t *testing.T) {
	s := NewValueSignal[int, int](0, sumGather)
	p := Join[struct{}, int](
		Then[int, struct{}](s.Emit(Value[int](1)), discard(s.Emit(Value[int](5)))),
		s.Await(),
	)
	got := Execute[Pair[struct{}, int]](p)
	if got.Second != 6 {
		t.Fatalf("await = %d, want 6", got.Second)
	}
}

func TestValueSignalAwaitAcrossInstant(t *testing.T) {
	s := NewValueSignal[int, int](0, sumGather)
	p := Join[struct{}, int](
		Then[int, struct{}](s.Emit(Value[int](1)), discard(Pause[int](s.Emit(Value[int](5))))),
		s.Await(),
	)
	got := Execute[Pair[struct{}, int]](p)
	if got.Second != 1 {
		t.Fatalf("await = %d, want 1 (second emit lands in the next instant)", got.Second)
	}
}

func TestValueSignalMultiAwaitConcurrent(t *testing.T) {
	s := NewValueSignal[int, int](0, sumGather)
	for i := 0; i < 25; i++ {
		emits := Then[int, struct{}](s.Emit(Value[int](2)), discard(Pause[int](s.Emit(Value[int](5)))))
		emits = Then[struct{}, struct{}](emits, discard(Pause[int](s.Emit(Value[int](15)))))

		awaits := Map[Pair[int, int], int](
			Join[int, int](s.Await(), Then[int, int](s.Await(), s.Await())),
			func(p Pair[int, int]) int { return p.First * p.Second },
		)

		got := Execute[Pair[struct{}, int]](Join[struct{}, int](emits, awaits))
		if got.Second != 10 {
			t.Fatalf("iteration %d: await product = %d, want 10", i, got.Second)
		}
	}
}
