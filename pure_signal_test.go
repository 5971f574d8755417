// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import "testing"

func TestPureSignalAwait(t *testing.T) {
	n := 0
	s := NewPureSignal()

	p := Join[struct{}, struct{}](
		Map[struct{}, struct{}](s.AwaitImmediate(), func(struct{}) struct{} {
			n = 1337
			return struct{}{}
		}),
		Map[struct{}, struct{}](
			Then[struct{}, struct{}](
				Pause[struct{}](Map[struct{}, struct{}](Value[struct{}](struct{}{}), func(struct{}) struct{} {
					n = 42
					return struct{}{}
				})),
				Then[struct{}, struct{}](s.Emit(), Pause[struct{}](Value[struct{}](struct{}{}))),
			),
			func(struct{}) struct{} {
				n++
				return struct{}{}
			},
		),
	)

	if n != 0 {
		t.Fatalf("n = %d, want 0 before execution", n)
	}
	Execute[Pair[struct{}, struct{}]](p)
	if n != 1338 {
		t.Fatalf("n = %d, want 1338", n)
	}
}

func TestPureSignalAwaitAlreadyPresent(t *testing.T) {
	n := 0
	s := NewPureSignal()
	s.state.status = true

	p := Join[struct{}, struct{}](
		Map[struct{}, struct{}](s.AwaitImmediate(), func(struct{}) struct{} {
			n = 1337
			return struct{}{}
		}),
		Map[struct{}, struct{}](
			Then[struct{}, struct{}](
				Pause[struct{}](Map[struct{}, struct{}](Value[struct{}](struct{}{}), func(struct{}) struct{} {
					n = 42
					return struct{}{}
				})),
				Then[struct{}, struct{}](s.Emit(), Pause[struct{}](Value[struct{}](struct{}{}))),
			),
			func(struct{}) struct{} {
				n++
				return struct{}{}
			},
		),
	)

	Execute[Pair[struct{}, struct{}]](p)
	if n != 43 {
		t.Fatalf("n = %d, want 43", n)
	}
}

func TestPureSignalPresent(t *testing.T) {
	s := NewPureSignal()
	n, m := 0, 0

	emitLoop := WhileLoop[struct{}](MapMut[struct{}, LoopStatus[struct{}]](
		PauseMut[struct{}](s.Emit()),
		func(struct{}) LoopStatus[struct{}] {
			n++
			if n == 42 {
				return Exit[struct{}](struct{}{})
			}
			return Continue[struct{}]()
		},
	))

	presentLoop := WhileLoop[struct{}](PauseMut[LoopStatus[struct{}]](IfElseMut[LoopStatus[struct{}]](
		s.Present(),
		MapMut[struct{}, LoopStatus[struct{}]](Value[struct{}](struct{}{}), func(struct{}) LoopStatus[struct{}] {
			m += 2
			return Continue[struct{}]()
		}),
		Value[LoopStatus[struct{}]](Exit[struct{}](struct{}{})),
	)))

	if m != 0 {
		t.Fatalf("m = %d, want 0 before execution", m)
	}
	Execute[Pair[struct{}, struct{}]](Join[struct{}, struct{}](emitLoop, presentLoop))
	if m != 84 {
		t.Fatalf("m = %d, want 84", m)
	}
}
