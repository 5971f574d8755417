// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import "testing"

func TestUniqueProducerSignalReplicatedAwaitImmediate(t *testing.T) {
	producer, consumer := NewUniqueProducerSignal[int](0)

	p := Join[struct{}, Pair[int, int]](
		producer.Emit(Value[int](1)),
		Join[int, int](consumer.AwaitImmediate(), consumer.AwaitImmediate()),
	)

	got := Execute[Pair[struct{}, Pair[int, int]]](p)
	if got.Second.First != 1 || got.Second.Second != 1 {
		t.Fatalf("got = %+v, want both awaiters to see 1", got.Second)
	}
}

func TestUniqueProducerSignalPresent(t *testing.T) {
	producer, consumer := NewUniqueProducerSignal[int](0)

	before := Execute[bool](consumer.Present())
	if before {
		t.Fatal("Present() = true before any emit in this execution")
	}

	p := Join[struct{}, bool](producer.Emit(Value[int](7)), consumer.Present())
	got := Execute[Pair[struct{}, bool]](p)
	if !got.Second {
		t.Fatal("Present() = false, want true in the emitting instant")
	}
}
