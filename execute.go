// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import "context"

// Execute runs p to completion on a fresh SequentialRuntime and returns
// its value (spec.md §4.6). It panics with a contract-violation message
// if p never produces a value despite the scheduler reaching quiescence —
// a process that pauses forever without anything left to wake it is
// misbehaving, not merely slow.
func Execute[V any](p Process[V], opts ...SequentialOption) V {
	rt := NewSequentialRuntime(opts...)
	var (
		result V
		filled bool
	)
	rt.OnCurrent(func(rt Runtime) {
		p.Call(rt, func(rt Runtime, v V) {
			result = v
			filled = true
		})
	})
	rt.Execute()
	if !filled {
		panic("reactor: execute reached quiescence without producing a value (contract violation)")
	}
	return result
}

// ExecuteParallel runs p to completion on a ParallelRuntime backed by the
// given number of worker goroutines (spec.md §4.4/§4.6). ctx bounds the
// whole run; a cancelled ctx aborts with its error rather than hanging.
func ExecuteParallel[V any](ctx context.Context, p Process[V], workers int, opts ...ParallelOption) (V, error) {
	rt := NewParallelRuntime(workers, opts...)
	var (
		result V
		filled bool
	)
	rt.OnCurrent(func(rt Runtime) {
		p.Call(rt, func(rt Runtime, v V) {
			result = v
			filled = true
		})
	})
	if err := rt.run(ctx); err != nil {
		var zero V
		return zero, err
	}
	if !filled {
		panic("reactor: execute reached quiescence without producing a value (contract violation)")
	}
	return result, nil
}
