// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import "time"

// SequentialRuntime is the single-goroutine scheduler of spec.md §4.3: it
// runs every ready continuation to quiescence in strict phase order with
// no locking, since nothing else touches its queues concurrently.
type SequentialRuntime struct {
	current          []func(rt Runtime)
	endOfInstant     []func(rt Runtime)
	nextCurrent      []func(rt Runtime)
	nextEndOfInstant []func(rt Runtime)

	observer Observer
	instant  int
}

// SequentialOption configures a SequentialRuntime at construction time.
type SequentialOption func(*SequentialRuntime)

// WithSequentialObserver attaches an Observer to record instant and queue
// telemetry (metrics.go). Optional: omitting it leaves the scheduler
// exactly as spec.md describes it, with zero observability overhead.
func WithSequentialObserver(o Observer) SequentialOption {
	return func(rt *SequentialRuntime) { rt.observer = o }
}

// NewSequentialRuntime constructs an empty sequential scheduler.
func NewSequentialRuntime(opts ...SequentialOption) *SequentialRuntime {
	rt := &SequentialRuntime{observer: noopObserver{}}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// OnCurrent implements Runtime.
func (rt *SequentialRuntime) OnCurrent(f func(rt Runtime)) {
	rt.current = append(rt.current, f)
}

// OnNext implements Runtime.
func (rt *SequentialRuntime) OnNext(f func(rt Runtime)) {
	rt.nextCurrent = append(rt.nextCurrent, f)
}

// OnEnd implements Runtime.
func (rt *SequentialRuntime) OnEnd(f func(rt Runtime)) {
	rt.endOfInstant = append(rt.endOfInstant, f)
}

// Instant runs phase A (drain current) then phase B (drain
// end-of-instant, with current empty and any registrations it makes
// landing in next), per spec.md §4.3. Returns true iff there is more
// work pending for a subsequent instant.
func (rt *SequentialRuntime) Instant() bool {
	start := time.Now()
	rt.instant++

	for len(rt.current) > 0 {
		f := rt.current[len(rt.current)-1]
		rt.current = rt.current[:len(rt.current)-1]
		f(rt)
	}

	rt.current, rt.nextCurrent = rt.nextCurrent, rt.current
	rt.endOfInstant, rt.nextEndOfInstant = rt.nextEndOfInstant, rt.endOfInstant

	for len(rt.nextEndOfInstant) > 0 {
		f := rt.nextEndOfInstant[len(rt.nextEndOfInstant)-1]
		rt.nextEndOfInstant = rt.nextEndOfInstant[:len(rt.nextEndOfInstant)-1]
		f(rt)
	}

	rt.observer.ObserveInstant(rt.instant, time.Since(start), len(rt.current)+len(rt.nextCurrent))

	return len(rt.current) > 0 || len(rt.endOfInstant) > 0 || len(rt.nextEndOfInstant) > 0
}

// Execute drives Instant to completion.
func (rt *SequentialRuntime) Execute() {
	for rt.Instant() {
	}
}
