// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// todoQueue is the shared, lock-guarded work list a fixed-size worker pool
// drains cooperatively, grounded in original_source's TodoQueue: workers
// block on a condition variable rather than spin when the queue is
// momentarily empty but the instant has not yet ended.
type todoQueue struct {
	mu    sync.Mutex
	items []func(rt Runtime)
}

func (q *todoQueue) push(f func(rt Runtime)) {
	q.mu.Lock()
	q.items = append(q.items, f)
	q.mu.Unlock()
}

func (q *todoQueue) pop() (func(rt Runtime), bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil, false
	}
	f := q.items[len(q.items)-1]
	q.items = q.items[:len(q.items)-1]
	return f, true
}

func (q *todoQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// ParallelRuntime is the worker-pool scheduler of spec.md §4.4: several
// goroutines drain the same current/end-of-instant queues, synchronized at
// each instant boundary by a phase barrier rather than by a single
// goroutine running to quiescence.
type ParallelRuntime struct {
	workers int
	current *todoQueue
	end     *todoQueue

	mu         sync.Mutex
	cond       *sync.Cond
	arrived    int  // workers parked at the barrier for the current generation
	generation int  // bumped each time the barrier releases
	finished   bool // true once a release finds no more work anywhere
	nextCur    *todoQueue
	nextEnd    *todoQueue
	observer   Observer
	instant    int
}

// ParallelOption configures a ParallelRuntime at construction time.
type ParallelOption func(*ParallelRuntime)

// WithParallelObserver attaches an Observer (metrics.go) to the scheduler.
func WithParallelObserver(o Observer) ParallelOption {
	return func(rt *ParallelRuntime) { rt.observer = o }
}

// NewParallelRuntime builds a scheduler backed by the given number of
// worker goroutines. workers must be at least 1.
func NewParallelRuntime(workers int, opts ...ParallelOption) *ParallelRuntime {
	if workers < 1 {
		workers = 1
	}
	rt := &ParallelRuntime{
		workers:  workers,
		current:  &todoQueue{},
		end:      &todoQueue{},
		nextCur:  &todoQueue{},
		nextEnd:  &todoQueue{},
		observer: noopObserver{},
	}
	rt.cond = sync.NewCond(&rt.mu)
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// LocalRuntime is the per-worker Runtime handle a ParallelRuntime hands to
// running continuations; registrations delegate to the shared queues.
type LocalRuntime struct {
	shared *ParallelRuntime
}

func (l LocalRuntime) OnCurrent(f func(rt Runtime)) { l.shared.current.push(f) }
func (l LocalRuntime) OnNext(f func(rt Runtime))    { l.shared.nextCur.push(f) }
func (l LocalRuntime) OnEnd(f func(rt Runtime))     { l.shared.end.push(f) }

// OnCurrent implements Runtime directly on *ParallelRuntime too, so a
// ParallelRuntime can seed the very first continuation before workers
// start (ExecuteParallel does this).
func (rt *ParallelRuntime) OnCurrent(f func(rt Runtime)) { rt.current.push(f) }
func (rt *ParallelRuntime) OnNext(f func(rt Runtime))    { rt.nextCur.push(f) }
func (rt *ParallelRuntime) OnEnd(f func(rt Runtime))     { rt.end.push(f) }

// run starts the worker pool and blocks until ctx is cancelled or every
// queue is permanently empty, per spec.md §4.4's phase-barrier algorithm:
// a worker that finds its local view of current empty parks on the
// barrier; once every worker has parked, the last one to arrive performs
// the swap (current <- next-current, end <- next-end-of-instant, drain
// next-end-of-instant) and wakes the others, or reports completion.
func (rt *ParallelRuntime) run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < rt.workers; w++ {
		w := w
		g.Go(func() error {
			return rt.workerLoop(ctx, w)
		})
	}
	return g.Wait()
}

func (rt *ParallelRuntime) workerLoop(ctx context.Context, worker int) error {
	drained := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if f, ok := rt.current.pop(); ok {
			f(LocalRuntime{shared: rt})
			drained++
			continue
		}
		done, err := rt.parkAtBarrier(worker, drained)
		drained = 0
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// parkAtBarrier is a cyclic barrier of size rt.workers: a worker that
// finds its local view of current empty parks here. The last worker to
// arrive for a given generation — the one whose arrival makes arrived
// equal workers — advances the scheduler's phase (spec.md §4.4's
// swap-and-drain-end-of-instant step) on everyone's behalf, bumps the
// generation to release its peers, and records whether any work remains
// anywhere. A worker that wakes to find a new generation already started
// (another worker re-filled current and raced back around) simply
// rejoins the loop instead of waiting.
func (rt *ParallelRuntime) parkAtBarrier(worker, drained int) (done bool, err error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	myGeneration := rt.generation
	rt.arrived++
	rt.observer.ObserveWorker(worker, rt.instant+1, drained)

	if rt.arrived < rt.workers {
		for rt.generation == myGeneration {
			rt.cond.Wait()
		}
		return rt.finished, nil
	}

	// Last arrival: advance the phase. Swap first, mirroring
	// scheduler_sequential.go's Instant() — any OnCurrent/OnNext
	// registered while draining the end-of-instant bank below must land
	// in the already-swapped-in containers, so it is deferred by exactly
	// one instant rather than two (spec.md §4.3).
	start := time.Now()
	rt.instant++

	rt.current, rt.nextCur = rt.nextCur, rt.current
	rt.end, rt.nextEnd = rt.nextEnd, rt.end

	for {
		f, ok := rt.nextEnd.pop()
		if !ok {
			break
		}
		f(LocalRuntime{shared: rt})
	}

	rt.observer.ObserveInstant(rt.instant, time.Since(start), rt.current.len())

	rt.finished = rt.current.len() == 0 && rt.end.len() == 0 &&
		rt.nextCur.len() == 0 && rt.nextEnd.len() == 0
	rt.arrived = 0
	rt.generation++
	rt.cond.Broadcast()
	return rt.finished, nil
}
