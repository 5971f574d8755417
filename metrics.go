// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Observer receives scheduler telemetry. It is optional and additive: the
// core scheduling algorithm never consults it for correctness, only for
// side-channel instrumentation a host may wire in (spec.md §6 rules out
// built-in logging, not opt-in metrics).
type Observer interface {
	// ObserveInstant is called once per completed instant with its
	// 1-based index, wall-clock duration, and the number of
	// continuations left queued for the next instant.
	ObserveInstant(instant int, d time.Duration, pending int)
	// ObserveWorker is called by the parallel scheduler once per worker
	// per instant it participates in, with the number of continuations
	// that worker drained.
	ObserveWorker(worker int, instant int, drained int)
}

// noopObserver is the default Observer: every method is a no-op.
type noopObserver struct{}

func (noopObserver) ObserveInstant(int, time.Duration, int) {}
func (noopObserver) ObserveWorker(int, int, int)            {}

// PrometheusObserver reports instant cadence and worker throughput to a
// prometheus.Registerer, grounded in the pack's favbox-eino-dev and
// grafana-k6 repos wiring client_golang collectors directly into
// application hot paths.
type PrometheusObserver struct {
	instantDuration prometheus.Histogram
	instantPending  prometheus.Gauge
	workerDrained   *prometheus.CounterVec
}

// NewPrometheusObserver builds and registers the collectors on reg. Panics
// if registration fails (duplicate metric names), matching
// prometheus.MustRegister's convention used throughout the ecosystem.
func NewPrometheusObserver(reg prometheus.Registerer, namespace string) *PrometheusObserver {
	o := &PrometheusObserver{
		instantDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "reactor",
			Name:      "instant_duration_seconds",
			Help:      "Wall-clock duration of a single scheduler instant.",
			Buckets:   prometheus.DefBuckets,
		}),
		instantPending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "reactor",
			Name:      "instant_pending_continuations",
			Help:      "Continuations queued for the next instant as of the last completed instant.",
		}),
		workerDrained: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reactor",
			Name:      "worker_continuations_drained_total",
			Help:      "Continuations drained by a given parallel worker.",
		}, []string{"worker"}),
	}
	reg.MustRegister(o.instantDuration, o.instantPending, o.workerDrained)
	return o
}

func (o *PrometheusObserver) ObserveInstant(_ int, d time.Duration, pending int) {
	o.instantDuration.Observe(d.Seconds())
	o.instantPending.Set(float64(pending))
}

func (o *PrometheusObserver) ObserveWorker(worker int, _ int, drained int) {
	o.workerDrained.WithLabelValues(strconv.Itoa(worker)).Add(float64(drained))
}
