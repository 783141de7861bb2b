// Package metrics exposes retry activity as Prometheus metrics. Attach an
// Observer to a wrapped operation with retry.WithObserver.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aponysus/reprise/observe"
)

// Observer implements observe.Observer over Prometheus collectors.
type Observer struct {
	backoffs  *prometheus.CounterVec
	giveups   *prometheus.CounterVec
	successes *prometheus.CounterVec
	waits     *prometheus.HistogramVec
	tries     *prometheus.HistogramVec
}

// New creates an Observer and registers its collectors with reg.
func New(reg prometheus.Registerer) *Observer {
	o := &Observer{
		backoffs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "reprise",
				Name:      "backoffs_total",
				Help:      "Total number of backoff waits taken before a retry.",
			},
			[]string{"target"},
		),
		giveups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "reprise",
				Name:      "giveups_total",
				Help:      "Total number of calls that exhausted their retry policy.",
			},
			[]string{"target"},
		),
		successes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "reprise",
				Name:      "successes_total",
				Help:      "Total number of calls that ended in success.",
			},
			[]string{"target"},
		),
		waits: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "reprise",
				Name:      "wait_seconds",
				Help:      "Computed backoff waits, after jitter and clamping.",
				Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
			},
			[]string{"target"},
		),
		tries: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "reprise",
				Name:      "tries_per_call",
				Help:      "Attempts used by each terminal call.",
				Buckets:   []float64{1, 2, 3, 4, 5, 8, 13, 21},
			},
			[]string{"target", "outcome"},
		),
	}

	if reg != nil {
		reg.MustRegister(o.backoffs, o.giveups, o.successes, o.waits, o.tries)
	}
	return o
}

func (o *Observer) OnBackoff(_ context.Context, rec observe.AttemptRecord) error {
	o.backoffs.WithLabelValues(rec.Target).Inc()
	o.waits.WithLabelValues(rec.Target).Observe(rec.Wait.Seconds())
	return nil
}

func (o *Observer) OnGiveUp(_ context.Context, rec observe.AttemptRecord) error {
	o.giveups.WithLabelValues(rec.Target).Inc()
	o.tries.WithLabelValues(rec.Target, "giveup").Observe(float64(rec.Tries))
	return nil
}

func (o *Observer) OnSuccess(_ context.Context, rec observe.AttemptRecord) error {
	o.successes.WithLabelValues(rec.Target).Inc()
	o.tries.WithLabelValues(rec.Target, "success").Observe(float64(rec.Tries))
	return nil
}
