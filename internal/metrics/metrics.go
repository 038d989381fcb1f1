package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const subsystem = "oss_contact"

var (
	ToggleTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "toggle_total",
			Help:      "Counter of contact toggle calls broken out by outcome.",
		},
		[]string{"outcome"},
	)

	ToggleDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Subsystem: subsystem,
			Name:      "toggle_duration_seconds",
			Help:      "Contact toggle latency in seconds, including backing store round trips.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"outcome"},
	)

	EventPublishFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "event_publish_failures_total",
			Help:      "Counter of contact change events that could not be published.",
		},
	)
)

var registerOnce sync.Once

// Register 注册到给定 registerer，重复调用只生效一次
func Register(r prometheus.Registerer, outcomes ...string) {
	registerOnce.Do(func() {
		r.MustRegister(ToggleTotal, ToggleDuration, EventPublishFailures)
		for _, o := range outcomes {
			ToggleTotal.WithLabelValues(o)
		}
	})
}

func RecordToggle(outcome string, elapsed time.Duration) {
	ToggleTotal.WithLabelValues(outcome).Inc()
	ToggleDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func RecordEventPublishFailure() {
	EventPublishFailures.Inc()
}
