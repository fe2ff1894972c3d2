// Package metrics provides a Prometheus tracer for handshake sessions.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nextproto/quictls/logging"
)

const metricNamespace = "quictls"

var (
	handshakesStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "handshakes_started_total",
			Help:      "Handshakes Started",
		},
		[]string{"dir"},
	)
	handshakesCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "handshakes_completed_total",
			Help:      "Handshakes Completed",
		},
		[]string{"dir"},
	)
	handshakesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "handshake_errors_total",
			Help:      "Handshake Errors",
		},
		[]string{"dir"},
	)
	keysUpdated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "keys_updated_total",
			Help:      "Keys Updated from TLS",
		},
		[]string{"dir", "level"},
	)
	handshakeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Name:      "handshake_duration_seconds",
			Help:      "Duration of the QUIC Handshake",
			Buckets:   prometheus.ExponentialBuckets(0.001, 1.3, 35),
		},
		[]string{"dir"},
	)
)

// NewConnectionTracer creates a new tracer for a handshake session,
// registering its metrics with the default Prometheus registerer.
// The tracer returned can be set on the quictls.Config.
func NewConnectionTracer(p logging.Perspective) *logging.ConnectionTracer {
	return NewConnectionTracerWithRegisterer(prometheus.DefaultRegisterer, p)
}

// NewConnectionTracerWithRegisterer creates a new tracer for a handshake
// session using a given Prometheus registerer.
func NewConnectionTracerWithRegisterer(registerer prometheus.Registerer, p logging.Perspective) *logging.ConnectionTracer {
	for _, c := range [...]prometheus.Collector{
		handshakesStarted,
		handshakesCompleted,
		handshakesFailed,
		keysUpdated,
		handshakeDuration,
	} {
		if err := registerer.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				panic(err)
			}
		}
	}

	direction := "server"
	if p == logging.PerspectiveClient {
		direction = "client"
	}

	var startTime time.Time
	return &logging.ConnectionTracer{
		StartedHandshake: func() {
			startTime = time.Now()
			handshakesStarted.WithLabelValues(direction).Inc()
		},
		UpdatedKeyFromTLS: func(encLevel logging.EncryptionLevel, _ logging.Perspective) {
			keysUpdated.WithLabelValues(direction, encLevel.String()).Inc()
		},
		CompletedHandshake: func() {
			handshakesCompleted.WithLabelValues(direction).Inc()
			if !startTime.IsZero() {
				handshakeDuration.WithLabelValues(direction).Observe(time.Since(startTime).Seconds())
			}
		},
		FailedHandshake: func(error) {
			handshakesFailed.WithLabelValues(direction).Inc()
		},
	}
}
