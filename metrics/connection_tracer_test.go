package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/nextproto/quictls/logging"
)

func TestTracerCountsHandshakeOutcomes(t *testing.T) {
	registry := prometheus.NewRegistry()
	client := NewConnectionTracerWithRegisterer(registry, logging.PerspectiveClient)
	server := NewConnectionTracerWithRegisterer(registry, logging.PerspectiveServer)

	client.StartedHandshake()
	client.CompletedHandshake()
	server.StartedHandshake()
	server.FailedHandshake(errors.New("handshake failure"))

	require.Equal(t, float64(1), testutil.ToFloat64(handshakesStarted.WithLabelValues("client")))
	require.Equal(t, float64(1), testutil.ToFloat64(handshakesStarted.WithLabelValues("server")))
	require.Equal(t, float64(1), testutil.ToFloat64(handshakesCompleted.WithLabelValues("client")))
	require.Equal(t, float64(0), testutil.ToFloat64(handshakesCompleted.WithLabelValues("server")))
	require.Equal(t, float64(1), testutil.ToFloat64(handshakesFailed.WithLabelValues("server")))
}

func TestTracerCountsKeyUpdates(t *testing.T) {
	registry := prometheus.NewRegistry()
	tr := NewConnectionTracerWithRegisterer(registry, logging.PerspectiveClient)

	tr.UpdatedKeyFromTLS(logging.EncryptionHandshake, logging.PerspectiveClient)
	tr.UpdatedKeyFromTLS(logging.EncryptionHandshake, logging.PerspectiveServer)
	tr.UpdatedKeyFromTLS(logging.Encryption1RTT, logging.PerspectiveClient)

	require.Equal(t, float64(2), testutil.ToFloat64(keysUpdated.WithLabelValues("client", "Handshake")))
	require.Equal(t, float64(1), testutil.ToFloat64(keysUpdated.WithLabelValues("client", "1-RTT")))
}

func TestTracerRegistersOnlyOnce(t *testing.T) {
	registry := prometheus.NewRegistry()
	require.NotPanics(t, func() {
		NewConnectionTracerWithRegisterer(registry, logging.PerspectiveClient)
		NewConnectionTracerWithRegisterer(registry, logging.PerspectiveServer)
	})
}
