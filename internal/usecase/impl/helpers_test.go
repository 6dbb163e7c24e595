package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"market/config"
	"market/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// fixedNow is a Wednesday in ISO week 23 of 2025.
var fixedNow = time.Date(2025, time.June, 4, 9, 30, 0, 0, time.UTC) //nolint:gochecknoglobals

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestTracker(t *testing.T) *metrics.ActivityTracker {
	t.Helper()

	tracker, err := metrics.NewActivityTracker(prometheus.NewRegistry())
	require.NoError(t, err)

	return tracker
}

func newTestConfig() *config.Config {
	return &config.Config{
		Producers: &config.ProducersConfig{
			DefaultRadius: 25_000,
			MaxRadius:     100_000,
		},
	}
}

func clock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
