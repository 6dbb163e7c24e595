package relational

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	deliverycontext "market/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestQueryLogger_Trace(t *testing.T) {
	begin := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	stmt := func() (string, int64) { return "SELECT * FROM offers", 3 }

	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "failed statement", elapsed: time.Millisecond, err: assert.AnError, want: `"msg":"Query failed"`},
		{name: "missing row is not a failure", elapsed: time.Millisecond, err: gorm.ErrRecordNotFound},
		{name: "slow statement", elapsed: time.Second, want: `"msg":"Slow query"`},
		{name: "fast statement is quiet", elapsed: time.Millisecond},
		{name: "debug logs every statement", debug: true, elapsed: time.Millisecond, want: `"msg":"Query"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newQueryLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), "sqlite", 0, tt.debug).(*queryLogger)
			l.now = func() time.Time { return begin.Add(tt.elapsed) }

			l.Trace(context.Background(), begin, stmt, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), `"rows":3`)
		})
	}
}

func TestQueryLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newQueryLogger(slog.New(slog.NewJSONHandler(&base, nil)), "postgres", time.Millisecond, false).(*queryLogger)

	ctx := deliverycontext.WithLogger(context.Background(),
		slog.New(slog.NewJSONHandler(&scoped, nil)).With(slog.String("request_id", "req-9")))

	l.Trace(ctx, time.Now().Add(-time.Second), func() (string, int64) { return "SELECT 1", 1 }, nil)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), `"request_id":"req-9"`)
	assert.Contains(t, scoped.String(), `"threshold":1000000`)
}
