package relational

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "market/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// queryLogger sends gorm output to slog. Statements run under a request are logged with that
// request's logger, so they carry its request_id.
type queryLogger struct {
	base   *slog.Logger
	driver string
	level  logger.LogLevel
	slow   time.Duration
	now    func() time.Time
}

// newQueryLogger logs failed and slow statements; debug additionally logs every statement.
func newQueryLogger(base *slog.Logger, driver string, slow time.Duration, debug bool) logger.Interface {
	if slow <= 0 {
		slow = defaultSlowQueryThreshold
	}

	level := logger.Warn
	if debug {
		level = logger.Info
	}

	return &queryLogger{base: base, driver: driver, level: level, slow: slow, now: time.Now}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) message(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < min || l.base == nil {
		return
	}

	l.log(ctx).LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace is called by gorm after each statement. A missing row is a normal lookup outcome and is not
// reported as a failure.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := l.now().Sub(begin)

	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		level, msg, extra = slog.LevelError, "Query failed", slog.String("error", err.Error())
	case elapsed > l.slow && l.level >= logger.Warn:
		level, msg, extra = slog.LevelWarn, "Slow query", slog.Duration("threshold", l.slow)
	case l.level >= logger.Info:
		level, msg = slog.LevelInfo, "Query"
	default:
		return
	}

	sql, rows := fc()
	attrs := []slog.Attr{
		slog.String("driver", l.driver),
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	l.log(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *queryLogger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, l.base)
}
