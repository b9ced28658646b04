package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"nexprev/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Session statements are single-row lookups and upserts by construction, so
// anything past this threshold means session restore is stalling a request.
const slowSessionQueryThreshold = 100 * time.Millisecond

// sessionQueryLogger adapts GORM's logger interface to slog for the
// session-entry workload. A missing entry is a logged-out visitor, not a
// failure, so record-not-found is never reported.
type sessionQueryLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
}

func newSessionQueryLogger(baseLogger *slog.Logger, debug bool) logger.Interface {
	level := logger.Warn
	if debug {
		level = logger.Info
	}

	return &sessionQueryLogger{logger: baseLogger, level: level}
}

func (l *sessionQueryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *sessionQueryLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Info {
		l.logger.InfoContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *sessionQueryLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Warn {
		l.logger.WarnContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *sessionQueryLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Error {
		l.logger.ErrorContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *sessionQueryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, _ := fc()
		l.logger.LogAttrs(ctx, slog.LevelError, "Session query failed",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", elapsed),
			slog.String("sql", sql),
		)
	case elapsed > slowSessionQueryThreshold && l.level >= logger.Warn:
		sql, rows := fc()
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Slow session query",
			slog.Duration("elapsed", elapsed),
			slog.Duration("threshold", slowSessionQueryThreshold),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		)
	case l.level >= logger.Info:
		sql, rows := fc()
		l.logger.LogAttrs(ctx, slog.LevelInfo, "Session query",
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		)
	}
}
