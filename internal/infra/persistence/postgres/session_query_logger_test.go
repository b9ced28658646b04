package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"nexprev/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturedQueryLogger(debug bool) (*bytes.Buffer, logger.Interface) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return buf, newSessionQueryLogger(base, debug)
}

func traceQuery() (string, int64) {
	return `SELECT * FROM "session_entries" WHERE key = $1`, 1
}

func TestSessionQueryLogger_SuppressesRecordNotFound(t *testing.T) {
	buf, l := newCapturedQueryLogger(false)

	l.Trace(context.Background(), time.Now(), traceQuery, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestSessionQueryLogger_ReportsFailures(t *testing.T) {
	buf, l := newCapturedQueryLogger(false)

	l.Trace(context.Background(), time.Now(), traceQuery, errors.New("connection reset"))

	assert.Contains(t, buf.String(), "Session query failed")
	assert.Contains(t, buf.String(), "connection reset")
}

func TestSessionQueryLogger_WarnsOnSlowQueries(t *testing.T) {
	buf, l := newCapturedQueryLogger(false)

	begin := time.Now().Add(-2 * slowSessionQueryThreshold)
	l.Trace(context.Background(), begin, traceQuery, nil)

	assert.Contains(t, buf.String(), "Slow session query")
}

func TestSessionQueryLogger_FastQueriesOnlyLogInDebug(t *testing.T) {
	buf, l := newCapturedQueryLogger(false)
	l.Trace(context.Background(), time.Now(), traceQuery, nil)
	assert.Empty(t, buf.String())

	debugBuf, debugLogger := newCapturedQueryLogger(true)
	debugLogger.Trace(context.Background(), time.Now(), traceQuery, nil)
	assert.Contains(t, debugBuf.String(), "Session query")
}

func TestSessionQueryLogger_LogModeSilent(t *testing.T) {
	buf, l := newCapturedQueryLogger(false)

	silent := l.LogMode(logger.Silent)
	silent.Trace(context.Background(), time.Now(), traceQuery, errors.New("connection reset"))

	assert.Empty(t, buf.String())
}
