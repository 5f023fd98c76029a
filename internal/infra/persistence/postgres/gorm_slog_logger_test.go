package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"georemind/config"
	deliverycontext "georemind/internal/delivery/context"
	"georemind/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	cfg.ApplyDefaults()

	return newBufferedGormLoggerWith(cfg)
}

func newBufferedGormLoggerWith(cfg *config.Config) (logger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg), buf
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name     string
		debug    bool
		begin    time.Time
		err      error
		contains string
	}{
		{
			name:     "query failure is logged",
			begin:    time.Now(),
			err:      errors.New("connection reset"),
			contains: "[StatusStore] Query failed",
		},
		{
			name:     "slow query is logged",
			begin:    time.Now().Add(-time.Second),
			contains: "[StatusStore] Slow query",
		},
		{
			name:     "fast query is logged in debug",
			debug:    true,
			begin:    time.Now(),
			contains: "[StatusStore] Query",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gormLogger, buf := newBufferedGormLogger(tt.debug)

			gormLogger.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			assert.Contains(t, buf.String(), tt.contains)
		})
	}
}

func TestGormSlogLogger_QuietCases(t *testing.T) {
	gormLogger, buf := newBufferedGormLogger(false)
	ctx := context.Background()

	gormLogger.Trace(ctx, time.Now(), sqlFn, gorm.ErrRecordNotFound)
	gormLogger.Trace(ctx, time.Now(), sqlFn, nil)
	gormLogger.Info(ctx, "migrating %s", "reminder_statuses")

	gormLogger.LogMode(logger.Silent).Trace(ctx, time.Now(), sqlFn, errors.New("ignored"))

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_TagsReminderAndRequest(t *testing.T) {
	gormLogger, buf := newBufferedGormLogger(false)

	ctx := withReminderID(deliverycontext.WithRequestID(context.Background(), "req-7"), "r1")
	gormLogger.Trace(ctx, time.Now(), sqlFn, errors.New("connection reset"))

	out := buf.String()
	assert.Contains(t, out, "reminder_id=r1")
	assert.Contains(t, out, "request_id=req-7")
}

func TestGormSlogLogger_StatusStoreConfig(t *testing.T) {
	tests := []struct {
		name     string
		store    *config.StatusStoreConfig
		begin    time.Time
		err      error
		contains string
	}{
		{
			name:     "custom slow threshold",
			store:    &config.StatusStoreConfig{SlowQueryThreshold: 10 * time.Millisecond},
			begin:    time.Now().Add(-50 * time.Millisecond),
			contains: "slow_threshold=10ms",
		},
		{
			name:  "zero threshold disables slow query logging",
			store: &config.StatusStoreConfig{},
			begin: time.Now().Add(-time.Hour),
		},
		{
			name:     "missing status logged when enabled",
			store:    &config.StatusStoreConfig{LogNotFound: true},
			begin:    time.Now(),
			err:      gorm.ErrRecordNotFound,
			contains: "[StatusStore] Query failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gormLogger, buf := newBufferedGormLoggerWith(&config.Config{StatusStore: tt.store})

			gormLogger.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			if tt.contains == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.contains)
		})
	}
}

func TestConstraintViolations(t *testing.T) {
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.True(t, isCheckConstraintViolation(errors.New(`ERROR: new row violates check constraint "chk_reminder_status" (SQLSTATE 23514)`)))
	assert.False(t, isCheckConstraintViolation(errors.New("connection refused")))

	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "status" violates not-null constraint`)))
	assert.False(t, isNotNullConstraintViolation(errors.New("connection refused")))
}
