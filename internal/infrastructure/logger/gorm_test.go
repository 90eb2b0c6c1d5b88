package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(t *testing.T, zapLevel zapcore.Level, gormLevel gormlogger.LogLevel, opts ...GormLoggerOption) (*GormLogger, *observer.ObservedLogs) {
	t.Helper()
	core, recorded := observer.New(zapLevel)
	return NewGormLogger(zap.New(core), gormLevel, opts...), recorded
}

func TestNewGormLogger(t *testing.T) {
	gl, _ := newObservedGormLogger(t, zapcore.InfoLevel, gormlogger.Info)

	assert.Equal(t, gormlogger.Info, gl.level)
	assert.Equal(t, 200*time.Millisecond, gl.slowAfter)
	assert.True(t, gl.skipNotFound)
}

func TestGormLoggerOptions(t *testing.T) {
	gl, _ := newObservedGormLogger(t, zapcore.InfoLevel, gormlogger.Info,
		WithSlowThreshold(500*time.Millisecond),
		WithIgnoreRecordNotFoundError(false),
	)

	assert.Equal(t, 500*time.Millisecond, gl.slowAfter)
	assert.False(t, gl.skipNotFound)
}

func TestGormLoggerLogMode(t *testing.T) {
	gl, _ := newObservedGormLogger(t, zapcore.InfoLevel, gormlogger.Info)

	clone := gl.LogMode(gormlogger.Warn)

	assert.Equal(t, gormlogger.Info, gl.level)
	cloned, ok := clone.(*GormLogger)
	require.True(t, ok)
	assert.Equal(t, gormlogger.Warn, cloned.level)
}

func TestGormLoggerLevels(t *testing.T) {
	t.Run("info logged at info level", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(t, zapcore.InfoLevel, gormlogger.Info)

		gl.Info(context.Background(), "migrating %s", "orders")

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Contains(t, logs[0].Message, "migrating orders")
	})

	t.Run("info suppressed at silent level", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(t, zapcore.InfoLevel, gormlogger.Silent)

		gl.Info(context.Background(), "migrating orders")

		assert.Empty(t, recorded.All())
	})

	t.Run("warn logged at warn level", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(t, zapcore.WarnLevel, gormlogger.Warn)

		gl.Warn(context.Background(), "retrying %d", 2)

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Equal(t, zapcore.WarnLevel, logs[0].Level)
	})

	t.Run("error logged at error level", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(t, zapcore.ErrorLevel, gormlogger.Error)

		gl.Error(context.Background(), "connection lost")

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Equal(t, zapcore.ErrorLevel, logs[0].Level)
	})
}

func TestGormLoggerTrace(t *testing.T) {
	query := func() (string, int64) {
		return `SELECT * FROM "orders" WHERE timestamp >= $1`, 5
	}

	t.Run("query error", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(t, zapcore.ErrorLevel, gormlogger.Error)

		gl.Trace(context.Background(), time.Now(), query, errors.New("relation does not exist"))

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Contains(t, logs[0].Message, "SQL Error")
	})

	t.Run("record not found skipped", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(t, zapcore.ErrorLevel, gormlogger.Error)

		gl.Trace(context.Background(), time.Now(), query, gormlogger.ErrRecordNotFound)

		assert.Empty(t, recorded.All())
	})

	t.Run("slow query", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(t, zapcore.WarnLevel, gormlogger.Warn,
			WithSlowThreshold(time.Nanosecond))

		gl.Trace(context.Background(), time.Now().Add(-time.Second), query, nil)

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Contains(t, logs[0].Message, "SLOW SQL")
	})

	t.Run("normal query traced at debug", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(t, zapcore.DebugLevel, gormlogger.Info)

		gl.Trace(context.Background(), time.Now(), query, nil)

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Contains(t, logs[0].Message, "SQL Query")
		assert.Equal(t, zapcore.DebugLevel, logs[0].Level)
	})

	t.Run("silent traces nothing", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(t, zapcore.DebugLevel, gormlogger.Silent)

		gl.Trace(context.Background(), time.Now(), query, nil)

		assert.Empty(t, recorded.All())
	})

	t.Run("request id from context", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(t, zapcore.DebugLevel, gormlogger.Info)

		ctx := context.WithValue(context.Background(), RequestIDKey, "req-42")
		gl.Trace(ctx, time.Now(), query, nil)

		logs := recorded.All()
		require.Len(t, logs, 1)

		found := false
		for _, field := range logs[0].Context {
			if field.Key == "request_id" {
				found = true
				assert.Equal(t, "req-42", field.String)
			}
		}
		assert.True(t, found, "request_id should be attached to the trace")
	})
}

func TestMapGormLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected gormlogger.LogLevel
	}{
		{"silent", gormlogger.Silent},
		{"error", gormlogger.Error},
		{"warn", gormlogger.Warn},
		{"info", gormlogger.Info},
		{"debug", gormlogger.Info},
		{"unknown", gormlogger.Warn},
		{"", gormlogger.Warn},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapGormLogLevel(tt.level))
		})
	}
}

func TestGormLoggerImplementsInterface(t *testing.T) {
	gl, _ := newObservedGormLogger(t, zapcore.InfoLevel, gormlogger.Info)

	var _ gormlogger.Interface = gl
}
