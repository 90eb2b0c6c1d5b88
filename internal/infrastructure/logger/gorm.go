package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger adapts zap to gorm's logger.Interface. Queries are traced with
// elapsed time and affected rows; the request id is pulled from the context
// when present.
type GormLogger struct {
	zl           *zap.Logger
	level        gormlogger.LogLevel
	slowAfter    time.Duration
	skipNotFound bool
}

type GormLoggerOption func(*GormLogger)

// WithSlowThreshold overrides the duration after which a query is logged as slow.
func WithSlowThreshold(d time.Duration) GormLoggerOption {
	return func(l *GormLogger) { l.slowAfter = d }
}

// WithIgnoreRecordNotFoundError controls whether gorm.ErrRecordNotFound is
// traced as an error. Lookups that legitimately miss are noisy, so the
// default is to skip them.
func WithIgnoreRecordNotFoundError(skip bool) GormLoggerOption {
	return func(l *GormLogger) { l.skipNotFound = skip }
}

func NewGormLogger(zl *zap.Logger, level gormlogger.LogLevel, opts ...GormLoggerOption) *GormLogger {
	l := &GormLogger{
		zl:           zl.Named("gorm"),
		level:        level,
		slowAfter:    200 * time.Millisecond,
		skipNotFound: true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *GormLogger) Info(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		l.zl.Sugar().Infof(msg, args...)
	}
}

func (l *GormLogger) Warn(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		l.zl.Sugar().Warnf(msg, args...)
	}
}

func (l *GormLogger) Error(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		l.zl.Sugar().Errorf(msg, args...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	fields := []zap.Field{
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
		zap.String("sql", sql),
	}
	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}

	switch {
	case err != nil && l.level >= gormlogger.Error:
		if l.skipNotFound && errors.Is(err, gormlogger.ErrRecordNotFound) {
			return
		}
		l.zl.Error("SQL Error", append(fields, zap.Error(err))...)
	case l.slowAfter > 0 && elapsed > l.slowAfter && l.level >= gormlogger.Warn:
		l.zl.Warn(fmt.Sprintf("SLOW SQL >= %v", l.slowAfter), fields...)
	case l.level >= gormlogger.Info:
		l.zl.Debug("SQL Query", fields...)
	}
}

// MapGormLogLevel translates the application log level into gorm's scale.
// The application's debug maps to gorm Info, which traces every query.
func MapGormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "warn":
		return gormlogger.Warn
	case "info", "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
