package log

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/printdeck/printdeck/internal/version"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// GormLogger implements gorm.io/gorm/logger.Interface on top of slog.
type GormLogger struct {
	SlowThreshold             time.Duration
	IgnoreRecordNotFoundError bool
	LogLevel                  gormlogger.LogLevel
}

func NewGormLogger() *GormLogger {
	level := gormlogger.Silent
	if version.IsDevelopment() {
		level = gormlogger.Info
	}
	return &GormLogger{
		SlowThreshold:             200 * time.Millisecond,
		IgnoreRecordNotFoundError: true,
		LogLevel:                  level,
	}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	newlogger := *l
	newlogger.LogLevel = level
	return &newlogger
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Info {
		l.logger().InfoContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Warn {
		l.logger().WarnContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Error {
		l.logger().ErrorContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	origin := Gray("(%s)", utils.FileWithLineNum())

	switch {
	case err != nil && l.LogLevel >= gormlogger.Error && (!errors.Is(err, gorm.ErrRecordNotFound) || !l.IgnoreRecordNotFoundError):
		l.logger().ErrorContext(ctx, fmt.Sprintf("[%.3fms] [rows:%d] %s | ERROR: %v %s",
			float64(elapsed.Nanoseconds())/1e6, rows, sql, err, origin))
	case elapsed > l.SlowThreshold && l.SlowThreshold != 0 && l.LogLevel >= gormlogger.Warn:
		l.logger().WarnContext(ctx, fmt.Sprintf("[%.3fms] [rows:%d] %s | SLOW QUERY %s",
			float64(elapsed.Nanoseconds())/1e6, rows, sql, origin))
	case l.LogLevel >= gormlogger.Info:
		l.logger().DebugContext(ctx, fmt.Sprintf("[%.3fms] [rows:%d] %s %s",
			float64(elapsed.Nanoseconds())/1e6, rows, sql, origin))
	}
}

func (l *GormLogger) logger() *slog.Logger {
	return slog.Default().WithGroup("GORM")
}
