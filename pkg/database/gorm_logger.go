package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"memberhub/pkg/logging"
)

// DefaultSlowQueryThreshold marks statements that get logged at warn level.
const DefaultSlowQueryThreshold = 200 * time.Millisecond

// GormLogger routes gorm's statement log through logrus.
type GormLogger struct {
	logger        logging.Logger
	level         gormlogger.LogLevel
	SlowThreshold time.Duration
}

var _ gormlogger.Interface = (*GormLogger)(nil)

// NewGormLogger maps the logrus level onto gorm's coarser levels.
func NewGormLogger(logger logging.Logger) *GormLogger {
	level := gormlogger.Warn
	switch {
	case logger.IsLevelEnabled(logging.DebugLevel):
		level = gormlogger.Info
	case !logger.IsLevelEnabled(logging.WarnLevel):
		level = gormlogger.Error
	}
	return &GormLogger{logger: logger, level: level, SlowThreshold: DefaultSlowQueryThreshold}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *GormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		l.logger.Infof(msg, args...)
	}
}

func (l *GormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.logger.Warnf(msg, args...)
	}
}

func (l *GormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		l.logger.Errorf(msg, args...)
	}
}

// Trace logs one executed statement. Missing rows are not errors here.
func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		sql, rows := fc()
		l.logger.WithError(err).WithFields(logging.Fields{
			"sql":     sql,
			"rows":    rows,
			"elapsed": elapsed,
		}).Error("Query failed")
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		l.logger.WithFields(logging.Fields{
			"sql":       sql,
			"rows":      rows,
			"elapsed":   elapsed,
			"threshold": l.SlowThreshold,
		}).Warn("Slow query")
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		l.logger.WithFields(logging.Fields{
			"sql":     sql,
			"rows":    rows,
			"elapsed": elapsed,
		}).Debug("Query")
	}
}
