package logger

import (
	"strings"
	"time"

	gormlogger "gorm.io/gorm/logger"
)

// GormLogger 将 gorm 的 SQL 日志桥接到 zap
// gorm 默认写 stdout，会打乱交互界面。sqlLevel 为空时 debug 模式输出全部 SQL。
func GormLogger(mode, sqlLevel string) gormlogger.Interface {
	fallback := gormlogger.Warn
	if isDebugMode(mode) {
		fallback = gormlogger.Info
	}
	level := ParseGormLevel(sqlLevel, fallback)
	return gormlogger.New(StdLogger(), gormlogger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// ParseGormLevel 解析配置中的 SQL 日志级别，未知值返回 fallback
func ParseGormLevel(raw string, fallback gormlogger.LogLevel) gormlogger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "warn":
		return gormlogger.Warn
	case "info":
		return gormlogger.Info
	default:
		return fallback
	}
}
