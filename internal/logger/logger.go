package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"hwinfo/internal/models"
)

var levelRank = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

var (
	mu           sync.RWMutex
	activeLogger *log.Logger
	logLevel     = "info"
	logFile      *os.File
)

// InitLogger 初始化日志系统，日志写到标准错误，配置了 log_file 时同时追加到文件
func InitLogger(config *models.Config) error {
	output, file, err := buildLogWriter(config.LogFile)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	closeFileLocked()
	activeLogger = log.New(output, "", log.LstdFlags)
	logFile = file
	if config.LogLevel != "" {
		logLevel = config.LogLevel
	}
	return nil
}

// 标准输出留给探测结果
func buildLogWriter(path string) (io.Writer, *os.File, error) {
	if path == "" {
		return os.Stderr, nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("创建日志目录失败: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("打开日志文件失败: %w", err)
	}

	return io.MultiWriter(os.Stderr, file), file, nil
}

// Close 关闭日志文件
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeFileLocked()
	activeLogger = nil
}

func closeFileLocked() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// Info 记录信息日志。
func Info(format string, v ...interface{}) {
	logWithLevel("info", format, v...)
}

// Error 记录错误日志。
func Error(format string, v ...interface{}) {
	logWithLevel("error", format, v...)
}

// Warn 记录警告日志。
func Warn(format string, v ...interface{}) {
	logWithLevel("warn", format, v...)
}

// Debug 记录调试日志。
func Debug(format string, v ...interface{}) {
	logWithLevel("debug", format, v...)
}

// Enabled 判断给定级别是否会输出
func Enabled(level string) bool {
	mu.RLock()
	current := logLevel
	mu.RUnlock()
	want, ok := levelRank[level]
	if !ok {
		return false
	}
	threshold, ok := levelRank[current]
	if !ok {
		threshold = levelRank["info"]
	}
	return want >= threshold
}

func logWithLevel(level, format string, v ...interface{}) {
	if !Enabled(level) {
		return
	}
	mu.RLock()
	target := activeLogger
	mu.RUnlock()

	prefix := "[" + levelTag(level) + "] "
	if target != nil {
		target.Printf(prefix+format, v...)
		return
	}
	log.Printf(prefix+format, v...)
}

func levelTag(level string) string {
	switch level {
	case "debug":
		return "DEBUG"
	case "warn":
		return "WARN"
	case "error":
		return "ERROR"
	default:
		return "INFO"
	}
}
