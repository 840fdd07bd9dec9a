// Package logger cung cấp hệ thống logging tập trung cho toàn bộ ứng dụng.
// Gồm ba logger riêng biệt: app (vận hành), audit (nghiệp vụ), error (lỗi),
// tất cả đều hỗ trợ rotation qua lumberjack.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	loggers    = make(map[string]*logrus.Logger)
	loggersMux sync.RWMutex
	config     *LogConfig
)

// Init khởi tạo hệ thống logging với cấu hình cho trước.
// Nếu cfg là nil thì dùng DefaultConfig().
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	// Tạo thư mục logs nếu chưa có
	if cfg.Output != "stdout" {
		if err := os.MkdirAll(cfg.LogPath, 0755); err != nil {
			return fmt.Errorf("không thể tạo thư mục logs: %w", err)
		}
	}

	return nil
}

// GetLogger trả về logger theo tên, tạo mới nếu chưa tồn tại
func GetLogger(name string) *logrus.Logger {
	loggersMux.RLock()
	if logger, exists := loggers[name]; exists {
		loggersMux.RUnlock()
		return logger
	}
	loggersMux.RUnlock()

	loggersMux.Lock()
	defer loggersMux.Unlock()

	// Double-check sau khi lấy write lock
	if logger, exists := loggers[name]; exists {
		return logger
	}

	logger := createLogger(name)
	loggers[name] = logger
	return logger
}

// createLogger tạo logger mới theo cấu hình chung
func createLogger(name string) *logrus.Logger {
	logger := logrus.New()

	if config == nil {
		config = DefaultConfig()
	}

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if config.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	logger.SetOutput(getOutput(name))
	return logger
}

// getOutput trả về writer cho logger theo cấu hình Output
func getOutput(name string) io.Writer {
	if config.Output == "stdout" {
		return os.Stdout
	}

	fileName := config.AppFile
	switch name {
	case "audit":
		fileName = config.AuditFile
	case "error":
		fileName = config.ErrorFile
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(config.LogPath, fileName),
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
	}

	if config.Output == "both" {
		return io.MultiWriter(os.Stdout, fileWriter)
	}
	return fileWriter
}

// GetAppLogger trả về logger chính của ứng dụng
func GetAppLogger() *logrus.Logger {
	return GetLogger("app")
}

// GetAuditLogger trả về logger cho audit trail
func GetAuditLogger() *logrus.Logger {
	return GetLogger("audit")
}

// GetErrorLogger trả về logger cho lỗi hệ thống
func GetErrorLogger() *logrus.Logger {
	return GetLogger("error")
}
