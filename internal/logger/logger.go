package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"cpu-governor/internal/models"
)

var levelRank = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

var (
	activeLogger *log.Logger
	logLevel     = "warn"
	logCloser    io.Closer
)

// InitLogger 初始化日志系统，console 一般为标准错误，标准输出只留给命令结果
func InitLogger(config *models.Config, console io.Writer) error {
	logOutput, closer, err := buildLogWriter(config.LogFile, console)
	if err != nil {
		return err
	}

	flags := log.LstdFlags
	if config.LogShowCaller {
		flags |= log.Lshortfile
	}
	Close()
	activeLogger = log.New(logOutput, "", flags)
	logCloser = closer
	SetLogLevel(config.LogLevel)
	return nil
}

func buildLogWriter(logFile string, console io.Writer) (io.Writer, io.Closer, error) {
	if console == nil {
		console = os.Stderr
	}
	if logFile == "" {
		return console, nil, nil
	}

	logDir := filepath.Dir(logFile)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("创建日志目录失败: %w", err)
	}

	logOutput, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("打开日志文件失败: %w", err)
	}

	return io.MultiWriter(console, logOutput), logOutput, nil
}

// Close 关闭日志文件
func Close() {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}

// Info 记录信息日志。
func Info(format string, v ...interface{}) {
	logWithLevel("info", format, v...)
}

// Warn 记录警告日志。
func Warn(format string, v ...interface{}) {
	logWithLevel("warn", format, v...)
}

// Debug 记录调试日志。
func Debug(format string, v ...interface{}) {
	logWithLevel("debug", format, v...)
}

// SetLogLevel 设置日志级别，未知级别忽略
func SetLogLevel(level string) {
	if _, ok := levelRank[level]; ok {
		logLevel = level
	}
}

// Enabled 判断指定级别是否会输出
func Enabled(level string) bool {
	rank, ok := levelRank[level]
	return ok && rank >= levelRank[logLevel]
}

func logWithLevel(level, format string, v ...interface{}) {
	if !Enabled(level) {
		return
	}
	prefix := "[" + levelTag(level) + "] "
	if activeLogger != nil {
		activeLogger.Output(3, fmt.Sprintf(prefix+format, v...))
		return
	}
	log.Output(3, fmt.Sprintf(prefix+format, v...))
}

func levelTag(level string) string {
	switch level {
	case "debug":
		return "DEBUG"
	case "info":
		return "INFO"
	case "warn":
		return "WARN"
	default:
		return "ERROR"
	}
}
