package logger

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// Constants
const (
	LogFilePermissions = 0600
	InfoLogLevel       = "info"
	LoggerName         = "amiaudit"
)

// Global variables
var (
	globalLogger *zap.Logger
	loggerMutex  sync.RWMutex

	// Global settings
	GlobalEnableConsoleLogger bool
	GlobalEnableFileLogger    bool
	GlobalLogPath             string = "/tmp/amiaudit.log"
	GlobalLogLevel            string = InfoLogLevel
	GlobalInstantSync         bool
	GlobalLogFile             *os.File
)

// Logger wraps a zap logger with printf style helpers.
type Logger struct {
	*zap.Logger
	verbose bool
}

// Loggerer is implemented by every logger handed out by this package.
type Loggerer interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	SetVerbose(bool)
	With(fields ...zap.Field) Loggerer
}

var _ Loggerer = &Logger{}

// InitLoggerOutputs reads the logger settings from viper.
func InitLoggerOutputs() {
	GlobalEnableConsoleLogger = false
	GlobalEnableFileLogger = true
	GlobalLogLevel = InfoLogLevel
	GlobalInstantSync = false

	if viper.IsSet("general.log_path") {
		GlobalLogPath = viper.GetString("general.log_path")
	}
	if viper.IsSet("general.log_level") {
		GlobalLogLevel = viper.GetString("general.log_level")
	}
	if viper.IsSet("general.enable_console_logger") {
		GlobalEnableConsoleLogger = viper.GetBool("general.enable_console_logger")
	}
	if viper.IsSet("general.enable_file_logger") {
		GlobalEnableFileLogger = viper.GetBool("general.enable_file_logger")
	}
}

// InitProduction builds the global logger from the Global* settings.
func InitProduction() error {
	path := ""
	if GlobalEnableFileLogger {
		path = GlobalLogPath
	}
	return Initialize(Config{
		Level:         GlobalLogLevel,
		FilePath:      path,
		EnableConsole: GlobalEnableConsoleLogger,
		InstantSync:   GlobalInstantSync,
	})
}

func (l *Logger) SetVerbose(verbose bool) {
	l.verbose = verbose
}

func (l *Logger) syncIfNeeded() {
	if GlobalInstantSync {
		_ = l.Sync()
	}
}

func (l *Logger) log(level zapcore.Level, msg string) {
	if l.Logger == nil {
		return
	}
	if ce := l.Logger.Check(level, msg); ce != nil {
		ce.Write()
	}
	l.syncIfNeeded()
}

func (l *Logger) Debug(msg string) { l.log(zapcore.DebugLevel, msg) }
func (l *Logger) Info(msg string)  { l.log(zapcore.InfoLevel, msg) }
func (l *Logger) Warn(msg string)  { l.log(zapcore.WarnLevel, msg) }
func (l *Logger) Error(msg string) { l.log(zapcore.ErrorLevel, msg) }

// Formatted logging methods
func (l *Logger) Debugf(format string, args ...interface{}) { l.Debug(fmt.Sprintf(format, args...)) }
func (l *Logger) Infof(format string, args ...interface{}) { l.Info(fmt.Sprintf(format, args...)) }
func (l *Logger) Warnf(format string, args ...interface{}) { l.Warn(fmt.Sprintf(format, args...)) }

func (l *Logger) Errorf(
	format string,
	args ...interface{},
) {
	l.Error(fmt.Sprintf(format, args...))
}

// Field logging methods
func (l *Logger) InfoWithFields(msg string, fields ...zap.Field) {
	l.Logger.Info(formatMessage(msg), fields...)
	l.syncIfNeeded()
}

func (l *Logger) WarnWithFields(msg string, fields ...zap.Field) {
	l.Logger.Warn(formatMessage(msg), fields...)
	l.syncIfNeeded()
}

func (l *Logger) ErrorWithFields(msg string, fields ...zap.Field) {
	l.Logger.Error(formatMessage(msg), fields...)
	l.syncIfNeeded()
}

func (l *Logger) With(fields ...zap.Field) Loggerer {
	return &Logger{
		Logger:  l.Logger.With(fields...),
		verbose: l.verbose,
	}
}

// Utility functions
func formatMessage(msg string) string {
	return strings.TrimPrefix(msg, LoggerName+"\t")
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(fmt.Sprintf("[%s]", t.Format("2006-01-02 15:04:05")))
}

func getZapLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Get returns the global logger, falling back to a no-op logger when none
// has been initialized.
func Get() *Logger {
	loggerMutex.RLock()
	defer loggerMutex.RUnlock()

	if globalLogger == nil {
		return NewNopLogger()
	}
	return &Logger{Logger: globalLogger, verbose: false}
}

func SetGlobalLogger(l *Logger) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	if l == nil {
		globalLogger = nil
		return
	}
	globalLogger = l.Logger
}

func NewNopLogger() *Logger {
	return &Logger{Logger: zap.NewNop(), verbose: false}
}

// TestLogger writes to the test output and keeps every message for assertions.
type TestLogger struct {
	*Logger
	observed *observer.ObservedLogs
}

func NewTestLogger(t zaptest.TestingT) *TestLogger {
	core, observed := observer.New(zapcore.DebugLevel)
	testCore := zaptest.NewLogger(t, zaptest.Level(zapcore.DebugLevel)).Core()
	return &TestLogger{
		Logger: &Logger{
			Logger:  zap.New(zapcore.NewTee(core, testCore)).Named(LoggerName),
			verbose: true,
		},
		observed: observed,
	}
}

// GetLogs returns the captured messages in order.
func (tl *TestLogger) GetLogs() []string {
	entries := tl.observed.All()
	logs := make([]string, 0, len(entries))
	for _, e := range entries {
		logs = append(logs, e.Message)
	}
	return logs
}

// PrintLogs prints all captured logs to the test output
func (tl *TestLogger) PrintLogs(t *testing.T) {
	t.Log("Captured logs:")
	for i, log := range tl.GetLogs() {
		if log != "" {
			t.Logf("[%d] %s", i, log)
		}
	}
}

// LogPanic logs a recovered panic with its stack.
func LogPanic(rec interface{}) {
	l := Get()
	l.ErrorWithFields("PANIC",
		zap.String("panic", fmt.Sprintf("%v", rec)),
		zap.String("stack", string(debug.Stack())),
	)
	_ = l.Sync()
}
