package logger

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the configuration for the logger
type Config struct {
	Level         string `yaml:"level"          json:"level"`
	FilePath      string `yaml:"file_path"      json:"file_path"`
	Format        string `yaml:"format"         json:"format"`
	WithTrace     bool   `yaml:"with_trace"     json:"with_trace"`
	EnableConsole bool   `yaml:"enable_console" json:"enable_console"`
	InstantSync   bool   `yaml:"instant_sync"   json:"instant_sync"`
}

// Initialize sets up the global logger with the given configuration
func Initialize(config Config) error {
	GlobalEnableConsoleLogger = config.EnableConsole
	GlobalEnableFileLogger = config.FilePath != ""
	GlobalInstantSync = config.InstantSync

	if config.FilePath != "" {
		GlobalLogPath = config.FilePath
	}

	logLevel := config.Level
	if logLevel == "" {
		logLevel = InfoLogLevel
	}
	GlobalLogLevel = logLevel

	var cores []zapcore.Core
	level := getZapLevel(logLevel)

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	// Console output goes to stderr so report output on stdout stays clean.
	if config.EnableConsole {
		consoleEncoderConfig := encoderConfig
		consoleEncoderConfig.EncodeCaller = nil
		consoleEncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format("15:04:05"))
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleEncoderConfig),
			zapcore.AddSync(os.Stderr),
			level,
		))
	}

	if config.FilePath != "" {
		var encoder zapcore.Encoder
		if config.Format == "json" {
			encoder = zapcore.NewJSONEncoder(encoderConfig)
		} else {
			textEncoderConfig := encoderConfig
			textEncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder // No colors in file
			encoder = zapcore.NewConsoleEncoder(textEncoderConfig)
		}

		file, err := os.OpenFile(
			config.FilePath,
			os.O_APPEND|os.O_CREATE|os.O_WRONLY,
			LogFilePermissions,
		)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		GlobalLogFile = file

		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(file), level))
	}

	opts := []zap.Option{zap.AddCaller()}
	if config.WithTrace {
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	logger := zap.New(zapcore.NewTee(cores...), opts...).Named(LoggerName)
	SetGlobalLogger(&Logger{Logger: logger, verbose: false})

	return nil
}
