package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	logsDir      string
	consoleLevel zapcore.Level
	console      io.Writer
	fileOutput   bool
}

// Option customises InitLogger
type Option func(*options)

// WithLogsDir writes the log file into dir instead of ./logs
func WithLogsDir(dir string) Option {
	return func(o *options) { o.logsDir = dir }
}

// WithConsoleLevel sets the minimum level printed to the console
func WithConsoleLevel(level zapcore.Level) Option {
	return func(o *options) { o.consoleLevel = level }
}

// WithConsole redirects console output, mainly for tests
func WithConsole(w io.Writer) Option {
	return func(o *options) { o.console = w }
}

// WithoutFile disables the JSON log file
func WithoutFile() Option {
	return func(o *options) { o.fileOutput = false }
}

// InitLogger initializes a zap logger with console and file outputs
// env is used to prefix the log file name
func InitLogger(env string, opts ...Option) (*zap.Logger, error) {
	o := options{
		logsDir:      "logs",
		consoleLevel: zapcore.InfoLevel,
		console:      os.Stdout,
		fileOutput:   true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	// Configure encoder for console (human-readable)
	consoleEncoderConfig := zap.NewDevelopmentEncoderConfig()
	consoleEncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncoderConfig), zapcore.AddSync(o.console), o.consoleLevel),
	}

	if o.fileOutput {
		fileCore, err := newFileCore(o.logsDir, env)
		if err != nil {
			return nil, err
		}
		cores = append(cores, fileCore)
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	return logger, nil
}

// newFileCore opens logs/<env>_<timestamp>.log and writes JSON at debug level
func newFileCore(logsDir, env string) (zapcore.Core, error) {
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFileName := filepath.Join(logsDir, fmt.Sprintf("%s_%s.log", env, timestamp))
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	fileEncoderConfig := zap.NewProductionEncoderConfig()
	fileEncoderConfig.TimeKey = "timestamp"
	fileEncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoderConfig), zapcore.AddSync(logFile), zapcore.DebugLevel), nil
}
