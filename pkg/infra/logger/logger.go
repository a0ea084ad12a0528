package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logDir             = "logs"
	DefaultLogFile     = "ruleguard.log"
	fileBufferSize     = 32 * 1024
	consoleBufferSize  = 1000
	defaultLogLevelEnv = "LOG_LEVEL"
)

type Options struct {
	// Level overrides LOG_LEVEL when set.
	Level string
	// File is created under logs/. Empty disables file output.
	File    string
	Console bool
}

// NewLogger builds the process logger. The returned function flushes and
// closes the async writers and must be called on shutdown.
func NewLogger(opts Options) (*logrus.Logger, func(), error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})

	level := opts.Level
	if level == "" {
		level = os.Getenv(defaultLogLevelEnv)
	}
	logger.SetLevel(ParseLevel(level))

	var closers []func()
	logger.SetOutput(io.Discard)

	if opts.File != "" {
		logFile, err := logFilePath(opts.File)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(logDir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
		}
		asyncWriter, err := NewAsyncFileWriter(logFile, fileBufferSize)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize async log writer: %w", err)
		}
		logger.SetOutput(asyncWriter)
		closers = append(closers, asyncWriter.Close)
	}

	if opts.Console || opts.File == "" {
		hook := NewAsyncConsoleHook(os.Stdout, consoleBufferSize)
		logger.AddHook(hook)
		closers = append(closers, hook.Close)
	}

	return logger, func() {
		for _, c := range closers {
			c()
		}
	}, nil
}

// ParseLevel maps a level name to a logrus level, defaulting to info.
func ParseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(strings.ToLower(level)))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

func logFilePath(name string) (string, error) {
	logFile := filepath.Clean(filepath.Join(logDir, name))
	if !strings.HasPrefix(logFile, logDir+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid log file path %q: must be in %s directory", name, logDir)
	}
	return logFile, nil
}
