package utils

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

type contextKey string

const loggerKey = contextKey("logger")

// NewLogger initializes a single logger that can log at multiple levels.
func NewLogger(logLevel logrus.Level, logToFile bool, filePath string) *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logLevel)

	if logToFile {
		file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
		if err != nil {
			logger.Fatal("Could not open log file:", err)
		}
		logger.SetOutput(file)
	} else {
		logger.SetOutput(os.Stdout)
	}

	logger.SetFormatter(&logrus.JSONFormatter{})

	return logger
}

// ParseLevel is logrus.ParseLevel falling back to Info for unknown names.
func ParseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

type loggerHolder struct {
	entry *logrus.Entry
}

// WithLogger sets the request scoped entry (request id, customer, user...).
// The entry is shared by the whole request: when ctx already carries one it
// is replaced in place, so fields added by inner middleware also show up in
// the request log line written by the outer one.
func WithLogger(ctx context.Context, entry *logrus.Entry) context.Context {
	if holder, ok := ctx.Value(loggerKey).(*loggerHolder); ok {
		holder.entry = entry
		return ctx
	}
	return context.WithValue(ctx, loggerKey, &loggerHolder{entry: entry})
}

func LoggerFromContext(ctx context.Context) *logrus.Entry {
	holder, ok := ctx.Value(loggerKey).(*loggerHolder)
	if !ok {
		defaultLogger := logrus.New()
		defaultLogger.SetLevel(logrus.InfoLevel)
		defaultLogger.SetFormatter(&logrus.TextFormatter{})
		return logrus.NewEntry(defaultLogger)
	}
	return holder.entry
}
