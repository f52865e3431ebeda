package logger

import (
	"context"
	"os"
	"sync"
	"time"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
	LogLevelFatal LogLevel = "FATAL"
)

const fatalFlushTimeout = 5 * time.Second

type LogEntry struct {
	Level      LogLevel
	Message    string
	Attributes map[string]any
	Error      error
	Timestamp  time.Time
}

// Logger is a sink for entries. Implementations must not exit the process;
// Fatal does that after flushing.
type Logger interface {
	Log(ctx context.Context, entry LogEntry)
	Shutdown(ctx context.Context) error
}

type discard struct{}

func (discard) Log(context.Context, LogEntry)  {}
func (discard) Shutdown(context.Context) error { return nil }

var (
	mu     sync.RWMutex
	active Logger = discard{}

	// exit is swapped in tests.
	exit = os.Exit
)

func current() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return active
}

// SetLogger replaces the package logger and returns the previous one. Nil installs a discarding logger.
func SetLogger(l Logger) Logger {
	if l == nil {
		l = discard{}
	}
	mu.Lock()
	defer mu.Unlock()
	previous := active
	active = l
	return previous
}

// Initialize installs the OTLP exporter in production and a text logger on stdout otherwise.
func Initialize(collectorEndpoint, serviceName string, isProduction bool) error {
	build := initStdoutLogger
	if isProduction {
		build = func(serviceName string) (Logger, error) {
			return initializeOtelLogger(collectorEndpoint, serviceName)
		}
	}

	l, err := build(serviceName)
	if err != nil {
		return err
	}
	SetLogger(l)
	return nil
}

func emit(ctx context.Context, level LogLevel, message string, err error, attrs map[string]any) {
	current().Log(ctx, LogEntry{
		Level:      level,
		Message:    message,
		Attributes: attrs,
		Error:      err,
		Timestamp:  time.Now(),
	})
}

func Debug(ctx context.Context, message string, attrs map[string]any) {
	emit(ctx, LogLevelDebug, message, nil, attrs)
}

func Info(ctx context.Context, message string, attrs map[string]any) {
	emit(ctx, LogLevelInfo, message, nil, attrs)
}

func Warn(ctx context.Context, message string, attrs map[string]any) {
	emit(ctx, LogLevelWarn, message, nil, attrs)
}

func Error(ctx context.Context, message string, err error, attrs map[string]any) {
	emit(ctx, LogLevelError, message, err, attrs)
}

// Fatal logs, flushes the logger and exits with status 1.
func Fatal(ctx context.Context, message string, err error, attrs map[string]any) {
	emit(ctx, LogLevelFatal, message, err, attrs)

	flushCtx, cancel := context.WithTimeout(context.Background(), fatalFlushTimeout)
	defer cancel()
	_ = current().Shutdown(flushCtx)
	exit(1)
}

// Log forwards a prebuilt entry, used when the caller sets its own timestamp or level.
func Log(ctx context.Context, entry LogEntry) {
	current().Log(ctx, entry)
}

func Shutdown(ctx context.Context) error {
	return current().Shutdown(ctx)
}
