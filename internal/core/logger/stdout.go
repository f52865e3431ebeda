package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sort"
)

const slogLevelFatal = slog.LevelError + 4

var slogLevels = map[LogLevel]slog.Level{
	LogLevelDebug: slog.LevelDebug,
	LogLevelInfo:  slog.LevelInfo,
	LogLevelWarn:  slog.LevelWarn,
	LogLevelError: slog.LevelError,
	LogLevelFatal: slogLevelFatal,
}

// StdoutLogger is the development logger: slog text output, every level enabled.
type StdoutLogger struct {
	logger *slog.Logger
}

func initStdoutLogger(serviceName string) (Logger, error) {
	return newTextLogger(os.Stdout, serviceName), nil
}

func newTextLogger(w io.Writer, serviceName string) *StdoutLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if level, ok := a.Value.Any().(slog.Level); ok && level == slogLevelFatal {
					a.Value = slog.StringValue(string(LogLevelFatal))
				}
			}
			return a
		},
	})
	return &StdoutLogger{
		logger: slog.New(handler).With(slog.String("service", serviceName)),
	}
}

func (l *StdoutLogger) Log(ctx context.Context, entry LogEntry) {
	level, ok := slogLevels[entry.Level]
	if !ok {
		level = slog.LevelInfo
	}

	keys := make([]string, 0, len(entry.Attributes))
	for key := range entry.Attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys)+1)
	for _, key := range keys {
		attrs = append(attrs, slog.Any(key, entry.Attributes[key]))
	}
	if entry.Error != nil {
		attrs = append(attrs, slog.String("error", entry.Error.Error()))
	}

	l.logger.LogAttrs(ctx, level, entry.Message, attrs...)
}

func (l *StdoutLogger) Shutdown(context.Context) error {
	return nil
}
