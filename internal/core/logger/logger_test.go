package logger

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
)

type recordingLogger struct {
	entries []LogEntry
}

func (r *recordingLogger) Log(_ context.Context, entry LogEntry) { r.entries = append(r.entries, entry) }
func (r *recordingLogger) Shutdown(context.Context) error       { return nil }

func TestSetLogger_RoutesPackageFunctions(t *testing.T) {
	rec := &recordingLogger{}
	previous := SetLogger(rec)
	t.Cleanup(func() { SetLogger(previous) })

	ctx := context.Background()
	Debug(ctx, "debug", nil)
	Info(ctx, "info", map[string]any{"session_id": "abc"})
	Warn(ctx, "warn", nil)
	Error(ctx, "error", errors.New("boom"), nil)

	if len(rec.entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(rec.entries))
	}
	levels := []LogLevel{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}
	for i, want := range levels {
		if rec.entries[i].Level != want {
			t.Fatalf("entry %d: expected level %s, got %s", i, want, rec.entries[i].Level)
		}
		if rec.entries[i].Timestamp.IsZero() {
			t.Fatalf("entry %d: expected timestamp", i)
		}
	}
	if rec.entries[1].Attributes["session_id"] != "abc" {
		t.Fatalf("expected attributes to be passed through, got %v", rec.entries[1].Attributes)
	}
	if rec.entries[3].Error == nil || rec.entries[3].Error.Error() != "boom" {
		t.Fatalf("expected error to be passed through, got %v", rec.entries[3].Error)
	}
}

func TestSetLogger_NilFallsBackToNoop(t *testing.T) {
	previous := SetLogger(nil)
	t.Cleanup(func() { SetLogger(previous) })

	Info(context.Background(), "dropped", nil)
	if err := Shutdown(context.Background()); err != nil {
		t.Fatalf("expected noop shutdown to succeed, got %v", err)
	}
}

func TestInitialize_Development(t *testing.T) {
	previous := SetLogger(nil)
	t.Cleanup(func() { SetLogger(previous) })

	if err := Initialize("", "glowin-test", false); err != nil {
		t.Fatalf("expected stdout logger to initialize, got %v", err)
	}
	if _, ok := current().(*StdoutLogger); !ok {
		t.Fatalf("expected *StdoutLogger, got %T", current())
	}
}

type flushRecorder struct {
	recordingLogger
	flushed bool
}

func (f *flushRecorder) Shutdown(context.Context) error {
	f.flushed = true
	return nil
}

func TestFatal_FlushesAndExits(t *testing.T) {
	rec := &flushRecorder{}
	previous := SetLogger(rec)
	t.Cleanup(func() { SetLogger(previous) })

	code := -1
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = os.Exit })

	Fatal(context.Background(), "cannot start", errors.New("mongo down"), nil)

	if len(rec.entries) != 1 || rec.entries[0].Level != LogLevelFatal {
		t.Fatalf("expected one fatal entry, got %+v", rec.entries)
	}
	if !rec.flushed {
		t.Fatal("expected logger to be flushed before exit")
	}
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestStdoutLogger_Output(t *testing.T) {
	var buf bytes.Buffer
	l := newTextLogger(&buf, "glowin-test")

	l.Log(context.Background(), LogEntry{
		Level:      LogLevelFatal,
		Message:    "cannot start",
		Error:      errors.New("mongo down"),
		Attributes: map[string]any{"b": 2, "a": "first"},
	})

	out := buf.String()
	for _, want := range []string{"level=FATAL", `msg="cannot start"`, "service=glowin-test", "a=first b=2", `error="mongo down"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}
