package debug

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func withObserver(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prevEnabled := Enabled()
	mu.Lock()
	prevLogger := logger
	mu.Unlock()

	SetLogger(zap.New(core))
	SetEnabled(true)
	t.Cleanup(func() {
		SetLogger(prevLogger)
		SetEnabled(prevEnabled)
	})
	return logs
}

func TestDisabledIsNoop(t *testing.T) {
	logs := withObserver(t)
	SetEnabled(false)

	Log("hidden %d", 1)
	LogTiming("x", time.Second)
	Section("s")
	LogEnterExit("f")()

	if logs.Len() != 0 {
		t.Errorf("expected no entries while disabled, got %d", logs.Len())
	}
}

func TestLogWritesEntries(t *testing.T) {
	logs := withObserver(t)

	Log("selected %s", "mapping")
	LogIf(false, "skipped")
	LogIf(true, "kept")
	With("export written", zap.String("path", "/tmp/x"))

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Message != "selected mapping" {
		t.Errorf("unexpected message %q", entries[0].Message)
	}
	if entries[2].ContextMap()["path"] != "/tmp/x" {
		t.Errorf("expected path field, got %v", entries[2].ContextMap())
	}
}

func TestLogEnterExit(t *testing.T) {
	logs := withObserver(t)

	done := LogEnterExit("Bundle")
	done()

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected enter and exit entries, got %d", len(entries))
	}
	if entries[0].Message != "-> Bundle" || entries[1].Message != "<- Bundle" {
		t.Errorf("unexpected messages %q, %q", entries[0].Message, entries[1].Message)
	}
	if _, ok := entries[1].ContextMap()["took"]; !ok {
		t.Error("expected took field on exit entry")
	}
}

func TestNewLoggerWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	prevEnabled := Enabled()
	mu.Lock()
	prevLogger := logger
	mu.Unlock()
	t.Cleanup(func() {
		SetLogger(prevLogger)
		SetEnabled(prevEnabled)
	})

	SetLogger(NewLogger(&buf))
	SetEnabled(true)
	Section("export")
	LogTiming("render home", 3*time.Millisecond)
	Sync()

	out := buf.String()
	for _, want := range []string{"adpf", "=== export ===", "render home", "3ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestLogTimingAndSectionFields(t *testing.T) {
	logs := withObserver(t)

	Section("bundle")
	LogTiming("sqlite", 2*time.Second)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "=== bundle ===" {
		t.Errorf("unexpected section message %q", entries[0].Message)
	}
	fields := entries[1].ContextMap()
	if fields["name"] != "sqlite" || fields["took"] != 2*time.Second {
		t.Errorf("unexpected timing fields %v", fields)
	}
}
