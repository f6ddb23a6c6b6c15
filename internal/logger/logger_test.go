package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithOutput(&buf), WithLevel(slog.LevelWarn))

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message", "key", "value")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Fatalf("messages below warn should be dropped: %s", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "key=value") {
		t.Fatalf("expected warn message with key=value, got: %s", out)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithOutput(&buf), WithFormat(FormatJSON)).With("gesture", "g-1")
	l.Info("drop", "zone", "2a")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "drop" || rec["gesture"] != "g-1" || rec["zone"] != "2a" {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if lvl, err := ParseLevel("DEBUG"); err != nil || lvl != slog.LevelDebug {
		t.Fatalf("ParseLevel(DEBUG) = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Fatalf("ParseFormat(json) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithOutput(&buf))
	ctx := WithContext(context.Background(), l)
	FromContext(ctx).Info("from context")
	if !strings.Contains(buf.String(), "from context") {
		t.Fatalf("expected message via context logger, got %q", buf.String())
	}
	// No logger attached: must not panic.
	FromContext(context.Background()).Info("dropped")
}
