package observability

import (
	"errors"
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap/zapcore"

	"github.com/futemax/futemax-api/internal/platform/logging"
)

func TestShouldSkipUptraceLog(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		msg  string
		args []any
		want bool
	}{
		{"health probe access log", "http request", []any{"method", "GET", "path", "/healthz"}, true},
		{"regular access log", "http request", []any{"method", "GET", "path", "/v1/games"}, false},
		{"non-access log with health path", "game created", []any{"path", "/healthz"}, false},
		{"access log without path key", "http request", []any{"method", "GET"}, false},
		{"non-string path value", "http request", []any{"path", 42}, false},
	}
	for _, tc := range cases {
		if got := shouldSkipUptraceLog(tc.msg, tc.args); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestToOTelSeverity(t *testing.T) {
	t.Parallel()

	cases := map[zapcore.Level]otellog.Severity{
		zapcore.DebugLevel:  otellog.SeverityDebug,
		zapcore.InfoLevel:   otellog.SeverityInfo,
		zapcore.WarnLevel:   otellog.SeverityWarn,
		zapcore.ErrorLevel:  otellog.SeverityError,
		zapcore.DPanicLevel: otellog.SeverityFatal,
		zapcore.PanicLevel:  otellog.SeverityFatal,
		zapcore.FatalLevel:  otellog.SeverityFatal,
	}
	for level, want := range cases {
		if got := toOTelSeverity(level); got != want {
			t.Fatalf("toOTelSeverity(%s) = %v, want %v", level, got, want)
		}
	}
}

func TestBuildOTelLogAttributes(t *testing.T) {
	t.Parallel()

	attrs := buildOTelLogAttributes([]any{"game_id", "g1", "viewers", 120, "dangling"})
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "game_id" || attrs[0].Value.AsString() != "g1" {
		t.Fatalf("unexpected first attribute: %+v", attrs[0])
	}
	if attrs[1].Key != "viewers" || attrs[1].Value.AsInt64() != 120 {
		t.Fatalf("unexpected second attribute: %+v", attrs[1])
	}
	if attrs[2].Key != "dangling" {
		t.Fatalf("dangling key must still be emitted, got %+v", attrs[2])
	}

	if got := buildOTelLogAttributes(nil); got != nil {
		t.Fatalf("expected nil for empty args, got %+v", got)
	}

	attrs = buildOTelLogAttributes([]any{42, "value"})
	if attrs[0].Key != "arg_0" {
		t.Fatalf("non-string keys fall back to positional names, got %q", attrs[0].Key)
	}
}

func TestToOTelLogValue(t *testing.T) {
	t.Parallel()

	if got := toOTelLogValue("text", 0); got.AsString() != "text" {
		t.Fatalf("unexpected string value: %v", got)
	}
	if got := toOTelLogValue(42, 0); got.AsInt64() != 42 {
		t.Fatalf("unexpected int value: %v", got)
	}
	if got := toOTelLogValue(true, 0); !got.AsBool() {
		t.Fatalf("unexpected bool value: %v", got)
	}
	if got := toOTelLogValue(1.5, 0); got.AsFloat64() != 1.5 {
		t.Fatalf("unexpected float value: %v", got)
	}
	if got := toOTelLogValue(errors.New("boom"), 0); got.AsString() != "boom" {
		t.Fatalf("errors render as their message, got %v", got)
	}
	if got := toOTelLogValue(90*time.Second, 0); got.AsString() != "1m30s" {
		t.Fatalf("durations render as strings, got %v", got)
	}

	ts := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	if got := toOTelLogValue(ts, 0); got.AsString() != "2024-05-10T12:00:00Z" {
		t.Fatalf("timestamps render as RFC3339, got %v", got)
	}

	slice := toOTelLogValue([]string{"a", "b"}, 0)
	if slice.Kind() != otellog.KindSlice || len(slice.AsSlice()) != 2 {
		t.Fatalf("unexpected slice value: %v", slice)
	}

	m := toOTelLogValue(map[string]any{"b": 2, "a": 1}, 0)
	if m.Kind() != otellog.KindMap {
		t.Fatalf("unexpected map value: %v", m)
	}
	kvs := m.AsMap()
	if len(kvs) != 2 || kvs[0].Key != "a" || kvs[1].Key != "b" {
		t.Fatalf("map keys must be sorted, got %+v", kvs)
	}

	// Deeply nested structures collapse to strings past the depth cap.
	nested := map[string]any{"l1": map[string]any{"l2": map[string]any{"l3": map[string]any{"l4": 1}}}}
	v := toOTelLogValue(nested, 0)
	if v.Kind() != otellog.KindMap {
		t.Fatalf("unexpected nested value kind: %v", v.Kind())
	}

	if got := toOTelLogValue(nil, 0); !got.Empty() {
		t.Fatalf("nil must map to the empty value, got %v", got)
	}
}

func TestNewUptraceLogMirror_ReturnsUsableFunc(t *testing.T) {
	t.Parallel()

	mirror := newUptraceLogMirror("test")
	if mirror == nil {
		t.Fatalf("expected a mirror func")
	}
	// Global provider defaults to a noop logger; the call must not panic.
	mirror(nil, logging.LevelInfo, "game created", "game_id", "g1")
	mirror(nil, logging.LevelInfo, "http request", "path", "/healthz")
}
