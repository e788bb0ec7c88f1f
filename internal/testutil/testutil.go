package testutil

import (
	"encoding/json"
	"sync"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/totegamma/unifedi/core"
)

func SetupMockTraceProvider() *tracetest.InMemoryExporter {

	spanChecker := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(spanChecker))
	otel.SetTracerProvider(provider)

	return spanChecker
}

// SpanNames returns the names of every exported span, in export order.
func SpanNames(exporter *tracetest.InMemoryExporter) []string {
	spans := exporter.GetSpans()
	names := make([]string, 0, len(spans))
	for _, span := range spans {
		names = append(names, span.Name)
	}
	return names
}

// RecordingSink collects decode warnings.
type RecordingSink struct {
	mu       sync.Mutex
	warnings []core.Warning
}

func (s *RecordingSink) Warn(w core.Warning) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warnings = append(s.warnings, w)
}

func (s *RecordingSink) Warnings() []core.Warning {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Warning(nil), s.warnings...)
}

// SetField returns the JSON object raw with key set to value.
func SetField(t *testing.T, raw string, key string, value any) []byte {
	t.Helper()

	obj := map[string]json.RawMessage{}
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		t.Fatalf("fixture is not a JSON object: %v", err)
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("failed to encode %s: %v", key, err)
	}
	obj[key] = encoded

	out, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("failed to re-encode fixture: %v", err)
	}
	return out
}

// DropField returns the JSON object raw without key.
func DropField(t *testing.T, raw string, key string) []byte {
	t.Helper()

	obj := map[string]json.RawMessage{}
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		t.Fatalf("fixture is not a JSON object: %v", err)
	}
	delete(obj, key)

	out, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("failed to re-encode fixture: %v", err)
	}
	return out
}
