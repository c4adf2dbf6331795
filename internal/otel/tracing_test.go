package otel

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"ocrapi/internal/logging"
)

func TestSampler(t *testing.T) {
	tests := []struct {
		name, arg string
		want      string
	}{
		{"always_on", "", sdktrace.AlwaysSample().Description()},
		{"always_off", "", sdktrace.NeverSample().Description()},
		{"traceidratio", "0.5", sdktrace.TraceIDRatioBased(0.5).Description()},
		{"traceidratio", "garbage", sdktrace.TraceIDRatioBased(1.0).Description()},
		{"parentbased_always_off", "", sdktrace.ParentBased(sdktrace.NeverSample()).Description()},
		{"parentbased_traceidratio", "0.25", sdktrace.ParentBased(sdktrace.TraceIDRatioBased(0.25)).Description()},
		{"unknown", "", sdktrace.ParentBased(sdktrace.AlwaysSample()).Description()},
	}

	for _, tt := range tests {
		t.Run(tt.name+"_"+tt.arg, func(t *testing.T) {
			assert.Equal(t, tt.want, Sampler(tt.name, tt.arg).Description())
		})
	}
}

func TestInit_Disabled(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "true")

	var buf bytes.Buffer
	shutdown, err := Init(context.Background(), logging.New(&buf, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "tracing_configured", entry["msg"])
	assert.Equal(t, false, entry["tracing_enabled"])
}

func TestInit_UnsupportedProtocol(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "false")
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "carrier-pigeon")

	var buf bytes.Buffer
	shutdown, err := Init(context.Background(), logging.New(&buf, time.UTC))
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "tracing_init_failed", entry["msg"])
	assert.Equal(t, "error", entry["level"])
	assert.Contains(t, entry["error"], "carrier-pigeon")
}
