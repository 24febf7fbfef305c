package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLast(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var out map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &out))
	return out
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("chatty"))
}

func TestLoggerCarriesServiceAndContextFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{ServiceName: "store-rating-api", Level: zerolog.InfoLevel, Output: &buf})

	ctx := log.WithFields(context.Background(), map[string]any{"request_id": "req-1"})
	ctx = log.WithField(ctx, "user_id", int64(7))
	log.Info(ctx, "hello")

	entry := decodeLast(t, &buf)
	assert.Equal(t, "store-rating-api", entry["service"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, float64(7), entry["user_id"])
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "info", entry["level"])
}

func TestLoggerErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{ServiceName: "svc", Output: &buf})

	log.Error(context.Background(), "query failed", errors.New("connection refused"))

	entry := decodeLast(t, &buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "connection refused", entry["error"])
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{ServiceName: "svc", Level: zerolog.WarnLevel, Output: &buf})

	log.Info(context.Background(), "dropped")
	log.Debug(context.Background(), "dropped too")
	assert.Zero(t, buf.Len())

	log.Warn(context.Background(), "kept", nil)
	assert.Equal(t, "kept", decodeLast(t, &buf)["message"])
}

func TestNopDiscards(t *testing.T) {
	log := Nop()
	assert.NotPanics(t, func() {
		log.Error(context.Background(), "ignored", errors.New("x"))
	})
}
