package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLogger_EmitsRoleField(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf).With().Str("role", "test").Logger()}

	l.Info().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["role"] != "test" {
		t.Errorf("expected role=test, got %v", entry["role"])
	}
	if entry["message"] != "hello" {
		t.Errorf("expected message=hello, got %v", entry["message"])
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	// must not panic and must not write anywhere
	l.Error().Msg("discarded")
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	parent := zerolog.New(&buf)
	ctx := parent.WithContext(context.Background())

	l := FromContext(ctx)
	l.Info().Msg("via context")

	if !bytes.Contains(buf.Bytes(), []byte("via context")) {
		t.Error("expected context logger to write to the parent's output")
	}
}

func TestFromRequest_UsesRequestContext(t *testing.T) {
	var buf bytes.Buffer
	parent := zerolog.New(&buf)

	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(parent.WithContext(r.Context()))

	l := FromRequest(r)
	l.Info().Msg("via request")

	if !bytes.Contains(buf.Bytes(), []byte("via request")) {
		t.Error("expected request logger to write to the parent's output")
	}
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "parent").Logger()}

	child := parent.GetChildLogger()
	child.Info().Msg("child entry")

	if !bytes.Contains(buf.Bytes(), []byte(`"role":"parent"`)) {
		t.Error("expected child logger to inherit the role field")
	}
}
