package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestWithAddsContextFields(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	ctx := WithChatID(context.Background(), 777)
	ctx = WithTraceID(ctx, "t-123")

	With(ctx, &base).Info().Msg("handled")

	out := buf.String()
	if !strings.Contains(out, `"chat_id":777`) {
		t.Errorf("chat_id missing from %q", out)
	}
	if !strings.Contains(out, `"trace_id":"t-123"`) {
		t.Errorf("trace_id missing from %q", out)
	}
}

func TestWithEmptyContext(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	With(context.Background(), &base).Info().Msg("handled")

	out := buf.String()
	if strings.Contains(out, "chat_id") || strings.Contains(out, "trace_id") {
		t.Errorf("unexpected context fields in %q", out)
	}
}
