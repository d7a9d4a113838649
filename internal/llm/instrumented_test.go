package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/MikeSquared-Agency/studynotes/internal/metrics"
)

func TestInstrumented_Success(t *testing.T) {
	inner := GeneratorFunc(func(_ context.Context, req Request) (string, error) {
		return "echo: " + req.Prompt, nil
	})
	gen := Instrument(inner, "fake", "success-model")

	before := testutil.ToFloat64(metrics.GenerationRequestsTotal.WithLabelValues("fake", "success-model", "success"))

	text, err := gen.GenerateText(context.Background(), Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "echo: hi" {
		t.Errorf("expected passthrough text, got %q", text)
	}

	after := testutil.ToFloat64(metrics.GenerationRequestsTotal.WithLabelValues("fake", "success-model", "success"))
	if after-before != 1 {
		t.Errorf("expected success counter +1, got %v", after-before)
	}
}

func TestInstrumented_Error(t *testing.T) {
	boom := errors.New("boom")
	inner := GeneratorFunc(func(context.Context, Request) (string, error) {
		return "", boom
	})
	gen := Instrument(inner, "fake", "error-model")

	before := testutil.ToFloat64(metrics.GenerationRequestsTotal.WithLabelValues("fake", "error-model", "error"))

	if _, err := gen.GenerateText(context.Background(), Request{Prompt: "hi"}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}

	after := testutil.ToFloat64(metrics.GenerationRequestsTotal.WithLabelValues("fake", "error-model", "error"))
	if after-before != 1 {
		t.Errorf("expected error counter +1, got %v", after-before)
	}
}
