package llm

import (
	"context"
	"time"

	"github.com/MikeSquared-Agency/studynotes/internal/metrics"
)

// Instrumented records request counts and latency for a provider.
type Instrumented struct {
	next     Generator
	provider string
	model    string
}

func Instrument(next Generator, provider, model string) *Instrumented {
	return &Instrumented{next: next, provider: provider, model: model}
}

func (i *Instrumented) GenerateText(ctx context.Context, req Request) (string, error) {
	start := time.Now()
	text, err := i.next.GenerateText(ctx, req)
	metrics.GenerationRequestDuration.WithLabelValues(i.provider, i.model).Observe(time.Since(start).Seconds())

	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.GenerationRequestsTotal.WithLabelValues(i.provider, i.model, status).Inc()
	return text, err
}
