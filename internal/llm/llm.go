// Package llm defines the text-generation capability shared by every model
// provider.
package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when a provider answers without any text.
var ErrEmptyResponse = errors.New("empty response content")

// Request is a single-turn generation request.
type Request struct {
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Generator sends a prompt to a remote model and returns its raw text.
type Generator interface {
	GenerateText(ctx context.Context, req Request) (string, error)
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(ctx context.Context, req Request) (string, error)

func (f GeneratorFunc) GenerateText(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
