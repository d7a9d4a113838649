// Package app wires configuration into the concrete providers used by the
// server and the CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MikeSquared-Agency/studynotes/internal/anthropic"
	"github.com/MikeSquared-Agency/studynotes/internal/cloudinary"
	"github.com/MikeSquared-Agency/studynotes/internal/cohere"
	"github.com/MikeSquared-Agency/studynotes/internal/config"
	"github.com/MikeSquared-Agency/studynotes/internal/extractor"
	"github.com/MikeSquared-Agency/studynotes/internal/gemini"
	"github.com/MikeSquared-Agency/studynotes/internal/llm"
	"github.com/MikeSquared-Agency/studynotes/internal/media"
	"github.com/MikeSquared-Agency/studynotes/internal/openai"
	"github.com/MikeSquared-Agency/studynotes/internal/processor"
	"github.com/MikeSquared-Agency/studynotes/internal/rapidapi"
)

// NewGenerator returns the provider named by cfg.GenerationProvider, wrapped
// with request metrics.
func NewGenerator(ctx context.Context, cfg config.Config) (llm.Generator, error) {
	if err := cfg.ValidateGeneration(); err != nil {
		return nil, err
	}

	switch cfg.GenerationProvider {
	case "cohere":
		c := cohere.NewClient(cfg.CohereAPIKey, cfg.CohereModel, cfg.UpstreamTimeout)
		return llm.Instrument(c, "cohere", cfg.CohereModel), nil
	case "anthropic":
		c := anthropic.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.UpstreamTimeout)
		return llm.Instrument(c, "anthropic", cfg.AnthropicModel), nil
	case "openai":
		g := openai.NewGenerator(openai.Config{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
			Timeout: cfg.UpstreamTimeout,
		})
		return llm.Instrument(g, "openai", cfg.OpenAIModel), nil
	case "gemini":
		g, err := gemini.NewGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, "")
		if err != nil {
			return nil, err
		}
		return llm.Instrument(g, "gemini", cfg.GeminiModel), nil
	}
	return nil, fmt.Errorf("unknown GENERATION_PROVIDER %q", cfg.GenerationProvider)
}

// NewTranscriber returns the speech-to-text backend named by
// cfg.TranscriptionProvider.
func NewTranscriber(cfg config.Config, rapid *rapidapi.Client) (processor.Transcriber, error) {
	switch cfg.TranscriptionProvider {
	case "rapidapi":
		return rapidapi.NewTranscriber(rapid, cfg.TranscribeAPIHost, cfg.TranscribeLang), nil
	case "whisper":
		return openai.NewTranscriber(openai.Config{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.WhisperModel,
			Timeout: cfg.UpstreamTimeout,
		}, cfg.TranscribeLang), nil
	}
	return nil, fmt.Errorf("unknown TRANSCRIPTION_PROVIDER %q", cfg.TranscriptionProvider)
}

// NewProcessor builds the full request pipeline. cfg must already have passed
// Validate. events may be nil.
func NewProcessor(ctx context.Context, cfg config.Config, events processor.Publisher, logger *slog.Logger) (*processor.Processor, error) {
	gen, err := NewGenerator(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	uploader, err := cloudinary.New(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
	if err != nil {
		return nil, err
	}

	rapid := rapidapi.NewClient(cfg.RapidAPIKey, cfg.UpstreamTimeout)
	transcriber, err := NewTranscriber(cfg, rapid)
	if err != nil {
		return nil, err
	}

	return processor.New(
		rapidapi.NewAudioSource(rapid, cfg.AudioAPIHost),
		media.NewMirror(uploader, cfg.UpstreamTimeout, logger),
		transcriber,
		extractor.New(gen, cfg.MaxOutputTokens, logger),
		events,
		logger,
	), nil
}
