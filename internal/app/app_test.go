package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/MikeSquared-Agency/studynotes/internal/config"
	"github.com/MikeSquared-Agency/studynotes/internal/llm"
	"github.com/MikeSquared-Agency/studynotes/internal/openai"
	"github.com/MikeSquared-Agency/studynotes/internal/rapidapi"
)

func baseConfig() config.Config {
	return config.Config{
		UpstreamTimeout:       time.Second,
		GenerationProvider:    "cohere",
		MaxOutputTokens:       1024,
		CohereAPIKey:          "co-key",
		CohereModel:           "command-r-plus",
		AnthropicModel:        "claude-test",
		OpenAIModel:           "gpt-test",
		RapidAPIKey:           "rapid",
		AudioAPIHost:          "youtube-mp36.p.rapidapi.com",
		TranscribeAPIHost:     "speech-to-text-ai.p.rapidapi.com",
		TranscribeLang:        "en",
		TranscriptionProvider: "rapidapi",
		WhisperModel:          "whisper-1",
		CloudinaryCloudName:   "demo",
		CloudinaryAPIKey:      "123",
		CloudinaryAPISecret:   "secret",
	}
}

func TestNewGenerator_Providers(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"cohere", func(c *config.Config) {}},
		{"anthropic", func(c *config.Config) { c.GenerationProvider = "anthropic"; c.AnthropicAPIKey = "a" }},
		{"openai", func(c *config.Config) { c.GenerationProvider = "openai"; c.OpenAIAPIKey = "o" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			tt.mutate(&cfg)

			gen, err := NewGenerator(context.Background(), cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, ok := gen.(*llm.Instrumented); !ok {
				t.Errorf("expected instrumented generator, got %T", gen)
			}
		})
	}
}

func TestNewGenerator_Errors(t *testing.T) {
	cfg := baseConfig()
	cfg.GenerationProvider = "llama"
	if _, err := NewGenerator(context.Background(), cfg); err == nil {
		t.Error("expected error for unknown provider")
	}

	cfg = baseConfig()
	cfg.GenerationProvider = "gemini"
	if _, err := NewGenerator(context.Background(), cfg); err == nil {
		t.Error("expected error for gemini without key")
	}
}

func TestNewTranscriber(t *testing.T) {
	cfg := baseConfig()
	rapid := rapidapi.NewClient(cfg.RapidAPIKey, cfg.UpstreamTimeout)

	tr, err := NewTranscriber(cfg, rapid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := tr.(*rapidapi.Transcriber); !ok {
		t.Errorf("expected rapidapi transcriber, got %T", tr)
	}

	cfg.TranscriptionProvider = "whisper"
	cfg.OpenAIAPIKey = "o"
	tr, err = NewTranscriber(cfg, rapid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := tr.(*openai.Transcriber); !ok {
		t.Errorf("expected whisper transcriber, got %T", tr)
	}

	cfg.TranscriptionProvider = "local"
	if _, err := NewTranscriber(cfg, rapid); err == nil {
		t.Error("expected error for unknown transcriber")
	}
}

func TestNewProcessor(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	p, err := NewProcessor(context.Background(), baseConfig(), nil, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil {
		t.Fatal("expected processor")
	}
}
