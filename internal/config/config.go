package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            int
	LogLevel        string
	UpstreamTimeout time.Duration

	GenerationProvider string
	MaxOutputTokens    int
	CohereAPIKey       string
	CohereModel        string
	AnthropicAPIKey    string
	AnthropicModel     string
	OpenAIAPIKey       string
	OpenAIBaseURL      string
	OpenAIModel        string
	GeminiAPIKey       string
	GeminiModel        string

	RapidAPIKey           string
	AudioAPIHost          string
	TranscribeAPIHost     string
	TranscribeLang        string
	TranscriptionProvider string
	WhisperModel          string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	NatsURL   string
	NatsToken string
}

func Load() Config {
	return Config{
		Port:            envInt("PORT", 5000),
		LogLevel:        envStr("LOG_LEVEL", "info"),
		UpstreamTimeout: envDuration("UPSTREAM_TIMEOUT", 120*time.Second),

		GenerationProvider: envStr("GENERATION_PROVIDER", "cohere"),
		// 0 leaves the output limit to the provider.
		MaxOutputTokens:    envInt("MAX_OUTPUT_TOKENS", 0),
		CohereAPIKey:       envStr("COHERE_API_KEY", ""),
		CohereModel:        envStr("COHERE_MODEL", "command-r-plus"),
		AnthropicAPIKey:    envStr("ANTHROPIC_API_KEY", ""),
		AnthropicModel:     envStr("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
		OpenAIAPIKey:       envStr("OPENAI_API_KEY", ""),
		OpenAIBaseURL:      envStr("OPENAI_BASE_URL", ""),
		OpenAIModel:        envStr("OPENAI_MODEL", "gpt-4o-mini"),
		// GEMIN_API_KEY is the spelling older deployments used.
		GeminiAPIKey: envStr("GEMINI_API_KEY", envStr("GEMIN_API_KEY", "")),
		GeminiModel:  envStr("GEMINI_MODEL", "gemini-2.5-pro"),

		RapidAPIKey:           envStr("RAPIDAPI_KEY", ""),
		AudioAPIHost:          envStr("AUDIO_API_HOST", "youtube-mp36.p.rapidapi.com"),
		TranscribeAPIHost:     envStr("TRANSCRIBE_API_HOST", "speech-to-text-ai.p.rapidapi.com"),
		TranscribeLang:        envStr("TRANSCRIBE_LANG", "en"),
		TranscriptionProvider: envStr("TRANSCRIPTION_PROVIDER", "rapidapi"),
		WhisperModel:          envStr("WHISPER_MODEL", "whisper-1"),

		CloudinaryCloudName: envStr("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    envStr("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: envStr("CLOUDINARY_API_SECRET", ""),
		CloudinaryFolder:    envStr("CLOUDINARY_FOLDER", ""),

		NatsURL:   envStr("NATS_URL", ""),
		NatsToken: envStr("NATS_TOKEN", ""),
	}
}

// ValidateGeneration checks that the selected generation provider has credentials.
func (c Config) ValidateGeneration() error {
	switch c.GenerationProvider {
	case "cohere":
		if c.CohereAPIKey == "" {
			return errors.New("COHERE_API_KEY is required for the cohere provider")
		}
	case "anthropic":
		if c.AnthropicAPIKey == "" {
			return errors.New("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.GeminiAPIKey == "" {
			return errors.New("GEMINI_API_KEY is required for the gemini provider")
		}
	default:
		return fmt.Errorf("unknown GENERATION_PROVIDER %q", c.GenerationProvider)
	}
	return nil
}

// Validate checks everything the HTTP service needs: generation, audio lookup,
// storage and transcription.
func (c Config) Validate() error {
	if err := c.ValidateGeneration(); err != nil {
		return err
	}
	if c.RapidAPIKey == "" {
		return errors.New("RAPIDAPI_KEY is required")
	}
	if c.CloudinaryCloudName == "" || c.CloudinaryAPIKey == "" || c.CloudinaryAPISecret == "" {
		return errors.New("CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET are required")
	}
	switch c.TranscriptionProvider {
	case "rapidapi":
	case "whisper":
		if c.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY is required for the whisper transcriber")
		}
	default:
		return fmt.Errorf("unknown TRANSCRIPTION_PROVIDER %q", c.TranscriptionProvider)
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
