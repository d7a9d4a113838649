package openai

import (
	"context"
	"fmt"
	"net/http"
	"path"

	openai "github.com/sashabaranov/go-openai"

	"github.com/MikeSquared-Agency/studynotes/internal/media"
)

// Transcriber sends hosted audio to an OpenAI-compatible Whisper endpoint.
type Transcriber struct {
	client   *openai.Client
	download *http.Client
	model    string
	language string
}

func NewTranscriber(cfg Config, language string) *Transcriber {
	return &Transcriber{
		client:   newClient(cfg),
		download: &http.Client{Timeout: cfg.Timeout},
		model:    cfg.Model,
		language: language,
	}
}

// Transcribe streams the audio at url into the transcription endpoint.
func (t *Transcriber) Transcribe(ctx context.Context, url string) (string, error) {
	body, err := media.Fetch(ctx, t.download, url)
	if err != nil {
		return "", err
	}
	defer body.Close()

	name := path.Base(url)
	if name == "" || name == "." || name == "/" {
		name = "audio.mp3"
	}

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		Reader:   body,
		FilePath: name,
		Language: t.language,
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", fmt.Errorf("transcription: %w", parseAPIError(err))
	}
	return resp.Text, nil
}
