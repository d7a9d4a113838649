package rapidapi

import (
	"context"
	"net/http"
	"net/url"
)

// Transcriber calls the speech-to-text-ai service with a hosted audio URL.
type Transcriber struct {
	client *Client
	host   string
	lang   string
}

func NewTranscriber(c *Client, host, lang string) *Transcriber {
	return &Transcriber{client: c, host: host, lang: lang}
}

func (t *Transcriber) Transcribe(ctx context.Context, audioURL string) (string, error) {
	q := url.Values{}
	q.Set("url", audioURL)
	q.Set("lang", t.lang)
	q.Set("task", "transcribe")

	var out struct {
		Text string `json:"text"`
	}
	if err := t.client.do(ctx, http.MethodPost, t.host, "/transcribe?"+q.Encode(), "application/x-www-form-urlencoded", &out); err != nil {
		return "", err
	}
	return out.Text, nil
}
