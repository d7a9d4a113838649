// Package media moves audio between the lookup service, blob storage and
// transcription.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// ErrDownload marks a non-2xx answer when downloading a remote media file.
var ErrDownload = errors.New("download failed")

// Uploader stores a stream and returns a durable URL for it.
type Uploader interface {
	UploadStream(ctx context.Context, r io.Reader) (string, error)
}

// Fetch opens a streaming GET of url. The caller closes the body.
func Fetch(ctx context.Context, client *http.Client, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("%w: status %d", ErrDownload, resp.StatusCode)
	}
	return resp.Body, nil
}

// Mirror copies remote audio into blob storage without buffering it in memory.
type Mirror struct {
	client   *http.Client
	uploader Uploader
	logger   *slog.Logger
}

func NewMirror(uploader Uploader, timeout time.Duration, logger *slog.Logger) *Mirror {
	return &Mirror{
		client:   &http.Client{Timeout: timeout},
		uploader: uploader,
		logger:   logger,
	}
}

// Mirror downloads url and uploads the body, returning the stored URL.
func (m *Mirror) Mirror(ctx context.Context, url string) (string, error) {
	body, err := Fetch(ctx, m.client, url)
	if err != nil {
		return "", err
	}
	defer body.Close()

	stored, err := m.uploader.UploadStream(ctx, body)
	if err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}
	m.logger.Info("audio mirrored", "stored_url", stored)
	return stored, nil
}
