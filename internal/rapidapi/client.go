// Package rapidapi wraps the RapidAPI-hosted YouTube MP3 and speech-to-text services.
package rapidapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrStatus marks a non-2xx answer from a RapidAPI host.
var ErrStatus = errors.New("unexpected status")

type Client struct {
	apiKey string
	client *http.Client
	// scheme is overridden in tests to talk to plain-HTTP servers.
	scheme string
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
		scheme: "https",
	}
}

// do sends a request to host+pathAndQuery with the RapidAPI auth headers and
// decodes the JSON body into out.
func (c *Client) do(ctx context.Context, method, host, pathAndQuery, contentType string, out any) error {
	url := fmt.Sprintf("%s://%s%s", c.scheme, host, pathAndQuery)
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", host)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", host, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s: %w %d: %s", host, ErrStatus, resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
