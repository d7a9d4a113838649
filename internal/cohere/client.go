package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MikeSquared-Agency/studynotes/internal/llm"
)

const defaultAPIURL = "https://api.cohere.ai/v1/chat"

// Client talks to the Cohere v1 chat endpoint.
type Client struct {
	apiKey string
	model  string
	apiURL string
	client *http.Client
}

func NewClient(apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		apiKey: apiKey,
		model:  model,
		apiURL: defaultAPIURL,
		client: &http.Client{Timeout: timeout},
	}
}

// WithBaseURL points the client at a different chat endpoint.
func (c *Client) WithBaseURL(url string) *Client {
	c.apiURL = url
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

type request struct {
	Model       string        `json:"model"`
	Message     string        `json:"message"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	ChatHistory []chatMessage `json:"chat_history"`
}

// response only reads text; the legacy generation field is not part of the chat contract.
type response struct {
	Text         string `json:"text"`
	FinishReason string `json:"finish_reason"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (c *Client) GenerateText(ctx context.Context, req llm.Request) (string, error) {
	body, err := json.Marshal(request{
		Model:       c.model,
		Message:     req.Prompt,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		ChatHistory: []chatMessage{},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("api call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Message != "" {
			return "", fmt.Errorf("cohere api error %d: %s", resp.StatusCode, errResp.Message)
		}
		return "", fmt.Errorf("cohere api error %d: %s", resp.StatusCode, string(respBody))
	}

	var apiResp response
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if apiResp.Text == "" {
		return "", llm.ErrEmptyResponse
	}
	return apiResp.Text, nil
}
