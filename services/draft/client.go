package draft

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Error taxonomy for the single gateway call. Handlers map these onto HTTP
// statuses; everything not covered collapses into ErrUpstream.
var (
	ErrMissingAPIKey   = errors.New("completion gateway API key is not configured")
	ErrRateLimited     = errors.New("completion gateway rate limit exceeded")
	ErrPaymentRequired = errors.New("completion gateway payment required")
	ErrUpstream        = errors.New("completion gateway request failed")
)

// CompletionClient performs one completion call. No retries anywhere.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// GatewayClient talks to the completion gateway over plain HTTP with
// bearer-token auth.
type GatewayClient struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
}

// NewGatewayClient builds a client from configuration. An empty apiKey is
// allowed here; Complete reports it as a configuration error without touching
// the network.
func NewGatewayClient(baseURL, apiKey, model string, temperature float64, maxTokens int) *GatewayClient {
	return &GatewayClient{
		baseURL:     baseURL,
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		httpClient:  &http.Client{Timeout: 60 * time.Second},
	}
}

type completionRequest struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	System      string  `json:"system"`
	Prompt      string  `json:"prompt"`
}

type completionResponse struct {
	Completion string `json:"completion"`
}

// Complete performs exactly one POST to the gateway. 429 and 402 are passed
// through as distinct errors; any other non-success status or an empty
// completion body becomes a generic upstream failure.
func (c *GatewayClient) Complete(ctx context.Context, system, user string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	payload, err := json.Marshal(completionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		System:      system,
		Prompt:      user,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return "", ErrRateLimited
	case http.StatusPaymentRequired:
		return "", ErrPaymentRequired
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if out.Completion == "" {
		return "", fmt.Errorf("%w: empty completion", ErrUpstream)
	}
	return out.Completion, nil
}
