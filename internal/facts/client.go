// Package facts fetches a short fun-fact string from an external text
// service. The service is a convenience collaborator: any failure degrades to
// a fixed fallback string and the game never waits on it beyond the request
// timeout.
package facts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Fallback is shown whenever the service is unconfigured or unreachable.
const Fallback = "Snakes smell with their tongues."

// maxBodyBytes bounds the response we are willing to read for one short fact.
const maxBodyBytes = 16 << 10

// Client calls the fact service.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a client for the given endpoint. An empty endpoint is
// valid and makes every fetch return the fallback immediately.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

type factRequest struct {
	Prompt string `json:"prompt"`
}

type factResponse struct {
	Text string `json:"text"`
}

// Fetch asks the service for a fact. The error return is for callers that
// want to log; gameplay code should use FunFact instead.
func (c *Client) Fetch(ctx context.Context, prompt string) (string, error) {
	if c.endpoint == "" {
		return "", fmt.Errorf("facts: no endpoint configured")
	}

	body, err := json.Marshal(factRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("facts: cannot encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("facts: cannot build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("facts: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("facts: unexpected status %d", resp.StatusCode)
	}

	var out factResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&out); err != nil {
		return "", fmt.Errorf("facts: cannot decode response: %w", err)
	}

	text := strings.TrimSpace(out.Text)
	if text == "" {
		return "", fmt.Errorf("facts: empty response")
	}
	return text, nil
}

// FunFact returns a fact or the fallback, never an error.
func (c *Client) FunFact(ctx context.Context, prompt string) string {
	text, err := c.Fetch(ctx, prompt)
	if err != nil {
		return Fallback
	}
	return text
}
