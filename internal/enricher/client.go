// Package enricher generates bilingual attraction summaries for
// destinations using a local Ollama model. All failures degrade to
// deterministic fallback text; enrichment never blocks the pipeline's
// output.
package enricher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"
)

// Client calls the Ollama generate API.
type Client struct {
	BaseURL    string
	Model      string
	MaxTokens  int
	HTTPClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a Client for the given Ollama endpoint. rps limits how
// many generation requests per second are issued.
func NewClient(baseURL, model string, maxTokens int, rps float64) *Client {
	return &Client{
		BaseURL:    baseURL,
		Model:      model,
		MaxTokens:  maxTokens,
		HTTPClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	NumPredict  int     `json:"num_predict"`
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

// Generate sends one prompt to Ollama and returns the raw text response.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	reqBody := generateRequest{
		Model:  c.Model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: 0.7,
			TopP:        0.9,
			NumPredict:  c.MaxTokens,
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var genResp generateResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}

	if genResp.Error != "" {
		return "", fmt.Errorf("ollama error: %s", genResp.Error)
	}

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return genResp.Response, nil
}
