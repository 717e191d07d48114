// Package llm implements the field-extraction collaborator on top of a
// local Ollama server.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/junwei/citegrab/internal/citation"
)

const (
	// DefaultBaseURL is the default Ollama API address.
	DefaultBaseURL = "http://localhost:11434"

	// DefaultModel is the model used when none is configured.
	DefaultModel = "qwen2.5"

	// DefaultTimeout bounds a single generation request.
	DefaultTimeout = 2 * time.Minute

	// requestRate throttles generation requests; extraction is sequential
	// so this mostly guards against tight retry loops.
	requestRate = 2.0
)

// Client is a rate-limited HTTP client for the Ollama generate API.
// It implements the extract.Extractor contract.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	model      string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom API base URL (for tests or remote servers).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithModel sets the model name.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates an Ollama client. OLLAMA_BASE_URL and CITEGRAB_MODEL
// environment variables override the defaults; options override both.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(requestRate), 1),
		baseURL:    DefaultBaseURL,
		model:      DefaultModel,
	}

	if url := os.Getenv("OLLAMA_BASE_URL"); url != "" {
		c.baseURL = url
	}
	if model := os.Getenv("CITEGRAB_MODEL"); model != "" {
		c.model = model
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// generateRequest is the Ollama /api/generate request body.
type generateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

// generateResponse is the subset of the Ollama response we read.
type generateResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

// Extract sends the accumulated text to the model with a prompt for the
// document type and parses the returned field map.
func (c *Client) Extract(ctx context.Context, accumulated string, docType citation.Type) (map[string]string, error) {
	prompt := buildPrompt(accumulated, docType)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return ParseResponse(raw), nil
}

// generate performs one non-streaming generation call.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		// Low temperature keeps field output focused.
		Options: map[string]any{"temperature": 0.1},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling model: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model returned status %d: %s", resp.StatusCode, string(data))
	}

	var gr generateResponse
	if err := json.Unmarshal(data, &gr); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if gr.Error != "" {
		return "", fmt.Errorf("model error: %s", gr.Error)
	}

	return gr.Response, nil
}
