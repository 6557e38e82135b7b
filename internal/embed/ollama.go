// Package embed provides the Ollama-backed embedding client used by
// the semantic matcher. The model name is configuration; callers only
// see fixed-length vectors.
package embed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "http://localhost:11434"
	defaultModel   = "nomic-embed-text"
)

// ErrUnavailable is returned when the Ollama server cannot be reached
// or does not serve the configured model.
var ErrUnavailable = errors.New("embedding backend unavailable")

// OllamaClient generates embeddings via the Ollama HTTP API.
type OllamaClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures an OllamaClient.
type Option func(*OllamaClient)

// WithBaseURL sets a custom server URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *OllamaClient) {
		c.baseURL = url
	}
}

// WithModel sets the embedding model name.
func WithModel(model string) Option {
	return func(c *OllamaClient) {
		c.model = model
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *OllamaClient) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *OllamaClient) {
		c.log = log.With("component", "ollama")
	}
}

// NewOllamaClient creates an embedding client.
func NewOllamaClient(opts ...Option) *OllamaClient {
	c := &OllamaClient{
		baseURL: defaultBaseURL,
		model:   defaultModel,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init verifies the server is reachable. Embedding models load on
// first use server-side; a warm-up embed here surfaces a missing model
// early instead of on the first real request.
func (c *OllamaClient) Init(ctx context.Context) error {
	start := time.Now()
	if _, err := c.Embed(ctx, "warmup"); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	c.log.Debug("embedding backend ready", "model", c.model, "elapsed", time.Since(start))
	return nil
}

type embeddingRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type embeddingResponse struct {
	Embedding []float32 `json:"embedding"`
}

// Embed maps text to a vector using the configured model.
func (c *OllamaClient) Embed(ctx context.Context, text string) ([]float32, error) {
	body, err := json.Marshal(embeddingRequest{Model: c.model, Prompt: text})
	if err != nil {
		return nil, fmt.Errorf("marshal embedding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create embedding request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embedding request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embedding request: unexpected status %d", resp.StatusCode)
	}

	var er embeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return nil, fmt.Errorf("decode embedding response: %w", err)
	}
	if len(er.Embedding) == 0 {
		return nil, fmt.Errorf("empty embedding for model %s", c.model)
	}
	return er.Embedding, nil
}

// Close releases client resources. The Ollama server owns the model.
func (c *OllamaClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
