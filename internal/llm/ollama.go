package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

const (
	DefaultOllamaEndpoint = "http://localhost:11434/api/generate"
	DefaultOllamaModel    = "llama3.2"

	maxErrorBody = 512
)

type OllamaConfig struct {
	Endpoint string
	Model    string
	// HTTPClient defaults to a client with no timeout of its own.
	HTTPClient *http.Client
}

// OllamaClient posts prompts to an Ollama-style /api/generate endpoint.
type OllamaClient struct {
	endpoint string
	model    string
	http     *http.Client
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func NewOllamaClient(cfg OllamaConfig) (*OllamaClient, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("ollama endpoint is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultOllamaModel
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &OllamaClient{endpoint: cfg.Endpoint, model: cfg.Model, http: httpClient}, nil
}

func (o *OllamaClient) Endpoint() string { return o.endpoint }

// Complete sends prompt in non-streaming mode and returns the envelope's
// response field verbatim.
func (o *OllamaClient) Complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{Model: o.model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", transportErr("encode request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", transportErr("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.http.Do(req)
	if err != nil {
		return "", transportErr("post %s: %v", o.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", transportErr("status %d: %s", resp.StatusCode, string(body))
	}

	var envelope generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", transportErr("decode envelope: %v", err)
	}
	return envelope.Response, nil
}
