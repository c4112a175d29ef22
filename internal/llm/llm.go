// Package llm talks to text-generation endpoints. Every provider sends one
// prompt, waits for the full (non-streamed) answer and returns its text.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrTransport wraps every failure to obtain generated text: unreachable
// endpoint, non-success status or an envelope that cannot be decoded.
var ErrTransport = errors.New("llm transport failure")

// Client abstracts the generation endpoint so it can be replaced in tests.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

const (
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Settings selects and configures a provider.
type Settings struct {
	Provider string
	Endpoint string
	Model    string
	APIKey   string
	BaseURL  string
}

// New builds the client for s.Provider. Callers that get a *GeminiClient
// back own its Close.
func New(ctx context.Context, s Settings) (Client, error) {
	var (
		client Client
		err    error
	)
	switch strings.ToLower(s.Provider) {
	case "", ProviderOllama:
		client, err = NewOllamaClient(OllamaConfig{Endpoint: s.Endpoint, Model: s.Model})
	case ProviderGemini:
		client, err = NewGeminiClient(ctx, s.APIKey, s.Model)
	case ProviderOpenAI:
		client, err = NewOpenAIClient(s)
	default:
		return nil, fmt.Errorf("llm provider %s not supported", s.Provider)
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}

func transportErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrTransport, fmt.Sprintf(format, args...))
}
