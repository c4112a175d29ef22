package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaCompleteSendsNonStreamingRequest(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"llama3.2","response":"  hello there\n","done":true}`))
	}))
	defer srv.Close()

	client, err := NewOllamaClient(OllamaConfig{Endpoint: srv.URL})
	require.NoError(t, err)

	text, err := client.Complete(context.Background(), "say hi")
	require.NoError(t, err)
	assert.Equal(t, "  hello there\n", text)
	assert.Equal(t, generateRequest{Model: DefaultOllamaModel, Prompt: "say hi", Stream: false}, got)
}

func TestOllamaCompleteFailures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"status": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not found", http.StatusNotFound)
		},
		"envelope": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>gateway</html>`))
		},
	}
	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(handler)
			defer srv.Close()

			client, err := NewOllamaClient(OllamaConfig{Endpoint: srv.URL, Model: "m"})
			require.NoError(t, err)

			text, err := client.Complete(context.Background(), "prompt")
			assert.ErrorIs(t, err, ErrTransport)
			assert.Empty(t, text)
		})
	}
}

func TestOllamaCompleteUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	client, err := NewOllamaClient(OllamaConfig{Endpoint: endpoint})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrTransport)
}

func TestNewOllamaClientRequiresEndpoint(t *testing.T) {
	_, err := NewOllamaClient(OllamaConfig{})
	assert.Error(t, err)
}

func TestNewSelectsProvider(t *testing.T) {
	client, err := New(context.Background(), Settings{Endpoint: "http://localhost:11434/api/generate"})
	require.NoError(t, err)
	assert.IsType(t, &OllamaClient{}, client)

	client, err = New(context.Background(), Settings{Provider: "openai", APIKey: "k", Model: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, client)

	_, err = New(context.Background(), Settings{Provider: "openai", Model: "gpt-4o-mini"})
	assert.Error(t, err)

	_, err = New(context.Background(), Settings{Provider: "gemini"})
	assert.Error(t, err)

	_, err = New(context.Background(), Settings{Provider: "bard"})
	assert.EqualError(t, err, "llm provider bard not supported")
}
