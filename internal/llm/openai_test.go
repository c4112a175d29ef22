package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAICompleteReturnsFirstChoice(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4o-mini",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"Title\nBody"}}]}`))
	}))
	defer srv.Close()

	client, err := NewOpenAIClient(Settings{APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: srv.URL + "/v1/"})
	require.NoError(t, err)

	text, err := client.Complete(context.Background(), "write")
	require.NoError(t, err)
	assert.Equal(t, "Title\nBody", text)
	assert.Equal(t, "gpt-4o-mini", body["model"])
}

func TestOpenAICompleteSingleAttempt(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	}))
	defer srv.Close()

	client, err := NewOpenAIClient(Settings{APIKey: "sk-test", Model: "m", BaseURL: srv.URL + "/v1/"})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "write")
	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, int32(1), calls.Load())

	// the client is built once and reused, one request per call
	_, err = client.Complete(context.Background(), "again")
	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, int32(2), calls.Load())
}

func TestNewOpenAIClientRequiresKeyAndModel(t *testing.T) {
	_, err := NewOpenAIClient(Settings{Model: "m"})
	assert.Error(t, err)
	_, err = NewOpenAIClient(Settings{APIKey: "k"})
	assert.Error(t, err)
}
