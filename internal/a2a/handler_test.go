package a2a

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/BerylCAtieno/persona-writer-agent/internal/logger"
	"github.com/BerylCAtieno/persona-writer-agent/internal/models"
)

type fakePersonas struct {
	samples []string
	err     error
}

func (f *fakePersonas) Analyze(_ context.Context, name, sample string) (*models.Persona, error) {
	f.samples = append(f.samples, sample)
	if f.err != nil {
		return nil, f.err
	}
	return &models.Persona{ID: uuid.New(), Name: "Ada", Data: datatypes.JSONMap{"tone": "dry"}}, nil
}

type fakePosts struct {
	personaID uuid.UUID
	topic     string
	err       error
}

func (f *fakePosts) Generate(_ context.Context, personaID uuid.UUID, topic string) (*models.BlogPost, error) {
	f.personaID, f.topic = personaID, topic
	if f.err != nil {
		return nil, f.err
	}
	title := "Steam"
	return &models.BlogPost{ID: uuid.New(), PersonaID: personaID, Title: &title, Content: "Engines hum."}, nil
}

func newRouter(personas *fakePersonas, posts *fakePosts) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(personas, posts, logger.Nop())
	r := gin.New()
	r.GET("/.well-known/agent.json", h.ServeAgentCard)
	r.POST("/a2a/persona", h.HandlePersona)
	return r
}

func post(t *testing.T, r *gin.Engine, body string) JSONRPCResponse {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/a2a/persona", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp JSONRPCResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func task(t *testing.T, resp JSONRPCResponse) TaskResult {
	t.Helper()
	require.Nil(t, resp.Error)
	raw, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	var result TaskResult
	require.NoError(t, json.Unmarshal(raw, &result))
	return result
}

func TestHandlePersonaAnalyzesTextParts(t *testing.T) {
	personas := &fakePersonas{}
	r := newRouter(personas, &fakePosts{})

	resp := post(t, r, `{"jsonrpc":"2.0","id":"req-1","method":"message/send","params":{"message":{"kind":"message","role":"user","parts":[{"kind":"text","text":"First paragraph."},{"kind":"text","text":"Second paragraph."}]}}}`)

	assert.Equal(t, "req-1", resp.ID)
	result := task(t, resp)
	assert.Equal(t, "req-1", result.ID)
	assert.Equal(t, StateCompleted, result.Status.State)
	require.Len(t, result.Artifacts, 1)
	assert.Equal(t, "Persona", result.Artifacts[0].Name)
	require.Equal(t, []string{"First paragraph.\n\nSecond paragraph."}, personas.samples)
}

func TestHandlePersonaGeneratesFromDataPart(t *testing.T) {
	posts := &fakePosts{}
	personas := &fakePersonas{}
	r := newRouter(personas, posts)
	id := uuid.New()

	resp := post(t, r, `{"jsonrpc":"2.0","id":7,"method":"agent/task","params":{"message":{"kind":"message","role":"user","parts":[{"kind":"data","data":{"persona_id":"`+id.String()+`","prompt":"steam engines"}}]}}}`)

	// numeric ids are echoed back as numbers
	assert.Equal(t, float64(7), resp.ID)
	result := task(t, resp)
	assert.Equal(t, "7", result.ID)
	assert.Equal(t, StateCompleted, result.Status.State)
	assert.Equal(t, id, posts.personaID)
	assert.Equal(t, "steam engines", posts.topic)
	assert.Empty(t, personas.samples)
	require.Len(t, result.Artifacts, 1)
	assert.Equal(t, "# Steam\n\nEngines hum.", result.Artifacts[0].Parts[0].Text)
}

func TestHandlePersonaHistoryDataPart(t *testing.T) {
	personas := &fakePersonas{}
	r := newRouter(personas, &fakePosts{})

	resp := post(t, r, `{"jsonrpc":"2.0","id":"h","method":"message/send","params":{"message":{"kind":"message","role":"user","parts":[{"kind":"data","data":[{"kind":"text","text":"<p>older</p>"},{"kind":"text","text":"<p>latest sample</p>"}]}]}}}`)

	assert.Equal(t, StateCompleted, task(t, resp).Status.State)
	assert.Equal(t, []string{"latest sample"}, personas.samples)
}

func TestHandlePersonaFailuresBecomeTasks(t *testing.T) {
	personas := &fakePersonas{err: errors.New("llm down")}
	posts := &fakePosts{err: errors.New("failed to generate blog post")}
	r := newRouter(personas, posts)

	result := task(t, post(t, r, `{"jsonrpc":"2.0","id":"a","method":"message/send","params":{"message":{"parts":[{"kind":"text","text":"sample"}]}}}`))
	assert.Equal(t, StateFailed, result.Status.State)
	assert.Contains(t, result.Status.Message.Parts[0].Text, "llm down")
	assert.Empty(t, result.Artifacts)

	result = task(t, post(t, r, `{"jsonrpc":"2.0","id":"b","method":"message/send","params":{"message":{"parts":[{"kind":"data","data":{"persona_id":"not-a-uuid","prompt":"x"}}]}}}`))
	assert.Equal(t, StateFailed, result.Status.State)

	result = task(t, post(t, r, `{"jsonrpc":"2.0","id":"c","method":"message/send","params":{"message":{"parts":[{"kind":"text","text":"   "}]}}}`))
	assert.Equal(t, StateInputRequired, result.Status.State)
}

func TestHandlePersonaProtocolErrors(t *testing.T) {
	r := newRouter(&fakePersonas{}, &fakePosts{})

	cases := []struct {
		name string
		body string
		code int
	}{
		{"parse error", `{not json`, CodeParseError},
		{"bad version", `{"jsonrpc":"1.0","id":"x","method":"message/send","params":{}}`, CodeInvalidRequest},
		{"unknown method", `{"jsonrpc":"2.0","id":"x","method":"tasks/cancel","params":{}}`, CodeMethodNotFound},
		{"bad params", `{"jsonrpc":"2.0","id":"x","method":"message/send","params":{"message":"nope"}}`, CodeInvalidParams},
		{"no parts", `{"jsonrpc":"2.0","id":"x","method":"message/send","params":{"message":{"parts":[]}}}`, CodeInvalidParams},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := post(t, r, tc.body)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.code, resp.Error.Code)
			assert.Nil(t, resp.Result)
		})
	}
}

func TestHandlePersonaDirectMessage(t *testing.T) {
	personas := &fakePersonas{}
	r := newRouter(personas, &fakePosts{})

	resp := post(t, r, `{"message":{"kind":"message","role":"user","parts":[{"kind":"text","text":"bare sample"}]}}`)

	result := task(t, resp)
	assert.Equal(t, "direct-message", result.ID)
	assert.Equal(t, []string{"bare sample"}, personas.samples)
}

func TestServeAgentCard(t *testing.T) {
	r := newRouter(&fakePersonas{}, &fakePosts{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/.well-known/agent.json", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var card map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
	for _, field := range []string{"name", "description", "version", "capabilities", "endpoints"} {
		assert.Contains(t, card, field)
	}
}
