// Package a2a serves the persona writer as an A2A agent over JSON-RPC 2.0.
package a2a

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BerylCAtieno/persona-writer-agent/internal/agent"
	"github.com/BerylCAtieno/persona-writer-agent/internal/logger"
	"github.com/BerylCAtieno/persona-writer-agent/internal/models"
)

type PersonaAnalyzer interface {
	Analyze(ctx context.Context, name, sample string) (*models.Persona, error)
}

type PostGenerator interface {
	Generate(ctx context.Context, personaID uuid.UUID, topic string) (*models.BlogPost, error)
}

type Handler struct {
	personas PersonaAnalyzer
	posts    PostGenerator
	log      *logger.Logger
}

func NewHandler(personas PersonaAnalyzer, posts PostGenerator, log *logger.Logger) *Handler {
	return &Handler{
		personas: personas,
		posts:    posts,
		log:      log.With("handler", "A2A"),
	}
}

// generateRequest is the data part that asks for a blog post instead of an
// analysis.
type generateRequest struct {
	PersonaID string `json:"persona_id"`
	Prompt    string `json:"prompt"`
}

// HandlePersona processes A2A messages
func (h *Handler) HandlePersona(c *gin.Context) {
	bodyBytes, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.log.Error("Failed to read request body", "error", err)
		h.sendErrorResponse(c, nil, "Failed to read request body", CodeParseError)
		return
	}
	h.log.Debug("A2A request", "bytes", len(bodyBytes))

	var rpcReq JSONRPCRequest
	if err := json.Unmarshal(bodyBytes, &rpcReq); err != nil {
		h.log.Warn("Failed to decode request as JSON-RPC", "error", err)
		h.sendErrorResponse(c, nil, "Parse error", CodeParseError)
		return
	}

	// Some clients post the bare message params without the JSON-RPC wrapper.
	if rpcReq.JSONRPC == "" && rpcReq.Method == "" {
		h.handleDirectMessage(c, bodyBytes)
		return
	}

	if rpcReq.JSONRPC != "2.0" {
		h.log.Warn("Invalid JSON-RPC version", "version", rpcReq.JSONRPC)
		h.sendErrorResponse(c, rpcReq.ID, "Invalid JSON-RPC version", CodeInvalidRequest)
		return
	}

	switch rpcReq.Method {
	case "message/send", "agent/task":
		h.handleTask(c, rpcReq)
	default:
		h.log.Warn("Unknown method", "method", rpcReq.Method)
		h.sendErrorResponse(c, rpcReq.ID, fmt.Sprintf("Method not found: %s", rpcReq.Method), CodeMethodNotFound)
	}
}

// handleDirectMessage handles a message posted without the JSON-RPC wrapper.
func (h *Handler) handleDirectMessage(c *gin.Context, bodyBytes []byte) {
	var msgParams MessageParams
	if err := json.Unmarshal(bodyBytes, &msgParams); err != nil || len(msgParams.Message.Parts) == 0 {
		h.log.Warn("Failed to parse as direct message", "error", err)
		h.sendErrorResponse(c, nil, "Invalid request format", CodeInvalidRequest)
		return
	}

	taskID := taskIDFor(msgParams.Message, "direct-message")
	result := h.run(c.Request.Context(), taskID, msgParams.Message)
	h.sendSuccessResponse(c, taskID, result)
}

func (h *Handler) handleTask(c *gin.Context, rpcReq JSONRPCRequest) {
	paramsJSON, err := json.Marshal(rpcReq.Params)
	if err != nil {
		h.sendErrorResponse(c, rpcReq.ID, "Failed to parse parameters", CodeInvalidParams)
		return
	}

	var msgParams MessageParams
	if err := json.Unmarshal(paramsJSON, &msgParams); err != nil {
		h.log.Warn("Failed to unmarshal params", "error", err)
		h.sendErrorResponse(c, rpcReq.ID, "Invalid parameters", CodeInvalidParams)
		return
	}
	if len(msgParams.Message.Parts) == 0 {
		h.sendErrorResponse(c, rpcReq.ID, "Invalid parameters: message has no parts", CodeInvalidParams)
		return
	}

	taskID := taskIDFor(msgParams.Message, rpcID(rpcReq.ID))
	result := h.run(c.Request.Context(), taskID, msgParams.Message)
	h.sendSuccessResponse(c, rpcReq.ID, result)
}

// run dispatches a message: a generate data part writes a post, anything
// else is analyzed as a writing sample.
func (h *Handler) run(ctx context.Context, taskID string, msg A2AMessage) TaskResult {
	if req, ok := extractGenerateRequest(msg); ok {
		return h.generate(ctx, taskID, req)
	}

	sample := h.extractSample(msg)
	if sample == "" {
		h.log.Warn("No writing sample found in message", "task_id", taskID)
		return createTaskResult(taskID, StateInputRequired,
			"Please send a writing sample to analyze, or a data part with persona_id and prompt to generate a post.", nil)
	}

	persona, err := h.personas.Analyze(ctx, "", sample)
	if err != nil {
		h.log.Error("Failed to analyze writing sample", "task_id", taskID, "error", err)
		return createTaskResult(taskID, StateFailed, fmt.Sprintf("Failed to analyze writing sample: %v", err), nil)
	}

	h.log.Info("Persona created", "task_id", taskID, "persona_id", persona.ID)
	text := fmt.Sprintf("Created persona %q (%s) with %d attributes.", persona.Name, persona.ID, len(persona.Data))
	return createTaskResult(taskID, StateCompleted, text, &Artifact{
		ArtifactID: uuid.New().String(),
		Name:       "Persona",
		Parts:      []MessagePart{TextPart(text), DataPart(persona)},
	})
}

func (h *Handler) generate(ctx context.Context, taskID string, req generateRequest) TaskResult {
	personaID, err := uuid.Parse(strings.TrimSpace(req.PersonaID))
	if err != nil {
		return createTaskResult(taskID, StateFailed, fmt.Sprintf("Invalid persona_id: %s", req.PersonaID), nil)
	}

	post, err := h.posts.Generate(ctx, personaID, req.Prompt)
	if err != nil {
		h.log.Error("Failed to generate blog post", "task_id", taskID, "persona_id", personaID, "error", err)
		return createTaskResult(taskID, StateFailed, fmt.Sprintf("Failed to generate blog post: %v", err), nil)
	}

	h.log.Info("Blog post generated", "task_id", taskID, "blog_post_id", post.ID)
	text := formatPost(post)
	return createTaskResult(taskID, StateCompleted, text, &Artifact{
		ArtifactID: uuid.New().String(),
		Name:       "Blog Post",
		Parts:      []MessagePart{TextPart(text), DataPart(post)},
	})
}

// ServeAgentCard serves the agent card using Gin
func (h *Handler) ServeAgentCard(c *gin.Context) {
	if err := agent.LoadAgentCard(); err != nil {
		h.log.Error("Error loading agent card", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Agent card not available"})
		return
	}
	c.Data(http.StatusOK, "application/json", agent.AgentCardData)
}

func extractGenerateRequest(msg A2AMessage) (generateRequest, bool) {
	for _, part := range msg.Parts {
		if part.Kind != "data" {
			continue
		}
		obj, ok := part.Data.(map[string]interface{})
		if !ok {
			continue
		}
		if _, ok := obj["persona_id"]; !ok {
			continue
		}
		var req generateRequest
		req.PersonaID, _ = obj["persona_id"].(string)
		req.Prompt, _ = obj["prompt"].(string)
		return req, true
	}
	return generateRequest{}, false
}

// extractSample joins the text parts. A data part holding conversation
// history contributes its most recent text entry.
func (h *Handler) extractSample(msg A2AMessage) string {
	var texts []string

	for _, part := range msg.Parts {
		switch part.Kind {
		case "text":
			if t := strings.TrimSpace(part.Text); t != "" {
				texts = append(texts, t)
			}
		case "data":
			history, ok := part.Data.([]interface{})
			if !ok {
				continue
			}
			for i := len(history) - 1; i >= 0; i-- {
				item, ok := history[i].(map[string]interface{})
				if !ok || item["kind"] != "text" {
					continue
				}
				text, _ := item["text"].(string)
				text = strings.TrimSpace(strings.NewReplacer("<p>", "", "</p>", "").Replace(text))
				if text != "" {
					texts = append(texts, text)
					break
				}
			}
		}
	}

	return strings.TrimSpace(strings.Join(texts, "\n\n"))
}

func createTaskResult(taskID, state, text string, artifact *Artifact) TaskResult {
	result := TaskResult{
		ID:   taskID,
		Kind: "task",
		Status: TaskStatus{
			State:     state,
			Timestamp: Timestamp(),
			Message: &A2AMessage{
				Kind:      "message",
				Role:      RoleAgent,
				MessageID: uuid.New().String(),
				TaskID:    taskID,
				Parts:     []MessagePart{TextPart(text)},
			},
		},
	}
	if artifact != nil {
		result.Artifacts = []Artifact{*artifact}
	}
	return result
}

func formatPost(post *models.BlogPost) string {
	var b strings.Builder
	if post.Title != nil && *post.Title != "" {
		b.WriteString("# ")
		b.WriteString(*post.Title)
		b.WriteString("\n\n")
	}
	b.WriteString(post.Content)
	return b.String()
}

func taskIDFor(msg A2AMessage, fallback string) string {
	if msg.TaskID != "" {
		return msg.TaskID
	}
	if fallback != "" {
		return fallback
	}
	return uuid.New().String()
}

func rpcID(id interface{}) string {
	switch v := id.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func (h *Handler) sendSuccessResponse(c *gin.Context, id interface{}, result interface{}) {
	c.JSON(http.StatusOK, JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	})
}

// JSON-RPC errors are sent with 200 OK
func (h *Handler) sendErrorResponse(c *gin.Context, id interface{}, message string, code int) {
	h.log.Warn("Sending RPC error", "code", code, "message", message)
	c.JSON(http.StatusOK, JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &JSONRPCError{Code: code, Message: message},
	})
}
