package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BerylCAtieno/persona-writer-agent/internal/models"
)

type PersonaService interface {
	Analyze(ctx context.Context, name, sample string) (*models.Persona, error)
	AnalyzeURL(ctx context.Context, name, rawURL string) (*models.Persona, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Persona, error)
	List(ctx context.Context) ([]*models.Persona, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PersonaHandler struct {
	personas PersonaService
	posts    BlogService
}

func NewPersonaHandler(personas PersonaService, posts BlogService) *PersonaHandler {
	return &PersonaHandler{personas: personas, posts: posts}
}

type analyzeRequest struct {
	Name          string `json:"name"`
	WritingSample string `json:"writing_sample"`
	SampleURL     string `json:"sample_url"`
}

// POST /api/analyze
func (h *PersonaHandler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	var (
		persona *models.Persona
		err     error
	)
	switch {
	case strings.TrimSpace(req.WritingSample) != "":
		persona, err = h.personas.Analyze(c.Request.Context(), req.Name, req.WritingSample)
	case strings.TrimSpace(req.SampleURL) != "":
		persona, err = h.personas.AnalyzeURL(c.Request.Context(), req.Name, strings.TrimSpace(req.SampleURL))
	default:
		RespondError(c, http.StatusBadRequest, "invalid_request", errors.New("writing_sample or sample_url is required"))
		return
	}
	if err != nil {
		RespondErr(c, err, "analyze_failed")
		return
	}
	RespondCreated(c, persona)
}

// GET /api/personas
func (h *PersonaHandler) List(c *gin.Context) {
	personas, err := h.personas.List(c.Request.Context())
	if err != nil {
		RespondErr(c, err, "list_personas_failed")
		return
	}
	if personas == nil {
		personas = []*models.Persona{}
	}
	RespondOK(c, personas)
}

// GET /api/personas/:id
func (h *PersonaHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	persona, err := h.personas.Get(c.Request.Context(), id)
	if err != nil {
		RespondErr(c, err, "get_persona_failed")
		return
	}
	RespondOK(c, persona)
}

// DELETE /api/personas/:id
func (h *PersonaHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.personas.Delete(c.Request.Context(), id); err != nil {
		RespondErr(c, err, "delete_persona_failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/personas/:id/blogposts
func (h *PersonaHandler) ListBlogPosts(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	posts, err := h.posts.ListByPersona(c.Request.Context(), id)
	if err != nil {
		RespondErr(c, err, "list_blog_posts_failed")
		return
	}
	if posts == nil {
		posts = []*models.BlogPost{}
	}
	RespondOK(c, posts)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return uuid.Nil, false
	}
	return id, true
}
