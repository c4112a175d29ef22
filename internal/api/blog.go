package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BerylCAtieno/persona-writer-agent/internal/models"
	"github.com/BerylCAtieno/persona-writer-agent/internal/render"
)

type BlogService interface {
	Generate(ctx context.Context, personaID uuid.UUID, topic string) (*models.BlogPost, error)
	Get(ctx context.Context, id uuid.UUID) (*models.BlogPost, error)
	List(ctx context.Context) ([]*models.BlogPost, error)
	ListByPersona(ctx context.Context, personaID uuid.UUID) ([]*models.BlogPost, error)
}

type BlogHandler struct {
	posts BlogService
}

func NewBlogHandler(posts BlogService) *BlogHandler {
	return &BlogHandler{posts: posts}
}

type generateRequest struct {
	PersonaID string `json:"persona_id"`
	Prompt    string `json:"prompt"`
}

// POST /api/generate
func (h *BlogHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.PersonaID == "" {
		RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("persona_id is required"))
		return
	}
	personaID, err := uuid.Parse(req.PersonaID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_persona_id", err)
		return
	}

	post, err := h.posts.Generate(c.Request.Context(), personaID, req.Prompt)
	if err != nil {
		RespondErr(c, err, "generate_failed")
		return
	}
	RespondCreated(c, post)
}

// GET /api/blogposts
func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		RespondErr(c, err, "list_blog_posts_failed")
		return
	}
	if posts == nil {
		posts = []*models.BlogPost{}
	}
	RespondOK(c, posts)
}

// GET /api/blogposts/:id/html
func (h *BlogHandler) HTML(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		RespondErr(c, err, "get_blog_post_failed")
		return
	}
	out, err := render.PostHTML(post)
	if err != nil {
		RespondErr(c, err, "render_failed")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
}
