// Package api exposes the persona and blog post pipelines over HTTP.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BerylCAtieno/persona-writer-agent/internal/a2a"
	"github.com/BerylCAtieno/persona-writer-agent/internal/logger"
)

type RouterConfig struct {
	PersonaHandler *PersonaHandler
	BlogHandler    *BlogHandler
	A2AHandler     *a2a.Handler

	Log         *logger.Logger
	CORSOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(cfg.Log))
	r.Use(CORS(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// A2A agent surface
	if cfg.A2AHandler != nil {
		r.GET("/.well-known/agent.json", cfg.A2AHandler.ServeAgentCard)
		r.POST("/a2a/persona", cfg.A2AHandler.HandlePersona)
	}

	api := r.Group("/api")
	{
		if cfg.PersonaHandler != nil {
			api.POST("/analyze", cfg.PersonaHandler.Analyze)
			api.GET("/personas", cfg.PersonaHandler.List)
			api.GET("/personas/:id", cfg.PersonaHandler.Get)
			api.DELETE("/personas/:id", cfg.PersonaHandler.Delete)
			api.GET("/personas/:id/blogposts", cfg.PersonaHandler.ListBlogPosts)
		}

		if cfg.BlogHandler != nil {
			api.POST("/generate", cfg.BlogHandler.Generate)
			api.GET("/blogposts", cfg.BlogHandler.List)
			api.GET("/blogposts/:id/html", cfg.BlogHandler.HTML)
		}
	}

	return r
}
