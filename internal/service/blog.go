package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/BerylCAtieno/persona-writer-agent/internal/generator"
	"github.com/BerylCAtieno/persona-writer-agent/internal/logger"
	"github.com/BerylCAtieno/persona-writer-agent/internal/models"
	"github.com/BerylCAtieno/persona-writer-agent/internal/store"
)

// Generator writes a post in the voice of a persona profile.
type Generator interface {
	Generate(ctx context.Context, profile models.PersonaProfile, topic string) generator.Result
}

type BlogService struct {
	generator Generator
	personas  store.PersonaRepo
	posts     store.BlogPostRepo
	log       *logger.Logger
}

func NewBlogService(gen Generator, personas store.PersonaRepo, posts store.BlogPostRepo, log *logger.Logger) *BlogService {
	return &BlogService{
		generator: gen,
		personas:  personas,
		posts:     posts,
		log:       log.With("service", "BlogService"),
	}
}

// Generate writes a post about topic for the persona and stores it.
func (s *BlogService) Generate(ctx context.Context, personaID uuid.UUID, topic string) (*models.BlogPost, error) {
	if personaID == uuid.Nil {
		return nil, fmt.Errorf("%w: persona_id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("%w: prompt is required", ErrInvalidInput)
	}

	persona, err := s.personas.Get(ctx, personaID)
	if err != nil {
		s.log.Warn("Persona lookup failed", "persona_id", personaID, "error", err)
		return nil, err
	}

	result := s.generator.Generate(ctx, persona.Profile(), topic)
	if result.Empty() {
		s.log.Error("Failed to generate blog post", "persona_id", personaID)
		return nil, ErrGenerationFailed
	}

	post, err := s.posts.Create(ctx, persona.ID, result.Title, result.Content)
	if err != nil {
		return nil, err
	}
	s.log.Info("Blog post generated", "blog_post_id", post.ID, "persona_id", persona.ID)
	return post, nil
}

func (s *BlogService) Get(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	return s.posts.Get(ctx, id)
}

func (s *BlogService) List(ctx context.Context) ([]*models.BlogPost, error) {
	return s.posts.List(ctx)
}

// ListByPersona fails with store.ErrNotFound for unknown personas rather
// than returning an empty list.
func (s *BlogService) ListByPersona(ctx context.Context, personaID uuid.UUID) ([]*models.BlogPost, error) {
	if _, err := s.personas.Get(ctx, personaID); err != nil {
		return nil, err
	}
	return s.posts.ListByPersona(ctx, personaID)
}
