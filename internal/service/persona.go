package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/BerylCAtieno/persona-writer-agent/internal/logger"
	"github.com/BerylCAtieno/persona-writer-agent/internal/models"
	"github.com/BerylCAtieno/persona-writer-agent/internal/store"
)

// Analyzer turns a writing sample into a persona profile.
type Analyzer interface {
	Analyze(ctx context.Context, sample string) (models.PersonaProfile, error)
}

// TextFetcher loads a writing sample from a URL.
type TextFetcher interface {
	FetchText(ctx context.Context, rawURL string) (string, error)
}

type PersonaService struct {
	analyzer Analyzer
	fetcher  TextFetcher
	personas store.PersonaRepo
	log      *logger.Logger
}

func NewPersonaService(analyzer Analyzer, fetcher TextFetcher, personas store.PersonaRepo, log *logger.Logger) *PersonaService {
	return &PersonaService{
		analyzer: analyzer,
		fetcher:  fetcher,
		personas: personas,
		log:      log.With("service", "PersonaService"),
	}
}

// Analyze characterizes sample and stores the result. When name is empty
// the profile's own "name" attribute is used.
func (s *PersonaService) Analyze(ctx context.Context, name, sample string) (*models.Persona, error) {
	if strings.TrimSpace(sample) == "" {
		return nil, fmt.Errorf("%w: writing_sample is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return nil, fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, maxNameLength)
	}

	profile, err := s.analyzer.Analyze(ctx, sample)
	if err != nil {
		return nil, err
	}

	persona, err := s.personas.Create(ctx, displayName(name, profile), profile)
	if err != nil {
		return nil, err
	}
	s.log.Info("Persona analyzed", "persona_id", persona.ID, "attributes", len(profile))
	return persona, nil
}

// AnalyzeURL fetches the sample from rawURL before analyzing it.
func (s *PersonaService) AnalyzeURL(ctx context.Context, name, rawURL string) (*models.Persona, error) {
	if s.fetcher == nil {
		return nil, fmt.Errorf("%w: sample_url is not supported", ErrInvalidInput)
	}
	sample, err := s.fetcher.FetchText(ctx, rawURL)
	if err != nil {
		s.log.Warn("Failed to fetch writing sample", "url", rawURL, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.Analyze(ctx, name, sample)
}

func (s *PersonaService) Get(ctx context.Context, id uuid.UUID) (*models.Persona, error) {
	return s.personas.Get(ctx, id)
}

func (s *PersonaService) List(ctx context.Context) ([]*models.Persona, error) {
	return s.personas.List(ctx)
}

func (s *PersonaService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.personas.Delete(ctx, id)
}

func displayName(name string, profile models.PersonaProfile) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	if n := profile.Name(); n != "" {
		if utf8.RuneCountInString(n) > maxNameLength {
			n = string([]rune(n)[:maxNameLength])
		}
		return n
	}
	return defaultPersonaName
}
