package profiler

import (
	"context"
	"errors"
	"fmt"

	"github.com/BerylCAtieno/persona-writer-agent/internal/jsonscan"
	"github.com/BerylCAtieno/persona-writer-agent/internal/llm"
	"github.com/BerylCAtieno/persona-writer-agent/internal/logger"
	"github.com/BerylCAtieno/persona-writer-agent/internal/models"
	"github.com/BerylCAtieno/persona-writer-agent/internal/prompts"
)

// ErrNoStructuredData means the model answered but no JSON object could be
// found in its text.
var ErrNoStructuredData = errors.New("no structured data in response")

type Analyzer struct {
	llm llm.Client
	log *logger.Logger
}

func NewAnalyzer(client llm.Client, log *logger.Logger) *Analyzer {
	return &Analyzer{llm: client, log: log.With("component", "PersonaAnalyzer")}
}

// Analyze characterizes a writing sample. The returned profile is exactly
// the object the model produced, validated against nothing.
func (a *Analyzer) Analyze(ctx context.Context, sample string) (models.PersonaProfile, error) {
	prompt := prompts.BuildAnalysisPrompt(sample)

	raw, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		a.log.Error("Analysis request failed", "error", err)
		return nil, fmt.Errorf("analyze writing sample: %w", err)
	}

	obj, ok := jsonscan.ExtractObject(raw)
	if !ok {
		a.log.Error("No JSON object found in the response", "response_chars", len(raw))
		return nil, ErrNoStructuredData
	}

	a.log.Debug("Persona profile extracted", "attributes", len(obj))
	return models.PersonaProfile(obj), nil
}
