package generator

import (
	"context"
	"strings"

	"github.com/BerylCAtieno/persona-writer-agent/internal/llm"
	"github.com/BerylCAtieno/persona-writer-agent/internal/logger"
	"github.com/BerylCAtieno/persona-writer-agent/internal/models"
	"github.com/BerylCAtieno/persona-writer-agent/internal/prompts"
)

// Result is a generated post split into its first line and the rest.
type Result struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Empty reports that no content was produced, whether because the endpoint
// failed or because the model returned nothing.
func (r Result) Empty() bool {
	return r.Title == "" && r.Content == ""
}

type Generator struct {
	llm llm.Client
	log *logger.Logger
}

func NewGenerator(client llm.Client, log *logger.Logger) *Generator {
	return &Generator{llm: client, log: log.With("component", "ContentGenerator")}
}

// Generate writes a post about topic in the voice of profile. Failures are
// logged and yield an empty Result.
func (g *Generator) Generate(ctx context.Context, profile models.PersonaProfile, topic string) Result {
	prompt := prompts.BuildGenerationPrompt(profile, topic)

	raw, err := g.llm.Complete(ctx, prompt)
	if err != nil {
		g.log.Error("Generation request failed", "error", err)
		return Result{}
	}

	text := strings.TrimSpace(raw)
	if text == "" {
		g.log.Error("Generation response is empty", "response_chars", len(raw))
		return Result{}
	}

	return Split(text)
}

// Split takes the first line as the title and rejoins the remaining lines as
// content. The title is used as-is, markdown and all.
func Split(text string) Result {
	lines := strings.Split(text, "\n")
	return Result{
		Title:   lines[0],
		Content: strings.Join(lines[1:], "\n"),
	}
}
