// Package service wires the LLM pipelines to persistence: analyze a sample
// into a stored persona, or generate and store a post for a persona.
package service

import (
	"errors"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrGenerationFailed covers both an unreachable endpoint and an empty
	// model answer; the logs tell them apart.
	ErrGenerationFailed = errors.New("failed to generate blog post")
)

const (
	defaultPersonaName = "Unknown Author"
	maxNameLength      = 100
)
