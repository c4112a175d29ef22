package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRedactsSecretKeys(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := &Logger{SugaredLogger: zap.New(core).Sugar()}

	log.Info("llm configured", "provider", "gemini", "api_key", "sk-123", "Authorization", "Bearer x")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "gemini", fields["provider"])
		assert.Equal(t, "[REDACTED]", fields["api_key"])
		assert.Equal(t, "[REDACTED]", fields["Authorization"])
	}
}

func TestRedactKeepsDanglingValue(t *testing.T) {
	assert.Equal(t, []interface{}{"a", 1, "odd"}, redact([]interface{}{"a", 1, "odd"}))
}

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := (&Logger{SugaredLogger: zap.New(core).Sugar()}).With("component", "profiler")

	log.Warn("no structured data")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "profiler", entries[0].ContextMap()["component"])
		assert.Equal(t, zap.WarnLevel, entries[0].Level)
	}
}
