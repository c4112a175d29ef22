package agent

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAgentCard(t *testing.T) {
	require.NoError(t, LoadAgentCard())
	require.NotEmpty(t, AgentCardData)

	var card map[string]any
	require.NoError(t, json.Unmarshal(AgentCardData, &card))
	assert.Equal(t, "Persona Writer Agent", card["name"])
	endpoints, ok := card["endpoints"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/a2a/persona", endpoints["a2a"])
}

func TestValidateRejectsIncompleteCard(t *testing.T) {
	assert.Error(t, validate([]byte(`{"name": "x"}`)))
	assert.Error(t, validate([]byte(`not json`)))
}
