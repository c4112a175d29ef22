// Package agent holds the A2A agent card served at /.well-known/agent.json.
package agent

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed agent.json
var agentCard []byte

// AgentCardData is the validated card, set by LoadAgentCard.
var AgentCardData []byte

var requiredFields = []string{"name", "description", "version", "capabilities", "endpoints"}

var (
	loadOnce sync.Once
	loadErr  error
)

// LoadAgentCard validates the embedded card once and publishes it in
// AgentCardData.
func LoadAgentCard() error {
	loadOnce.Do(func() {
		loadErr = validate(agentCard)
		if loadErr == nil {
			AgentCardData = agentCard
		}
	})
	return loadErr
}

func validate(card []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(card, &fields); err != nil {
		return fmt.Errorf("parse agent card: %w", err)
	}
	for _, f := range requiredFields {
		if _, ok := fields[f]; !ok {
			return fmt.Errorf("agent card missing field %q", f)
		}
	}
	return nil
}
