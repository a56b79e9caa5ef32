package chat

import (
	"encoding/json"
	"fmt"
	"os"
)

// Intent pairs trigger patterns with canned responses.
type Intent struct {
	Patterns  []string `json:"patterns"`
	Responses []string `json:"responses"`
}

// IntentTable is the externally supplied canned-reply configuration.
type IntentTable struct {
	Intents []Intent `json:"intents"`
}

// LoadIntents reads an intent table from a JSON file. Callers are expected
// to fall back to an empty table on error; a missing or malformed table is
// a degraded mode, not a failure.
func LoadIntents(path string) (IntentTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return IntentTable{}, fmt.Errorf("read intents file: %w", err)
	}

	var table IntentTable
	if err := json.Unmarshal(data, &table); err != nil {
		return IntentTable{}, fmt.Errorf("parse intents file: %w", err)
	}
	return table, nil
}
