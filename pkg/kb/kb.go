package kb

import (
	"encoding/json"
	"fmt"
	"os"
)

// FAQ is a single knowledge-base entry. Entries are immutable after load and
// shared across requests without synchronization.
type FAQ struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Tags     []string `json:"tags,omitempty"`
}

// Load returns the knowledge base. When path is empty the built-in entries
// are used; otherwise the file must contain a JSON array of FAQ objects.
func Load(path string) ([]FAQ, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read FAQ file: %w", err)
	}

	var entries []FAQ
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse FAQ file: %w", err)
	}

	return entries, nil
}

// Default returns the built-in knowledge base.
func Default() []FAQ {
	return defaultFAQs
}
