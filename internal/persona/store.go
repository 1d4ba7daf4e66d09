// Package persona loads the optional list of named chat contexts used to seed
// a fresh conversation.
package persona

import (
	"encoding/json"
	"os"

	"github.com/StaccahStaccah/CLI-AI-Chatbot/internal/logging"
)

// Context is a named seed instruction. Read-only; never mutated by the
// program.
type Context struct {
	Name    string `json:"name"`
	Context string `json:"context"`
}

// Store reads the contexts file.
type Store struct {
	path string
}

// NewStore returns a store over the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// List returns the configured contexts. A nil slice means the persona feature
// is unavailable (file absent or unparseable), which is distinct from an
// empty, non-nil list. The result is not cached.
func (s *Store) List() []Context {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Context("no contexts file at %s, persona selection unavailable", s.path)
		} else {
			logging.ContextWarn("contexts file unreadable, persona selection unavailable: %v", err)
		}
		return nil
	}

	var contexts []Context
	if err := json.Unmarshal(data, &contexts); err != nil {
		logging.ContextWarn("contexts file corrupt, persona selection unavailable: %v", err)
		return nil
	}
	return contexts
}
