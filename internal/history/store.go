// Package history persists the Compa AI conversation log as a pretty-printed
// JSON array on disk. The log is the single source of truth for conversation
// state across runs; the in-memory chat session is only a derived view.
//
// Persistence is best-effort: write failures are reported through the injected
// notifier and never abort the session. An absent or corrupt file is treated
// identically to an empty log; the distinction is recorded in the debug log
// only, never surfaced to the user.
package history

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/StaccahStaccah/CLI-AI-Chatbot/internal/logging"
)

// Message roles. The remote API only knows these two.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is one conversation entry. Parts is ordered and never empty; in
// practice every entry carries exactly one part.
type Message struct {
	Role  string   `json:"role"`
	Parts []string `json:"parts"`
}

// NewMessage builds a single-part message.
func NewMessage(role, text string) Message {
	return Message{Role: role, Parts: []string{text}}
}

// Notifier receives user-facing warnings when a best-effort write fails.
type Notifier interface {
	Warnf(format string, args ...interface{})
}

// Store reads and writes the history file using read-modify-write. There is
// exactly one writer (this process); concurrent writers are not supported.
type Store struct {
	path   string
	notify Notifier
}

// NewStore returns a store over the given file path. notify may be nil.
func NewStore(path string, notify Notifier) *Store {
	return &Store{path: path, notify: notify}
}

// Exists reports whether a readable, parseable, non-empty log is present.
// An absent or corrupt file counts as "no history", never as an error.
func (s *Store) Exists() bool {
	return len(s.Read()) > 0
}

// Read returns the persisted log. An absent or corrupt file yields an empty
// log without any error propagating to the caller.
func (s *Store) Read() []Message {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.History("no history file at %s", s.path)
		} else {
			logging.HistoryWarn("history file unreadable, treating as empty: %v", err)
		}
		return []Message{}
	}

	var log []Message
	if err := json.Unmarshal(data, &log); err != nil {
		logging.HistoryWarn("history file corrupt, treating as empty: %v", err)
		return []Message{}
	}
	if log == nil {
		log = []Message{}
	}
	return log
}

// Append loads the current log, adds one entry and writes the whole array
// back. A failed write is reported and the session continues.
func (s *Store) Append(msg Message) {
	log := append(s.Read(), msg)
	if err := s.write(log); err != nil {
		logging.HistoryError("append failed: %v", err)
		s.warnf("Error saving chat to history: %v", err)
		return
	}
	logging.History("appended %s message, log now %d entries", msg.Role, len(log))
}

// Reset overwrites the log with an empty array.
func (s *Store) Reset() {
	if err := s.write([]Message{}); err != nil {
		logging.HistoryError("reset failed: %v", err)
		s.warnf("Error deleting history: %v", err)
		return
	}
	logging.History("history reset")
}

func (s *Store) write(log []Message) error {
	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) warnf(format string, args ...interface{}) {
	if s.notify != nil {
		s.notify.Warnf(format, args...)
	}
}
