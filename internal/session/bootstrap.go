// Package session drives a chat session from startup choices through the
// interactive loop. Bootstrap resolves what conversation state the session
// opens with; Loop runs the turn-by-turn exchange.
package session

import (
	"strconv"
	"strings"

	"github.com/StaccahStaccah/CLI-AI-Chatbot/internal/history"
	"github.com/StaccahStaccah/CLI-AI-Chatbot/internal/logging"
	"github.com/StaccahStaccah/CLI-AI-Chatbot/internal/persona"
	"github.com/StaccahStaccah/CLI-AI-Chatbot/internal/ui"
)

// Bootstrap resolves the opening state of a session: resume the previous
// conversation, start fresh with a persona seed, or start empty.
type Bootstrap struct {
	Console  *ui.Console
	History  *history.Store
	Personas *persona.Store
}

// Run walks the startup choices and returns the working log the chat session
// opens with. An error here means input could not be read and the session
// cannot continue.
func (b *Bootstrap) Run() ([]history.Message, error) {
	if b.History.Exists() {
		resumed, log, err := b.resumeChoice()
		if err != nil {
			return nil, err
		}
		if resumed {
			return log, nil
		}
	}

	contexts := b.Personas.List()
	if len(contexts) == 0 {
		logging.Session("fresh session, no personas available")
		return nil, nil
	}
	return b.personaChoice(contexts)
}

// resumeChoice asks whether to continue the previous session. It re-prompts
// until the answer is y or n. On n the saved history is discarded and the
// caller falls through to the fresh-start path.
func (b *Bootstrap) resumeChoice() (bool, []history.Message, error) {
	b.Console.Notice("Do you want to continue the previous chat session? (y/n)")
	for {
		choice, err := b.Console.Input()
		if err != nil {
			return false, nil, err
		}
		switch strings.ToLower(choice) {
		case "y":
			b.Console.Notice("Continuing previous chat session...")
			log := b.History.Read()
			logging.Session("resumed previous session with %d messages", len(log))
			return true, log, nil
		case "n":
			b.History.Reset()
			logging.Session("previous session discarded")
			return false, nil, nil
		default:
			b.Console.Warnf("Invalid response. Please enter 'y' or 'n'.")
		}
	}
}

// personaChoice shows the numbered persona menu and re-prompts until a valid
// 1-based index comes in. The chosen persona's context becomes the first user
// message of the session, persisted and returned as the working log.
func (b *Bootstrap) personaChoice(contexts []persona.Context) ([]history.Message, error) {
	b.Console.Notice("Who do you want to chat with?")
	for i, c := range contexts {
		b.Console.Plain("%d. %s", i+1, c.Name)
	}

	for {
		choice, err := b.Console.Input()
		if err != nil {
			return nil, err
		}
		index, err := strconv.Atoi(choice)
		if err != nil {
			b.Console.Warnf("Invalid input. Please enter a number.")
			continue
		}
		if index < 1 || index > len(contexts) {
			b.Console.Warnf("Invalid context index. Please try again.")
			continue
		}

		selected := contexts[index-1]
		seed := history.NewMessage(history.RoleUser, selected.Context)
		b.History.Append(seed)
		logging.Session("persona %q selected", selected.Name)
		return []history.Message{seed}, nil
	}
}
