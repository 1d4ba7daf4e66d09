package session

import (
	"context"
	"strings"

	"github.com/StaccahStaccah/CLI-AI-Chatbot/internal/history"
	"github.com/StaccahStaccah/CLI-AI-Chatbot/internal/logging"
	"github.com/StaccahStaccah/CLI-AI-Chatbot/internal/ui"
)

// ExitToken ends the chat loop, matched case-insensitively.
const ExitToken = "!exit"

// Sender is the model call the loop blocks on each turn.
type Sender interface {
	Send(ctx context.Context, prompt string) (string, error)
}

// Loop is the interactive read-send-render cycle.
type Loop struct {
	Console *ui.Console
	History *history.Store
	Model   Sender
}

// Run greets the user and exchanges turns until the exit token arrives.
// Returning nil means the user quit; any error is fatal to the session.
func (l *Loop) Run(ctx context.Context) error {
	l.Console.Say("Hi, how can I assist you today? Feel free to ask anything! (Type '!exit' to quit)")

	for {
		input, err := l.Console.Input()
		if err != nil {
			return err
		}
		if strings.EqualFold(input, ExitToken) {
			l.Console.Say("Goodbye!")
			logging.Session("session closed by user")
			return nil
		}
		if input == "" {
			continue
		}

		l.History.Append(history.NewMessage(history.RoleUser, input))

		thinking := l.Console.Thinking("Thinking...")
		reply, err := l.Model.Send(ctx, input)
		thinking.Stop()
		if err != nil {
			return err
		}

		l.History.Append(history.NewMessage(history.RoleModel, reply))
		l.Console.Markdown(reply)
	}
}
