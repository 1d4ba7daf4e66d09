package session

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/StaccahStaccah/CLI-AI-Chatbot/internal/history"
	"github.com/StaccahStaccah/CLI-AI-Chatbot/internal/ui"
)

func consoleOver(input string, out io.Writer) *ui.Console {
	return ui.NewConsole(strings.NewReader(input), out)
}

// scriptedModel replays canned replies and records every prompt it receives.
type scriptedModel struct {
	replies []string
	prompts []string
	err     error
}

func (m *scriptedModel) Send(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	if len(m.replies) == 0 {
		return "ok", nil
	}
	reply := m.replies[0]
	m.replies = m.replies[1:]
	return reply, nil
}

func newLoop(t *testing.T, input string, model *scriptedModel) (*Loop, *history.Store, *strings.Builder) {
	t.Helper()
	// strings.Builder keeps assertions on raw output simple.
	out := &strings.Builder{}
	console := consoleOver(input, out)
	store := history.NewStore(filepath.Join(t.TempDir(), "history.json"), nil)
	return &Loop{Console: console, History: store, Model: model}, store, out
}

func TestLoopExitImmediately(t *testing.T) {
	model := &scriptedModel{}
	loop, store, out := newLoop(t, "!exit\n", model)

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Hi, how can I assist you today? Feel free to ask anything! (Type '!exit' to quit)") {
		t.Error("Greeting not shown")
	}
	if !strings.Contains(output, "Goodbye!") {
		t.Error("Farewell not shown")
	}
	if len(model.prompts) != 0 {
		t.Errorf("Model called %d times on immediate exit", len(model.prompts))
	}
	if store.Exists() {
		t.Error("History written on immediate exit")
	}
}

func TestLoopExitCaseInsensitive(t *testing.T) {
	model := &scriptedModel{}
	loop, _, out := newLoop(t, "!ExIt\n", model)

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Goodbye!") {
		t.Error("Farewell not shown for mixed-case exit token")
	}
	if len(model.prompts) != 0 {
		t.Errorf("Model called %d times on exit", len(model.prompts))
	}
}

func TestLoopExitTokenSurroundedByWhitespace(t *testing.T) {
	model := &scriptedModel{}
	loop, _, out := newLoop(t, "  !exit  \n", model)

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Goodbye!") {
		t.Error("Farewell not shown for padded exit token")
	}
}

func TestLoopEmptyInputIsNoOp(t *testing.T) {
	model := &scriptedModel{}
	loop, store, _ := newLoop(t, "\n\n!exit\n", model)

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(model.prompts) != 0 {
		t.Errorf("Model called %d times for empty input", len(model.prompts))
	}
	if got := len(store.Read()); got != 0 {
		t.Errorf("History gained %d entries from empty input", got)
	}
}

func TestLoopExchangePersistsBothSides(t *testing.T) {
	model := &scriptedModel{replies: []string{"**Hello!** How can I help?"}}
	loop, store, out := newLoop(t, "hello there\n!exit\n", model)

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if diff := cmp.Diff([]string{"hello there"}, model.prompts); diff != "" {
		t.Errorf("Prompts mismatch (-want +got):\n%s", diff)
	}

	want := []history.Message{
		history.NewMessage(history.RoleUser, "hello there"),
		history.NewMessage(history.RoleModel, "**Hello!** How can I help?"),
	}
	if diff := cmp.Diff(want, store.Read()); diff != "" {
		t.Errorf("History mismatch (-want +got):\n%s", diff)
	}

	if !strings.Contains(out.String(), "Hello!") {
		t.Error("Model reply not rendered")
	}
}

func TestLoopMultipleTurnsAccumulate(t *testing.T) {
	model := &scriptedModel{replies: []string{"one", "two"}}
	loop, store, _ := newLoop(t, "first\nsecond\n!exit\n", model)

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	log := store.Read()
	if len(log) != 4 {
		t.Fatalf("Expected 4 history entries, got %d", len(log))
	}
	wantParts := []string{"first", "one", "second", "two"}
	wantRoles := []string{"user", "model", "user", "model"}
	for i, msg := range log {
		if msg.Role != wantRoles[i] || msg.Parts[0] != wantParts[i] {
			t.Errorf("log[%d] = {%s %q}, want {%s %q}", i, msg.Role, msg.Parts[0], wantRoles[i], wantParts[i])
		}
	}
}

func TestLoopModelErrorIsFatal(t *testing.T) {
	model := &scriptedModel{err: errors.New("quota exhausted")}
	loop, store, _ := newLoop(t, "hello\n", model)

	err := loop.Run(context.Background())
	if err == nil {
		t.Fatal("Expected an error when the model call fails")
	}
	if !strings.Contains(err.Error(), "quota exhausted") {
		t.Errorf("Unexpected error: %v", err)
	}

	// The user's message was already persisted; no model entry follows it.
	want := []history.Message{history.NewMessage(history.RoleUser, "hello")}
	if diff := cmp.Diff(want, store.Read()); diff != "" {
		t.Errorf("History mismatch (-want +got):\n%s", diff)
	}
}

func TestLoopInputErrorPropagates(t *testing.T) {
	model := &scriptedModel{}
	loop, _, _ := newLoop(t, "", model)

	err := loop.Run(context.Background())
	if err == nil {
		t.Fatal("Expected an error when input is exhausted")
	}
	if !strings.Contains(err.Error(), "failed to read input") {
		t.Errorf("Unexpected error: %v", err)
	}
}
