package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/glamour"
)

// Console is the user-facing input/output surface. Components receive it as an
// injected capability; tests drive it with in-memory readers and writers.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	styles   Styles
	renderer *glamour.TermRenderer
}

// NewConsole builds a console over the given reader and writer.
func NewConsole(in io.Reader, out io.Writer) *Console {
	// A nil renderer falls back to plain text output.
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	return &Console{
		in:       bufio.NewReader(in),
		out:      out,
		styles:   NewStyles(DefaultTheme()),
		renderer: renderer,
	}
}

// Clear wipes the terminal and homes the cursor.
func (c *Console) Clear() {
	fmt.Fprint(c.out, "\x1b[2J\x1b[H")
}

// Banner prints the Compa AI logo.
func (c *Console) Banner() {
	fmt.Fprintln(c.out, Logo(c.styles))
}

// Say prints an assistant-voice line (greeting, farewell).
func (c *Console) Say(format string, args ...interface{}) {
	fmt.Fprintln(c.out, c.styles.Say.Render(fmt.Sprintf(format, args...)))
}

// Notice prints a session notice or question.
func (c *Console) Notice(format string, args ...interface{}) {
	fmt.Fprintln(c.out, c.styles.Notice.Render(fmt.Sprintf(format, args...)))
}

// Warnf prints a warning or error line.
func (c *Console) Warnf(format string, args ...interface{}) {
	fmt.Fprintln(c.out, c.styles.Error.Render(fmt.Sprintf(format, args...)))
}

// Plain prints an unstyled line.
func (c *Console) Plain(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Input renders the prompt marker and reads one line, trimmed of surrounding
// whitespace.
func (c *Console) Input() (string, error) {
	fmt.Fprint(c.out, c.styles.Prompt.Render("> "))
	line, err := c.in.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Markdown renders model output as a markdown panel. If rendering fails or
// panics, the raw text is shown instead.
func (c *Console) Markdown(text string) {
	fmt.Fprintln(c.out, c.styles.Panel.Render(c.renderMarkdown(text)))
}

// renderMarkdown renders markdown with panic recovery.
func (c *Console) renderMarkdown(text string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = text
		}
	}()

	if c.renderer != nil && text != "" {
		if rendered, err := c.renderer.Render(text); err == nil {
			return strings.TrimRight(rendered, "\n")
		}
	}
	return text
}

// Thinking starts the waiting indicator and returns it; the caller stops it
// once the blocking call comes back.
func (c *Console) Thinking(msg string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(c.out))
	s.Suffix = " " + c.styles.Say.Render(msg)
	_ = s.Color("cyan")
	s.Start()
	return s
}
