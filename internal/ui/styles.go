// Package ui provides the styled console surface for Compa AI. Every piece of
// user-facing output flows through an injected writer so tests can capture it;
// there is no process-wide console singleton.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the console color scheme.
type Theme struct {
	Banner lipgloss.Color
	Prompt lipgloss.Color
	Say    lipgloss.Color
	Error  lipgloss.Color
	Border lipgloss.Color
}

// DefaultTheme returns the standard Compa AI palette.
func DefaultTheme() Theme {
	return Theme{
		Banner: lipgloss.Color("13"), // magenta
		Prompt: lipgloss.Color("11"), // yellow
		Say:    lipgloss.Color("14"), // cyan
		Error:  lipgloss.Color("9"),  // red
		Border: lipgloss.Color("8"),  // grey
	}
}

// Styles bundles the lipgloss styles used by the console.
type Styles struct {
	Theme Theme

	Banner lipgloss.Style
	Notice lipgloss.Style
	Prompt lipgloss.Style
	Say    lipgloss.Style
	Error  lipgloss.Style
	Panel  lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Banner: lipgloss.NewStyle().
			Foreground(theme.Banner).
			Bold(true),

		Notice: lipgloss.NewStyle().
			Foreground(theme.Prompt).
			Bold(true),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Prompt).
			Bold(true),

		Say: lipgloss.NewStyle().
			Foreground(theme.Say).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
	}
}

// Logo returns the Compa AI ASCII banner.
func Logo(s Styles) string {
	logo := `
   ___                 __        _   ___
  / __|___ _ __  _ __  \_\_     /_\ |_ _|
 | (__/ _ \ '  \| '_ \/ _` + "`" + ` |   / _ \ | |
  \___\___/_|_|_| .__/\__,_|  /_/ \_\___|
                |_|
`
	return s.Banner.Render(logo)
}
