package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the terminal UI.
type Theme struct {
	Name string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// DefaultTheme is a Dracula-leaning palette.
func DefaultTheme() Theme {
	return Theme{
		Name:    "Dracula",
		Text:    "#f8f8f2",
		Muted:   "#6272a4",
		Faint:   "#44475a",
		Accent:  "#8be9fd",
		Success: "#50fa7b",
		Warning: "#f1fa8c",
		Danger:  "#ff5555",
	}
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Phonetic: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Italic(true),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		MissingExample: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)).
			Italic(true),

		ErrorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Tag: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Faint)),

		TagFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Success)),

		Alert: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Padding(1, 2).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(t.Danger)),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Title          lipgloss.Style
	Phonetic       lipgloss.Style
	Label          lipgloss.Style
	Text           lipgloss.Style
	MutedText      lipgloss.Style
	MissingExample lipgloss.Style
	ErrorText      lipgloss.Style
	Tag            lipgloss.Style
	TagFocused     lipgloss.Style
	Alert          lipgloss.Style
	Help           lipgloss.Style
}
