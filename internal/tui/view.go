package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model. Exactly one of the welcome, loading, result and
// error views is rendered at a time; the alert overlay replaces everything
// until dismissed.
func (m Model) View() string {
	if m.alert != "" {
		return m.renderAlert()
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("wordbook"))
	b.WriteString(m.styles.MutedText.Render("  —  dictionary lookup"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch m.state {
	case stateWelcome:
		b.WriteString(m.renderWelcome())
	case stateLoading:
		b.WriteString(m.styles.MutedText.Render("Searching \"" + m.pendingWord + "\"..."))
	case stateResult:
		b.WriteString(m.renderResult())
	case stateError:
		b.WriteString(m.renderError())
	}

	if tagBar := m.renderTags(); tagBar != "" {
		b.WriteString("\n\n")
		b.WriteString(tagBar)
	}
	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render("Enter search • Tab tags • Ctrl+P audio • Esc restart • Ctrl+C quit"))
	return b.String()
}

func (m Model) renderWelcome() string {
	return m.styles.Text.Render(m.welcome.Intro)
}

func (m Model) renderResult() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.result.Title))
	b.WriteString("  ")
	b.WriteString(m.styles.Phonetic.Render(m.result.Phonetic))
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render(m.result.Icon + " " + m.result.PartOfSpeech))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Label.Render("Meaning"))
	b.WriteString("\n")
	b.WriteString(m.styles.Text.Render(m.result.Definition))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Label.Render("Example"))
	b.WriteString("\n")
	if m.result.HasExample {
		b.WriteString(m.styles.Text.Render(m.result.Example))
	} else {
		b.WriteString(m.styles.MissingExample.Render(m.result.Example))
	}
	b.WriteString("\n\n")
	if m.result.HasAudio {
		b.WriteString(m.styles.MutedText.Render("♪ Press Ctrl+P to play the pronunciation"))
	} else {
		b.WriteString(m.styles.MissingExample.Render("♪ No pronunciation audio"))
	}
	return b.String()
}

func (m Model) renderError() string {
	var b strings.Builder
	b.WriteString(m.styles.ErrorText.Render(m.errView.Message))
	b.WriteString("\n")
	b.WriteString(m.styles.MutedText.Render("Press Esc to start over."))
	return b.String()
}

func (m Model) renderTags() string {
	tags := m.tags()
	if len(tags) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(tags)+1)
	label := "History:"
	if m.state == stateWelcome {
		label = "Try:"
	}
	rendered = append(rendered, m.styles.MutedText.Render(label))
	for i, t := range tags {
		style := m.styles.Tag
		if i == m.focusedTag {
			style = m.styles.TagFocused
		}
		rendered = append(rendered, style.Render(t.word))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
}

func (m Model) renderAlert() string {
	message := m.alert + "\n\n" + m.styles.MutedText.Render("Press any key to dismiss.")
	box := m.styles.Alert.Render(message)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
