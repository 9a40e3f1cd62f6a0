// Package tui provides the Bubble Tea terminal UI: a search input, one
// visible view at a time (welcome, loading, result or error), selectable
// suggestion and history tags, and an audio-play binding.
package tui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okanda/wordbook/internal/audio"
	"github.com/okanda/wordbook/internal/dictionary"
	"github.com/okanda/wordbook/internal/dictionary/freedict"
	"github.com/okanda/wordbook/internal/history"
	"github.com/okanda/wordbook/internal/view"
)

// viewState is the single display mode of the result region.
type viewState int

const (
	stateWelcome viewState = iota
	stateLoading
	stateResult
	stateError
)

// tag is a selectable suggestion or history word.
type tag struct {
	word    string
	history bool
}

// Options configures the UI.
type Options struct {
	Client      dictionary.Lookuper
	History     *history.Store
	Player      audio.Player
	Suggestions []string
	Theme       Theme
}

// Model is the root application state for Bubble Tea.
type Model struct {
	client  dictionary.Lookuper
	history *history.Store
	player  audio.Player

	input  textinput.Model
	styles Styles

	state   viewState
	welcome view.WelcomeView
	result  view.ResultView
	errView view.ErrorView

	historyWords []string
	// focusedTag indexes into tags(); -1 means the input has focus.
	focusedTag int
	// seq tags each lookup so a response that was superseded by a newer
	// search is discarded instead of racing to render.
	seq         int
	pendingWord string
	alert       string

	width  int
	height int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	input := textinput.New()
	input.Placeholder = "Search for a word..."
	input.Prompt = "> "
	input.CharLimit = 64
	input.Focus()

	theme := opts.Theme
	if theme.Name == "" {
		theme = DefaultTheme()
	}

	m := Model{
		client:     opts.Client,
		history:    opts.History,
		player:     opts.Player,
		input:      input,
		styles:     theme.Styles(),
		state:      stateWelcome,
		welcome:    view.BuildWelcome(opts.Suggestions),
		focusedTag: -1,
	}
	if opts.History != nil {
		m.historyWords = opts.History.Words()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Messages

type lookupDoneMsg struct {
	seq   int
	word  string
	entry freedict.Entry
	err   error
}

type playbackDoneMsg struct {
	err error
}

// Commands

func lookupCmd(client dictionary.Lookuper, seq int, word string) tea.Cmd {
	return func() tea.Msg {
		entry, err := client.Lookup(context.Background(), word)
		return lookupDoneMsg{seq: seq, word: word, entry: entry, err: err}
	}
}

func playCmd(player audio.Player, clipURL string) tea.Cmd {
	return func() tea.Msg {
		return playbackDoneMsg{err: player.Play(context.Background(), clipURL)}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case lookupDoneMsg:
		return m.handleLookupDone(msg)

	case playbackDoneMsg:
		if msg.err != nil {
			m.alert = "Could not play pronunciation audio: " + msg.err.Error()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The alert is modal: any key dismisses it
	if m.alert != "" {
		m.alert = ""
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		return m.restart()

	case "tab":
		m.cycleTagFocus(1)
		return m, nil

	case "shift+tab":
		m.cycleTagFocus(-1)
		return m, nil

	case "ctrl+p":
		if m.state == stateResult && m.result.HasAudio && m.player != nil {
			return m, playCmd(m.player, m.result.AudioURL)
		}
		return m, nil

	case "enter":
		if tags := m.tags(); m.focusedTag >= 0 && m.focusedTag < len(tags) {
			m.input.SetValue(tags[m.focusedTag].word)
			m.focusedTag = -1
			m.input.Focus()
		}
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts a lookup for the input, or shows the empty-input error
// without issuing any request.
func (m Model) submit() (tea.Model, tea.Cmd) {
	word := strings.ToLower(strings.TrimSpace(m.input.Value()))
	if word == "" {
		m.state = stateError
		m.errView = view.BuildError(view.MsgEmptyInput)
		return m, nil
	}

	m.seq++
	m.pendingWord = word
	m.state = stateLoading
	return m, lookupCmd(m.client, m.seq, word)
}

func (m Model) handleLookupDone(msg lookupDoneMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq {
		// a newer search superseded this response
		return m, nil
	}

	if msg.err != nil {
		m.state = stateError
		if errors.Is(msg.err, dictionary.ErrNotFound) {
			m.errView = view.BuildError(view.NotFoundMessage(msg.word))
		} else {
			slog.Default().Debug("lookup failed", "word", msg.word, "error", msg.err)
			m.errView = view.BuildError(view.MsgRequestFailed)
		}
		return m, nil
	}

	m.state = stateResult
	m.result = view.BuildResult(msg.entry)
	if m.history != nil {
		if err := m.history.Record(msg.word); err != nil {
			slog.Default().Warn("failed to persist search history", "word", msg.word, "error", err)
		}
		m.historyWords = m.history.Words()
	}
	if m.focusedTag >= len(m.tags()) {
		m.focusedTag = -1
		m.input.Focus()
	}
	return m, nil
}

// restart returns to the welcome view with a cleared, focused input.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.state = stateWelcome
	m.alert = ""
	m.focusedTag = -1
	m.input.SetValue("")
	m.input.Focus()
	return m, nil
}

// tags lists the currently selectable words: suggestions on the welcome
// view, followed by the history, most recent first.
func (m Model) tags() []tag {
	var tags []tag
	if m.state == stateWelcome {
		for _, word := range m.welcome.Suggestions {
			tags = append(tags, tag{word: word})
		}
	}
	for _, word := range m.historyWords {
		tags = append(tags, tag{word: word, history: true})
	}
	return tags
}

// cycleTagFocus moves tag focus by delta, wrapping through the input
// (focusedTag == -1) at either end.
func (m *Model) cycleTagFocus(delta int) {
	tags := m.tags()
	if len(tags) == 0 {
		m.focusedTag = -1
		m.input.Focus()
		return
	}

	next := m.focusedTag + delta
	if next >= len(tags) {
		next = -1
	}
	if next < -1 {
		next = len(tags) - 1
	}
	m.focusedTag = next
	if next == -1 {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
