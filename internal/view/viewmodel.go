// Package view builds presentational view-models from dictionary data.
// It performs no I/O so any front end (TUI, plain CLI) can bind to it.
package view

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/okanda/wordbook/internal/dictionary/freedict"
)

// Placeholders shown when an entry is missing a field.
const (
	PlaceholderPhonetic     = "Not available"
	PlaceholderPartOfSpeech = "Not specified"
	PlaceholderDefinition   = "Definition not available"
	PlaceholderExample      = "Example not available"
)

// User-facing messages for the error view.
const (
	MsgEmptyInput    = "Please enter a word to search."
	MsgRequestFailed = "Something went wrong. Please try again later."
)

// NotFoundMessage is the error-view message for a word the source does not
// know.
func NotFoundMessage(word string) string {
	return fmt.Sprintf("%q not found. Please try another word.", word)
}

// DefaultSuggestions are the clickable starter words on the welcome view.
var DefaultSuggestions = []string{"dictionary", "eloquent", "serendipity", "ubiquitous"}

// ResultView is the presentational shape of one dictionary entry: only the
// first meaning and its first definition are surfaced.
type ResultView struct {
	Title        string
	Phonetic     string
	PartOfSpeech string
	Icon         string
	Definition   string
	Example      string
	// HasExample distinguishes a real example from its placeholder so the
	// front end can style the two differently.
	HasExample bool
	AudioURL   string
	HasAudio   bool
}

type ErrorView struct {
	Message string
}

type WelcomeView struct {
	Intro       string
	Suggestions []string
}

func BuildWelcome(suggestions []string) WelcomeView {
	if len(suggestions) == 0 {
		suggestions = DefaultSuggestions
	}
	return WelcomeView{
		Intro:       "Type a word and press Enter to look up its definition, phonetics and usage.",
		Suggestions: suggestions,
	}
}

func BuildError(message string) ErrorView {
	return ErrorView{Message: message}
}

// BuildResult maps an entry to its view, substituting placeholders for every
// missing field.
func BuildResult(entry freedict.Entry) ResultView {
	result := ResultView{
		Title:        entry.Word,
		Phonetic:     PlaceholderPhonetic,
		PartOfSpeech: PlaceholderPartOfSpeech,
		Definition:   PlaceholderDefinition,
		Example:      PlaceholderExample,
	}
	if entry.Phonetic != "" {
		result.Phonetic = entry.Phonetic
	}
	if audioURL := entry.FirstAudioURL(); audioURL != "" {
		result.AudioURL = audioURL
		result.HasAudio = true
	}

	partOfSpeech := ""
	if meaning, ok := entry.PrimaryMeaning(); ok {
		partOfSpeech = meaning.PartOfSpeech
	}
	if partOfSpeech != "" {
		result.PartOfSpeech = capitalize(partOfSpeech)
	}
	result.Icon = IconFor(partOfSpeech)

	if definition, ok := entry.PrimaryDefinition(); ok {
		result.Definition = definition.Definition
		if definition.Example != "" {
			result.Example = definition.Example
			result.HasExample = true
		}
	}
	return result
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return strings.ToUpper(string(r)) + s[size:]
}
