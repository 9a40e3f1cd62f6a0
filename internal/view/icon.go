package view

import "strings"

// Icons for the recognized parts of speech. IconDefault covers everything
// else, including an unspecified part of speech.
const (
	IconNoun         = "⬢"
	IconVerb         = "➤"
	IconAdjective    = "✦"
	IconAdverb       = "✧"
	IconPronoun      = "◉"
	IconPreposition  = "⇄"
	IconConjunction  = "∞"
	IconInterjection = "❢"
	IconDefault      = "¶"
)

var iconsByPartOfSpeech = map[string]string{
	"noun":         IconNoun,
	"verb":         IconVerb,
	"adjective":    IconAdjective,
	"adverb":       IconAdverb,
	"pronoun":      IconPronoun,
	"preposition":  IconPreposition,
	"conjunction":  IconConjunction,
	"interjection": IconInterjection,
}

// IconFor is total: any input, including an unrecognized or empty part of
// speech, yields a defined icon.
func IconFor(partOfSpeech string) string {
	if icon, ok := iconsByPartOfSpeech[strings.ToLower(strings.TrimSpace(partOfSpeech))]; ok {
		return icon
	}
	return IconDefault
}
