// https://dictionaryapi.dev/
package freedict

// Entry is one dictionary result for a word. The API returns an array of
// entries; consumers only use the first one.
type Entry struct {
	Word      string     `json:"word"`
	Phonetic  string     `json:"phonetic"`
	Phonetics []Phonetic `json:"phonetics"`
	Meanings  []Meaning  `json:"meanings"`
}

type Phonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms,omitempty"`
	Antonyms     []string     `json:"antonyms,omitempty"`
}

type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms,omitempty"`
	Antonyms   []string `json:"antonyms,omitempty"`
}

// FirstAudioURL returns the first non-empty audio URL among the entry's
// phonetics, or an empty string when the entry has no playable clip.
func (e Entry) FirstAudioURL() string {
	for _, phonetic := range e.Phonetics {
		if phonetic.Audio != "" {
			return phonetic.Audio
		}
	}
	return ""
}

// PrimaryMeaning returns the first meaning of the entry.
func (e Entry) PrimaryMeaning() (Meaning, bool) {
	if len(e.Meanings) == 0 {
		return Meaning{}, false
	}
	return e.Meanings[0], true
}

// PrimaryDefinition returns the first definition of the first meaning.
func (e Entry) PrimaryDefinition() (Definition, bool) {
	meaning, ok := e.PrimaryMeaning()
	if !ok || len(meaning.Definitions) == 0 {
		return Definition{}, false
	}
	return meaning.Definitions[0], true
}
