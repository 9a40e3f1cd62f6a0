package history

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// storageKey is the single key the history occupies in the KV store. The
// value is a JSON array of lowercase words, most recent first.
const storageKey = "dictionaryHistory"

// DefaultCapacity bounds how many words the history keeps.
const DefaultCapacity = 5

// Store is the search history: bounded, de-duplicated, most recent first.
type Store struct {
	kv       KV
	capacity int
	words    []string
	onChange func(words []string)
}

func NewStore(kv KV, capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{kv: kv, capacity: capacity}
}

// OnChange registers a callback fired after every successful mutation.
func (s *Store) OnChange(fn func(words []string)) {
	s.onChange = fn
}

// Load reads the persisted history. Absent or malformed content yields an
// empty history; it is logged but never fatal.
func (s *Store) Load() {
	s.words = nil

	raw, ok, err := s.kv.Get(storageKey)
	if err != nil {
		slog.Default().Warn("discarding unreadable search history", "error", err)
		return
	}
	if !ok || raw == "" {
		return
	}

	var words []string
	if err := json.Unmarshal([]byte(raw), &words); err != nil {
		slog.Default().Warn("discarding malformed search history", "error", err)
		return
	}
	if len(words) > s.capacity {
		words = words[:s.capacity]
	}
	s.words = words
}

// Record moves word to the front of the history, dropping any previous
// occurrence, truncates to capacity and persists the result.
func (s *Store) Record(word string) error {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil
	}

	next := make([]string, 0, len(s.words)+1)
	next = append(next, word)
	for _, w := range s.words {
		if w != word {
			next = append(next, w)
		}
	}
	if len(next) > s.capacity {
		next = next[:s.capacity]
	}
	s.words = next

	if err := s.persist(); err != nil {
		return fmt.Errorf("s.persist > %w", err)
	}
	s.notify()
	return nil
}

// Clear empties the history and persists the empty list.
func (s *Store) Clear() error {
	s.words = nil
	if err := s.persist(); err != nil {
		return fmt.Errorf("s.persist > %w", err)
	}
	s.notify()
	return nil
}

// Words returns the history, most recent first.
func (s *Store) Words() []string {
	words := make([]string, len(s.words))
	copy(words, s.words)
	return words
}

func (s *Store) persist() error {
	words := s.words
	if words == nil {
		words = []string{}
	}
	contents, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("json.Marshal > %w", err)
	}
	if err := s.kv.Set(storageKey, string(contents)); err != nil {
		return fmt.Errorf("kv.Set > %w", err)
	}
	return nil
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange(s.Words())
	}
}
