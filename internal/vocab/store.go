package vocab

import (
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// NotFound is the index returned by Find when nothing matches.
const NotFound = -1

// SlotUnset marks a definition edit that does not target a slot.
const SlotUnset = 0

// Store is the ordered, in-memory list of entries. Uniqueness of
// (word, lang) is not enforced; lookups resolve to the last match.
type Store struct {
	entries []Entry
}

// NewStore builds a store over entries, in order.
func NewStore(entries ...Entry) *Store {
	s := &Store{entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		s.entries = append(s.entries, normalize(e))
	}
	return s
}

func normalize(e Entry) Entry {
	if e.Definitions == nil {
		e.Definitions = []string{}
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	if e.Examples == nil {
		e.Examples = []string{}
	}
	return e
}

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.entries) }

// Entries returns the backing slice. Callers must not modify it.
func (s *Store) Entries() []Entry { return s.entries }

// At returns the entry at index i.
func (s *Store) At(i int) Entry { return s.entries[i] }

// Find returns the index of the last entry whose word and lang both match
// exactly, or NotFound.
func (s *Store) Find(word, lang string) int {
	idx := NotFound
	for i, e := range s.entries {
		if e.Word == word && e.Lang == lang {
			idx = i
		}
	}
	return idx
}

// FindWord is Find without the language constraint.
func (s *Store) FindWord(word string) int {
	idx := NotFound
	for i, e := range s.entries {
		if e.Word == word {
			idx = i
		}
	}
	return idx
}

func (s *Store) resolve(word, lang string) (int, error) {
	idx := s.Find(word, lang)
	if idx == NotFound {
		return NotFound, &NotFoundError{Word: word, Lang: lang}
	}
	return idx, nil
}

// Add appends a new entry and returns its index. A (word, lang) pair that
// already exists is shadowed, not replaced.
func (s *Store) Add(word, lang, definition string) int {
	s.entries = append(s.entries, NewEntry(word, lang, definition))
	return len(s.entries) - 1
}

// SetDefinition overwrites the 1-based slot of the matching entry, or
// appends when appendDef is set. Exactly one of the two must be chosen.
func (s *Store) SetDefinition(word, lang, definition string, slot int, appendDef bool) (int, error) {
	if appendDef && slot != SlotUnset {
		return NotFound, invalidArguments("cannot append and edit a definition at the same time")
	}
	if !appendDef && slot < 1 {
		return NotFound, invalidArguments("must select a valid definition number")
	}

	idx, err := s.resolve(word, lang)
	if err != nil {
		return NotFound, err
	}

	e := &s.entries[idx]
	if appendDef {
		e.Definitions = append(e.Definitions, definition)
		return idx, nil
	}
	if slot > len(e.Definitions) {
		return idx, &SlotError{Word: e.Word, Slot: slot, Count: len(e.Definitions)}
	}
	e.Definitions[slot-1] = definition
	return idx, nil
}

// AddTag tags the matching entry. Tags behave as a set: the returned bool is
// false when the tag was already present and nothing changed.
func (s *Store) AddTag(word, lang, tag string) (int, bool, error) {
	idx, err := s.resolve(word, lang)
	if err != nil {
		return NotFound, false, err
	}
	e := &s.entries[idx]
	if e.HasTag(tag) {
		return idx, false, nil
	}
	e.Tags = append(e.Tags, tag)
	return idx, true, nil
}

// RemoveTag drops every occurrence of tag and reports how many were removed.
func (s *Store) RemoveTag(word, lang, tag string) (int, int, error) {
	idx, err := s.resolve(word, lang)
	if err != nil {
		return NotFound, 0, err
	}
	e := &s.entries[idx]
	before := len(e.Tags)
	e.Tags = slices.DeleteFunc(e.Tags, func(t string) bool { return t == tag })
	return idx, before - len(e.Tags), nil
}

// AddExample appends a sentence verbatim.
func (s *Store) AddExample(word, lang, example string) (int, error) {
	idx, err := s.resolve(word, lang)
	if err != nil {
		return NotFound, err
	}
	e := &s.entries[idx]
	e.Examples = append(e.Examples, example)
	return idx, nil
}

// Delete removes the matching entry and returns it.
func (s *Store) Delete(word, lang string) (Entry, error) {
	idx, err := s.resolve(word, lang)
	if err != nil {
		return Entry{}, err
	}
	removed := s.entries[idx]
	s.entries = slices.Delete(s.entries, idx, idx+1)
	return removed, nil
}

// Filter selects entries for listing and export. Zero-valued fields match
// everything.
type Filter struct {
	Lang    string
	Tags    []string
	Pattern string
}

// ParseTags splits a comma separated tag list, dropping empty items.
func ParseTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Validate checks the glob pattern, if any.
func (f Filter) Validate() error {
	if f.Pattern != "" && !doublestar.ValidatePattern(f.Pattern) {
		return invalidArguments("bad word pattern %q", f.Pattern)
	}
	return nil
}

// Match reports whether e passes the filter.
func (f Filter) Match(e Entry) bool {
	if f.Lang != "" && e.Lang != f.Lang {
		return false
	}
	if len(f.Tags) > 0 && !e.HasTags(f.Tags) {
		return false
	}
	if f.Pattern != "" {
		ok, err := doublestar.Match(f.Pattern, e.Word)
		if err != nil || !ok {
			return false
		}
	}
	return true
}

// Select returns the entries passing f, in store order.
func (s *Store) Select(f Filter) []Entry {
	var out []Entry
	for _, e := range s.entries {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}
