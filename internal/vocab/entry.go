// Package vocab holds the vocabulary record model and the in-memory store
// that every clv command reads and edits.
package vocab

import (
	"encoding/json"
	"slices"
)

// Entry is one vocabulary record.
type Entry struct {
	Word        string   `json:"word"`
	Lang        string   `json:"lang"`
	Definitions []string `json:"definitions"`
	Tags        []string `json:"tags"`
	Examples    []string `json:"examples"`
}

// NewEntry returns an entry holding a single definition slot.
func NewEntry(word, lang, definition string) Entry {
	return Entry{
		Word:        word,
		Lang:        lang,
		Definitions: []string{definition},
		Tags:        []string{},
		Examples:    []string{},
	}
}

// MarshalJSON always emits list fields as arrays, never null.
func (e Entry) MarshalJSON() ([]byte, error) {
	type plain Entry
	out := plain(e)
	if out.Definitions == nil {
		out.Definitions = []string{}
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if out.Examples == nil {
		out.Examples = []string{}
	}
	return json.Marshal(out)
}

// HasTag reports whether tag is present.
func (e Entry) HasTag(tag string) bool {
	return slices.Contains(e.Tags, tag)
}

// HasTags reports whether the entry's tags are a superset of tags.
func (e Entry) HasTags(tags []string) bool {
	for _, t := range tags {
		if !e.HasTag(t) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (e Entry) Clone() Entry {
	return Entry{
		Word:        e.Word,
		Lang:        e.Lang,
		Definitions: slices.Clone(e.Definitions),
		Tags:        slices.Clone(e.Tags),
		Examples:    slices.Clone(e.Examples),
	}
}
