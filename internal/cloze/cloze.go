// Package cloze picks cloze-deletion prompts out of example sentences and
// runs the guessing loop.
package cloze

import (
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/jeanpaul/clv/internal/vocab"
)

// Placeholder replaces the answer span in the prompt.
const Placeholder = "{...}"

var spanPattern = regexp.MustCompile(`\{(.*?)\}`)

// Card is one quiz prompt.
type Card struct {
	Word     string
	Lang     string
	Sentence string
	Masked   string
	Answer   string
}

// Parse extracts the first {answer} span of sentence. It reports false when
// the sentence holds no complete span.
func Parse(sentence string) (Card, bool) {
	loc := spanPattern.FindStringSubmatchIndex(sentence)
	if loc == nil {
		return Card{}, false
	}
	return Card{
		Sentence: sentence,
		Masked:   sentence[:loc[0]] + Placeholder + sentence[loc[1]:],
		Answer:   sentence[loc[2]:loc[3]],
	}, true
}

// Candidates collects a card for every example, across all entries, that
// carries a cloze span.
func Candidates(s *vocab.Store) []Card {
	var cards []Card
	for _, e := range s.Entries() {
		for _, ex := range e.Examples {
			if !strings.Contains(ex, "{") {
				continue
			}
			c, ok := Parse(ex)
			if !ok {
				continue
			}
			c.Word, c.Lang = e.Word, e.Lang
			cards = append(cards, c)
		}
	}
	return cards
}

// Pick chooses a card uniformly at random. A nil rng uses the global source.
func Pick(s *vocab.Store, rng *rand.Rand) (Card, error) {
	cards := Candidates(s)
	if len(cards) == 0 {
		return Card{}, vocab.ErrNoClozeAvailable
	}
	var i int
	if rng != nil {
		i = rng.IntN(len(cards))
	} else {
		i = rand.IntN(len(cards))
	}
	return cards[i], nil
}

// Strip removes cloze braces, keeping the enclosed text.
func Strip(sentence string) string {
	return spanPattern.ReplaceAllString(sentence, "$1")
}
