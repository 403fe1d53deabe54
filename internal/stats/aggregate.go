// Package stats aggregates word, sentence, character and syllable counts
// over a tokenized document.
package stats

import (
	"unicode/utf8"

	"github.com/nvandessel/readscore/internal/models"
	"github.com/nvandessel/readscore/internal/syllable"
	"github.com/nvandessel/readscore/internal/tokenize"
)

// Aggregate computes all five counts in a single pass over sentences.
// A sentence with no words still counts as a sentence.
func Aggregate(sentences []models.Sentence) models.Counts {
	var c models.Counts
	c.Sentences = len(sentences)
	for _, sentence := range sentences {
		c.Words += len(sentence)
		for _, word := range sentence {
			c.Characters += utf8.RuneCountInString(word)

			n := syllable.Count(word)
			c.Syllables += n
			if n > 2 {
				c.Polysyllables++
			}
		}
	}
	return c
}

// FromDocument tokenizes doc and aggregates the result.
func FromDocument(doc models.Document) models.Counts {
	return Aggregate(tokenize.Segment(doc))
}
