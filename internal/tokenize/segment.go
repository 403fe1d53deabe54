// Package tokenize splits a document into sentences and sentences into words.
//
// Splitting is line-scoped: a sentence never spans two lines, and a line
// without terminal punctuation still yields one sentence.
package tokenize

import (
	"strings"

	"github.com/nvandessel/readscore/internal/models"
)

// Segment splits every line of doc into sentences and each sentence into
// word tokens. Blank lines contribute nothing. A sentence chunk made only of
// whitespace is kept as an empty sentence.
func Segment(doc models.Document) []models.Sentence {
	var sentences []models.Sentence
	for _, line := range doc.Lines {
		if isBlank(line) {
			continue
		}
		for _, chunk := range SplitSentences(line) {
			sentences = append(sentences, SplitWords(chunk))
		}
	}
	return sentences
}

// SplitSentences breaks line immediately after '.', '?' or '!' when the next
// character is whitespace. That whitespace character is consumed by the
// break. Trailing empty chunks are dropped.
func SplitSentences(line string) []string {
	var chunks []string
	start := 0
	for i := 1; i < len(line); i++ {
		if isSpaceByte(line[i]) && isTerminal(line[i-1]) {
			chunks = append(chunks, line[start:i])
			start = i + 1
		}
	}
	chunks = append(chunks, line[start:])

	for len(chunks) > 0 && chunks[len(chunks)-1] == "" {
		chunks = chunks[:len(chunks)-1]
	}
	if len(chunks) == 0 {
		return nil
	}
	return chunks
}

// SplitWords splits a sentence on runs of whitespace, discarding empty tokens.
func SplitWords(sentence string) models.Sentence {
	return strings.FieldsFunc(sentence, isSpace)
}

func isTerminal(b byte) bool {
	return b == '.' || b == '?' || b == '!'
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// isSpace is the ASCII whitespace set. Unicode spaces are word characters.
func isSpace(r rune) bool {
	return r < 0x80 && isSpaceByte(byte(r))
}

func isBlank(line string) bool {
	return strings.TrimFunc(line, isSpace) == ""
}
