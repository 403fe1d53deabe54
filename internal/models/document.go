// Package models defines the values exchanged between the readscore pipeline stages.
package models

// StdinSource is the Source recorded for documents read from standard input.
const StdinSource = "-"

// Document is the full input text as an ordered sequence of lines.
// A Document is read once and never mutated afterwards.
type Document struct {
	// Where the text came from (file path, StdinSource, or a caller label)
	Source string `json:"source" yaml:"source"`

	// Lines without their terminators
	Lines []string `json:"lines" yaml:"lines"`
}

// NewDocument copies lines into a new Document so later changes to the
// caller's slice cannot leak into it.
func NewDocument(source string, lines []string) Document {
	cp := make([]string, len(lines))
	copy(cp, lines)
	return Document{Source: source, Lines: cp}
}

// IsEmpty reports whether the document has no non-blank line.
func (d Document) IsEmpty() bool {
	for _, line := range d.Lines {
		for _, r := range line {
			if !isSpace(r) {
				return false
			}
		}
	}
	return true
}

// isSpace matches the ASCII whitespace set used by the tokenizer.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Sentence is the ordered list of word tokens of one sentence.
// Punctuation stays attached to its word.
type Sentence []string
