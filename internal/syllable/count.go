// Package syllable provides the vowel-run syllable heuristic used by the
// readability indices.
package syllable

import (
	"regexp"
	"strings"
)

// vowelRun matches one or two consecutive vowels. Longer runs are consumed
// greedily two at a time, so "beauu" counts as two units.
var vowelRun = regexp.MustCompile(`[aeiouy]{1,2}`)

// stripped lists the punctuation removed before counting. '?' is not in it.
var stripped = strings.NewReplacer(".", "", "!", "", ",", "")

// Count estimates the syllables of a single word. It never returns less than 1.
//
// The word is lower-cased and stripped of '.', '!' and ','. One trailing 'e'
// is dropped, then each greedy match of one or two vowels counts as a
// syllable.
func Count(word string) int {
	w := stripped.Replace(strings.ToLower(word))
	w = strings.TrimSuffix(w, "e")

	n := len(vowelRun.FindAllStringIndex(w, -1))
	if n == 0 {
		return 1
	}
	return n
}

// IsPolysyllable reports whether word has more than two syllables.
func IsPolysyllable(word string) bool {
	return Count(word) > 2
}
