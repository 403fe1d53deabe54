// Package sanitize cleans document text and source labels before they are
// echoed to a terminal or written to the history store. It strips terminal
// escape sequences and control characters; it never alters what is counted.
package sanitize

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/nvandessel/readscore/internal/models"
)

// MaxSourceLength is the maximum stored length of a report source, in runes.
const MaxSourceLength = 255

var (
	// reANSIEscape matches CSI sequences such as colors and cursor moves.
	reANSIEscape = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]`)

	// reOSCEscape matches operating system commands such as title changes,
	// terminated by BEL or ST.
	reOSCEscape = regexp.MustCompile(`\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)
)

// Line prepares one document line for terminal output. Escape sequences and
// control characters other than tab are removed.
func Line(input string) string {
	if input == "" {
		return ""
	}
	s := reOSCEscape.ReplaceAllString(input, "")
	s = reANSIEscape.ReplaceAllString(s, "")
	return stripControlChars(s)
}

// Lines applies Line to every element and returns a new slice.
func Lines(input []string) []string {
	if input == nil {
		return nil
	}
	out := make([]string, len(input))
	for i, line := range input {
		out[i] = Line(line)
	}
	return out
}

// Source sanitizes a document source label for storage. File paths are
// cleaned; the stdin marker passes through unchanged.
func Source(input string) string {
	if input == "" || input == models.StdinSource {
		return input
	}

	s := strings.TrimSpace(stripControlChars(input))
	if s == "" {
		return ""
	}
	s = filepath.Clean(s)

	// Truncate rune-safe so a multi-byte character is never split.
	if utf8.RuneCountInString(s) > MaxSourceLength {
		runes := []rune(s)
		s = string(runes[:MaxSourceLength]) + "..."
	}
	return s
}

// stripControlChars removes ASCII control characters (0x00-0x1F) except tab,
// DEL and the C1 range.
func stripControlChars(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r < 0x20 && r != '\t') || r == 0x7F || (r >= 0x80 && r <= 0x9F) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
