// Package document reads input text into an immutable models.Document.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/nvandessel/readscore/internal/models"
)

// ErrInputUnavailable is returned when no document can be supplied: the
// file is missing, unreadable, or not text.
var ErrInputUnavailable = errors.New("input unavailable")

// MaxInputSize bounds how much text a single document may hold.
const MaxInputSize = 32 << 20

// Load reads the file at path.
func Load(path string) (models.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %v", ErrInputUnavailable, err)
	}
	defer f.Close()

	return Read(path, f)
}

// Read consumes r entirely and splits it into lines. Line terminators are
// "\n" with an optional preceding "\r"; a final terminator does not add an
// empty line.
func Read(source string, r io.Reader) (models.Document, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxInputSize+1))
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: failed to read %s: %v", ErrInputUnavailable, source, err)
	}
	if len(data) > MaxInputSize {
		return models.Document{}, fmt.Errorf("%w: %s exceeds %d bytes", ErrInputUnavailable, source, MaxInputSize)
	}
	if err := checkText(data); err != nil {
		return models.Document{}, fmt.Errorf("%w: %s: %v", ErrInputUnavailable, source, err)
	}

	return models.NewDocument(source, SplitLines(string(data))), nil
}

// FromText builds a document from an in-memory string.
func FromText(source, text string) models.Document {
	return models.NewDocument(source, SplitLines(text))
}

// SplitLines splits s on "\n", trimming one trailing "\r" per line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// checkText rejects content whose sniffed type does not descend from text/plain.
func checkText(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	mt := mimetype.Detect(data)
	for m := mt; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return nil
		}
	}
	return fmt.Errorf("not a text document (detected %s)", mt.String())
}
