package tokenize

import (
	"testing"

	"github.com/nvandessel/readscore/internal/models"
	"github.com/stretchr/testify/require"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single sentence", "The cat sat on the mat.", []string{"The cat sat on the mat."}},
		{"no terminal punctuation", "no punctuation here", []string{"no punctuation here"}},
		{"three terminals", "One. Two? Three!", []string{"One.", "Two?", "Three!"}},
		{"trailing space dropped", "Done. ", []string{"Done."}},
		{"only one space consumed", "A.  B", []string{"A.", " B"}},
		{"punctuation without space", "e.g.this is one", []string{"e.g.this is one"}},
		{"tab after terminal", "Yes!\tNo.", []string{"Yes!", "No."}},
		{"whitespace chunk kept", "Hi. \t", []string{"Hi.", "\t"}},
		{"empty line", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SplitSentences(tt.input))
		})
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  models.Sentence
	}{
		{"simple", "Cat sat.", models.Sentence{"Cat", "sat."}},
		{"whitespace runs", "  a \t b  ", models.Sentence{"a", "b"}},
		{"punctuation attached", "Well, really?", models.Sentence{"Well,", "really?"}},
		{"only whitespace", " \t ", models.Sentence{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitWords(tt.input)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				require.Equal(t, tt.want[i], got[i])
			}
		})
	}
}

func TestSegment(t *testing.T) {
	req := require.New(t)
	doc := models.NewDocument("test", []string{
		"The cat sat. The dog ran",
		"",
		"   ",
		"away! Fin",
	})

	got := Segment(doc)

	req.Len(got, 4)
	req.Equal([]string{"The", "cat", "sat."}, []string(got[0]))
	req.Equal([]string{"The", "dog", "ran"}, []string(got[1]))
	req.Equal([]string{"away!"}, []string(got[2]))
	req.Equal([]string{"Fin"}, []string(got[3]))
}

func TestSegment_NeverCrossesLines(t *testing.T) {
	req := require.New(t)
	doc := models.NewDocument("test", []string{"first half", "second half."})

	req.Len(Segment(doc), 2)
}

func TestSegment_EmptyDocument(t *testing.T) {
	require.Empty(t, Segment(models.NewDocument("test", nil)))
}
