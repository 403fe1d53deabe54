package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gookit/color"
	"github.com/nvandessel/readscore/internal/sanitize"
	"github.com/nvandessel/readscore/internal/scoring"
)

// TextRenderer prints the classic console report.
type TextRenderer struct{}

var ageStyle = color.New(color.FgCyan, color.OpBold)

func (r TextRenderer) Render(w io.Writer, v View) error {
	if err := r.RenderCounts(w, v); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return r.RenderScores(w, v)
}

// RenderCounts prints the optional text echo and the five counts.
func (TextRenderer) RenderCounts(w io.Writer, v View) error {
	p := &printer{w: w}

	if v.ShowText {
		p.printf("The text is:\n")
		for _, line := range sanitize.Lines(v.Lines) {
			p.printf("%s\n", line)
		}
		p.printf("\n")
	}

	c := v.Report.Counts
	p.printf("Words: %d\n", c.Words)
	p.printf("Sentences: %d\n", c.Sentences)
	p.printf("Characters: %d\n", c.Characters)
	p.printf("Syllables: %d\n", c.Syllables)
	p.printf("Polysyllables: %d\n", c.Polysyllables)
	return p.err
}

// RenderScores prints the selected scores and the average age.
func (TextRenderer) RenderScores(w io.Writer, v View) error {
	p := &printer{w: w}
	for _, s := range v.SelectedScores() {
		p.printf("%s: %s (about %s year olds).\n", s.Name, scoring.FormatScore(s.Value), emphasize(strconv.Itoa(s.Age), v.Color))
	}
	p.printf("This text should be understood in average by %s year olds.\n",
		emphasize(scoring.FormatScore(v.Report.AverageAge), v.Color))
	return p.err
}

func emphasize(s string, enabled bool) string {
	if !enabled {
		return s
	}
	return ageStyle.Sprint(s)
}

// printer remembers the first write error so callers report it once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
