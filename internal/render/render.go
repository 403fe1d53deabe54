// Package render formats analysis reports for the console.
package render

import (
	"fmt"
	"io"

	"github.com/nvandessel/readscore/internal/models"
	"github.com/samber/lo"
)

// Format names an output format.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// View is what a renderer prints.
type View struct {
	Report models.Report

	// Lines of the document, echoed by the text renderer when ShowText is set
	Lines []string

	// Selection filters which scores are printed. Empty means all.
	Selection []models.Metric

	ShowText bool
	Color    bool
}

// SelectedScores returns the report scores named by the selection, in report order.
func (v View) SelectedScores() []models.Score {
	if len(v.Selection) == 0 {
		return v.Report.Scores
	}
	return lo.Filter(v.Report.Scores, func(s models.Score, _ int) bool {
		return lo.Contains(v.Selection, s.Metric)
	})
}

// Renderer writes a view to w.
type Renderer interface {
	Render(w io.Writer, v View) error
}

// New returns the renderer for format.
func New(format Format) (Renderer, error) {
	switch format {
	case FormatText:
		return TextRenderer{}, nil
	case FormatTable:
		return TableRenderer{}, nil
	case FormatJSON:
		return JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q: want text, table or json", format)
	}
}
