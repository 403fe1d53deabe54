package render

import (
	"io"
	"strconv"
	"time"

	"github.com/nvandessel/readscore/internal/models"
	"github.com/nvandessel/readscore/internal/scoring"
)

// RenderHistory prints one row per saved report.
func RenderHistory(w io.Writer, reports []models.Report) {
	table := newTable(w, []string{"ID", "Created", "Source", "Words", "Sentences", "Average age"})
	for _, r := range reports {
		table.Append([]string{
			r.ID,
			r.CreatedAt.Local().Format(time.DateTime),
			r.Source,
			strconv.Itoa(r.Counts.Words),
			strconv.Itoa(r.Counts.Sentences),
			scoring.FormatScore(r.AverageAge),
		})
	}
	table.Render()
}
