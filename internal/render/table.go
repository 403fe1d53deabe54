package render

import (
	"io"
	"strconv"

	"github.com/nvandessel/readscore/internal/models"
	"github.com/nvandessel/readscore/internal/scoring"
	"github.com/olekukonko/tablewriter"
)

// TableRenderer prints counts and scores as aligned tables.
type TableRenderer struct{}

func (TableRenderer) Render(w io.Writer, v View) error {
	c := v.Report.Counts
	counts := newTable(w, []string{"Statistic", "Count"})
	counts.AppendBulk([][]string{
		{"Words", strconv.Itoa(c.Words)},
		{"Sentences", strconv.Itoa(c.Sentences)},
		{"Characters", strconv.Itoa(c.Characters)},
		{"Syllables", strconv.Itoa(c.Syllables)},
		{"Polysyllables", strconv.Itoa(c.Polysyllables)},
	})
	counts.Render()

	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	scores := newTable(w, []string{"Metric", "Index", "Score", "Age"})
	for _, s := range v.SelectedScores() {
		scores.Append(scoreRow(s))
	}
	scores.SetFooter([]string{"", "Average age", "", scoring.FormatScore(v.Report.AverageAge)})
	scores.Render()
	return nil
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func scoreRow(s models.Score) []string {
	return []string{string(s.Metric), s.Name, scoring.FormatScore(s.Value), strconv.Itoa(s.Age)}
}
