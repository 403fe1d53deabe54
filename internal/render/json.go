package render

import (
	"encoding/json"
	"io"

	"github.com/nvandessel/readscore/internal/models"
	"github.com/nvandessel/readscore/internal/scoring"
)

// JSONRenderer prints the report as indented JSON.
type JSONRenderer struct{}

type jsonScore struct {
	models.Score
	Display string `json:"display"`
}

func (JSONRenderer) Render(w io.Writer, v View) error {
	selected := v.SelectedScores()
	scores := make([]jsonScore, len(selected))
	for i, s := range selected {
		scores[i] = jsonScore{Score: s, Display: scoring.FormatScore(s.Value)}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]interface{}{
		"id":                  v.Report.ID,
		"source":              v.Report.Source,
		"created_at":          v.Report.CreatedAt,
		"language":            v.Report.Language,
		"counts":              v.Report.Counts,
		"scores":              scores,
		"average_age":         v.Report.AverageAge,
		"average_age_display": scoring.FormatScore(v.Report.AverageAge),
	})
}
