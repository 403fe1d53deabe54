package scoring

import (
	"fmt"
	"strings"

	"github.com/nvandessel/readscore/internal/models"
)

// SelectAll is the selection token for every metric.
const SelectAll = "all"

// ParseSelection turns a selection token into the metrics it names.
// Tokens are matched case-insensitively after trimming whitespace.
func ParseSelection(token string) ([]models.Metric, error) {
	t := strings.TrimSpace(token)
	if strings.EqualFold(t, SelectAll) {
		out := make([]models.Metric, len(models.AllMetrics))
		copy(out, models.AllMetrics)
		return out, nil
	}
	for _, m := range models.AllMetrics {
		if strings.EqualFold(t, string(m)) {
			return []models.Metric{m}, nil
		}
	}
	return nil, fmt.Errorf("%w %q: want one of ARI, FK, SMOG, CL, all", ErrUnrecognizedMetric, token)
}
