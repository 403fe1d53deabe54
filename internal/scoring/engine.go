package scoring

import (
	"errors"

	"github.com/nvandessel/readscore/internal/models"
	"github.com/samber/lo"
)

// EngineConfig configures the score engine.
type EngineConfig struct {
	// NegativeAge decides how scores below zero map to an age.
	// Default: NegativeAgeClamp.
	NegativeAge NegativeAgePolicy
}

// DefaultEngineConfig returns the default engine configuration.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{NegativeAge: NegativeAgeClamp}
}

// Engine computes scores and ages from aggregate counts.
type Engine struct {
	config EngineConfig
}

// NewEngine creates an engine, replacing an unknown policy with the default.
func NewEngine(config EngineConfig) *Engine {
	if !config.NegativeAge.Valid() {
		config.NegativeAge = NegativeAgeClamp
	}
	return &Engine{config: config}
}

// Policy returns the negative-age policy in effect.
func (e *Engine) Policy() NegativeAgePolicy {
	return e.config.NegativeAge
}

// Age maps score to a reader age under the engine's policy.
func (e *Engine) Age(score float64) (int, error) {
	return Age(score, e.config.NegativeAge)
}

// Score computes one metric and its age.
func (e *Engine) Score(m models.Metric, c models.Counts) (models.Score, error) {
	value, err := Compute(m, c)
	if err != nil {
		return models.Score{}, err
	}
	age, err := e.Age(value)
	if err != nil {
		return models.Score{}, &MetricError{Metric: m, Err: err}
	}
	return models.Score{Metric: m, Name: m.Name(), Value: value, Age: age}, nil
}

// AllScores computes every metric. Metrics that fail are left out of the
// result and their errors are joined, so callers can still use the rest.
func (e *Engine) AllScores(c models.Counts) (models.Scores, error) {
	scores := make(models.Scores, len(models.AllMetrics))
	var errs []error
	for _, m := range models.AllMetrics {
		s, err := e.Score(m, c)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		scores[m] = s
	}
	return scores, errors.Join(errs...)
}

// AverageAge returns the mean of the four metric ages.
func (e *Engine) AverageAge(c models.Counts) (float64, error) {
	scores, err := e.AllScores(c)
	if err != nil {
		return 0, err
	}
	return MeanAge(scores.Ordered()), nil
}

// MeanAge averages the ages of scores, 0 for none.
func MeanAge(scores []models.Score) float64 {
	if len(scores) == 0 {
		return 0
	}
	total := lo.SumBy(scores, func(s models.Score) int { return s.Age })
	return float64(total) / float64(len(scores))
}

var defaultEngine = NewEngine(DefaultEngineConfig())

// AllScores computes every metric with the default engine.
func AllScores(c models.Counts) (models.Scores, error) {
	return defaultEngine.AllScores(c)
}

// AverageAge computes the mean age with the default engine.
func AverageAge(c models.Counts) (float64, error) {
	return defaultEngine.AverageAge(c)
}
