// Package scoring computes the four readability indices and maps them to
// estimated reader ages.
package scoring

import (
	"fmt"
	"math"

	"github.com/nvandessel/readscore/internal/models"
)

// ARI computes the Automated Readability Index.
//
// Formula: 4.71 * (characters / words) + 0.5 * (words / sentences) - 21.43
func ARI(c models.Counts) (float64, error) {
	if err := requireWords(models.MetricARI, c); err != nil {
		return 0, err
	}
	if err := requireSentences(models.MetricARI, c); err != nil {
		return 0, err
	}
	return 4.71*ratio(c.Characters, c.Words) + 0.5*ratio(c.Words, c.Sentences) - 21.43, nil
}

// FleschKincaid computes the Flesch–Kincaid grade level.
//
// Formula: 0.39 * (words / sentences) + 11.8 * (syllables / words) - 15.59
func FleschKincaid(c models.Counts) (float64, error) {
	if err := requireWords(models.MetricFK, c); err != nil {
		return 0, err
	}
	if err := requireSentences(models.MetricFK, c); err != nil {
		return 0, err
	}
	return 0.39*ratio(c.Words, c.Sentences) + 11.8*ratio(c.Syllables, c.Words) - 15.59, nil
}

// SMOG computes the Simple Measure of Gobbledygook. It only divides by the
// sentence count, so a document with sentences but no words still scores.
//
// Formula: 1.043 * sqrt(polysyllables * (30 / sentences)) + 3.1291
func SMOG(c models.Counts) (float64, error) {
	if err := requireSentences(models.MetricSMOG, c); err != nil {
		return 0, err
	}
	return 1.043*math.Sqrt(float64(c.Polysyllables)*(30.0/float64(c.Sentences))) + 3.1291, nil
}

// ColemanLiau computes the Coleman–Liau index.
//
// Formula: 0.0588 * L - 0.296 * S - 15.8, where L is characters per 100
// words and S is sentences per 100 words.
func ColemanLiau(c models.Counts) (float64, error) {
	if err := requireWords(models.MetricCL, c); err != nil {
		return 0, err
	}
	l := ratio(c.Characters, c.Words) * 100
	s := ratio(c.Sentences, c.Words) * 100
	return 0.0588*l - 0.296*s - 15.8, nil
}

// Compute dispatches to the formula for metric m.
func Compute(m models.Metric, c models.Counts) (float64, error) {
	switch m {
	case models.MetricARI:
		return ARI(c)
	case models.MetricFK:
		return FleschKincaid(c)
	case models.MetricSMOG:
		return SMOG(c)
	case models.MetricCL:
		return ColemanLiau(c)
	default:
		return 0, &MetricError{Metric: m, Err: ErrUnrecognizedMetric}
	}
}

func ratio(a, b int) float64 {
	return float64(a) / float64(b)
}

func requireWords(m models.Metric, c models.Counts) error {
	if c.Words <= 0 {
		return &MetricError{Metric: m, Err: fmt.Errorf("%w: word count is %d", ErrDivisionByZero, c.Words)}
	}
	return nil
}

func requireSentences(m models.Metric, c models.Counts) error {
	if c.Sentences <= 0 {
		return &MetricError{Metric: m, Err: fmt.Errorf("%w: sentence count is %d", ErrDivisionByZero, c.Sentences)}
	}
	return nil
}
