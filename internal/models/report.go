package models

import (
	"time"
)

// Metric names a readability index.
type Metric string

const (
	MetricARI  Metric = "ARI"  // Automated Readability Index
	MetricFK   Metric = "FK"   // Flesch–Kincaid
	MetricSMOG Metric = "SMOG" // Simple Measure of Gobbledygook
	MetricCL   Metric = "CL"   // Coleman–Liau
)

// AllMetrics lists every metric in presentation order.
var AllMetrics = []Metric{MetricARI, MetricFK, MetricSMOG, MetricCL}

// Name returns the long display name of the metric.
func (m Metric) Name() string {
	switch m {
	case MetricARI:
		return "Automated Readability Index"
	case MetricFK:
		return "Flesch–Kincaid readability tests"
	case MetricSMOG:
		return "Simple Measure of Gobbledygook"
	case MetricCL:
		return "Coleman–Liau index"
	default:
		return string(m)
	}
}

// Counts holds the aggregate statistics of a document.
// Polysyllables never exceeds Words.
type Counts struct {
	Words         int `json:"words" yaml:"words"`
	Sentences     int `json:"sentences" yaml:"sentences"`
	Characters    int `json:"characters" yaml:"characters"`
	Syllables     int `json:"syllables" yaml:"syllables"`
	Polysyllables int `json:"polysyllables" yaml:"polysyllables"`
}

// Score is one readability index value and the reader age it maps to.
type Score struct {
	Metric Metric  `json:"metric" yaml:"metric"`
	Name   string  `json:"name" yaml:"name"`
	Value  float64 `json:"value" yaml:"value"`
	Age    int     `json:"age" yaml:"age"`
}

// Scores maps each computed metric to its score.
type Scores map[Metric]Score

// Ordered returns the scores in AllMetrics order, skipping absent metrics.
func (s Scores) Ordered() []Score {
	out := make([]Score, 0, len(s))
	for _, m := range AllMetrics {
		if score, ok := s[m]; ok {
			out = append(out, score)
		}
	}
	return out
}

// Report is the complete result of analyzing one document.
type Report struct {
	// Unique identifier (uuid)
	ID string `json:"id" yaml:"id"`

	// Document source
	Source string `json:"source" yaml:"source"`

	// When the analysis ran
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// ISO 639-1 code from language detection, empty when detection is off or unreliable
	Language string `json:"language,omitempty" yaml:"language,omitempty"`

	Counts Counts `json:"counts" yaml:"counts"`

	// Scores in AllMetrics order
	Scores []Score `json:"scores" yaml:"scores"`

	// Mean of the four ages
	AverageAge float64 `json:"average_age" yaml:"average_age"`
}

// Score returns the score for metric m, if present.
func (r Report) Score(m Metric) (Score, bool) {
	for _, s := range r.Scores {
		if s.Metric == m {
			return s, true
		}
	}
	return Score{}, false
}
