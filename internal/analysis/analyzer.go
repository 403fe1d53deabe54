// Package analysis runs the readability pipeline over a document and builds
// a models.Report.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nvandessel/readscore/internal/document"
	"github.com/nvandessel/readscore/internal/models"
	"github.com/nvandessel/readscore/internal/sanitize"
	"github.com/nvandessel/readscore/internal/scoring"
	"github.com/nvandessel/readscore/internal/stats"
	"github.com/nvandessel/readscore/internal/store"
)

// Result is the outcome of analyzing one document.
type Result struct {
	Report models.Report

	// Language is the detection result, zero when detection is off
	Language document.Language

	// Saved is true when the report was written to the store
	Saved bool
}

// Analyzer turns documents into reports.
type Analyzer interface {
	// Analyze tokenizes, counts and scores doc. It fails if any metric
	// cannot be computed, for example on a document without words.
	Analyze(ctx context.Context, doc models.Document) (*Result, error)
}

// AnalyzerConfig holds configuration for the analyzer.
type AnalyzerConfig struct {
	// NegativeAge is passed to the score engine. Default: clamp.
	NegativeAge scoring.NegativeAgePolicy

	// DetectLanguage runs language detection and logs non-English input.
	DetectLanguage bool

	// Save writes each report to the store. Ignored without a store.
	Save bool
}

// DefaultAnalyzerConfig returns the default analyzer configuration.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		NegativeAge:    scoring.NegativeAgeClamp,
		DetectLanguage: true,
	}
}

// NewAnalyzer creates an analyzer. s may be nil when nothing is saved.
// If config is nil, default configuration is used.
func NewAnalyzer(s store.ReportStore, log *slog.Logger, config *AnalyzerConfig) Analyzer {
	cfg := DefaultAnalyzerConfig()
	if config != nil {
		cfg = *config
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &analyzer{
		store:  s,
		log:    log,
		engine: scoring.NewEngine(scoring.EngineConfig{NegativeAge: cfg.NegativeAge}),
		config: cfg,
		now:    time.Now,
	}
}

type analyzer struct {
	store  store.ReportStore
	log    *slog.Logger
	engine *scoring.Engine
	config AnalyzerConfig
	now    func() time.Time
}

// Analyze implements Analyzer.
func (a *analyzer) Analyze(ctx context.Context, doc models.Document) (*Result, error) {
	counts := stats.FromDocument(doc)
	a.log.Debug("document counted",
		"source", doc.Source,
		"words", counts.Words,
		"sentences", counts.Sentences,
		"characters", counts.Characters,
		"syllables", counts.Syllables,
		"polysyllables", counts.Polysyllables)

	scores, err := a.engine.AllScores(counts)
	if err != nil {
		return nil, fmt.Errorf("failed to score %s: %w", doc.Source, err)
	}
	ordered := scores.Ordered()

	result := &Result{
		Report: models.Report{
			ID:         uuid.NewString(),
			Source:     sanitize.Source(doc.Source),
			CreatedAt:  a.now().UTC(),
			Counts:     counts,
			Scores:     ordered,
			AverageAge: scoring.MeanAge(ordered),
		},
	}

	if a.config.DetectLanguage {
		lang := document.DetectLanguage(doc)
		result.Language = lang
		if lang.Reliable {
			result.Report.Language = lang.Code
		}
		if !lang.IsEnglish() {
			a.log.Warn("text does not look like English, syllable counts may be meaningless",
				"source", doc.Source,
				"language", lang.Name,
				"confidence", lang.Confidence)
		}
	}

	if a.config.Save && a.store != nil {
		if err := a.store.Save(ctx, result.Report); err != nil {
			return nil, fmt.Errorf("failed to save report: %w", err)
		}
		result.Saved = true
		a.log.Info("report saved", "id", result.Report.ID, "source", doc.Source)
	}

	return result, nil
}
