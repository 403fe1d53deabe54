// Package mcp exposes readscore analysis as Model Context Protocol tools
// over stdio.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nvandessel/readscore/internal/analysis"
	"github.com/nvandessel/readscore/internal/document"
	"github.com/nvandessel/readscore/internal/models"
	"github.com/nvandessel/readscore/internal/render"
	"github.com/nvandessel/readscore/internal/scoring"
	"github.com/nvandessel/readscore/internal/store"
)

// Config configures the MCP server.
type Config struct {
	Name    string
	Version string

	// Project root; history lives in <Root>/.readscore
	Root string

	// NegativeAge policy for the score engine. Default: clamp.
	NegativeAge scoring.NegativeAgePolicy

	Logger *slog.Logger
}

// Server wraps the SDK server and the history store it reads and writes.
type Server struct {
	server *sdk.Server
	store  store.ReportStore
	root   string
	log    *slog.Logger
	policy scoring.NegativeAgePolicy

	closeOnce sync.Once
	closeErr  error
}

// NewServer opens the history store under cfg.Root, creating the data
// directory if needed, and registers the tools.
func NewServer(cfg *Config) (*Server, error) {
	dataDir, err := store.EnsureDataDir(cfg.Root)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureGitignore(dataDir); err != nil {
		return nil, err
	}

	reports, err := store.NewSQLiteReportStore(context.Background(), store.HistoryPath(cfg.Root))
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	policy := cfg.NegativeAge
	if !policy.Valid() {
		policy = scoring.NegativeAgeClamp
	}

	s := &Server{
		server: sdk.NewServer(&sdk.Implementation{Name: cfg.Name, Version: cfg.Version}, nil),
		store:  reports,
		root:   cfg.Root,
		log:    log,
		policy: policy,
	}
	s.registerTools()
	return s, nil
}

func (s *Server) registerTools() {
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "readscore_analyze",
		Description: "Compute word, sentence, character and syllable counts plus ARI, Flesch–Kincaid, SMOG and Coleman–Liau scores with estimated reader ages for a text",
	}, s.handleAnalyze)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "readscore_history",
		Description: "List readability reports saved by earlier analyses, newest first",
	}, s.handleHistory)
}

// Run serves over stdio until the client disconnects or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info("starting MCP server", "root", s.root)
	return s.server.Run(ctx, &sdk.StdioTransport{})
}

// Close releases the history store. It is safe to call more than once.
func (s *Server) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.store.Close()
	})
	return s.closeErr
}

// AnalyzeInput is the readscore_analyze argument object.
type AnalyzeInput struct {
	Text   string `json:"text" jsonschema:"the plain text to analyze"`
	Metric string `json:"metric,omitempty" jsonschema:"ARI, FK, SMOG, CL or all (default all)"`
	Save   bool   `json:"save,omitempty" jsonschema:"store the report in the project history"`
}

// ScoreOutput is one metric in a tool result.
type ScoreOutput struct {
	Metric  string  `json:"metric"`
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
	Age     int     `json:"age"`
}

// ReportOutput is a report as returned to MCP clients.
type ReportOutput struct {
	ID                string        `json:"id"`
	Source            string        `json:"source"`
	CreatedAt         string        `json:"created_at"`
	Language          string        `json:"language,omitempty"`
	Counts            models.Counts `json:"counts"`
	Scores            []ScoreOutput `json:"scores"`
	AverageAge        float64       `json:"average_age"`
	AverageAgeDisplay string        `json:"average_age_display"`
}

// AnalyzeOutput is the readscore_analyze result.
type AnalyzeOutput struct {
	Report ReportOutput `json:"report"`
	Saved  bool         `json:"saved"`
}

func (s *Server) handleAnalyze(ctx context.Context, req *sdk.CallToolRequest, in AnalyzeInput) (*sdk.CallToolResult, AnalyzeOutput, error) {
	token := in.Metric
	if token == "" {
		token = scoring.SelectAll
	}
	selection, err := scoring.ParseSelection(token)
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}

	a := analysis.NewAnalyzer(s.store, s.log, &analysis.AnalyzerConfig{
		NegativeAge:    s.policy,
		DetectLanguage: true,
		Save:           in.Save,
	})
	res, err := a.Analyze(ctx, document.FromText("mcp", in.Text))
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}

	view := render.View{Report: res.Report, Selection: selection}
	return nil, AnalyzeOutput{Report: toOutput(res.Report, view.SelectedScores()), Saved: res.Saved}, nil
}

// HistoryInput is the readscore_history argument object.
type HistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of reports, 0 for all"`
}

// HistoryOutput is the readscore_history result.
type HistoryOutput struct {
	Reports []ReportOutput `json:"reports"`
	Count   int            `json:"count"`
}

func (s *Server) handleHistory(ctx context.Context, req *sdk.CallToolRequest, in HistoryInput) (*sdk.CallToolResult, HistoryOutput, error) {
	reports, err := s.store.List(ctx, in.Limit)
	if err != nil {
		return nil, HistoryOutput{}, err
	}
	out := HistoryOutput{Reports: make([]ReportOutput, 0, len(reports))}
	for _, r := range reports {
		out.Reports = append(out.Reports, toOutput(r, r.Scores))
	}
	out.Count = len(out.Reports)
	return nil, out, nil
}

func toOutput(r models.Report, scores []models.Score) ReportOutput {
	out := ReportOutput{
		ID:                r.ID,
		Source:            r.Source,
		CreatedAt:         r.CreatedAt.Format(time.RFC3339),
		Language:          r.Language,
		Counts:            r.Counts,
		Scores:            make([]ScoreOutput, 0, len(scores)),
		AverageAge:        r.AverageAge,
		AverageAgeDisplay: scoring.FormatScore(r.AverageAge),
	}
	for _, sc := range scores {
		out.Scores = append(out.Scores, ScoreOutput{
			Metric:  string(sc.Metric),
			Name:    sc.Name,
			Value:   sc.Value,
			Display: scoring.FormatScore(sc.Value),
			Age:     sc.Age,
		})
	}
	return out
}
