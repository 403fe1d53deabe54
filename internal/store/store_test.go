package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nvandessel/readscore/internal/models"
	"github.com/stretchr/testify/require"
)

func sampleReport(id string, at time.Time) models.Report {
	return models.Report{
		ID:        id,
		Source:    "doc.txt",
		CreatedAt: at,
		Language:  "en",
		Counts:    models.Counts{Words: 6, Sentences: 1, Characters: 18, Syllables: 6},
		Scores: []models.Score{
			{Metric: models.MetricARI, Name: models.MetricARI.Name(), Value: -4.3, Age: 0},
			{Metric: models.MetricSMOG, Name: models.MetricSMOG.Name(), Value: 3.1291, Age: 10},
		},
		AverageAge: 2.5,
	}
}

// storeFactories returns one constructor per implementation so the contract tests cover both.
func storeFactories() map[string]func(t *testing.T) ReportStore {
	return map[string]func(t *testing.T) ReportStore{
		"memory": func(t *testing.T) ReportStore { return NewInMemoryReportStore() },
		"sqlite": func(t *testing.T) ReportStore {
			s, err := NewSQLiteReportStore(context.Background(), filepath.Join(t.TempDir(), HistoryFile))
			require.NoError(t, err)
			return s
		},
	}
}

func TestReportStore_SaveGet(t *testing.T) {
	for name, newStore := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			ctx := context.Background()
			s := newStore(t)
			defer s.Close()

			at := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
			req.NoError(s.Save(ctx, sampleReport("r1", at)))

			got, err := s.Get(ctx, "r1")
			req.NoError(err)
			req.Equal("doc.txt", got.Source)
			req.True(at.Equal(got.CreatedAt))
			req.Equal(6, got.Counts.Words)
			req.Len(got.Scores, 2)
			req.Equal(models.MetricSMOG, got.Scores[1].Metric)
			req.InDelta(2.5, got.AverageAge, 1e-12)

			_, err = s.Get(ctx, "missing")
			req.ErrorIs(err, ErrNotFound)
		})
	}
}

func TestReportStore_ListNewestFirst(t *testing.T) {
	for name, newStore := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			ctx := context.Background()
			s := newStore(t)
			defer s.Close()

			base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
			req.NoError(s.Save(ctx, sampleReport("old", base)))
			req.NoError(s.Save(ctx, sampleReport("new", base.Add(2*time.Hour))))
			req.NoError(s.Save(ctx, sampleReport("mid", base.Add(time.Hour))))

			all, err := s.List(ctx, 0)
			req.NoError(err)
			req.Len(all, 3)
			req.Equal([]string{"new", "mid", "old"}, []string{all[0].ID, all[1].ID, all[2].ID})

			limited, err := s.List(ctx, 2)
			req.NoError(err)
			req.Len(limited, 2)
			req.Equal("new", limited[0].ID)
		})
	}
}

func TestReportStore_SaveReplaces(t *testing.T) {
	for name, newStore := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			ctx := context.Background()
			s := newStore(t)
			defer s.Close()

			r := sampleReport("r1", time.Now().UTC())
			req.NoError(s.Save(ctx, r))
			r.Source = "renamed.txt"
			req.NoError(s.Save(ctx, r))

			all, err := s.List(ctx, 0)
			req.NoError(err)
			req.Len(all, 1)
			req.Equal("renamed.txt", all[0].Source)
		})
	}
}

func TestSQLiteReportStore_CloseTwice(t *testing.T) {
	s, err := NewSQLiteReportStore(context.Background(), ":memory:")
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}

func TestSQLiteReportStore_Persists(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), HistoryFile)

	s, err := NewSQLiteReportStore(ctx, path)
	req.NoError(err)
	req.NoError(s.Save(ctx, sampleReport("keep", time.Now().UTC())))
	req.NoError(s.Close())

	reopened, err := NewSQLiteReportStore(ctx, path)
	req.NoError(err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "keep")
	req.NoError(err)
	req.Equal("keep", got.ID)
}

func TestEnsureDataDir(t *testing.T) {
	req := require.New(t)
	root := t.TempDir()

	dir, err := EnsureDataDir(root)
	req.NoError(err)
	req.Equal(filepath.Join(root, DataDirName), dir)
	req.DirExists(dir)
	req.Equal(filepath.Join(dir, HistoryFile), HistoryPath(root))
}

func TestEnsureGitignore(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	req.NoError(EnsureGitignore(dir))
	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	req.NoError(err)
	req.Contains(string(data), "history.db")

	// Existing files are left alone
	req.NoError(os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("custom\n"), 0600))
	req.NoError(EnsureGitignore(dir))
	data, err = os.ReadFile(filepath.Join(dir, ".gitignore"))
	req.NoError(err)
	req.Equal("custom\n", string(data))
}
