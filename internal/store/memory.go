package store

import (
	"context"
	"sort"
	"sync"

	"github.com/nvandessel/readscore/internal/models"
)

// InMemoryReportStore keeps reports in a map. Used by tests and by callers
// that want history without a database.
type InMemoryReportStore struct {
	mu      sync.RWMutex
	reports map[string]models.Report
}

// NewInMemoryReportStore creates an empty in-memory store.
func NewInMemoryReportStore() *InMemoryReportStore {
	return &InMemoryReportStore{reports: make(map[string]models.Report)}
}

func (s *InMemoryReportStore) Save(ctx context.Context, report models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[report.ID] = cloneReport(report)
	return nil
}

func (s *InMemoryReportStore) Get(ctx context.Context, id string) (*models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reports[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := cloneReport(r)
	return &out, nil
}

func (s *InMemoryReportStore) List(ctx context.Context, limit int) ([]models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Report, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, cloneReport(r))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *InMemoryReportStore) Close() error {
	return nil
}

func cloneReport(r models.Report) models.Report {
	r.Scores = append([]models.Score(nil), r.Scores...)
	return r
}
