// Package store defines the ReportStore interface for saving and listing
// readability reports.
package store

import (
	"context"
	"errors"

	"github.com/nvandessel/readscore/internal/models"
)

// ErrNotFound is returned by Get for an unknown report ID.
var ErrNotFound = errors.New("report not found")

// ReportStore is an append-only log of analysis reports. It is never read
// to skip an analysis; every run recomputes its scores.
type ReportStore interface {
	// Save stores a report. Saving an existing ID replaces it.
	Save(ctx context.Context, report models.Report) error

	// Get returns the report with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*models.Report, error)

	// List returns up to limit reports, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]models.Report, error)

	Close() error
}
