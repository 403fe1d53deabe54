package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nvandessel/readscore/internal/models"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS reports (
	id            TEXT PRIMARY KEY,
	source        TEXT NOT NULL,
	created_at    TEXT NOT NULL,
	language      TEXT NOT NULL DEFAULT '',
	words         INTEGER NOT NULL,
	sentences     INTEGER NOT NULL,
	characters    INTEGER NOT NULL,
	syllables     INTEGER NOT NULL,
	polysyllables INTEGER NOT NULL,
	scores        TEXT NOT NULL,
	average_age   REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports(created_at);
`

// SQLiteReportStore stores reports in a sqlite database.
type SQLiteReportStore struct {
	db        *sql.DB
	closeOnce sync.Once
	closeErr  error
}

// NewSQLiteReportStore opens (creating if needed) the database at path.
// Use ":memory:" for a throwaway database.
func NewSQLiteReportStore(ctx context.Context, path string) (*SQLiteReportStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	// a single connection keeps ":memory:" databases alive across calls
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return &SQLiteReportStore{db: db}, nil
}

func (s *SQLiteReportStore) Save(ctx context.Context, r models.Report) error {
	scores, err := json.Marshal(r.Scores)
	if err != nil {
		return fmt.Errorf("failed to encode scores: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO reports
			(id, source, created_at, language, words, sentences, characters, syllables, polysyllables, scores, average_age)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Source, r.CreatedAt.UTC().Format(time.RFC3339Nano), r.Language,
		r.Counts.Words, r.Counts.Sentences, r.Counts.Characters, r.Counts.Syllables, r.Counts.Polysyllables,
		string(scores), r.AverageAge,
	)
	if err != nil {
		return fmt.Errorf("failed to save report %s: %w", r.ID, err)
	}
	return nil
}

func (s *SQLiteReportStore) Get(ctx context.Context, id string) (*models.Report, error) {
	row := s.db.QueryRowContext(ctx, selectReports+` WHERE id = ?`, id)
	r, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load report %s: %w", id, err)
	}
	return &r, nil
}

func (s *SQLiteReportStore) List(ctx context.Context, limit int) ([]models.Report, error) {
	query := selectReports + ` ORDER BY created_at DESC, id`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var out []models.Report
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to read report: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close is safe to call more than once.
func (s *SQLiteReportStore) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.db.Close()
	})
	return s.closeErr
}

const selectReports = `SELECT id, source, created_at, language, words, sentences, characters,
	syllables, polysyllables, scores, average_age FROM reports`

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(sc scanner) (models.Report, error) {
	var (
		r         models.Report
		createdAt string
		scores    string
	)
	err := sc.Scan(&r.ID, &r.Source, &createdAt, &r.Language,
		&r.Counts.Words, &r.Counts.Sentences, &r.Counts.Characters, &r.Counts.Syllables, &r.Counts.Polysyllables,
		&scores, &r.AverageAge)
	if err != nil {
		return models.Report{}, err
	}

	r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return models.Report{}, fmt.Errorf("bad created_at %q: %w", createdAt, err)
	}
	if err := json.Unmarshal([]byte(scores), &r.Scores); err != nil {
		return models.Report{}, fmt.Errorf("bad scores: %w", err)
	}
	return r, nil
}
