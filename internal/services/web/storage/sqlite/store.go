package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	webstorage "github.com/spanlight/spanlight/internal/services/web/storage"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for project spans.
type Store struct {
	sqlDB *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS spans (
	span_id        TEXT PRIMARY KEY,
	project_id     TEXT NOT NULL,
	trace_id       TEXT NOT NULL DEFAULT '',
	parent_span_id TEXT NOT NULL DEFAULT '',
	name           TEXT NOT NULL DEFAULT '',
	start_at       INTEGER NOT NULL DEFAULT 0,
	end_at         INTEGER NOT NULL DEFAULT 0,
	attributes_json TEXT NOT NULL DEFAULT '{}',
	is_error       INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS spans_project_id ON spans (project_id);
`

// Open opens and bootstraps a span SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("bootstrap schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// HasProjectSpans reports whether at least one span exists for the project.
// The probe stops at the first match and never reads span content.
func (s *Store) HasProjectSpans(ctx context.Context, projectID string) (bool, error) {
	if s == nil || s.sqlDB == nil {
		return false, fmt.Errorf("storage is not configured")
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return false, fmt.Errorf("project id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT 1 FROM spans WHERE project_id = ? LIMIT 1`,
		projectID,
	)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("probe project spans: %w", err)
	}
	return true, nil
}

// InsertSpans appends spans to a project. Spans without an id are
// assigned one so retried batches cannot silently collide on the empty key.
func (s *Store) InsertSpans(ctx context.Context, projectID string, spans []webstorage.Span) (int, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return 0, fmt.Errorf("project id is required")
	}
	if len(spans) == 0 {
		return 0, nil
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin insert spans: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	written := 0
	for _, span := range spans {
		spanID := strings.TrimSpace(span.SpanID)
		if spanID == "" {
			spanID = uuid.NewString()
		}
		attributes, err := encodeAttributes(span.Attributes)
		if err != nil {
			return 0, fmt.Errorf("encode span attributes: %w", err)
		}
		result, err := tx.ExecContext(
			ctx,
			`INSERT INTO spans (span_id, project_id, trace_id, parent_span_id, name, start_at, end_at, attributes_json, is_error)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT (span_id) DO NOTHING`,
			spanID,
			projectID,
			strings.TrimSpace(span.TraceID),
			strings.TrimSpace(span.ParentSpanID),
			strings.TrimSpace(span.Name),
			timeToUnixMillis(span.StartTime),
			timeToUnixMillis(span.EndTime),
			attributes,
			boolToInt(span.IsError),
		)
		if err != nil {
			return 0, fmt.Errorf("insert span: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("insert span result: %w", err)
		}
		written += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert spans: %w", err)
	}
	return written, nil
}

// CountProjectSpans returns the number of spans recorded for the project.
func (s *Store) CountProjectSpans(ctx context.Context, projectID string) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return 0, fmt.Errorf("project id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM spans WHERE project_id = ?`,
		projectID,
	)
	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count project spans: %w", err)
	}
	return count, nil
}

func encodeAttributes(attributes map[string]string) (string, error) {
	if len(attributes) == 0 {
		return "{}", nil
	}
	encoded, err := json.Marshal(attributes)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func boolToInt(value bool) int64 {
	if value {
		return 1
	}
	return 0
}
