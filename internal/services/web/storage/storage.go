// Package storage defines the span persistence contracts consumed by web
// modules.
package storage

import (
	"context"
	"time"
)

// Span is a single recorded unit of telemetry data owned by a project.
//
// The traces gate only ever asks about existence; the full shape exists
// for the ingest surface and the dashboard summary.
type Span struct {
	SpanID       string
	TraceID      string
	ParentSpanID string
	Name         string
	StartTime    time.Time
	EndTime      time.Time
	Attributes   map[string]string
	IsError      bool
}

// SpanStore is the persistence boundary for project spans.
type SpanStore interface {
	// HasProjectSpans reports whether at least one span exists for the
	// project. An unknown project and a project with zero spans are
	// indistinguishable: both report false.
	HasProjectSpans(ctx context.Context, projectID string) (bool, error)

	// InsertSpans appends spans to a project. It returns the number of
	// spans written.
	InsertSpans(ctx context.Context, projectID string, spans []Span) (int, error)

	// CountProjectSpans returns the number of spans recorded for the
	// project.
	CountProjectSpans(ctx context.Context, projectID string) (int64, error)
}
