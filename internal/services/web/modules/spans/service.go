package spans

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/spanlight/spanlight/internal/services/web/platform/errors"
	"github.com/spanlight/spanlight/internal/services/web/storage"
)

const maxBatchSize = 1000

// SpanWriter appends spans to a project.
type SpanWriter interface {
	InsertSpans(ctx context.Context, projectID string, spans []storage.Span) (int, error)
}

// SpanPayload is the wire shape of one ingested span.
type SpanPayload struct {
	SpanID       string            `json:"spanId"`
	TraceID      string            `json:"traceId"`
	ParentSpanID string            `json:"parentSpanId"`
	Name         string            `json:"name"`
	StartTime    time.Time         `json:"startTime"`
	EndTime      time.Time         `json:"endTime"`
	Attributes   map[string]string `json:"attributes"`
	IsError      bool              `json:"isError"`
}

type service struct {
	writer SpanWriter
}

type unavailableWriter struct{}

func (unavailableWriter) InsertSpans(context.Context, string, []storage.Span) (int, error) {
	return 0, apperrors.E(apperrors.KindUnavailable, "span store is not configured")
}

func newService(writer SpanWriter) service {
	if writer == nil {
		writer = unavailableWriter{}
	}
	return service{writer: writer}
}

func (s service) ingest(ctx context.Context, projectID string, batch []SpanPayload) (int, error) {
	if len(batch) == 0 {
		return 0, apperrors.E(apperrors.KindInvalidInput, "span batch is empty")
	}
	if len(batch) > maxBatchSize {
		return 0, apperrors.E(apperrors.KindInvalidInput, fmt.Sprintf("span batch exceeds %d spans", maxBatchSize))
	}

	spans := make([]storage.Span, 0, len(batch))
	for _, payload := range batch {
		spans = append(spans, storage.Span{
			SpanID:       payload.SpanID,
			TraceID:      payload.TraceID,
			ParentSpanID: payload.ParentSpanID,
			Name:         payload.Name,
			StartTime:    payload.StartTime,
			EndTime:      payload.EndTime,
			Attributes:   payload.Attributes,
			IsError:      payload.IsError,
		})
	}
	return s.writer.InsertSpans(ctx, projectID, spans)
}
