package spans

import (
	"context"

	"github.com/spanlight/spanlight/internal/services/web/storage"
)

type fakeWriter struct {
	written     int
	writeErr    error
	insertCalls int
	lastProject string
	lastSpans   []storage.Span
}

func (f *fakeWriter) InsertSpans(_ context.Context, projectID string, spans []storage.Span) (int, error) {
	f.insertCalls++
	f.lastProject = projectID
	f.lastSpans = spans
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	if f.written > 0 {
		return f.written, nil
	}
	return len(spans), nil
}
