package traces

import (
	"context"

	"github.com/spanlight/spanlight/internal/services/web/storage"
)

// NewStoreGateway builds the production span gateway from the span store.
func NewStoreGateway(store storage.SpanStore) SpanGateway {
	if store == nil {
		return unavailableGateway{}
	}
	return storeGateway{store: store}
}

type storeGateway struct {
	store storage.SpanStore
}

func (g storeGateway) HasSpans(ctx context.Context, projectID string) (bool, error) {
	return g.store.HasProjectSpans(ctx, projectID)
}

func (g storeGateway) CountSpans(ctx context.Context, projectID string) (int64, error) {
	return g.store.CountProjectSpans(ctx, projectID)
}
