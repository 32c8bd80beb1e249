package traces

import (
	"context"

	apperrors "github.com/spanlight/spanlight/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) HasSpans(context.Context, string) (bool, error) {
	return false, apperrors.E(apperrors.KindUnavailable, "span store is not configured")
}

func (unavailableGateway) CountSpans(context.Context, string) (int64, error) {
	return 0, apperrors.E(apperrors.KindUnavailable, "span store is not configured")
}
