package traces

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "spanlight/web/traces"

// ViewSelection is the traces page routing decision.
type ViewSelection int

const (
	// ViewEmpty routes to the empty-state placeholder.
	ViewEmpty ViewSelection = iota
	// ViewPopulated routes to the page header and the traces dashboard.
	ViewPopulated
)

// SpanGateway loads span presence data for one project.
type SpanGateway interface {
	// HasSpans reports whether at least one span exists for the project.
	// An unknown project reports false, same as a project with no spans.
	HasSpans(ctx context.Context, projectID string) (bool, error)

	// CountSpans returns the number of spans recorded for the project.
	CountSpans(ctx context.Context, projectID string) (int64, error)
}

type service struct {
	gateway SpanGateway
}

func newService(gateway SpanGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// decideView performs the single existence check that selects between the
// placeholder and the dashboard. Gateway failures propagate unmodified.
func (s service) decideView(ctx context.Context, projectID string) (ViewSelection, error) {
	projectID = strings.TrimSpace(projectID)

	ctx, span := otel.Tracer(tracerName).Start(ctx, "traces.decide_view",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("project.id", projectID)),
	)
	defer span.End()

	found, err := s.gateway.HasSpans(ctx, projectID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "span existence probe failed")
		return ViewEmpty, err
	}
	if !found {
		span.SetAttributes(attribute.String("traces.view", "empty"))
		return ViewEmpty, nil
	}
	span.SetAttributes(attribute.String("traces.view", "populated"))
	return ViewPopulated, nil
}

// spanCount loads the dashboard summary count for a populated project.
func (s service) spanCount(ctx context.Context, projectID string) (int64, error) {
	return s.gateway.CountSpans(ctx, strings.TrimSpace(projectID))
}
