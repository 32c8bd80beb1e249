package templates

import (
	"context"
	"html"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// TracesSummary holds formatted dashboard data for the traces page.
type TracesSummary struct {
	ProjectID string
	SpanCount int64
}

// TracesPlaceholder renders the empty-state view shown before a project
// has recorded any spans.
func TracesPlaceholder(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return writeAll(w,
			`<section class="traces-empty-state" data-page="traces-empty-state">`,
			"<h1>", html.EscapeString(T(loc, "No traces yet")), "</h1>",
			"<p>", html.EscapeString(T(loc, "Send your first span to see traces for this project.")), "</p>",
			"</section>",
		)
	})
}

// TracesDashboard renders the traces dashboard view for a project with
// recorded spans.
func TracesDashboard(summary TracesSummary, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		count := strconv.FormatInt(summary.SpanCount, 10)
		return writeAll(w,
			`<section class="traces-dashboard" data-page="traces-dashboard" data-project-id="`,
			html.EscapeString(summary.ProjectID), `">`,
			`<p class="traces-span-count" data-count="`, count, `">`,
			html.EscapeString(T(loc, "Spans recorded")), ": ", count,
			"</p>",
			`<div class="traces-table" data-slot="traces-table"></div>`,
			"</section>",
		)
	})
}
