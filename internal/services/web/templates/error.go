package templates

import (
	"context"
	"html"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
)

// AppErrorPageTitle resolves the document title for an app error page.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	switch statusCode {
	case http.StatusNotFound:
		return T(loc, "Page not found")
	case http.StatusServiceUnavailable:
		return T(loc, "Service unavailable")
	default:
		return T(loc, "Something went wrong")
	}
}

// AppErrorState renders the shared error fragment used by app error pages.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return writeAll(w,
			`<section class="app-error-state" data-status="`, strconv.Itoa(statusCode), `">`,
			"<h1>", html.EscapeString(AppErrorPageTitle(statusCode, loc)), "</h1>",
			"<p>", html.EscapeString(T(loc, "Try again or head back to your project.")), "</p>",
			"</section>",
		)
	})
}
