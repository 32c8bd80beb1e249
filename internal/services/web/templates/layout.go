// Package templates holds the shared templ components for the web app shell.
package templates

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// AppMainHeader describes the page header rendered above module content.
type AppMainHeader struct {
	// PathLabel is the breadcrumb-style label shown in the header.
	PathLabel string
	// DisableBottomBorder suppresses the header's bottom border.
	DisableBottomBorder bool
}

// AppMainLayoutOptions tunes the main content container.
type AppMainLayoutOptions struct {
	FullWidth bool
}

// Viewer contains chrome data rendered in the app shell.
type Viewer struct {
	DisplayName string
	ProjectName string
}

// AppLayout renders the full document shell around module content.
func AppLayout(title string, viewer Viewer, header *AppMainHeader, layout AppMainLayoutOptions, lang string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if lang == "" {
			lang = "en"
		}
		if err := writeAll(w,
			"<!doctype html>",
			`<html lang="`, html.EscapeString(lang), `">`,
			"<head>",
			`<meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			"<title>", html.EscapeString(title), "</title>",
			"</head>",
			`<body class="app-body">`,
			`<div class="app-shell">`,
			renderTopBar(viewer, loc),
		); err != nil {
			return err
		}
		if err := AppMainContentWithLayout(header, layout).Render(ctx, w); err != nil {
			return err
		}
		return writeAll(w, "</div></body></html>")
	})
}

// AppMainContentWithLayout renders the main region with an optional header.
// Module content renders as the component's children.
func AppMainContentWithLayout(header *AppMainHeader, layout AppMainLayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		mainClass := "app-main"
		if layout.FullWidth {
			mainClass += " app-main-full"
		}
		if err := writeAll(w, `<main class="`, mainClass, `">`); err != nil {
			return err
		}
		if header != nil {
			headerClass := "app-main-header"
			if header.DisableBottomBorder {
				headerClass += " app-main-header-borderless"
			}
			if err := writeAll(w,
				`<header class="`, headerClass, `">`,
				`<nav class="app-main-header-path">`, html.EscapeString(header.PathLabel), "</nav>",
				"</header>",
			); err != nil {
				return err
			}
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		return writeAll(w, "</main>")
	})
}

func renderTopBar(viewer Viewer, loc Localizer) string {
	name := viewer.ProjectName
	if name == "" {
		name = T(loc, "Untitled project")
	}
	out := `<header class="app-top-bar"><span class="app-project-name">` + html.EscapeString(name) + "</span>"
	if viewer.DisplayName != "" {
		out += `<span class="app-viewer-name">` + html.EscapeString(viewer.DisplayName) + "</span>"
	}
	return out + "</header>"
}

func writeAll(w io.Writer, parts ...string) error {
	for _, part := range parts {
		if _, err := io.WriteString(w, part); err != nil {
			return err
		}
	}
	return nil
}
