// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root   = "/"
	Health = "/up"

	ProjectsPrefix            = "/projects/"
	ProjectPattern            = ProjectsPrefix + "{projectID}"
	ProjectTracesPattern      = ProjectsPrefix + "{projectID}/traces"
	ProjectTracesRestPattern  = ProjectsPrefix + "{projectID}/traces/{rest...}"
	ProjectRestPattern        = ProjectsPrefix + "{projectID}/{rest...}"

	APIPrefix                = "/api/"
	APIProjectSpansPattern   = APIPrefix + "projects/{projectID}/spans"
	APIProjectSpansRestGlob  = APIPrefix + "projects/{projectID}/spans/{rest...}"
)

// ProjectTraces returns the project traces page route.
func ProjectTraces(projectID string) string {
	return ProjectsPrefix + escapeSegment(projectID) + "/traces"
}

// APIProjectSpans returns the span ingest API route.
func APIProjectSpans(projectID string) string {
	return APIPrefix + "projects/" + escapeSegment(projectID) + "/spans"
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
