// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"github.com/spanlight/spanlight/internal/services/web/storage"
)

// Viewer contains user-facing chrome data for app pages.
type Viewer struct {
	DisplayName string
	ProjectName string
}

// ResolveViewer resolves app chrome viewer state for a request.
type ResolveViewer func(*http.Request) Viewer

// ResolveLanguage returns the effective request language.
type ResolveLanguage func(*http.Request) string

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Dependencies carries shared collaborators handed to modules at mount
// time. Each field is typed as the narrow contract the consuming module
// declares, so modules cannot reach collaborators they were not given.
type Dependencies struct {
	// SpanStore backs the traces gate and the span ingest surface.
	SpanStore storage.SpanStore

	// Request-scoped resolvers derived by the server after construction.
	ResolveViewer   ResolveViewer
	ResolveLanguage ResolveLanguage
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
