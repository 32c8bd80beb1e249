// Package spans mounts the span ingest API for project telemetry.
package spans

import (
	"net/http"

	"github.com/spanlight/spanlight/internal/services/web/module"
	"github.com/spanlight/spanlight/internal/services/web/routepath"
)

// Module accepts span batches over HTTP and writes them to the span store.
type Module struct {
	writer SpanWriter
}

// New returns a span ingest module backed by the mounted span store.
func New() *Module {
	return &Module{}
}

// NewWithWriter returns a span ingest module with a fixed writer.
func NewWithWriter(writer SpanWriter) *Module {
	return &Module{writer: writer}
}

// ID returns the module identifier.
func (m *Module) ID() string { return "spans" }

// Mount registers the ingest routes and returns the module mount point.
func (m *Module) Mount(deps module.Dependencies) (module.Mount, error) {
	writer := m.writer
	if writer == nil && deps.SpanStore != nil {
		writer = deps.SpanStore
	}

	mux := http.NewServeMux()
	registerRoutes(mux, handlers{service: newService(writer)})

	return module.Mount{
		Prefix:  routepath.APIPrefix,
		Handler: mux,
	}, nil
}
