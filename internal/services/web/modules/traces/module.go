package traces

import (
	"net/http"

	module "github.com/spanlight/spanlight/internal/services/web/module"
	"github.com/spanlight/spanlight/internal/services/web/routepath"
)

// Module provides the project traces page routes.
type Module struct {
	gateway SpanGateway
}

// New returns a traces module that derives its gateway from mount
// dependencies.
func New() Module {
	return Module{}
}

// NewWithGateway returns a traces module with an explicit gateway dependency.
func NewWithGateway(gateway SpanGateway) Module {
	return Module{gateway: gateway}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "traces" }

// Mount wires traces route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	gateway := m.gateway
	if gateway == nil {
		gateway = NewStoreGateway(deps.SpanStore)
	}
	h := newHandlers(newService(gateway), deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.ProjectsPrefix, Handler: mux}, nil
}
