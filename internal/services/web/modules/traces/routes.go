package traces

import (
	"net/http"

	"github.com/spanlight/spanlight/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectTracesPattern, h.handleTracesRoute)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectTracesRestPattern, h.handleNotFound)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectPattern, h.handleProjectRoot)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectRestPattern, h.handleNotFound)
}
