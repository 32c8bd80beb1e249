package spans

import (
	"net/http"

	"github.com/spanlight/spanlight/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc("POST "+routepath.APIProjectSpansPattern, h.handleIngestRoute)
	mux.HandleFunc(routepath.APIProjectSpansRestGlob, h.handleNotFound)
}
