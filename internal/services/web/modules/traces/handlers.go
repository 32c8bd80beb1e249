package traces

import (
	"net/http"
	"strings"

	module "github.com/spanlight/spanlight/internal/services/web/module"
	webi18n "github.com/spanlight/spanlight/internal/services/web/platform/i18n"
	"github.com/spanlight/spanlight/internal/services/web/platform/pagerender"
	"github.com/spanlight/spanlight/internal/services/web/platform/weberror"
	"github.com/spanlight/spanlight/internal/services/web/routepath"
	webtemplates "github.com/spanlight/spanlight/internal/services/web/templates"
)

const pageTitle = "Traces"
const headerPathLabel = "traces"

type handlers struct {
	service service
	deps    runtimeDependencies
}

type runtimeDependencies struct {
	resolveLanguage module.ResolveLanguage
	resolveViewer   module.ResolveViewer
}

func newRuntimeDependencies(deps module.Dependencies) runtimeDependencies {
	return runtimeDependencies{
		resolveLanguage: deps.ResolveLanguage,
		resolveViewer:   deps.ResolveViewer,
	}
}

func (d runtimeDependencies) moduleDependencies() module.Dependencies {
	return module.Dependencies{
		ResolveViewer:   d.resolveViewer,
		ResolveLanguage: d.resolveLanguage,
	}
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: newRuntimeDependencies(deps)}
}

func (h handlers) handleTracesRoute(w http.ResponseWriter, r *http.Request) {
	projectID := strings.TrimSpace(r.PathValue("projectID"))
	if projectID == "" {
		h.handleNotFound(w, r)
		return
	}
	h.handleTraces(w, r, projectID)
}

// handleTraces is the gate: one existence check selects the placeholder
// or the dashboard. Store failures escalate through the shared error page.
func (h handlers) handleTraces(w http.ResponseWriter, r *http.Request, projectID string) {
	selection, err := h.service.decideView(r.Context(), projectID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	loc, _ := webi18n.ResolveLocalizer(w, r, h.deps.resolveLanguage)
	switch selection {
	case ViewPopulated:
		count, err := h.service.spanCount(r.Context(), projectID)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writePage(w, r, pagerender.ModulePage{
			Title:  pageTitle,
			Header: &webtemplates.AppMainHeader{PathLabel: headerPathLabel, DisableBottomBorder: true},
			Fragment: webtemplates.TracesDashboard(webtemplates.TracesSummary{
				ProjectID: projectID,
				SpanCount: count,
			}, loc),
		})
	default:
		h.writePage(w, r, pagerender.ModulePage{
			Title:    pageTitle,
			Fragment: webtemplates.TracesPlaceholder(loc),
		})
	}
}

func (h handlers) handleProjectRoot(w http.ResponseWriter, r *http.Request) {
	projectID := strings.TrimSpace(r.PathValue("projectID"))
	if projectID == "" {
		h.handleNotFound(w, r)
		return
	}
	http.Redirect(w, r, routepath.ProjectTraces(projectID), http.StatusFound)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps.moduleDependencies())
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, page pagerender.ModulePage) {
	if err := pagerender.WriteModulePage(w, r, h.deps.moduleDependencies(), page); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.deps.moduleDependencies())
}
