package spans

import (
	"encoding/json"
	"net/http"
	"strings"

	apperrors "github.com/spanlight/spanlight/internal/services/web/platform/errors"
	"github.com/spanlight/spanlight/internal/services/web/platform/httpx"
)

type handlers struct {
	service service
}

type ingestRequest struct {
	Spans []SpanPayload `json:"spans"`
}

type ingestResponse struct {
	Accepted int `json:"accepted"`
}

func (h handlers) handleIngestRoute(w http.ResponseWriter, r *http.Request) {
	projectID := strings.TrimSpace(r.PathValue("projectID"))
	if projectID == "" {
		h.handleNotFound(w, r)
		return
	}
	h.handleIngest(w, r, projectID)
}

func (h handlers) handleIngest(w http.ResponseWriter, r *http.Request, projectID string) {
	var req ingestRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		httpx.WriteJSONError(w, http.StatusBadRequest, "span batch is not valid JSON")
		return
	}

	accepted, err := h.service.ingest(r.Context(), projectID, req.Spans)
	if err != nil {
		status := apperrors.HTTPStatus(err)
		message := http.StatusText(status)
		if status < http.StatusInternalServerError {
			message = err.Error()
		}
		httpx.WriteJSONError(w, status, message)
		return
	}
	httpx.WriteJSON(w, http.StatusAccepted, ingestResponse{Accepted: accepted})
}

func (h handlers) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSONError(w, http.StatusNotFound, "not found")
}
