package spans

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spanlight/spanlight/internal/services/web/module"
	"github.com/spanlight/spanlight/internal/services/web/routepath"
)

func TestRegisterRoutesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, handlers{})
}

func TestIngestRouteStatuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
	}{
		{
			name:       "post batch accepted",
			method:     http.MethodPost,
			target:     "/api/projects/project-1/spans",
			body:       `{"spans":[{"name":"llm.call"}]}`,
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "malformed json rejected",
			method:     http.MethodPost,
			target:     "/api/projects/project-1/spans",
			body:       `{"spans":[`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field rejected",
			method:     http.MethodPost,
			target:     "/api/projects/project-1/spans",
			body:       `{"traces":[]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "get not allowed",
			method:     http.MethodGet,
			target:     "/api/projects/project-1/spans",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "subpath not found",
			method:     http.MethodPost,
			target:     "/api/projects/project-1/spans/extra",
			body:       `{"spans":[{"name":"llm.call"}]}`,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mux := http.NewServeMux()
			registerRoutes(mux, handlers{service: newService(&fakeWriter{})})

			req := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
		})
	}
}

func TestMountIngestReportsAcceptedCount(t *testing.T) {
	t.Parallel()

	writer := &fakeWriter{}
	mount, err := NewWithWriter(writer).Mount(module.Dependencies{})
	if err != nil {
		t.Fatalf("Mount error = %v, want nil", err)
	}
	if mount.Prefix != routepath.APIPrefix {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.APIPrefix)
	}

	body := `{"spans":[{"spanId":"s1","name":"llm.call"},{"name":"llm.call.child"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/projects/project-1/spans", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusAccepted)
	}
	var resp ingestResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Accepted != 2 {
		t.Fatalf("accepted = %d, want 2", resp.Accepted)
	}
	if writer.lastProject != "project-1" {
		t.Fatalf("projectID = %q, want %q", writer.lastProject, "project-1")
	}
}

func TestMountIngestWithoutStoreIsUnavailable(t *testing.T) {
	t.Parallel()

	mount, err := New().Mount(module.Dependencies{})
	if err != nil {
		t.Fatalf("Mount error = %v, want nil", err)
	}

	body := `{"spans":[{"name":"llm.call"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/projects/project-1/spans", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}
