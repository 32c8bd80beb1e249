package weberror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/spanlight/spanlight/internal/services/web/module"
	apperrors "github.com/spanlight/spanlight/internal/services/web/platform/errors"
)

func TestShouldRenderAppError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   bool
	}{
		{status: http.StatusNotFound, want: true},
		{status: http.StatusInternalServerError, want: true},
		{status: http.StatusServiceUnavailable, want: true},
		{status: http.StatusBadRequest, want: false},
		{status: http.StatusOK, want: false},
	}
	for _, tc := range tests {
		if got := ShouldRenderAppError(tc.status); got != tc.want {
			t.Fatalf("ShouldRenderAppError(%d) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestWriteAppErrorRendersErrorPage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteAppError(rr, httptest.NewRequest(http.MethodGet, "/projects/p1/traces", nil), http.StatusNotFound, module.Dependencies{})

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `data-status="404"`) {
		t.Fatalf("missing error state in %q", body)
	}
	if !strings.Contains(body, "<!doctype html>") {
		t.Fatalf("expected full document, got %q", body)
	}
}

func TestWriteAppErrorHTMXRendersFragment(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/projects/p1/traces", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	WriteAppError(rr, req, http.StatusServiceUnavailable, module.Dependencies{})

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	body := rr.Body.String()
	if strings.Contains(strings.ToLower(body), "<html") {
		t.Fatalf("expected fragment, got %q", body)
	}
	if !strings.Contains(body, `data-status="503"`) {
		t.Fatalf("missing error state in %q", body)
	}
}

func TestWriteAppErrorNormalizesUnexpectedStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteAppError(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusTeapot, module.Dependencies{})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestWriteModuleErrorEscalatesUnavailable(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	err := apperrors.E(apperrors.KindUnavailable, "span store unreachable")
	WriteModuleError(rr, httptest.NewRequest(http.MethodGet, "/", nil), err, module.Dependencies{})

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	if !strings.Contains(rr.Body.String(), `data-status="503"`) {
		t.Fatalf("expected app error page, got %q", rr.Body.String())
	}
}

func TestWriteModuleErrorPlainStatusForClientErrors(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	err := apperrors.E(apperrors.KindInvalidInput, "bad project id")
	WriteModuleError(rr, httptest.NewRequest(http.MethodGet, "/", nil), err, module.Dependencies{})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if strings.Contains(rr.Body.String(), "data-status") {
		t.Fatalf("expected plain error, got %q", rr.Body.String())
	}
}

func TestPublicMessageHidesInternalDetail(t *testing.T) {
	t.Parallel()

	msg := PublicMessage(nil, errors.New("dial tcp 10.0.0.1: connection refused"))
	if strings.Contains(msg, "dial tcp") {
		t.Fatalf("message leaked internals: %q", msg)
	}
	if msg != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("message = %q, want %q", msg, http.StatusText(http.StatusInternalServerError))
	}
}
