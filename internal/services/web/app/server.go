package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/spanlight/spanlight/internal/platform/timeouts"
	module "github.com/spanlight/spanlight/internal/services/web/module"
	"github.com/spanlight/spanlight/internal/services/web/modules"
	"github.com/spanlight/spanlight/internal/services/web/platform/httpx"
	"github.com/spanlight/spanlight/internal/services/web/platform/i18n"
)

// Config captures the composition inputs for the web server.
type Config struct {
	HTTPAddr     string
	Dependencies module.Dependencies
	Modules      []module.Module
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewServer builds the root handler from the configured modules and wraps it
// with the shared middleware chain.
func NewServer(cfg Config) (*Server, error) {
	handler, err := BuildRootHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	return &Server{
		httpAddr:   cfg.HTTPAddr,
		httpServer: httpServer,
	}, nil
}

// BuildRootHandler composes a root mux using the configured modules.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	deps := cfg.Dependencies
	if deps.ResolveLanguage == nil {
		deps.ResolveLanguage = func(r *http.Request) string {
			return i18n.ResolveTag(r, nil).String()
		}
	}
	if deps.ResolveViewer == nil {
		deps.ResolveViewer = func(*http.Request) module.Viewer { return module.Viewer{} }
	}

	mods := cfg.Modules
	if len(mods) == 0 {
		mods = modules.DefaultModules()
	}

	root, err := Compose(ComposeInput{
		Dependencies: deps,
		Modules:      mods,
	})
	if err != nil {
		return nil, err
	}
	return httpx.Chain(root, httpx.RecoverPanic(), httpx.RequestID()), nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
