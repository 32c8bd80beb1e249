// Package web parses web command flags and launches the web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/spanlight/spanlight/internal/platform/config"
	"github.com/spanlight/spanlight/internal/platform/otel"
	"github.com/spanlight/spanlight/internal/services/web/app"
	module "github.com/spanlight/spanlight/internal/services/web/module"
	"github.com/spanlight/spanlight/internal/services/web/storage/sqlite"
)

const serviceName = "spanlight-web"

// Config holds the web command configuration.
type Config struct {
	HTTPAddr    string `env:"SPANLIGHT_WEB_HTTP_ADDR" envDefault:"localhost:8086"`
	StoragePath string `env:"SPANLIGHT_WEB_STORAGE_PATH" envDefault:"spanlight.db"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.StoragePath, "storage-path", cfg.StoragePath, "span store SQLite file path")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	shutdownOtel, err := otel.Setup(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("setup otel: %w", err)
	}
	defer func() {
		if err := shutdownOtel(context.Background()); err != nil {
			log.Printf("shutdown otel: %v", err)
		}
	}()

	store, err := sqlite.Open(cfg.StoragePath)
	if err != nil {
		return fmt.Errorf("open span store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close span store: %v", err)
		}
	}()

	server, err := app.NewServer(app.Config{
		HTTPAddr: cfg.HTTPAddr,
		Dependencies: module.Dependencies{
			SpanStore: store,
		},
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
