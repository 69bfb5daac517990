// Package server wires configuration, storage, and the HTTP server for the
// contactbook process.
package server

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/louisbranch/contactbook/internal/platform/config"
	"github.com/louisbranch/contactbook/internal/platform/otel"
	"github.com/louisbranch/contactbook/internal/storage/sqlite"
	"github.com/louisbranch/contactbook/internal/web"
)

// Config holds the server command configuration.
type Config struct {
	HTTPAddr string `env:"CONTACTBOOK_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath   string `env:"CONTACTBOOK_DB_PATH"   envDefault:"contactbook.db"`
}

// ParseConfig layers flags over environment values into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	config.LoadDotenv()

	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the contactbook web server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "contactbook")
	if err != nil {
		log.Printf("otel setup failed, continuing without tracing: %v", err)
	} else {
		defer func() {
			if err := shutdownTracing(context.Background()); err != nil {
				log.Printf("otel shutdown: %v", err)
			}
		}()
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open contact store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close contact store: %v", err)
		}
	}()

	server, err := web.NewServer(web.Config{HTTPAddr: cfg.HTTPAddr}, store)
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
