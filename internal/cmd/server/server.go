// Package server parses generator command flags and starts the service.
package server

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/ctjot/seedgen/internal/platform/cmd"
	"github.com/ctjot/seedgen/internal/services/generator/app"
)

// Config holds generator command configuration.
type Config struct {
	Port   int    `env:"SEEDGEN_PORT" envDefault:"8080"`
	Addr   string `env:"SEEDGEN_ADDR"`
	DBPath string `env:"SEEDGEN_DB_PATH"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The generator server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The generator listen address (overrides -port)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "The preset database path (empty disables persistence)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the generator API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGenerator, func(ctx context.Context) error {
		addr := cfg.Addr
		if addr == "" {
			addr = fmt.Sprintf(":%d", cfg.Port)
		}
		srv, err := app.NewServer(app.Config{HTTPAddr: addr, DBPath: cfg.DBPath})
		if err != nil {
			return err
		}
		return srv.ListenAndServe(ctx)
	})
}
