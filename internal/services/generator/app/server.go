package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/ctjot/seedgen/internal/services/generator/api/httpapi"
	"github.com/ctjot/seedgen/internal/services/generator/storage/sqlite"
)

// Config defines the inputs for the generator server.
type Config struct {
	HTTPAddr string
	// DBPath locates the preset database. Empty disables persistence
	// and serves builtin presets only.
	DBPath string
}

// Server hosts the generator HTTP API.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	listener   net.Listener
	store      *sqlite.Store
}

// NewServer builds a configured generator server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	var store *sqlite.Store
	if strings.TrimSpace(config.DBPath) != "" {
		var err error
		store, err = sqlite.Open(config.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open preset store: %w", err)
		}
	}

	var presets *PresetService
	if store != nil {
		presets = NewPresetService(store)
	} else {
		presets = NewPresetService(nil)
	}

	mux := http.NewServeMux()
	httpapi.New(presets).Routes(mux)

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		store: store,
	}, nil
}

// Addr returns the bound listen address once ListenAndServe has started.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.httpAddr
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("generator server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	s.listener = listener

	serveErr := make(chan error, 1)
	log.Printf("generator listening on %s", listener.Addr())
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return s.Close()
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the preset store held by the server.
func (s *Server) Close() error {
	if s == nil || s.store == nil {
		return nil
	}
	return s.store.Close()
}
