package httpd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"mediashelf/internal/aggregate"
	"mediashelf/internal/catalog/store"
	"mediashelf/internal/config"
	"mediashelf/internal/logging"
	"mediashelf/internal/lookup"
	"mediashelf/internal/services"
)

// Server serves the JSON API. A nil Server is inert; New returns one only
// when a bind address is configured.
type Server struct {
	bind       string
	logger     *slog.Logger
	store      *store.Store
	dispatcher *lookup.Dispatcher
	aggregator *aggregate.Aggregator

	listener net.Listener
	server   *http.Server
}

// New assembles the API server. Returns nil when the bind address is empty.
func New(cfg *config.Config, catalogStore *store.Store, dispatcher *lookup.Dispatcher, aggregator *aggregate.Aggregator, logger *slog.Logger) *Server {
	if cfg == nil {
		return nil
	}
	bind := strings.TrimSpace(cfg.Paths.APIBind)
	if bind == "" {
		return nil
	}

	srv := &Server{
		bind:       bind,
		logger:     logging.NewComponentLogger(logger, "httpd"),
		store:      catalogStore,
		dispatcher: dispatcher,
		aggregator: aggregator,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", srv.handleHealth)
	mux.HandleFunc("/api/lookup", srv.handleLookup)
	mux.HandleFunc("/api/metadata/", srv.handleMetadata)
	mux.HandleFunc("/api/stats", srv.handleStats)
	mux.HandleFunc("/api/items", srv.handleItems)
	mux.HandleFunc("/api/items/", srv.handleItem)

	srv.server = &http.Server{
		Handler:           srv.withRequestID(mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv
}

// Handler exposes the route table for in-process testing.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// withRequestID tags every request with a correlation identifier, honoring
// one supplied by the caller, and echoes it in the response.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get("X-Request-ID"))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(services.WithRequestID(r.Context(), id)))
	})
}

// Start begins serving in the background and shuts down when ctx is
// cancelled.
func (s *Server) Start(ctx context.Context) error {
	if s == nil {
		return nil
	}
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("api server listening", logging.String("address", listener.Addr().String()))
	return nil
}

// Stop shuts the server down synchronously.
func (s *Server) Stop() {
	if s == nil {
		return
	}
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps classified service errors onto HTTP statuses.
// Unclassified errors get the fallback status.
func (s *Server) writeServiceError(w http.ResponseWriter, err error, fallback int) {
	switch {
	case errors.Is(err, services.ErrUsage):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	default:
		s.writeError(w, fallback, err.Error())
	}
}
