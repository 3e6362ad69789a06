package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/xhad/wikidef/internal/models"
	"github.com/xhad/wikidef/internal/types"
	"github.com/xhad/wikidef/pkg/lookup"
)

const (
	msgMethodNotAllowed = "Method not allowed"
	msgWordRequired     = "Параметр word обязателен"
	msgWordNotFound     = "Слово не найдено"
	msgUpstreamFailure  = "Ошибка при получении данных: "
)

type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type Server struct {
	config Config
	lookup types.Lookuper
	log    *slog.Logger
}

func New(config Config, lookuper types.Lookuper, logger *slog.Logger) *Server {
	if config.Addr == "" {
		config.Addr = ":8080"
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		config: config,
		lookup: lookuper,
		log:    logger.With("component", "server"),
	}
}

// Handler returns the full HTTP handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/definitions", s.handleDefinitions)
	mux.HandleFunc("/", s.handleDefinitions)

	return Chain(
		RequestID,
		Logger(s.log),
		Recovery(s.log),
		CORS,
	)(mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting HTTP server", slog.String("addr", s.config.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	s.log.Info("shutting down HTTP server")
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleDefinitions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeLookupError(w, r, lookup.ErrMethodNotAllowed)
		return
	}

	result, err := s.lookup.Lookup(r.Context(), r.URL.Query().Get("word"))
	if err != nil {
		s.writeLookupError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeLookupError(w, r, lookup.ErrMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeLookupError renders err with the status lookup.StatusCode assigns it.
func (s *Server) writeLookupError(w http.ResponseWriter, r *http.Request, err error) {
	status := lookup.StatusCode(err)
	switch status {
	case http.StatusBadRequest:
		writeError(w, status, msgWordRequired)
	case http.StatusNotFound:
		writeError(w, status, msgWordNotFound)
	case http.StatusMethodNotAllowed:
		writeError(w, status, msgMethodNotAllowed)
	default:
		s.log.ErrorContext(r.Context(), "lookup failed",
			slog.String("error", err.Error()),
			slog.String("request_id", RequestIDFromContext(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, msgUpstreamFailure+err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v) //nolint:errcheck
}
