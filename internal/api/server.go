package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/captable-labs/captable-indexer/internal/config"
	"github.com/captable-labs/captable-indexer/internal/db"
)

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second
)

// Server exposes the read-side HTTP surface: cap table summaries and a
// health probe. It never writes to the store.
type Server struct {
	db         db.DbInterface
	httpServer *http.Server
}

func New(cfg *config.ApiConfig, database db.DbInterface) *Server {
	s := &Server{db: database}

	r := chi.NewRouter()
	r.Get("/healthcheck", s.handleHealthcheck)
	r.Get("/v1/captable/{issuerID}", s.handleGetCapTable)

	s.httpServer = &http.Server{
		Addr:         cfg.Address(),
		Handler:      r,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return s
}

func (s *Server) Start() {
	go func() {
		log.Info().Str("address", s.httpServer.Addr).Msg("Starting API server")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("API server failed")
		}
	}()
}

func (s *Server) Stop(ctx context.Context) error {
	log.Info().Msg("Shutting down API server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down API server: %w", err)
	}
	return nil
}
