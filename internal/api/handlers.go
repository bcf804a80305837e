package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/captable-labs/captable-indexer/internal/captable"
	"github.com/captable-labs/captable-indexer/internal/db"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("Failed to write response body")
	}
}

func (s *Server) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		log.Error().Err(err).Msg("Healthcheck failed to reach the database")
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "database unreachable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetCapTable(w http.ResponseWriter, r *http.Request) {
	issuerID := chi.URLParam(r, "issuerID")
	if _, err := uuid.Parse(issuerID); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "issuer id must be a uuid"})
		return
	}

	summary, err := captable.Compute(r.Context(), s.db, issuerID)
	if err != nil {
		if db.IsNotFoundError(err) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "issuer not found"})
			return
		}
		log.Error().Err(err).Str("issuer_id", issuerID).Msg("Failed to compute cap table")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to compute cap table"})
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
