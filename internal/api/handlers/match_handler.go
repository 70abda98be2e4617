package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/zatekoja/nursematch/internal/application/services"
	"github.com/zatekoja/nursematch/internal/domain/entities"
	"github.com/zatekoja/nursematch/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/nursematch/pkg/errors"
)

// MatchHandler handles match-related HTTP requests
type MatchHandler struct {
	matchService *services.MatchService
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// Match handles POST /match
func (h *MatchHandler) Match(w http.ResponseWriter, r *http.Request) {
	var req entities.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	results, err := h.matchService.Match(r.Context(), &req)
	if err != nil {
		logger := observability.LoggerFromContext(r.Context())
		switch apperrors.TypeOf(err) {
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, "invalid match request", err.Error())
		case apperrors.ErrorTypeUpstream, apperrors.ErrorTypeMalformedResponse:
			logger.Error().Err(err).Msg("ranking pipeline failed")
			respondWithError(w, http.StatusBadGateway, "ranking temporarily unavailable", err.Error())
		default:
			logger.Error().Err(err).Msg("match request failed")
			respondWithError(w, http.StatusInternalServerError, "internal server error", "")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
		"count":   len(results),
	})
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message, detail string) {
	body := map[string]string{
		"error": message,
	}
	if detail != "" {
		body["detail"] = detail
	}
	respondWithJSON(w, statusCode, body)
}
