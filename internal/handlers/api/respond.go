package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/KirkDiggler/gameday/internal/log"
	"github.com/KirkDiggler/gameday/internal/services/game"
	"github.com/KirkDiggler/gameday/internal/services/supporter"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithServiceError maps service errors onto status codes
func respondWithServiceError(w http.ResponseWriter, err error) {
	var gameErr game.GameError
	var supporterErr supporter.SupporterError

	switch {
	case errors.Is(err, game.ErrPlayInProgress):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, game.ErrStoreUnavailable):
		respondWithError(w, http.StatusServiceUnavailable, "Store unavailable, try again shortly")
	case errors.As(err, &gameErr):
		respondWithError(w, http.StatusBadRequest, gameErr.Error())
	case errors.Is(err, supporter.ErrRateLimited):
		respondWithError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, supporter.ErrMessageNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, supporter.ErrNotAuthor):
		respondWithError(w, http.StatusForbidden, err.Error())
	case errors.As(err, &supporterErr):
		respondWithError(w, http.StatusBadRequest, supporterErr.Error())
	default:
		log.Error("Unhandled service error", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
