package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/KirkDiggler/gameday/internal/gameday"
	"github.com/KirkDiggler/gameday/internal/models"
	"github.com/KirkDiggler/gameday/internal/services/game"
)

type intakeRequest struct {
	Category string `json:"category"`
	Amount   int    `json:"amount"`
}

type gameDayResponse struct {
	State *models.DailyGameState `json:"state"`
	Pace  *game.PaceReport       `json:"pace,omitempty"`
}

type playResponse struct {
	Play         *models.Play           `json:"play"`
	State        *models.DailyGameState `json:"state"`
	Pace         *game.PaceReport       `json:"pace"`
	GoalsAwarded []models.Category      `json:"goals_awarded"`
}

type removeResponse struct {
	State   *models.DailyGameState `json:"state"`
	Removed int                    `json:"removed"`
}

type claimResponse struct {
	State        *models.DailyGameState `json:"state"`
	GoalsAwarded []models.Category      `json:"goals_awarded"`
}

type seasonResponse struct {
	History *models.SeasonHistory `json:"history"`
	Summary *gameday.Summary      `json:"summary"`
}

func requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), defaultRequestTimeout)
}

func parseCategory(raw string) (models.Category, bool) {
	return models.ParseCategory(raw)
}

func (s *Server) getGameDay(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	output, err := s.gameService.GetGameDay(ctx, &game.GetGameDayInput{PlayerID: mux.Vars(r)["playerID"]})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, gameDayResponse{State: output.State, Pace: output.Pace})
}

func (s *Server) logIntake(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	var req intakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, ok := parseCategory(req.Category)
	if !ok {
		respondWithError(w, http.StatusBadRequest, game.ErrUnknownCategory.Error())
		return
	}

	output, err := s.gameService.LogIntake(ctx, &game.LogIntakeInput{
		PlayerID: mux.Vars(r)["playerID"],
		Category: category,
		Amount:   req.Amount,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, playResponse{
		Play:         output.Play,
		State:        output.State,
		Pace:         output.Pace,
		GoalsAwarded: nonNilCategories(output.GoalsAwarded),
	})
}

func (s *Server) removeIntake(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	category, ok := parseCategory(r.URL.Query().Get("category"))
	if !ok {
		respondWithError(w, http.StatusBadRequest, game.ErrUnknownCategory.Error())
		return
	}

	amount := 0
	if raw := r.URL.Query().Get("amount"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, game.ErrInvalidAmount.Error())
			return
		}
		amount = parsed
	}

	output, err := s.gameService.RemoveIntake(ctx, &game.RemoveIntakeInput{
		PlayerID: mux.Vars(r)["playerID"],
		Category: category,
		Amount:   amount,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, removeResponse{State: output.State, Removed: output.Removed})
}

func (s *Server) claimGoals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	output, err := s.gameService.ClaimGoalBonuses(ctx, &game.ClaimGoalBonusesInput{PlayerID: mux.Vars(r)["playerID"]})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, claimResponse{State: output.State, GoalsAwarded: nonNilCategories(output.GoalsAwarded)})
}

func (s *Server) getPace(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	output, err := s.gameService.GetPace(ctx, &game.GetPaceInput{PlayerID: mux.Vars(r)["playerID"]})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, output.Pace)
}

func (s *Server) getSeason(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	output, err := s.gameService.GetSeason(ctx, &game.GetSeasonInput{PlayerID: mux.Vars(r)["playerID"]})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, seasonResponse{History: output.History, Summary: output.Summary})
}

func (s *Server) resetDay(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	output, err := s.gameService.ResetDay(ctx, &game.ResetDayInput{PlayerID: mux.Vars(r)["playerID"]})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, gameDayResponse{State: output.State})
}

func (s *Server) resetSeason(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	output, err := s.gameService.ResetSeason(ctx, &game.ResetSeasonInput{PlayerID: mux.Vars(r)["playerID"]})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, seasonResponse{History: output.History, Summary: gameday.Summarize(output.History)})
}

func nonNilCategories(c []models.Category) []models.Category {
	if c == nil {
		return []models.Category{}
	}
	return c
}
