package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/KirkDiggler/gameday/internal/gameday"
	"github.com/KirkDiggler/gameday/internal/log"
	"github.com/KirkDiggler/gameday/internal/models"
	gameDayRepo "github.com/KirkDiggler/gameday/internal/repositories/game_day"
)

// session is one player's in-memory game day. The in-memory copy is authoritative,
// stores are written after every mutation.
type session struct {
	mu       sync.Mutex
	inFlight atomic.Bool
	loaded   bool
	state    *models.DailyGameState
	history  *models.SeasonHistory
}

// sessionFor returns the player's session, creating an empty one on first use
func (s *service) sessionFor(playerID string) *session {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	sess, ok := s.sessions[playerID]
	if !ok {
		sess = &session{}
		s.sessions[playerID] = sess
	}
	return sess
}

// load reads the latest stored day and the season from the repository. Caller holds sess.mu.
func (s *service) load(ctx context.Context, playerID string, sess *session) error {
	if sess.loaded {
		return nil
	}

	state, err := s.repo.GetLatestDailyState(ctx, &gameDayRepo.GetLatestDailyStateInput{UserID: playerID})
	switch {
	case errors.Is(err, gameDayRepo.ErrDailyStateNotFound):
		state = gameday.NewDay(playerID, s.today(), s.drive.Rules())
	case err != nil:
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	history, err := s.repo.GetSeasonHistory(ctx, &gameDayRepo.GetSeasonHistoryInput{UserID: playerID})
	switch {
	case errors.Is(err, gameDayRepo.ErrSeasonHistoryNotFound):
		history = &models.SeasonHistory{UserID: playerID, Records: []*models.GameRecord{}}
	case err != nil:
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	sess.state = state
	sess.history = history
	sess.loaded = true
	return nil
}

// acquire locks the player's session, loads it and runs the rollover guard.
// The returned release must be called once the caller is done with the session.
func (s *service) acquire(ctx context.Context, playerID string) (*session, func(), error) {
	if playerID == "" {
		return nil, nil, ErrEmptyPlayerID
	}

	sess := s.sessionFor(playerID)
	sess.mu.Lock()

	if err := s.load(ctx, playerID, sess); err != nil {
		sess.mu.Unlock()
		return nil, nil, err
	}

	s.guardRollover(ctx, sess)
	return sess, sess.mu.Unlock, nil
}

// guardRollover archives a stale day and starts today. Caller holds sess.mu.
func (s *service) guardRollover(ctx context.Context, sess *session) {
	record, fresh := gameday.CheckRollover(sess.state, s.today(), s.drive.Rules())
	if fresh == sess.state {
		return
	}

	if record != nil {
		history, appended := gameday.AppendRecord(sess.history, record)
		if appended {
			history.UpdatedAt = s.clock.Now()
			sess.history = history
			s.persistHistory(ctx, history)
		}
	}

	log.Info("Game day rolled over",
		zap.String("player_id", fresh.UserID),
		zap.String("from", sess.state.Date),
		zap.String("to", fresh.Date),
		zap.Bool("archived", record != nil),
	)
	s.metrics.Rollover(record != nil)

	fresh.UpdatedAt = s.clock.Now()
	sess.state = fresh
	s.persistState(ctx, fresh)
}

// persistState writes the day without failing the caller
func (s *service) persistState(ctx context.Context, state *models.DailyGameState) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.persistTimeout)
	defer cancel()

	if err := s.repo.SaveDailyState(ctx, &gameDayRepo.SaveDailyStateInput{State: state}); err != nil {
		log.Error("Failed to persist daily state",
			zap.String("player_id", state.UserID),
			zap.String("date", state.Date),
			zap.Error(err),
		)
		s.metrics.PersistenceFailure("save_daily_state")
	}
}

// persistHistory writes the whole season without failing the caller
func (s *service) persistHistory(ctx context.Context, history *models.SeasonHistory) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.persistTimeout)
	defer cancel()

	if err := s.repo.SaveSeasonHistory(ctx, &gameDayRepo.SaveSeasonHistoryInput{History: history}); err != nil {
		log.Error("Failed to persist season history",
			zap.String("player_id", history.UserID),
			zap.Int("records", len(history.Records)),
			zap.Error(err),
		)
		s.metrics.PersistenceFailure("save_season_history")
	}
}
