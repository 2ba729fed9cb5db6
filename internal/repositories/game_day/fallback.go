package game_day

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/KirkDiggler/gameday/internal/log"
	"github.com/KirkDiggler/gameday/internal/models"
)

// FallbackConfig pairs the remote store with the local cache
type FallbackConfig struct {
	Primary Repository
	Cache   Repository
}

// fallbackRepository writes through to both stores. Reads consult both and return the newer copy.
type fallbackRepository struct {
	primary Repository
	cache   Repository
}

// NewFallback creates a write-through repository over a primary store and a local cache
func NewFallback(cfg *FallbackConfig) (*fallbackRepository, error) {
	if cfg == nil {
		return nil, errNilConfig
	}

	if cfg.Primary == nil || cfg.Cache == nil {
		return nil, errors.New("primary and cache repositories cannot be nil")
	}

	return &fallbackRepository{primary: cfg.Primary, cache: cfg.Cache}, nil
}

// SaveDailyState writes both stores, succeeding if either write does
func (r *fallbackRepository) SaveDailyState(ctx context.Context, input *SaveDailyStateInput) error {
	primaryErr := r.primary.SaveDailyState(ctx, input)
	cacheErr := r.cache.SaveDailyState(ctx, input)
	return joinWrites("save_daily_state", primaryErr, cacheErr)
}

// GetDailyState reads both stores and returns the newer copy
func (r *fallbackRepository) GetDailyState(ctx context.Context, input *GetDailyStateInput) (*models.DailyGameState, error) {
	state, err := r.primary.GetDailyState(ctx, input)
	cached, cacheErr := r.cache.GetDailyState(ctx, input)
	return r.reconcileState(ctx, "get_daily_state", state, err, cached, cacheErr)
}

// GetLatestDailyState reads both stores and returns the newer day
func (r *fallbackRepository) GetLatestDailyState(ctx context.Context, input *GetLatestDailyStateInput) (*models.DailyGameState, error) {
	state, err := r.primary.GetLatestDailyState(ctx, input)
	cached, cacheErr := r.cache.GetLatestDailyState(ctx, input)
	return r.reconcileState(ctx, "get_latest_daily_state", state, err, cached, cacheErr)
}

// reconcileState picks the newer of the two reads and copies it into the store that is behind.
// A primary that errored is not written back to.
func (r *fallbackRepository) reconcileState(ctx context.Context, operation string, state *models.DailyGameState, err error, cached *models.DailyGameState, cacheErr error) (*models.DailyGameState, error) {
	primaryDown := err != nil && !errors.Is(err, ErrDailyStateNotFound)
	if primaryDown {
		log.Warn("Primary store read failed, using local cache", zap.String("operation", operation), zap.Error(err))
	}

	switch {
	case err != nil && cacheErr != nil:
		return nil, err
	case cacheErr != nil:
		r.repairCacheState(ctx, state)
		return state, nil
	case err != nil:
		if !primaryDown {
			r.repairPrimaryState(ctx, cached)
		}
		return cached, nil
	case newerState(cached, state):
		r.repairPrimaryState(ctx, cached)
		return cached, nil
	case newerState(state, cached):
		r.repairCacheState(ctx, state)
		return state, nil
	default:
		return state, nil
	}
}

// newerState orders days by date, then by last update
func newerState(a, b *models.DailyGameState) bool {
	if a.Date != b.Date {
		return a.Date > b.Date
	}
	return a.UpdatedAt.After(b.UpdatedAt)
}

func (r *fallbackRepository) repairPrimaryState(ctx context.Context, state *models.DailyGameState) {
	if err := r.primary.SaveDailyState(ctx, &SaveDailyStateInput{State: state}); err != nil {
		log.Warn("Failed to copy cached day back to primary store", zap.String("user_id", state.UserID), zap.String("date", state.Date), zap.Error(err))
		return
	}
	log.Info("Copied cached day back to primary store", zap.String("user_id", state.UserID), zap.String("date", state.Date))
}

func (r *fallbackRepository) repairCacheState(ctx context.Context, state *models.DailyGameState) {
	if err := r.cache.SaveDailyState(ctx, &SaveDailyStateInput{State: state}); err != nil {
		log.Warn("Failed to refresh local cache", zap.String("user_id", state.UserID), zap.String("date", state.Date), zap.Error(err))
	}
}

// SaveSeasonHistory writes both stores, succeeding if either write does
func (r *fallbackRepository) SaveSeasonHistory(ctx context.Context, input *SaveSeasonHistoryInput) error {
	primaryErr := r.primary.SaveSeasonHistory(ctx, input)
	cacheErr := r.cache.SaveSeasonHistory(ctx, input)
	return joinWrites("save_season_history", primaryErr, cacheErr)
}

// GetSeasonHistory reads both stores and returns the newer history
func (r *fallbackRepository) GetSeasonHistory(ctx context.Context, input *GetSeasonHistoryInput) (*models.SeasonHistory, error) {
	history, err := r.primary.GetSeasonHistory(ctx, input)
	cached, cacheErr := r.cache.GetSeasonHistory(ctx, input)

	primaryDown := err != nil && !errors.Is(err, ErrSeasonHistoryNotFound)
	if primaryDown {
		log.Warn("Primary store read failed, using local cache", zap.String("operation", "get_season_history"), zap.Error(err))
	}

	switch {
	case err != nil && cacheErr != nil:
		return nil, err
	case cacheErr != nil:
		r.repairCacheHistory(ctx, history)
		return history, nil
	case err != nil:
		if !primaryDown {
			r.repairPrimaryHistory(ctx, cached)
		}
		return cached, nil
	case newerHistory(cached, history):
		r.repairPrimaryHistory(ctx, cached)
		return cached, nil
	case newerHistory(history, cached):
		r.repairCacheHistory(ctx, history)
		return history, nil
	default:
		return history, nil
	}
}

// newerHistory orders histories by last update, then by length
func newerHistory(a, b *models.SeasonHistory) bool {
	if !a.UpdatedAt.Equal(b.UpdatedAt) {
		return a.UpdatedAt.After(b.UpdatedAt)
	}
	return len(a.Records) > len(b.Records)
}

func (r *fallbackRepository) repairPrimaryHistory(ctx context.Context, history *models.SeasonHistory) {
	if err := r.primary.SaveSeasonHistory(ctx, &SaveSeasonHistoryInput{History: history}); err != nil {
		log.Warn("Failed to copy cached season back to primary store", zap.String("user_id", history.UserID), zap.Error(err))
		return
	}
	log.Info("Copied cached season back to primary store", zap.String("user_id", history.UserID), zap.Int("records", len(history.Records)))
}

func (r *fallbackRepository) repairCacheHistory(ctx context.Context, history *models.SeasonHistory) {
	if err := r.cache.SaveSeasonHistory(ctx, &SaveSeasonHistoryInput{History: history}); err != nil {
		log.Warn("Failed to refresh local cache", zap.String("user_id", history.UserID), zap.Error(err))
	}
}

// joinWrites logs a single failed write and only reports an error when both fail
func joinWrites(operation string, primaryErr, cacheErr error) error {
	switch {
	case primaryErr != nil && cacheErr != nil:
		return errors.Join(primaryErr, cacheErr)
	case primaryErr != nil:
		log.Warn("Primary store write failed, kept in local cache", zap.String("operation", operation), zap.Error(primaryErr))
	case cacheErr != nil:
		log.Warn("Local cache write failed", zap.String("operation", operation), zap.Error(cacheErr))
	}
	return nil
}
