package game_day

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/gameday/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	dailyStateKeyPrefix    = "daily_state:"
	dailyStateIndexPrefix  = "daily_states:"
	seasonHistoryKeyPrefix = "season_history:"

	dateLayout = "2006-01-02"
)

// Config holds configuration for the Redis game day repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game day repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errNilConfig
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func dailyStateKey(userID, date string) string {
	return fmt.Sprintf("%s%s:%s", dailyStateKeyPrefix, userID, date)
}

// dateScore orders days in the per-user index, unparseable keys sort first
func dateScore(date string) float64 {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0
	}
	return float64(t.Unix())
}

// SaveDailyState persists a day's state and indexes its date
func (r *redisRepository) SaveDailyState(ctx context.Context, input *SaveDailyStateInput) error {
	if err := validateState(input); err != nil {
		return err
	}

	state := input.State
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal daily state: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, dailyStateKey(state.UserID, state.Date), stateJSON, 0)
	pipe.ZAdd(ctx, dailyStateIndexPrefix+state.UserID, redis.Z{
		Score:  dateScore(state.Date),
		Member: state.Date,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save daily state: %w", err)
	}

	return nil
}

// GetDailyState retrieves a user's state for one date
func (r *redisRepository) GetDailyState(ctx context.Context, input *GetDailyStateInput) (*models.DailyGameState, error) {
	if input == nil || input.UserID == "" {
		return nil, errEmptyUserID
	}
	if input.Date == "" {
		return nil, errEmptyDateKey
	}

	return r.getState(ctx, input.UserID, input.Date)
}

// GetLatestDailyState retrieves the most recent indexed day for a user
func (r *redisRepository) GetLatestDailyState(ctx context.Context, input *GetLatestDailyStateInput) (*models.DailyGameState, error) {
	if input == nil || input.UserID == "" {
		return nil, errEmptyUserID
	}

	dates, err := r.client.ZRevRange(ctx, dailyStateIndexPrefix+input.UserID, 0, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get latest date: %w", err)
	}

	if len(dates) == 0 {
		return nil, ErrDailyStateNotFound
	}

	return r.getState(ctx, input.UserID, dates[0])
}

func (r *redisRepository) getState(ctx context.Context, userID, date string) (*models.DailyGameState, error) {
	stateJSON, err := r.client.Get(ctx, dailyStateKey(userID, date)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDailyStateNotFound
		}
		return nil, fmt.Errorf("failed to get daily state: %w", err)
	}

	var state models.DailyGameState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal daily state: %w", err)
	}

	if state.Intake == nil {
		state.Intake = map[models.Category]int{}
	}

	return &state, nil
}

// SaveSeasonHistory writes the whole history document
func (r *redisRepository) SaveSeasonHistory(ctx context.Context, input *SaveSeasonHistoryInput) error {
	if err := validateHistory(input); err != nil {
		return err
	}

	historyJSON, err := json.Marshal(input.History)
	if err != nil {
		return fmt.Errorf("failed to marshal season history: %w", err)
	}

	if err := r.client.Set(ctx, seasonHistoryKeyPrefix+input.History.UserID, historyJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save season history: %w", err)
	}

	return nil
}

// GetSeasonHistory retrieves a user's season history
func (r *redisRepository) GetSeasonHistory(ctx context.Context, input *GetSeasonHistoryInput) (*models.SeasonHistory, error) {
	if input == nil || input.UserID == "" {
		return nil, errEmptyUserID
	}

	historyJSON, err := r.client.Get(ctx, seasonHistoryKeyPrefix+input.UserID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSeasonHistoryNotFound
		}
		return nil, fmt.Errorf("failed to get season history: %w", err)
	}

	var history models.SeasonHistory
	if err := json.Unmarshal([]byte(historyJSON), &history); err != nil {
		return nil, fmt.Errorf("failed to unmarshal season history: %w", err)
	}

	return &history, nil
}
