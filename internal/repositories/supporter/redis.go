package supporter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/gameday/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	messageKeyPrefix = "supporter_message:"
	boardKey         = "supporter_messages"
)

// Config holds configuration for the Redis supporter repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed supporter repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
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

// AddMessage stores the message and adds it to the board timeline
func (r *redisRepository) AddMessage(ctx context.Context, input *AddMessageInput) error {
	if input == nil || input.Message == nil {
		return errors.New("input and message cannot be nil")
	}

	message := input.Message
	if message.ID == "" {
		return errors.New("message ID cannot be empty")
	}

	if message.Timestamp.IsZero() {
		return errors.New("message timestamp cannot be zero")
	}

	messageJSON, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal supporter message: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, messageKeyPrefix+message.ID, messageJSON, 0)
	pipe.ZAdd(ctx, boardKey, redis.Z{
		Score:  float64(message.Timestamp.UnixMilli()),
		Member: message.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add supporter message: %w", err)
	}

	return nil
}

// GetMessage retrieves a message by ID
func (r *redisRepository) GetMessage(ctx context.Context, input *GetMessageInput) (*models.SupporterMessage, error) {
	if input == nil || input.MessageID == "" {
		return nil, errors.New("input and message ID cannot be empty")
	}

	messageJSON, err := r.client.Get(ctx, messageKeyPrefix+input.MessageID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to get supporter message: %w", err)
	}

	var message models.SupporterMessage
	if err := json.Unmarshal([]byte(messageJSON), &message); err != nil {
		return nil, fmt.Errorf("failed to unmarshal supporter message: %w", err)
	}

	return &message, nil
}

// ListMessages retrieves the newest messages from the timeline
func (r *redisRepository) ListMessages(ctx context.Context, input *ListMessagesInput) (*ListMessagesOutput, error) {
	if input == nil || input.Limit <= 0 {
		return nil, errors.New("input and a positive limit are required")
	}

	ids, err := r.client.ZRevRange(ctx, boardKey, 0, int64(input.Limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get supporter message IDs: %w", err)
	}

	if len(ids) == 0 {
		return &ListMessagesOutput{
			Messages: []*models.SupporterMessage{},
		}, nil
	}

	// Fetch in one round trip, keeping timeline order
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, messageKeyPrefix+id)
	}

	// redis.Nil from a deleted message is handled per command
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get supporter messages: %w", err)
	}

	messages := make([]*models.SupporterMessage, 0, len(ids))
	for i, cmd := range cmds {
		messageJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Message was deleted between reading the timeline and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get supporter message %s: %w", ids[i], err)
		}

		var message models.SupporterMessage
		if err := json.Unmarshal([]byte(messageJSON), &message); err != nil {
			return nil, fmt.Errorf("failed to unmarshal supporter message %s: %w", ids[i], err)
		}

		messages = append(messages, &message)
	}

	return &ListMessagesOutput{
		Messages: messages,
	}, nil
}

// DeleteMessage removes the message and its timeline entry
func (r *redisRepository) DeleteMessage(ctx context.Context, input *DeleteMessageInput) error {
	if input == nil || input.MessageID == "" {
		return errors.New("input and message ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, messageKeyPrefix+input.MessageID)
	pipe.ZRem(ctx, boardKey, input.MessageID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete supporter message: %w", err)
	}

	if del.Val() == 0 {
		return ErrMessageNotFound
	}

	return nil
}
