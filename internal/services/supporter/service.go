package supporter

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/KirkDiggler/gameday/internal/common/clock"
	"github.com/KirkDiggler/gameday/internal/common/uuid"
	"github.com/KirkDiggler/gameday/internal/log"
	"github.com/KirkDiggler/gameday/internal/metrics"
	"github.com/KirkDiggler/gameday/internal/models"
	supporterRepo "github.com/KirkDiggler/gameday/internal/repositories/supporter"
)

// service implements the Service interface
type service struct {
	repo          supporterRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
	metrics       *metrics.Recorder
	limiter       *postLimiter
}

// New creates a new supporter board service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	interval := cfg.PostInterval
	if interval <= 0 {
		interval = defaultPostInterval
	}

	burst := cfg.PostBurst
	if burst <= 0 {
		burst = defaultPostBurst
	}

	return &service{
		repo:          cfg.Repository,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		metrics:       cfg.Metrics,
		limiter:       newPostLimiter(interval, burst),
	}, nil
}

// PostMessage validates and stores a new message
func (s *service) PostMessage(ctx context.Context, input *PostMessageInput) (*PostMessageOutput, error) {
	if input == nil {
		return nil, ErrEmptyMessage
	}

	name := strings.TrimSpace(input.Name)
	text := strings.TrimSpace(input.Message)

	switch {
	case input.AuthorID == "":
		return nil, ErrEmptyAuthorID
	case name == "":
		return nil, ErrEmptyName
	case utf8.RuneCountInString(name) > MaxNameLength:
		return nil, ErrNameTooLong
	case text == "":
		return nil, ErrEmptyMessage
	case utf8.RuneCountInString(text) > MaxMessageLength:
		return nil, ErrMessageTooLong
	}

	now := s.clock.Now()
	if !s.limiter.allow(input.AuthorID, now) {
		s.metrics.SupporterPost("rate_limited")
		return nil, ErrRateLimited
	}

	message := &models.SupporterMessage{
		ID:        s.uuidGenerator.NewUUID(),
		Name:      name,
		Message:   text,
		AuthorID:  input.AuthorID,
		Timestamp: now,
	}

	if err := s.repo.AddMessage(ctx, &supporterRepo.AddMessageInput{Message: message}); err != nil {
		s.metrics.SupporterPost("error")
		return nil, fmt.Errorf("failed to post supporter message: %w", err)
	}

	s.metrics.SupporterPost("posted")
	log.Info("Supporter message posted",
		zap.String("message_id", message.ID),
		zap.String("author_id", message.AuthorID),
	)

	return &PostMessageOutput{Message: message}, nil
}

// ListMessages returns the most recent messages, newest first
func (s *service) ListMessages(ctx context.Context, input *ListMessagesInput) (*ListMessagesOutput, error) {
	limit := DefaultListLimit
	if input != nil && input.Limit > 0 && input.Limit < DefaultListLimit {
		limit = input.Limit
	}

	output, err := s.repo.ListMessages(ctx, &supporterRepo.ListMessagesInput{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list supporter messages: %w", err)
	}

	messages := output.Messages
	if messages == nil {
		messages = []*models.SupporterMessage{}
	}

	return &ListMessagesOutput{Messages: messages}, nil
}

// DeleteMessage removes a message, only its author or an admin may do so
func (s *service) DeleteMessage(ctx context.Context, input *DeleteMessageInput) error {
	if input == nil || input.MessageID == "" {
		return ErrEmptyMessageID
	}

	if input.RequesterID == "" && !input.IsAdmin {
		return ErrEmptyAuthorID
	}

	message, err := s.repo.GetMessage(ctx, &supporterRepo.GetMessageInput{MessageID: input.MessageID})
	if err != nil {
		if errors.Is(err, supporterRepo.ErrMessageNotFound) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("failed to get supporter message: %w", err)
	}

	if !input.IsAdmin && subtle.ConstantTimeCompare([]byte(message.AuthorID), []byte(input.RequesterID)) != 1 {
		return ErrNotAuthor
	}

	err = s.repo.DeleteMessage(ctx, &supporterRepo.DeleteMessageInput{MessageID: input.MessageID})
	if err != nil {
		if errors.Is(err, supporterRepo.ErrMessageNotFound) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("failed to delete supporter message: %w", err)
	}

	log.Info("Supporter message deleted",
		zap.String("message_id", input.MessageID),
		zap.String("requester_id", input.RequesterID),
		zap.Bool("admin", input.IsAdmin),
	)

	return nil
}
