package supporter

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/gameday/internal/models"
)

const supportersCollection = "supporters"

// FirestoreConfig holds configuration for the Firestore supporter repository
type FirestoreConfig struct {
	Client *firestore.Client
}

type firestoreRepository struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore-backed supporter repository
func NewFirestore(cfg *FirestoreConfig) (*firestoreRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Client == nil {
		return nil, errors.New("firestore client cannot be nil")
	}

	return &firestoreRepository{client: cfg.Client}, nil
}

// AddMessage creates the message document keyed by its ID
func (r *firestoreRepository) AddMessage(ctx context.Context, input *AddMessageInput) error {
	if input == nil || input.Message == nil {
		return errors.New("input and message cannot be nil")
	}

	if input.Message.ID == "" {
		return errors.New("message ID cannot be empty")
	}

	if _, err := r.client.Collection(supportersCollection).Doc(input.Message.ID).Create(ctx, input.Message); err != nil {
		return fmt.Errorf("failed to add supporter message: %w", err)
	}

	return nil
}

// GetMessage reads a message document
func (r *firestoreRepository) GetMessage(ctx context.Context, input *GetMessageInput) (*models.SupporterMessage, error) {
	if input == nil || input.MessageID == "" {
		return nil, errors.New("input and message ID cannot be empty")
	}

	snap, err := r.client.Collection(supportersCollection).Doc(input.MessageID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to get supporter message: %w", err)
	}

	var message models.SupporterMessage
	if err := snap.DataTo(&message); err != nil {
		return nil, fmt.Errorf("failed to decode supporter message: %w", err)
	}

	return &message, nil
}

// ListMessages queries the newest messages by timestamp
func (r *firestoreRepository) ListMessages(ctx context.Context, input *ListMessagesInput) (*ListMessagesOutput, error) {
	if input == nil || input.Limit <= 0 {
		return nil, errors.New("input and a positive limit are required")
	}

	snaps, err := r.client.Collection(supportersCollection).
		OrderBy("timestamp", firestore.Desc).
		Limit(input.Limit).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list supporter messages: %w", err)
	}

	messages := make([]*models.SupporterMessage, 0, len(snaps))
	for _, snap := range snaps {
		var message models.SupporterMessage
		if err := snap.DataTo(&message); err != nil {
			return nil, fmt.Errorf("failed to decode supporter message %s: %w", snap.Ref.ID, err)
		}
		messages = append(messages, &message)
	}

	return &ListMessagesOutput{Messages: messages}, nil
}

// DeleteMessage removes a message document
func (r *firestoreRepository) DeleteMessage(ctx context.Context, input *DeleteMessageInput) error {
	if input == nil || input.MessageID == "" {
		return errors.New("input and message ID cannot be empty")
	}

	ref := r.client.Collection(supportersCollection).Doc(input.MessageID)
	if _, err := ref.Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrMessageNotFound
		}
		return fmt.Errorf("failed to delete supporter message: %w", err)
	}

	return nil
}
