package game_day

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/gameday/internal/models"
)

const (
	// Document layout: users/{uid}/games/{date} and users/{uid}/data/history
	usersCollection = "users"
	gamesCollection = "games"
	dataCollection  = "data"
	historyDocument = "history"
)

// FirestoreConfig holds configuration for the Firestore game day repository
type FirestoreConfig struct {
	Client *firestore.Client
}

type firestoreRepository struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore-backed game day repository
func NewFirestore(cfg *FirestoreConfig) (*firestoreRepository, error) {
	if cfg == nil {
		return nil, errNilConfig
	}

	if cfg.Client == nil {
		return nil, errors.New("firestore client cannot be nil")
	}

	return &firestoreRepository{client: cfg.Client}, nil
}

func (r *firestoreRepository) games(userID string) *firestore.CollectionRef {
	return r.client.Collection(usersCollection).Doc(userID).Collection(gamesCollection)
}

func (r *firestoreRepository) history(userID string) *firestore.DocumentRef {
	return r.client.Collection(usersCollection).Doc(userID).Collection(dataCollection).Doc(historyDocument)
}

// SaveDailyState writes the day document
func (r *firestoreRepository) SaveDailyState(ctx context.Context, input *SaveDailyStateInput) error {
	if err := validateState(input); err != nil {
		return err
	}

	if _, err := r.games(input.State.UserID).Doc(input.State.Date).Set(ctx, input.State); err != nil {
		return fmt.Errorf("failed to save daily state: %w", err)
	}

	return nil
}

// GetDailyState reads the day document
func (r *firestoreRepository) GetDailyState(ctx context.Context, input *GetDailyStateInput) (*models.DailyGameState, error) {
	if input == nil || input.UserID == "" {
		return nil, errEmptyUserID
	}
	if input.Date == "" {
		return nil, errEmptyDateKey
	}

	snap, err := r.games(input.UserID).Doc(input.Date).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrDailyStateNotFound
		}
		return nil, fmt.Errorf("failed to get daily state: %w", err)
	}

	return decodeState(snap)
}

// GetLatestDailyState reads the newest day document by date
func (r *firestoreRepository) GetLatestDailyState(ctx context.Context, input *GetLatestDailyStateInput) (*models.DailyGameState, error) {
	if input == nil || input.UserID == "" {
		return nil, errEmptyUserID
	}

	snaps, err := r.games(input.UserID).OrderBy("date", firestore.Desc).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query latest daily state: %w", err)
	}

	if len(snaps) == 0 {
		return nil, ErrDailyStateNotFound
	}

	return decodeState(snaps[0])
}

func decodeState(snap *firestore.DocumentSnapshot) (*models.DailyGameState, error) {
	var state models.DailyGameState
	if err := snap.DataTo(&state); err != nil {
		return nil, fmt.Errorf("failed to decode daily state: %w", err)
	}

	if state.Intake == nil {
		state.Intake = map[models.Category]int{}
	}

	return &state, nil
}

// SaveSeasonHistory writes the whole history document
func (r *firestoreRepository) SaveSeasonHistory(ctx context.Context, input *SaveSeasonHistoryInput) error {
	if err := validateHistory(input); err != nil {
		return err
	}

	if _, err := r.history(input.History.UserID).Set(ctx, input.History); err != nil {
		return fmt.Errorf("failed to save season history: %w", err)
	}

	return nil
}

// GetSeasonHistory reads the history document
func (r *firestoreRepository) GetSeasonHistory(ctx context.Context, input *GetSeasonHistoryInput) (*models.SeasonHistory, error) {
	if input == nil || input.UserID == "" {
		return nil, errEmptyUserID
	}

	snap, err := r.history(input.UserID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrSeasonHistoryNotFound
		}
		return nil, fmt.Errorf("failed to get season history: %w", err)
	}

	var history models.SeasonHistory
	if err := snap.DataTo(&history); err != nil {
		return nil, fmt.Errorf("failed to decode season history: %w", err)
	}

	return &history, nil
}
