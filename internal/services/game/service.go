package game

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/gameday/internal/common/clock"
	"github.com/KirkDiggler/gameday/internal/common/uuid"
	"github.com/KirkDiggler/gameday/internal/drive"
	"github.com/KirkDiggler/gameday/internal/gameday"
	"github.com/KirkDiggler/gameday/internal/log"
	"github.com/KirkDiggler/gameday/internal/metrics"
	"github.com/KirkDiggler/gameday/internal/models"
	"github.com/KirkDiggler/gameday/internal/pacing"
	gameDayRepo "github.com/KirkDiggler/gameday/internal/repositories/game_day"
	"github.com/KirkDiggler/gameday/internal/yardage"
)

const defaultPersistTimeout = 5 * time.Second

// service implements the Service interface
type service struct {
	categories     models.Categories
	pacing         *pacing.Calculator
	converter      *yardage.Converter
	drive          *drive.Machine
	repo           gameDayRepo.Repository
	clock          clock.Clock
	uuidGenerator  uuid.UUID
	metrics        *metrics.Recorder
	persistTimeout time.Duration

	sessionsMu sync.Mutex
	sessions   map[string]*session
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if len(cfg.Categories) == 0 {
		return nil, ErrNoCategories
	}

	if cfg.Pacing == nil {
		return nil, ErrNilPacing
	}

	if cfg.Drive == nil {
		return nil, ErrNilDrive
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

	persistTimeout := cfg.PersistTimeout
	if persistTimeout <= 0 {
		persistTimeout = defaultPersistTimeout
	}

	return &service{
		categories:     cfg.Categories,
		pacing:         cfg.Pacing,
		converter:      yardage.New(cfg.Categories),
		drive:          cfg.Drive,
		repo:           cfg.Repository,
		clock:          cfg.Clock,
		uuidGenerator:  cfg.UUIDGenerator,
		metrics:        cfg.Metrics,
		persistTimeout: persistTimeout,
		sessions:       make(map[string]*session),
	}, nil
}

func (s *service) today() string {
	return gameday.DateKey(s.clock.Now(), nil)
}

// pace builds the pace report for state at now
func (s *service) pace(state *models.DailyGameState, now time.Time) *PaceReport {
	hour := pacing.HourOfDay(now)
	expected := s.pacing.ExpectedProgress(hour)
	actual := s.pacing.ActualProgress(state.Intake, s.categories)

	report := &PaceReport{
		HourOfDay: hour,
		Expected:  expected,
		Actual:    actual,
		Status:    s.pacing.Status(actual, expected),
	}

	if q, ok := s.pacing.Quarter(hour); ok {
		report.Quarter = &q
		report.QuarterTimeRemaining, _ = s.pacing.QuarterTimeRemaining(hour)
	}

	return report
}

// GetGameDay returns today's state for a player
func (s *service) GetGameDay(ctx context.Context, input *GetGameDayInput) (*GetGameDayOutput, error) {
	if input == nil {
		return nil, ErrEmptyPlayerID
	}

	sess, release, err := s.acquire(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	defer release()

	return &GetGameDayOutput{
		State: sess.state.Clone(),
		Pace:  s.pace(sess.state, s.clock.Now()),
	}, nil
}

// LogIntake records intake, runs the play and awards any goal crossed, as one transition
func (s *service) LogIntake(ctx context.Context, input *LogIntakeInput) (*LogIntakeOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrEmptyPlayerID
	}

	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if _, ok := s.categories.Lookup(input.Category); !ok {
		return nil, ErrUnknownCategory
	}

	sess := s.sessionFor(input.PlayerID)
	if !sess.inFlight.CompareAndSwap(false, true) {
		return nil, ErrPlayInProgress
	}
	defer sess.inFlight.Store(false)

	sess, release, err := s.acquire(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	defer release()

	now := s.clock.Now()
	pace := s.pace(sess.state, now)
	yards := s.converter.Yards(input.Category, input.Amount, pace.Status.Modifier)

	state, err := s.drive.ApplyIntake(sess.state, input.Category, input.Amount, now)
	if err != nil {
		return nil, err
	}

	state, play, err := s.drive.ApplyPlay(state, &drive.PlayInput{
		ID:           s.uuidGenerator.NewUUID(),
		Category:     input.Category,
		YardsGained:  yards,
		PaceModifier: pace.Status.Modifier,
		Timestamp:    now,
	})
	if err != nil {
		return nil, err
	}

	state, awarded, err := s.drive.AwardGoalBonuses(state, s.categories, now)
	if err != nil {
		return nil, err
	}

	sess.state = state
	s.persistState(ctx, state)

	s.metrics.Play(string(input.Category), string(pace.Status.Classification), play.YardsGained, play.IsTouchdown)
	for _, c := range awarded {
		s.metrics.GoalBonus(string(c))
	}

	log.Debug("Play committed",
		zap.String("player_id", input.PlayerID),
		zap.String("category", string(input.Category)),
		zap.Int("amount", input.Amount),
		zap.Float64("yards", play.YardsGained),
		zap.Bool("touchdown", play.IsTouchdown),
		zap.Int("goals_awarded", len(awarded)),
	)

	return &LogIntakeOutput{
		Play:         play,
		State:        state.Clone(),
		Pace:         pace,
		GoalsAwarded: awarded,
	}, nil
}

// RemoveIntake subtracts intake, floored at zero. Goal bonuses already credited stay.
func (s *service) RemoveIntake(ctx context.Context, input *RemoveIntakeInput) (*RemoveIntakeOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrEmptyPlayerID
	}

	category, ok := s.categories.Lookup(input.Category)
	if !ok {
		return nil, ErrUnknownCategory
	}

	amount := input.Amount
	if amount < 0 {
		return nil, ErrInvalidAmount
	}
	if amount == 0 {
		amount = category.Increment
	}

	sess, release, err := s.acquire(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	defer release()

	before := sess.state.Intake[input.Category]
	state, err := s.drive.ApplyIntake(sess.state, input.Category, -amount, s.clock.Now())
	if err != nil {
		return nil, err
	}

	removed := before - state.Intake[input.Category]
	if removed > 0 {
		sess.state = state
		s.persistState(ctx, state)
	}

	return &RemoveIntakeOutput{
		State:   sess.state.Clone(),
		Removed: removed,
	}, nil
}

// ClaimGoalBonuses runs the goal bonus check on its own, it is safe to call at any time
func (s *service) ClaimGoalBonuses(ctx context.Context, input *ClaimGoalBonusesInput) (*ClaimGoalBonusesOutput, error) {
	if input == nil {
		return nil, ErrEmptyPlayerID
	}

	sess, release, err := s.acquire(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	defer release()

	state, awarded, err := s.drive.AwardGoalBonuses(sess.state, s.categories, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if len(awarded) > 0 {
		sess.state = state
		s.persistState(ctx, state)
		for _, c := range awarded {
			s.metrics.GoalBonus(string(c))
		}
	}

	return &ClaimGoalBonusesOutput{
		State:        sess.state.Clone(),
		GoalsAwarded: awarded,
	}, nil
}

// GetPace reports the current pace
func (s *service) GetPace(ctx context.Context, input *GetPaceInput) (*GetPaceOutput, error) {
	if input == nil {
		return nil, ErrEmptyPlayerID
	}

	sess, release, err := s.acquire(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	defer release()

	return &GetPaceOutput{
		Pace: s.pace(sess.state, s.clock.Now()),
	}, nil
}

// GetSeason returns the season history and its summary
func (s *service) GetSeason(ctx context.Context, input *GetSeasonInput) (*GetSeasonOutput, error) {
	if input == nil {
		return nil, ErrEmptyPlayerID
	}

	sess, release, err := s.acquire(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	defer release()

	history := *sess.history
	history.Records = append([]*models.GameRecord{}, sess.history.Records...)

	return &GetSeasonOutput{
		History: &history,
		Summary: gameday.Summarize(&history),
	}, nil
}

// ResetDay discards today's progress without archiving it
func (s *service) ResetDay(ctx context.Context, input *ResetDayInput) (*ResetDayOutput, error) {
	if input == nil {
		return nil, ErrEmptyPlayerID
	}

	sess, release, err := s.acquire(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	defer release()

	state := gameday.NewDay(input.PlayerID, s.today(), s.drive.Rules())
	state.UpdatedAt = s.clock.Now()
	sess.state = state
	s.persistState(ctx, state)

	log.Info("Game day reset", zap.String("player_id", input.PlayerID), zap.String("date", state.Date))

	return &ResetDayOutput{
		State: state.Clone(),
	}, nil
}

// ResetSeason clears every archived day
func (s *service) ResetSeason(ctx context.Context, input *ResetSeasonInput) (*ResetSeasonOutput, error) {
	if input == nil {
		return nil, ErrEmptyPlayerID
	}

	sess, release, err := s.acquire(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	defer release()

	history := &models.SeasonHistory{
		UserID:    input.PlayerID,
		Records:   []*models.GameRecord{},
		UpdatedAt: s.clock.Now(),
	}
	sess.history = history
	s.persistHistory(ctx, history)

	log.Info("Season reset", zap.String("player_id", input.PlayerID))

	return &ResetSeasonOutput{
		History: &models.SeasonHistory{UserID: history.UserID, Records: []*models.GameRecord{}, UpdatedAt: history.UpdatedAt},
	}, nil
}
