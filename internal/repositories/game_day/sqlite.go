package game_day

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/KirkDiggler/gameday/internal/models"
)

// dailyStateRow is the cache row for one user day, the state is kept as JSON
type dailyStateRow struct {
	UserID    string `gorm:"primaryKey"`
	Date      string `gorm:"primaryKey"`
	Payload   string `gorm:"not null"`
	UpdatedAt time.Time
}

func (dailyStateRow) TableName() string { return "daily_states" }

type seasonHistoryRow struct {
	UserID    string `gorm:"primaryKey"`
	Payload   string `gorm:"not null"`
	UpdatedAt time.Time
}

func (seasonHistoryRow) TableName() string { return "season_histories" }

// SQLiteConfig holds configuration for the local cache repository
type SQLiteConfig struct {
	DB *gorm.DB
}

type sqliteRepository struct {
	db *gorm.DB
}

// OpenSQLite opens the cache database at path, creating its directory.
// ":memory:" opens a private in-memory database.
func OpenSQLite(path string) (*gorm.DB, error) {
	dsn := ":memory:"
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
		dsn = fmt.Sprintf("%s?_busy_timeout=5000", path)
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if dsn == ":memory:" {
		// every pooled connection would otherwise get its own empty database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("open sql db: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// NewSQLite creates the cache repository and migrates its tables
func NewSQLite(cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errNilConfig
	}

	if cfg.DB == nil {
		return nil, errors.New("database cannot be nil")
	}

	if err := cfg.DB.AutoMigrate(&dailyStateRow{}, &seasonHistoryRow{}); err != nil {
		return nil, fmt.Errorf("migrate cache tables: %w", err)
	}

	return &sqliteRepository{db: cfg.DB}, nil
}

// SaveDailyState upserts the day row
func (r *sqliteRepository) SaveDailyState(ctx context.Context, input *SaveDailyStateInput) error {
	if err := validateState(input); err != nil {
		return err
	}

	payload, err := json.Marshal(input.State)
	if err != nil {
		return fmt.Errorf("failed to marshal daily state: %w", err)
	}

	row := dailyStateRow{
		UserID:    input.State.UserID,
		Date:      input.State.Date,
		Payload:   string(payload),
		UpdatedAt: input.State.UpdatedAt,
	}

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to cache daily state: %w", err)
	}

	return nil
}

// GetDailyState reads the cached day
func (r *sqliteRepository) GetDailyState(ctx context.Context, input *GetDailyStateInput) (*models.DailyGameState, error) {
	if input == nil || input.UserID == "" {
		return nil, errEmptyUserID
	}
	if input.Date == "" {
		return nil, errEmptyDateKey
	}

	return r.findState(r.db.WithContext(ctx).Where("user_id = ? AND date = ?", input.UserID, input.Date))
}

// GetLatestDailyState reads the newest cached day, date keys sort lexically
func (r *sqliteRepository) GetLatestDailyState(ctx context.Context, input *GetLatestDailyStateInput) (*models.DailyGameState, error) {
	if input == nil || input.UserID == "" {
		return nil, errEmptyUserID
	}

	return r.findState(r.db.WithContext(ctx).Where("user_id = ?", input.UserID).Order("date DESC"))
}

func (r *sqliteRepository) findState(query *gorm.DB) (*models.DailyGameState, error) {
	var row dailyStateRow
	result := query.Limit(1).Find(&row)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to read cached daily state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrDailyStateNotFound
	}

	var state models.DailyGameState
	if err := json.Unmarshal([]byte(row.Payload), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached daily state: %w", err)
	}

	if state.Intake == nil {
		state.Intake = map[models.Category]int{}
	}

	return &state, nil
}

// SaveSeasonHistory upserts the history row
func (r *sqliteRepository) SaveSeasonHistory(ctx context.Context, input *SaveSeasonHistoryInput) error {
	if err := validateHistory(input); err != nil {
		return err
	}

	payload, err := json.Marshal(input.History)
	if err != nil {
		return fmt.Errorf("failed to marshal season history: %w", err)
	}

	row := seasonHistoryRow{
		UserID:    input.History.UserID,
		Payload:   string(payload),
		UpdatedAt: input.History.UpdatedAt,
	}

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to cache season history: %w", err)
	}

	return nil
}

// GetSeasonHistory reads the cached history
func (r *sqliteRepository) GetSeasonHistory(ctx context.Context, input *GetSeasonHistoryInput) (*models.SeasonHistory, error) {
	if input == nil || input.UserID == "" {
		return nil, errEmptyUserID
	}

	var row seasonHistoryRow
	result := r.db.WithContext(ctx).Where("user_id = ?", input.UserID).Limit(1).Find(&row)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to read cached season history: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrSeasonHistoryNotFound
	}

	var history models.SeasonHistory
	if err := json.Unmarshal([]byte(row.Payload), &history); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached season history: %w", err)
	}

	return &history, nil
}
