package pacing

import (
	"math"
	"time"

	"github.com/KirkDiggler/gameday/internal/models"
)

// Classification is how actual progress compares to expected progress
type Classification string

const (
	// ClassificationAhead means at or above the expected progress
	ClassificationAhead Classification = "ahead"

	// ClassificationOnPace means within the on-pace band below expected
	ClassificationOnPace Classification = "on_pace"

	// ClassificationBehind means below the on-pace band
	ClassificationBehind Classification = "behind"
)

// Status is the pace verdict used to scale yardage
type Status struct {
	Classification Classification `json:"classification"`
	Modifier       float64        `json:"modifier"`
	Message        string         `json:"message"`
}

// Config holds the tracking window, thresholds and modifiers
type Config struct {
	// StartHour and EndHour bound the daily tracking window in fractional hours
	StartHour float64
	EndHour   float64

	// AheadThreshold is the minimum actual/expected ratio counted as ahead
	AheadThreshold float64

	// OnPaceThreshold is the minimum ratio counted as on pace
	OnPaceThreshold float64

	AheadModifier  float64
	OnPaceModifier float64

	// BehindModifier must never be below OnPaceModifier
	BehindModifier float64
}

// DefaultConfig returns the 8 AM to 11 PM window with a 20% bonus for being ahead
func DefaultConfig() *Config {
	return &Config{
		StartHour:       8,
		EndHour:         23,
		AheadThreshold:  1.0,
		OnPaceThreshold: 0.8,
		AheadModifier:   1.2,
		OnPaceModifier:  1.0,
		BehindModifier:  1.0,
	}
}

// Calculator maps time of day and intake to pace
type Calculator struct {
	config Config
}

// New creates a pace calculator, using the defaults when cfg is nil
func New(cfg *Config) (*Calculator, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if cfg.StartHour < 0 || cfg.EndHour > 24 || cfg.EndHour <= cfg.StartHour {
		return nil, ErrInvalidWindow
	}

	if cfg.OnPaceThreshold <= 0 || cfg.OnPaceThreshold > cfg.AheadThreshold {
		return nil, ErrInvalidThresholds
	}

	if cfg.AheadModifier <= 0 || cfg.OnPaceModifier <= 0 || cfg.BehindModifier <= 0 {
		return nil, ErrInvalidModifier
	}

	if cfg.BehindModifier < cfg.OnPaceModifier {
		return nil, ErrPunitiveModifier
	}

	return &Calculator{config: *cfg}, nil
}

// Config returns a copy of the calculator configuration
func (c *Calculator) Config() Config {
	return c.config
}

// ExpectedProgress is the share of the day's goals that should be done by hour
func (c *Calculator) ExpectedProgress(hour float64) float64 {
	if hour < c.config.StartHour {
		return 0
	}
	if hour >= c.config.EndHour {
		return 1
	}

	return (hour - c.config.StartHour) / (c.config.EndHour - c.config.StartHour)
}

// ActualProgress averages per-category completion, each capped at 1.
// A category with no positive goal counts as complete.
func (c *Calculator) ActualProgress(intake map[models.Category]int, categories models.Categories) float64 {
	if len(categories) == 0 {
		return 0
	}

	var sum float64
	for _, cat := range categories {
		if cat.Goal <= 0 {
			sum++
			continue
		}
		sum += math.Min(float64(intake[cat.Category])/float64(cat.Goal), 1)
	}

	return sum / float64(len(categories))
}

// Status classifies actual progress against expected progress
func (c *Calculator) Status(actual, expected float64) Status {
	if expected == 0 {
		return Status{Classification: ClassificationAhead, Modifier: c.config.AheadModifier, Message: "Great Start!"}
	}

	ratio := actual / expected

	switch {
	case ratio >= c.config.AheadThreshold:
		return Status{Classification: ClassificationAhead, Modifier: c.config.AheadModifier, Message: "On Track!"}
	case ratio >= c.config.OnPaceThreshold:
		return Status{Classification: ClassificationOnPace, Modifier: c.config.OnPaceModifier, Message: "Keep Going!"}
	default:
		return Status{Classification: ClassificationBehind, Modifier: c.config.BehindModifier, Message: "Let's catch up!"}
	}
}

// Quarter is one fourth of the tracking window
type Quarter struct {
	Number int     `json:"number"`
	Label  string  `json:"label"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
}

// Quarters splits the window into four equal quarters
func (c *Calculator) Quarters() []Quarter {
	length := (c.config.EndHour - c.config.StartHour) / 4
	quarters := make([]Quarter, 0, 4)
	for i := 0; i < 4; i++ {
		start := c.config.StartHour + float64(i)*length
		quarters = append(quarters, Quarter{
			Number: i + 1,
			Label:  []string{"Q1", "Q2", "Q3", "Q4"}[i],
			Start:  start,
			End:    start + length,
		})
	}
	// Pin the last quarter to the window end regardless of float error
	quarters[3].End = c.config.EndHour
	return quarters
}

// Quarter returns the quarter containing hour, false outside the window
func (c *Calculator) Quarter(hour float64) (Quarter, bool) {
	if hour < c.config.StartHour || hour >= c.config.EndHour {
		return Quarter{}, false
	}

	quarters := c.Quarters()
	for _, q := range quarters {
		if hour >= q.Start && hour < q.End {
			return q, true
		}
	}
	return quarters[3], true
}

// QuarterTimeRemaining is the whole minutes left in the current quarter
func (c *Calculator) QuarterTimeRemaining(hour float64) (time.Duration, bool) {
	q, ok := c.Quarter(hour)
	if !ok {
		return 0, false
	}

	minutes := math.Floor((q.End - hour) * 60)
	return time.Duration(minutes) * time.Minute, true
}

// HourOfDay converts a time to fractional hours in its own location
func HourOfDay(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
}
