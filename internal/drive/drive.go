package drive

import (
	"math"
	"time"

	"github.com/KirkDiggler/gameday/internal/models"
	"github.com/KirkDiggler/gameday/internal/yardage"
)

// Machine applies plays and intake changes to a day's drive state
type Machine struct {
	rules Rules
}

// New creates a drive machine, using the default rules when rules is nil
func New(rules *Rules) (*Machine, error) {
	if rules == nil {
		rules = DefaultRules()
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}

	return &Machine{rules: *rules}, nil
}

// Rules returns a copy of the machine rules
func (m *Machine) Rules() Rules {
	return m.rules
}

// PlayInput describes one yardage play
type PlayInput struct {
	ID           string
	Category     models.Category
	YardsGained  float64
	PaceModifier float64
	Timestamp    time.Time
}

// Reset puts the ball back at the start of a new drive
func (m *Machine) Reset(state *models.DailyGameState) {
	state.FieldPosition = m.rules.StartPosition
	state.Down = 1
	state.YardsToGo = m.rules.FirstDownDistance
}

// ApplyPlay runs one play against a copy of state and returns the new state with its receipt.
// Order is advance, first down, down conversion, touchdown, clamp.
func (m *Machine) ApplyPlay(state *models.DailyGameState, input *PlayInput) (*models.DailyGameState, *models.Play, error) {
	if state == nil {
		return nil, nil, ErrNilState
	}

	if input == nil {
		return nil, nil, ErrNilPlay
	}

	next := state.Clone()
	gained := yardage.Round1(input.YardsGained)
	priorToGo := next.YardsToGo

	next.FieldPosition = yardage.Round1(next.FieldPosition + gained)
	next.YardsToGo = yardage.Round1(next.YardsToGo - gained)
	next.Down++

	isFirstDown := gained >= priorToGo || next.YardsToGo <= 0
	if isFirstDown {
		next.Down = 1
		next.YardsToGo = m.rules.FirstDownDistance
	}

	isTurnover := false
	if next.Down > m.rules.MaxDowns {
		if m.rules.AutoConvert {
			next.Down = 1
			next.YardsToGo = m.rules.FirstDownDistance
		} else {
			isTurnover = true
			m.Reset(next)
		}
	}

	isTouchdown := next.FieldPosition >= m.rules.TouchdownLine
	if isTouchdown {
		next.OffenseScore += m.rules.TouchdownPoints
		m.Reset(next)
	}

	next.FieldPosition = math.Max(0, math.Min(m.rules.FieldLength, next.FieldPosition))

	play := &models.Play{
		ID:            input.ID,
		Category:      input.Category,
		YardsGained:   gained,
		FieldPosition: next.FieldPosition,
		Down:          next.Down,
		YardsToGo:     next.YardsToGo,
		IsFirstDown:   isFirstDown,
		IsTouchdown:   isTouchdown,
		IsTurnover:    isTurnover,
		PaceModifier:  input.PaceModifier,
		Timestamp:     input.Timestamp,
	}

	next.Plays = append(next.Plays, play)
	next.TotalYards = yardage.Round1(next.TotalYards + gained)
	next.UpdatedAt = input.Timestamp

	return next, play, nil
}

// ApplyIntake adds delta to a category total, never going below zero
func (m *Machine) ApplyIntake(state *models.DailyGameState, category models.Category, delta int, now time.Time) (*models.DailyGameState, error) {
	if state == nil {
		return nil, ErrNilState
	}

	next := state.Clone()
	total := next.Intake[category] + delta
	if total < 0 {
		total = 0
	}
	next.Intake[category] = total
	next.UpdatedAt = now

	return next, nil
}

// AwardGoalBonuses credits every category at or above its goal that has not been credited today.
// Running it again without new intake awards nothing.
func (m *Machine) AwardGoalBonuses(state *models.DailyGameState, categories models.Categories, now time.Time) (*models.DailyGameState, []models.Category, error) {
	if state == nil {
		return nil, nil, ErrNilState
	}

	next := state.Clone()
	var awarded []models.Category

	for _, cat := range categories {
		if cat.Goal <= 0 || next.HasGoal(cat.Category) {
			continue
		}
		if next.Intake[cat.Category] < cat.Goal {
			continue
		}

		next.OffenseScore += m.rules.GoalBonusPoints
		next.GoalsCompleted = append(next.GoalsCompleted, cat.Category)
		awarded = append(awarded, cat.Category)
	}

	if len(awarded) > 0 {
		next.UpdatedAt = now
	}

	return next, awarded, nil
}
