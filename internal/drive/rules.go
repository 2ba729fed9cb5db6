package drive

// Rules are the field geometry and scoring constants of a drive
type Rules struct {
	// FieldLength is the far end of the field, positions are clamped to [0, FieldLength]
	FieldLength float64

	// StartPosition is where every drive begins
	StartPosition float64

	// TouchdownLine is the position at or beyond which the offense scores
	TouchdownLine float64

	// FirstDownDistance is the yards needed to move the chains
	FirstDownDistance float64

	// MaxDowns is the number of downs before a set is exhausted
	MaxDowns int

	// AutoConvert grants a fresh set of downs instead of a turnover
	AutoConvert bool

	// TouchdownPoints is scored for crossing the touchdown line
	TouchdownPoints int

	// GoalBonusPoints is scored once per category per day for reaching its goal
	GoalBonusPoints int
}

// DefaultRules returns the standard drive with auto-convert enabled
func DefaultRules() *Rules {
	return &Rules{
		FieldLength:       100,
		StartPosition:     20,
		TouchdownLine:     90,
		FirstDownDistance: 10,
		MaxDowns:          4,
		AutoConvert:       true,
		TouchdownPoints:   7,
		GoalBonusPoints:   7,
	}
}

// Validate checks the rules describe a playable field
func (r *Rules) Validate() error {
	if r.FieldLength <= 0 || r.StartPosition < 0 || r.TouchdownLine <= r.StartPosition || r.TouchdownLine > r.FieldLength {
		return ErrInvalidField
	}

	if r.FirstDownDistance <= 0 || r.MaxDowns <= 0 {
		return ErrInvalidDownRules
	}

	if r.TouchdownPoints <= 0 || r.GoalBonusPoints <= 0 {
		return ErrInvalidPointRules
	}

	return nil
}
