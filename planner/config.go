package planner

// Config groups the tunable parameters of one planning run.
// Zero values are not meaningful; start from DefaultConfig and override.
type Config struct {
	Window Window // operating window the run plans within

	MoveMinutes        int // nominal walk time appended before each ride
	DefaultRideMinutes int // ride duration when the catalog carries none
	FallbackWaitMin    int // wait minutes when the wait table has no entry

	PremierCooldownMin  int // minutes between two future-dated premier bookings
	PriorityCooldownMin int // minutes between two future-dated priority bookings

	// Intrinsic mode effort weights for booking tie-breaks. Priority slots
	// are scarcer than premier slots and carry the larger weight, so the
	// priority right is exercised first when both are ready.
	PremierWeight  float64
	PriorityWeight float64

	// PremierPreferredHour targets a specific hour bucket for premier
	// bookings ("prefer a later slot"). Negative means prefer immediate.
	PremierPreferredHour int

	// JitterMinutes spreads wait lookups by at most this many minutes in
	// either direction, derived purely from the activity key so repeated
	// runs stay byte-identical. 0 disables jitter.
	JitterMinutes int
	JitterSeed    int64

	BaseLimit float64 // comfort budget the load score is compared against
}

// Cooldown returns the configured cooldown for a constrained mode, 0 otherwise.
func (c Config) Cooldown(mode Mode) int {
	switch mode {
	case ModePremier:
		return c.PremierCooldownMin
	case ModePriority:
		return c.PriorityCooldownMin
	default:
		return 0
	}
}

// ModeWeight returns the intrinsic effort weight for a constrained mode.
func (c Config) ModeWeight(mode Mode) float64 {
	switch mode {
	case ModePremier:
		return c.PremierWeight
	case ModePriority:
		return c.PriorityWeight
	default:
		return 0
	}
}

// DefaultConfig returns the park defaults: a 09:00-21:00 day, 10-minute
// walks, hour-long premier cooldown and two-hour priority cooldown.
func DefaultConfig() Config {
	return Config{
		Window:               Window{Open: ClockAt(9, 0), Close: ClockAt(21, 0)},
		MoveMinutes:          10,
		DefaultRideMinutes:   10,
		FallbackWaitMin:      0,
		PremierCooldownMin:   60,
		PriorityCooldownMin:  120,
		PremierWeight:        0.1,
		PriorityWeight:       0.2,
		PremierPreferredHour: -1,
		JitterMinutes:        0,
		JitterSeed:           0,
		BaseLimit:            38,
	}
}
