package planner

// RightsTracker holds one reservation right per constrained mode: the next
// simulated clock at which the guest may obtain a fresh reservation of that
// mode. A right is Ready when now >= nextAllowed and Cooling otherwise.
//
// Only the scheduler writes this state; every other component reads it as an
// oracle. nextAllowed is monotonically non-decreasing over a run except when
// a slot is consumed at the current clock, which hands the right back
// immediately (Release).
type RightsTracker struct {
	nextAllowed map[Mode]Clock
}

// NewRightsTracker initializes every constrained mode's right to the window
// open time, so all rights are Ready at the first tick.
func NewRightsTracker(open Clock) *RightsTracker {
	return &RightsTracker{
		nextAllowed: map[Mode]Clock{
			ModePremier:  open,
			ModePriority: open,
		},
	}
}

// Ready reports whether the mode's right can be exercised at the given clock.
func (r *RightsTracker) Ready(mode Mode, now Clock) bool {
	return now >= r.nextAllowed[mode]
}

// Book moves the right to Cooling: called exactly when the scheduler books a
// slot strictly in the future.
func (r *RightsTracker) Book(mode Mode, now Clock, cooldownMinutes int) {
	r.nextAllowed[mode] = now.Add(cooldownMinutes)
}

// Release hands the right back as of now: called when a slot at the current
// clock is consumed ("use it, get it back right away").
func (r *RightsTracker) Release(mode Mode, now Clock) {
	r.nextAllowed[mode] = now
}

// NextAllowed returns the clock at which the mode's right becomes Ready.
func (r *RightsTracker) NextAllowed(mode Mode) Clock {
	return r.nextAllowed[mode]
}

// EarliestExpiry returns the soonest future expiry among the given cooling
// modes. ok=false when none of them is Cooling at now.
func (r *RightsTracker) EarliestExpiry(now Clock, modes []Mode) (Clock, bool) {
	var best Clock
	found := false
	for _, m := range modes {
		t := r.nextAllowed[m]
		if t <= now {
			continue
		}
		if !found || t < best {
			best = t
			found = true
		}
	}
	return best, found
}
