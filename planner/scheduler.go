package planner

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// Unsatisfied is one selection the run could not fit into the window,
// with the reason it was given up on.
type Unsatisfied struct {
	Selection Selection
	Reason    string
}

// Result is everything a run produces: the ordered action list and the
// selections that could not be scheduled. Nothing is dropped silently.
type Result struct {
	Actions     []Action
	Unsatisfied []Unsatisfied
}

// Scheduler plans one day at a capacity-constrained park. It is a greedy,
// single-threaded state machine over a simulated clock: each Plan call owns
// a fresh copy of all mutable state, so recomputing after a selection change
// never shares state with an earlier run.
type Scheduler struct {
	cfg     Config
	catalog *Catalog
	waits   *WaitTable
	avail   *AvailabilityTable
}

// NewScheduler wires the models a run consults. The catalog, wait table and
// availability table are read-only inputs and may be shared across runs.
func NewScheduler(cfg Config, catalog *Catalog, waits *WaitTable, avail *AvailabilityTable) *Scheduler {
	return &Scheduler{cfg: cfg, catalog: catalog, waits: waits, avail: avail}
}

// bookedSlot is a reservation acquired for a future bucket, not yet consumed.
// At most one outstanding booked slot exists per activity: a selection
// leaves the pending set the moment it is booked.
type bookedSlot struct {
	sel Selection
	at  Clock
}

// run is the mutable state of a single Plan call.
type run struct {
	*Scheduler
	now     Clock
	pending []Selection
	booked  []bookedSlot
	rights  *RightsTracker
	actions []Action
	unsat   []Unsatisfied
}

// Plan schedules the selections across the operating window and returns the
// ordered action list plus whatever could not be fit. Deterministic: the
// same inputs yield byte-identical results. The engine is total over any
// well-typed input; missing data resolves to configured defaults.
func (s *Scheduler) Plan(selections []Selection) Result {
	r := &run{
		Scheduler: s,
		now:       s.cfg.Window.Open,
		pending:   dedupeSelections(selections),
		rights:    NewRightsTracker(s.cfg.Window.Open),
	}

	// Loop invariant: every iteration either advances the clock, removes a
	// selection from the pending set, or moves a Ready right to Cooling.
	// Each of those happens at most a bounded number of times per window,
	// so the loop cannot spin.
	for (len(r.pending) > 0 || len(r.booked) > 0) && r.now < s.cfg.Window.Close {
		if r.consumeReady() {
			continue
		}
		if r.tryBookings() {
			continue
		}
		if r.queueNext() {
			continue
		}
		if !r.advanceClock() {
			break
		}
	}

	r.drain()
	logrus.Infof("[%s] run ended: %d actions, %d unsatisfied", r.now, len(r.actions), len(r.unsat))
	return Result{Actions: r.actions, Unsatisfied: r.unsat}
}

// dedupeSelections enforces one mode per activity, last pick winning, while
// preserving the caller's order of first mention.
func dedupeSelections(selections []Selection) []Selection {
	order := make([]ActivityKey, 0, len(selections))
	byKey := make(map[string]Selection, len(selections))
	for _, sel := range selections {
		norm := sel.Key.Normalized()
		if _, seen := byKey[norm]; !seen {
			order = append(order, sel.Key)
		}
		byKey[norm] = sel
	}
	out := make([]Selection, 0, len(byKey))
	for _, key := range order {
		out = append(out, byKey[key.Normalized()])
	}
	return out
}

// consumeReady takes the earliest booked slot whose time has arrived.
// This step has absolute priority over everything else: a slot that has
// arrived is a time-boxed commitment and must not be starved.
func (r *run) consumeReady() bool {
	best := -1
	for i, b := range r.booked {
		if b.at > r.now {
			continue
		}
		if best < 0 || b.at < r.booked[best].at {
			best = i
		}
	}
	if best < 0 {
		return false
	}
	b := r.booked[best]
	r.booked = append(r.booked[:best], r.booked[best+1:]...)

	logrus.Infof("[%s] reserved slot arrived for %s", r.now, b.sel)
	r.ride(b.sel, "reserved slot")
	// the right was just exercised, hand it back as of the new clock
	r.rights.Release(b.sel.Mode, r.now)
	return true
}

// tryBookings exercises at most one Ready constrained right, scarcest mode
// first. Among that mode's pending selections it books the one closest to
// selling out.
func (r *run) tryBookings() bool {
	for _, mode := range r.bookingOrder() {
		if !r.rights.Ready(mode, r.now) {
			continue
		}
		idx := r.bestCandidate(mode)
		if idx < 0 {
			continue
		}
		sel := r.pending[idx]

		preferred := -1
		if mode == ModePremier {
			preferred = r.cfg.PremierPreferredHour
		}
		slot, ok := r.avail.Slot(sel.Key, mode, r.now, preferred)
		if !ok {
			// definitive failure, not a retry condition
			r.removePending(idx)
			r.giveUp(sel, "sold out")
			return true
		}

		if slot <= r.now {
			// slot in the current bucket: consume on the spot, no cooldown
			r.removePending(idx)
			logrus.Infof("[%s] immediate %s slot for %s", r.now, mode, sel.Key)
			r.ride(sel, "immediate "+mode.String()+" slot")
			r.rights.Release(mode, r.now)
			return true
		}

		r.removePending(idx)
		r.append(Action{Start: r.now, End: r.now, Kind: ActionBook, Activity: sel.Key,
			Note: mode.String() + " slot at " + slot.String()})
		r.booked = append(r.booked, bookedSlot{sel: sel, at: slot})
		r.rights.Book(mode, r.now, r.cfg.Cooldown(mode))
		logrus.Infof("[%s] booked %s slot at %s for %s, right cooling until %s",
			r.now, mode, slot, sel.Key, r.rights.NextAllowed(mode))
		return true
	}
	return false
}

// bookingOrder returns the constrained modes sorted by intrinsic effort
// weight, heaviest (scarcest) first.
func (r *run) bookingOrder() []Mode {
	modes := []Mode{ModePremier, ModePriority}
	sort.SliceStable(modes, func(i, j int) bool {
		wi, wj := r.cfg.ModeWeight(modes[i]), r.cfg.ModeWeight(modes[j])
		if wi != wj {
			return wi > wj
		}
		return modes[i] < modes[j]
	})
	return modes
}

// bestCandidate picks the pending selection of the mode with the smallest
// sellout margin from now, ties broken by normalized key for determinism.
// Returns -1 when the mode has no pending selections.
func (r *run) bestCandidate(mode Mode) int {
	best := -1
	bestMargin := 0
	for i, sel := range r.pending {
		if sel.Mode != mode {
			continue
		}
		margin := r.avail.SelloutMargin(sel.Key, mode, r.now)
		if best < 0 || margin < bestMargin ||
			(margin == bestMargin && sel.Key.Normalized() < r.pending[best].Key.Normalized()) {
			best = i
			bestMargin = margin
		}
	}
	return best
}

// queueNext enters the standby line with the smallest current wait among the
// pending standby selections.
func (r *run) queueNext() bool {
	best := -1
	bestWait := 0
	for i, sel := range r.pending {
		if sel.Mode != ModeStandby {
			continue
		}
		w := r.waits.WaitMinutes(sel.Key, r.now)
		if best < 0 || w < bestWait ||
			(w == bestWait && sel.Key.Normalized() < r.pending[best].Key.Normalized()) {
			best = i
			bestWait = w
		}
	}
	if best < 0 {
		return false
	}
	sel := r.pending[best]
	r.removePending(best)

	// the ride must start before close; overrun past close is bounded by
	// one ride duration
	if r.now.Add(r.cfg.MoveMinutes+bestWait) >= r.cfg.Window.Close {
		r.giveUp(sel, "standby wait exceeds remaining time")
		return true
	}

	logrus.Infof("[%s] queueing for %s, %d min posted", r.now, sel.Key, bestWait)
	start := r.now
	moveEnd := start.Add(r.cfg.MoveMinutes)
	r.append(Action{Start: start, End: moveEnd, Kind: ActionMove, Activity: sel.Key, Note: "walk over"})
	r.now = moveEnd
	if bestWait > 0 {
		waitEnd := r.now.Add(bestWait)
		r.append(Action{Start: r.now, End: waitEnd, Kind: ActionWait, Activity: sel.Key, Note: "standby line"})
		r.now = waitEnd
	}
	rideEnd := r.now.Add(r.rideMinutes(sel.Key))
	r.append(Action{Start: r.now, End: rideEnd, Kind: ActionRide, Activity: sel.Key, Note: "standby"})
	r.now = rideEnd
	return true
}

// advanceClock jumps to the next moment anything can happen: the earliest
// booked slot, or the earliest cooling right's expiry. false means nothing
// is ever going to become actionable again.
func (r *run) advanceClock() bool {
	var next Clock
	found := false
	for _, b := range r.booked {
		if !found || b.at < next {
			next = b.at
			found = true
		}
	}
	if t, ok := r.rights.EarliestExpiry(r.now, r.coolingModesWithPending()); ok {
		if !found || t < next {
			next = t
			found = true
		}
	}
	if !found || next <= r.now {
		return false
	}
	logrus.Debugf("[%s] nothing actionable, advancing to %s", r.now, next)
	r.now = next
	return true
}

// coolingModesWithPending lists constrained modes that still have pending
// selections; waiting out a cooldown is only worthwhile for those.
func (r *run) coolingModesWithPending() []Mode {
	var modes []Mode
	for _, mode := range []Mode{ModePremier, ModePriority} {
		for _, sel := range r.pending {
			if sel.Mode == mode {
				modes = append(modes, mode)
				break
			}
		}
	}
	return modes
}

// ride appends the move and ride actions for a satisfied selection and
// advances the clock past them.
func (r *run) ride(sel Selection, note string) {
	start := r.now
	moveEnd := start.Add(r.cfg.MoveMinutes)
	r.append(Action{Start: start, End: moveEnd, Kind: ActionMove, Activity: sel.Key, Note: "walk over"})
	rideEnd := moveEnd.Add(r.rideMinutes(sel.Key))
	r.append(Action{Start: moveEnd, End: rideEnd, Kind: ActionRide, Activity: sel.Key, Note: note})
	r.now = rideEnd
}

// rideMinutes returns the attraction's nominal duration, or the configured
// default when the catalog has none.
func (r *run) rideMinutes(key ActivityKey) int {
	if a, ok := r.catalog.Lookup(key); ok && a.RideMinutes != nil {
		return *a.RideMinutes
	}
	return r.cfg.DefaultRideMinutes
}

func (r *run) removePending(i int) {
	r.pending = append(r.pending[:i], r.pending[i+1:]...)
}

func (r *run) giveUp(sel Selection, reason string) {
	logrus.Infof("[%s] giving up on %s: %s", r.now, sel, reason)
	r.unsat = append(r.unsat, Unsatisfied{Selection: sel, Reason: reason})
}

func (r *run) append(a Action) {
	r.actions = append(r.actions, a)
}

// drain reports everything still outstanding when the run stops.
func (r *run) drain() {
	for _, sel := range r.pending {
		r.giveUp(sel, "no time left in operating window")
	}
	r.pending = nil
	for _, b := range r.booked {
		r.giveUp(b.sel, "window closed before reserved slot at "+b.at.String())
	}
	r.booked = nil
}
