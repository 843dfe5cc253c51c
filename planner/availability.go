package planner

// SlotRule is one availability dataset entry for an (attraction, mode) pair.
type SlotRule struct {
	Site string
	Name string
	Mode Mode
	// LastHour is the last operating hour bucket at which a fresh
	// reservation can still be obtained. The bucket itself is bookable
	// (inclusive convention); once the clock's bucket passes it, the mode
	// has sold out for the day.
	LastHour int
	// NextFreeHour, when set, is the earliest hour bucket that still has
	// inventory. A bucket later than the current clock yields a
	// future-dated slot, which is what engages the mode's cooldown.
	NextFreeHour *int
}

// AvailabilityTable answers whether a reservation of a constrained mode can
// still be obtained for an attraction, and for which time. Attractions with
// no entry for a mode never sell out. Standby never consults this table.
type AvailabilityTable struct {
	window Window
	rules  map[string]map[Mode]SlotRule
}

// NewAvailabilityTable indexes rules by normalized key. First rule wins on
// duplicate (key, mode) pairs.
func NewAvailabilityTable(window Window, rules []SlotRule) *AvailabilityTable {
	t := &AvailabilityTable{window: window, rules: make(map[string]map[Mode]SlotRule)}
	for _, r := range rules {
		norm := ActivityKey{Site: r.Site, Name: r.Name}.Normalized()
		byMode, ok := t.rules[norm]
		if !ok {
			byMode = make(map[Mode]SlotRule)
			t.rules[norm] = byMode
		}
		if _, seen := byMode[r.Mode]; seen {
			continue
		}
		byMode[r.Mode] = r
	}
	return t
}

// LastBookableHour returns the sellout bucket for the pair. ok=false means
// the mode never sells out for this attraction.
func (t *AvailabilityTable) LastBookableHour(key ActivityKey, mode Mode) (int, bool) {
	rule, ok := t.rules[key.Normalized()][mode]
	if !ok {
		return 0, false
	}
	return rule.LastHour, true
}

// NextSlot returns the next obtainable slot time given the sellout bucket.
// The current clock itself is returned while its bucket is still at or
// before lastHour; ok=false once the bucket has passed it.
func (t *AvailabilityTable) NextSlot(now Clock, lastHour int) (Clock, bool) {
	if now.Hour() > lastHour {
		return 0, false
	}
	return now, true
}

// Slot resolves the concrete slot a booking of (key, mode) would obtain at
// the current clock. preferredHour >= 0 searches forward to that bucket
// when the mode allows slot choice; it never relaxes the sellout contract.
// ok=false means sold out for the rest of the day.
func (t *AvailabilityTable) Slot(key ActivityKey, mode Mode, now Clock, preferredHour int) (Clock, bool) {
	lastHour, limited := t.LastBookableHour(key, mode)
	if !limited {
		lastHour = (t.window.Close - 1).Hour()
	}
	if _, ok := t.NextSlot(now, lastHour); !ok {
		return 0, false
	}

	slot := now
	if rule, ok := t.rules[key.Normalized()][mode]; ok && rule.NextFreeHour != nil {
		free := *rule.NextFreeHour
		if free > lastHour {
			// inventory exhausted past the bookable range
			return 0, false
		}
		if free > now.Hour() {
			slot = ClockAt(free, 0)
		}
	}

	// Premier guests may hold out for a later bucket of their choice.
	if mode == ModePremier && preferredHour > slot.Hour() && preferredHour <= lastHour {
		slot = ClockAt(preferredHour, 0)
	}
	return slot, true
}

// SelloutMargin returns how many hour buckets remain before the pair sells
// out, or a large value when the mode never sells out. Negative margins mean
// the pair is already unobtainable.
func (t *AvailabilityTable) SelloutMargin(key ActivityKey, mode Mode, now Clock) int {
	lastHour, limited := t.LastBookableHour(key, mode)
	if !limited {
		return unlimitedMargin
	}
	return lastHour - now.Hour()
}

// unlimitedMargin sorts never-sells-out pairs after every constrained pair.
const unlimitedMargin = 1 << 20
