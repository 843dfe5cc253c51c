package planner

// WaitRow is one wait dataset entry: hourly expected queue minutes for an
// attraction, indexed from the operating window's open hour.
type WaitRow struct {
	Site    string
	Name    string
	Minutes []int
}

// WaitTable answers "how long is the standby line for this attraction at
// this time of day". Lookups are keyed by normalized activity key so text
// variance between the catalog and the wait dataset does not break matching.
// The table is total: missing attractions, missing hour buckets and
// out-of-window clocks all resolve to defined defaults, never an error.
type WaitTable struct {
	window   Window
	fallback int
	jitter   int
	seed     int64
	byKey    map[string][]int
}

// NewWaitTable builds a wait table over the given window. fallback is
// returned for any lookup the dataset cannot answer. jitter > 0 enables
// deterministic key-seeded spreading of results.
func NewWaitTable(window Window, fallback, jitter int, seed int64, rows []WaitRow) *WaitTable {
	t := &WaitTable{
		window:   window,
		fallback: fallback,
		jitter:   jitter,
		seed:     seed,
		byKey:    make(map[string][]int, len(rows)),
	}
	for _, r := range rows {
		norm := ActivityKey{Site: r.Site, Name: r.Name}.Normalized()
		if _, seen := t.byKey[norm]; seen {
			continue
		}
		t.byKey[norm] = r.Minutes
	}
	return t
}

// WaitMinutes returns the expected standby wait for the attraction at the
// given clock. Never negative.
func (t *WaitTable) WaitMinutes(key ActivityKey, at Clock) int {
	hour := t.window.ClampHour(at)
	norm := key.Normalized()

	minutes, ok := t.byKey[norm]
	if !ok {
		return t.fallback
	}
	idx := hour - t.window.Open.Hour()
	if idx < 0 || idx >= len(minutes) {
		return t.fallback
	}
	w := minutes[idx] + jitterOffset(norm, hour, t.jitter, t.seed)
	if w < 0 {
		return 0
	}
	return w
}
