package planner

// Catalog is the ordered attraction table a run plans against.
// Lookup is by normalized key; duplicate keys resolve first-occurrence-wins,
// matching how the upstream editor resolves hand-entered duplicates.
type Catalog struct {
	Activities []Activity
	index      map[string]int
}

// NewCatalog builds a catalog from rows, dropping later duplicates.
func NewCatalog(activities []Activity) *Catalog {
	c := &Catalog{index: make(map[string]int)}
	for _, a := range activities {
		norm := a.Key().Normalized()
		if _, seen := c.index[norm]; seen {
			continue
		}
		c.index[norm] = len(c.Activities)
		c.Activities = append(c.Activities, a)
	}
	return c
}

// Lookup finds an activity by key, tolerant of text variance between
// datasets. The second return is false when no row matches.
func (c *Catalog) Lookup(key ActivityKey) (Activity, bool) {
	i, ok := c.index[key.Normalized()]
	if !ok {
		return Activity{}, false
	}
	return c.Activities[i], true
}

// Len returns the number of distinct activities.
func (c *Catalog) Len() int {
	return len(c.Activities)
}

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }

// DefaultCatalog is the demo attraction table the original app shipped with.
// Used by the CLI when no catalog file is supplied.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Activity{
		{Site: "TDS", Name: "Frozen Journey", StandbyPoints: ptrF(5), PremierPoints: ptrF(5), RideMinutes: ptrI(7)},
		{Site: "TDS", Name: "Soaring", StandbyPoints: ptrF(5), PremierPoints: ptrF(4), RideMinutes: ptrI(5)},
		{Site: "TDS", Name: "Center of the Earth", StandbyPoints: ptrF(4), PremierPoints: ptrF(3), RideMinutes: ptrI(3)},
		{Site: "TDS", Name: "Toy Story Mania", StandbyPoints: ptrF(4), PremierPoints: ptrF(3), RideMinutes: ptrI(6)},
		{Site: "TDS", Name: "Tower of Terror", StandbyPoints: ptrF(3), PremierPoints: ptrF(2), RideMinutes: ptrI(4)},
		{Site: "TDS", Name: "Indiana Jones", StandbyPoints: ptrF(3), PremierPoints: ptrF(2), RideMinutes: ptrI(4)},
	})
}
