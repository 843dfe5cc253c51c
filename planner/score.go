package planner

// Load scoring: a day's "difficulty" is the sum of the selected per-mode
// points, compared against a comfort budget shaped by the day's conditions.
// This is plain arithmetic, independent of the scheduler; the two share only
// the catalog and the selection set.

// Crowd is the expected crowding level of the visit day.
type Crowd string

const (
	CrowdQuiet  Crowd = "quiet"
	CrowdNormal Crowd = "normal"
	CrowdBusy   Crowd = "busy"
	CrowdPeak   Crowd = "peak" // sellout-grade crowding
)

// Party describes who is coming along.
type Party string

const (
	PartyAdults          Party = "adults"
	PartyPreschool       Party = "preschool"
	PartyLowerElementary Party = "lower-elementary"
	PartyUpperElementary Party = "upper-elementary"
)

// Conditions are the day attributes that shape the comfort budget.
type Conditions struct {
	Crowd            Crowd
	Party            Party
	ToleranceMinutes int // longest acceptable single wait: 30, 60 or 90
	HappyEntry       bool
	VacationPackage  bool
}

// crowdModifier scales difficulty up as the park fills.
func crowdModifier(c Crowd) float64 {
	switch c {
	case CrowdQuiet:
		return 0.90
	case CrowdBusy:
		return 1.15
	case CrowdPeak:
		return 1.25
	default:
		return 1.00
	}
}

// partyModifier accounts for stamina and wait tolerance by age mix.
func partyModifier(p Party) float64 {
	switch p {
	case PartyPreschool:
		return 1.18
	case PartyLowerElementary:
		return 1.12
	case PartyUpperElementary:
		return 1.06
	default:
		return 1.00
	}
}

// toleranceModifier stretches the budget for guests willing to wait longer.
func toleranceModifier(minutes int) float64 {
	switch {
	case minutes <= 30:
		return 0.90
	case minutes >= 90:
		return 1.08
	default:
		return 1.00
	}
}

// perkModifier lowers difficulty for early-entry and vacation-package perks.
func perkModifier(c Conditions) float64 {
	mod := 1.00
	if c.HappyEntry {
		mod *= 0.90
	}
	if c.VacationPackage {
		mod *= 0.85
	}
	return mod
}

// Score sums the selected per-mode points over the catalog. Selections with
// no catalog row contribute nothing.
func Score(selections []Selection, catalog *Catalog) float64 {
	total := 0.0
	for _, sel := range dedupeSelections(selections) {
		a, ok := catalog.Lookup(sel.Key)
		if !ok {
			continue
		}
		total += a.Points(sel.Mode)
	}
	return total
}

// Limit derives the day's comfort budget from the base limit and conditions.
// Harder days (crowds, small children) shrink the budget; perks and a higher
// wait tolerance grow it.
func Limit(base float64, c Conditions) float64 {
	return base * toleranceModifier(c.ToleranceMinutes) /
		(crowdModifier(c.Crowd) * partyModifier(c.Party) * perkModifier(c))
}

// Verdict is the human-facing judgement of a score against its limit.
type Verdict struct {
	Label   string
	Message string
	Ratio   float64
}

// EvaluateVerdict bands the score/limit ratio into a four-level verdict.
// Bands (inclusive upper bounds): 0.75, 1.00, 1.25, above.
func EvaluateVerdict(score, limit float64) Verdict {
	ratio := 0.0
	if limit > 0 {
		ratio = score / limit
	}
	switch {
	case ratio <= 0.75:
		return Verdict{
			Label:   "comfortable",
			Message: "Plenty of slack: room for shows, detours and breaks.",
			Ratio:   ratio,
		}
	case ratio <= 1.00:
		return Verdict{
			Label:   "balanced",
			Message: "Workable, but expect to adjust somewhere on a crowded day.",
			Ratio:   ratio,
		}
	case ratio <= 1.25:
		return Verdict{
			Label:   "aggressive",
			Message: "Waits, walking and meals will stack up; consider paid slots for the two heaviest picks.",
			Ratio:   ratio,
		}
	default:
		return Verdict{
			Label:   "overloaded",
			Message: "This is a forced march. Drop one heavy pick and favor satisfaction over completion.",
			Ratio:   ratio,
		}
	}
}
