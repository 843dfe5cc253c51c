package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_SumsSelectedModePoints(t *testing.T) {
	catalog := DefaultCatalog()
	// standby Frozen 5 + premier Soaring 4 + standby Tower 3
	picks := []Selection{
		{Key: ActivityKey{Site: "TDS", Name: "Frozen Journey"}, Mode: ModeStandby},
		{Key: ActivityKey{Site: "TDS", Name: "Soaring"}, Mode: ModePremier},
		{Key: ActivityKey{Site: "TDS", Name: "Tower of Terror"}, Mode: ModeStandby},
	}
	assert.Equal(t, 12.0, Score(picks, catalog))
}

func TestScore_ReplacedPickCountsOnce(t *testing.T) {
	catalog := DefaultCatalog()
	// the premier pick replaces the standby pick, so only 4 counts
	picks := []Selection{
		{Key: ActivityKey{Site: "TDS", Name: "Soaring"}, Mode: ModeStandby},
		{Key: ActivityKey{Site: "TDS", Name: "Soaring"}, Mode: ModePremier},
	}
	assert.Equal(t, 4.0, Score(picks, catalog))
}

func TestScore_UnknownActivityContributesNothing(t *testing.T) {
	catalog := DefaultCatalog()
	picks := []Selection{
		{Key: ActivityKey{Site: "TDS", Name: "Phantom Coaster"}, Mode: ModeStandby},
	}
	assert.Equal(t, 0.0, Score(picks, catalog))
}

func TestLimit_ConditionsShapeTheBudget(t *testing.T) {
	base := 38.0

	neutral := Conditions{Crowd: CrowdNormal, Party: PartyAdults, ToleranceMinutes: 60}
	assert.InDelta(t, 38.0, Limit(base, neutral), 1e-9)

	// crowds and small children shrink the budget
	hard := Conditions{Crowd: CrowdPeak, Party: PartyPreschool, ToleranceMinutes: 60}
	assert.Less(t, Limit(base, hard), Limit(base, neutral))

	// perks and patience grow it
	easy := Conditions{Crowd: CrowdNormal, Party: PartyAdults, ToleranceMinutes: 90,
		HappyEntry: true, VacationPackage: true}
	assert.Greater(t, Limit(base, easy), Limit(base, neutral))

	// exact composition: 38 * 1.08 / (0.90 * 0.85)
	quietPerks := Conditions{Crowd: CrowdNormal, Party: PartyAdults, ToleranceMinutes: 90,
		HappyEntry: true, VacationPackage: true}
	assert.InDelta(t, 38*1.08/(0.90*0.85), Limit(base, quietPerks), 1e-9)
}

func TestLimit_UnknownEnumValuesAreNeutral(t *testing.T) {
	// hand-edited inputs may carry values outside the enums; they must not
	// blow up the budget either way
	odd := Conditions{Crowd: "apocalyptic", Party: "robots", ToleranceMinutes: 60}
	assert.InDelta(t, 38.0, Limit(38, odd), 1e-9)
}

func TestEvaluateVerdict_Bands(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{20, "comfortable"}, // 0.50
		{30, "comfortable"}, // 0.75 inclusive
		{38, "balanced"},    // 0.95
		{40, "balanced"},    // 1.00 inclusive
		{48, "aggressive"},  // 1.20
		{50, "aggressive"},  // 1.25 inclusive
		{60, "overloaded"},  // 1.50
	}
	for _, tc := range cases {
		v := EvaluateVerdict(tc.score, 40)
		assert.Equal(t, tc.want, v.Label, "score %v against limit 40", tc.score)
		assert.NotEmpty(t, v.Message)
	}
}

func TestEvaluateVerdict_ZeroLimit(t *testing.T) {
	v := EvaluateVerdict(10, 0)
	assert.Equal(t, "comfortable", v.Label)
	assert.Equal(t, 0.0, v.Ratio)
}
