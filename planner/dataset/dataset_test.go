package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubuyakinote/disney-konzatsu-navi/planner"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
attractions:
  - site: TDS
    name: Soaring
    standby_points: 5
    premier_points: 4
    ride_minutes: 5
  - site: TDS
    name: Frozen Journey
    standby_points: 5
    premier_points: 5
`)
	c, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	a, ok := c.Lookup(planner.ActivityKey{Site: "TDS", Name: "Soaring"})
	require.True(t, ok)
	assert.Equal(t, 4.0, *a.PremierPoints)
	assert.Equal(t, 5, *a.RideMinutes)

	b, ok := c.Lookup(planner.ActivityKey{Site: "TDS", Name: "Frozen Journey"})
	require.True(t, ok)
	assert.Nil(t, b.RideMinutes)
}

func TestLoadCatalog_Rejects(t *testing.T) {
	empty := writeFile(t, "empty.yaml", "attractions: []\n")
	_, err := LoadCatalog(empty)
	assert.ErrorContains(t, err, "no attractions")

	nameless := writeFile(t, "nameless.yaml", "attractions:\n  - site: TDS\n")
	_, err = LoadCatalog(nameless)
	assert.ErrorContains(t, err, "no name")

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read")
}

func TestLoadWaits(t *testing.T) {
	cfg := planner.DefaultConfig()
	path := writeFile(t, "waits.yaml", `
waits:
  - site: TDS
    name: Soaring
    minutes: [30, 45, 60]
`)
	wt, err := LoadWaits(path, cfg)
	require.NoError(t, err)
	assert.Equal(t, 45, wt.WaitMinutes(planner.ActivityKey{Site: "TDS", Name: "Soaring"}, planner.ClockAt(10, 30)))
}

func TestLoadWaits_RejectsNegative(t *testing.T) {
	path := writeFile(t, "waits.yaml", `
waits:
  - site: TDS
    name: Soaring
    minutes: [30, -5]
`)
	_, err := LoadWaits(path, planner.DefaultConfig())
	assert.ErrorContains(t, err, "negative wait")
}

func TestLoadAvailability(t *testing.T) {
	cfg := planner.DefaultConfig()
	path := writeFile(t, "avail.yaml", `
slots:
  - site: TDS
    name: Frozen Journey
    mode: dpa
    last_bookable_hour: 11
  - site: TDS
    name: Soaring
    mode: pp
    last_bookable_hour: 19
    next_free_hour: 14
`)
	at, err := LoadAvailability(path, cfg)
	require.NoError(t, err)

	last, limited := at.LastBookableHour(planner.ActivityKey{Site: "TDS", Name: "Frozen Journey"}, planner.ModePremier)
	assert.True(t, limited)
	assert.Equal(t, 11, last)

	slot, ok := at.Slot(planner.ActivityKey{Site: "TDS", Name: "Soaring"}, planner.ModePriority, planner.ClockAt(9, 0), -1)
	require.True(t, ok)
	assert.Equal(t, planner.ClockAt(14, 0), slot)
}

func TestLoadAvailability_RejectsStandbyRows(t *testing.T) {
	path := writeFile(t, "avail.yaml", `
slots:
  - site: TDS
    name: Soaring
    mode: standby
    last_bookable_hour: 11
`)
	_, err := LoadAvailability(path, planner.DefaultConfig())
	assert.ErrorContains(t, err, "not capacity-constrained")
}

func TestLoadPicks(t *testing.T) {
	path := writeFile(t, "picks.yaml", `
picks:
  - site: TDS
    name: Soaring
    mode: standby
  - site: TDS
    name: Frozen Journey
    mode: dpa
`)
	picks, err := LoadPicks(path)
	require.NoError(t, err)
	require.Len(t, picks, 2)
	assert.Equal(t, planner.ModeStandby, picks[0].Mode)
	assert.Equal(t, planner.ModePremier, picks[1].Mode)
}

func TestLoadPicks_RejectsUnknownMode(t *testing.T) {
	path := writeFile(t, "picks.yaml", `
picks:
  - site: TDS
    name: Soaring
    mode: teleport
`)
	_, err := LoadPicks(path)
	assert.ErrorContains(t, err, "unknown acquisition mode")
}
