package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubuyakinote/disney-konzatsu-navi/planner"
)

func TestLoadParkConfig_NoFileGivesDefaults(t *testing.T) {
	cfg, err := LoadParkConfig("")
	require.NoError(t, err)
	assert.Equal(t, planner.DefaultConfig(), cfg)
}

func TestLoadParkConfig_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "park.yaml")
	data := `window:
  open: "08:00"
  close: "22:00"
schedule:
  move_minutes: 5
  priority_cooldown_minutes: 90
jitter:
  minutes: 3
  seed: 7
score:
  base_limit: 42
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadParkConfig(path)
	require.NoError(t, err)
	assert.Equal(t, planner.ClockAt(8, 0), cfg.Window.Open)
	assert.Equal(t, planner.ClockAt(22, 0), cfg.Window.Close)
	assert.Equal(t, 5, cfg.MoveMinutes)
	assert.Equal(t, 90, cfg.PriorityCooldownMin)
	assert.Equal(t, 3, cfg.JitterMinutes)
	assert.Equal(t, int64(7), cfg.JitterSeed)
	assert.Equal(t, 42.0, cfg.BaseLimit)

	// untouched fields keep defaults
	assert.Equal(t, planner.DefaultConfig().PremierCooldownMin, cfg.PremierCooldownMin)
}

func TestLoadParkConfig_EnvOverrides(t *testing.T) {
	t.Setenv("NAVI_SCHEDULE__MOVE_MINUTES", "3")

	cfg, err := LoadParkConfig("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MoveMinutes)
}

func TestLoadParkConfig_RejectsInvertedWindow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "park.yaml")
	data := `window:
  open: "21:00"
  close: "09:00"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := LoadParkConfig(path)
	assert.ErrorContains(t, err, "not after open")
}

func TestLoadParkConfig_MissingFile(t *testing.T) {
	_, err := LoadParkConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
