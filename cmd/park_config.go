package cmd

import (
	"fmt"
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tubuyakinote/disney-konzatsu-navi/planner"
)

// ParkConfig is the on-disk engine configuration. Every field has a default
// from planner.DefaultConfig, so a partial file (or none at all) is fine.
// Environment variables prefixed NAVI_ override file values, with "__" as
// the nesting separator (e.g. NAVI_SCHEDULE__MOVE_MINUTES=5).
type ParkConfig struct {
	Window struct {
		Open  string `koanf:"open"`
		Close string `koanf:"close"`
	} `koanf:"window"`
	Schedule struct {
		MoveMinutes          int `koanf:"move_minutes"`
		DefaultRideMinutes   int `koanf:"default_ride_minutes"`
		FallbackWaitMinutes  int `koanf:"fallback_wait_minutes"`
		PremierCooldownMin   int `koanf:"premier_cooldown_minutes"`
		PriorityCooldownMin  int `koanf:"priority_cooldown_minutes"`
		PremierPreferredHour int `koanf:"premier_preferred_hour"`
	} `koanf:"schedule"`
	Weights struct {
		Premier  float64 `koanf:"premier"`
		Priority float64 `koanf:"priority"`
	} `koanf:"weights"`
	Jitter struct {
		Minutes int   `koanf:"minutes"`
		Seed    int64 `koanf:"seed"`
	} `koanf:"jitter"`
	Score struct {
		BaseLimit float64 `koanf:"base_limit"`
	} `koanf:"score"`
}

// LoadParkConfig merges defaults, an optional YAML file and NAVI_ env
// overrides into a planner.Config.
func LoadParkConfig(path string) (planner.Config, error) {
	def := planner.DefaultConfig()

	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
			return planner.Config{}, fmt.Errorf("load park config: %w", err)
		}
	}
	if err := k.Load(env.Provider("NAVI_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "navi_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return planner.Config{}, fmt.Errorf("load env overrides: %w", err)
	}

	pc := defaultParkConfig(def)
	if err := k.UnmarshalWithConf("", &pc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return planner.Config{}, fmt.Errorf("unmarshal park config: %w", err)
	}
	return pc.toPlanner(def)
}

func defaultParkConfig(def planner.Config) ParkConfig {
	var pc ParkConfig
	pc.Window.Open = def.Window.Open.String()
	pc.Window.Close = def.Window.Close.String()
	pc.Schedule.MoveMinutes = def.MoveMinutes
	pc.Schedule.DefaultRideMinutes = def.DefaultRideMinutes
	pc.Schedule.FallbackWaitMinutes = def.FallbackWaitMin
	pc.Schedule.PremierCooldownMin = def.PremierCooldownMin
	pc.Schedule.PriorityCooldownMin = def.PriorityCooldownMin
	pc.Schedule.PremierPreferredHour = def.PremierPreferredHour
	pc.Weights.Premier = def.PremierWeight
	pc.Weights.Priority = def.PriorityWeight
	pc.Jitter.Minutes = def.JitterMinutes
	pc.Jitter.Seed = def.JitterSeed
	pc.Score.BaseLimit = def.BaseLimit
	return pc
}

func (pc ParkConfig) toPlanner(def planner.Config) (planner.Config, error) {
	open, err := planner.ParseClock(pc.Window.Open)
	if err != nil {
		return planner.Config{}, fmt.Errorf("window open: %w", err)
	}
	close, err := planner.ParseClock(pc.Window.Close)
	if err != nil {
		return planner.Config{}, fmt.Errorf("window close: %w", err)
	}
	if close <= open {
		return planner.Config{}, fmt.Errorf("window close %s is not after open %s", close, open)
	}
	if pc.Schedule.MoveMinutes < 0 || pc.Schedule.FallbackWaitMinutes < 0 || pc.Jitter.Minutes < 0 {
		return planner.Config{}, fmt.Errorf("negative durations are not allowed")
	}

	cfg := def
	cfg.Window = planner.Window{Open: open, Close: close}
	cfg.MoveMinutes = pc.Schedule.MoveMinutes
	cfg.DefaultRideMinutes = pc.Schedule.DefaultRideMinutes
	cfg.FallbackWaitMin = pc.Schedule.FallbackWaitMinutes
	cfg.PremierCooldownMin = pc.Schedule.PremierCooldownMin
	cfg.PriorityCooldownMin = pc.Schedule.PriorityCooldownMin
	cfg.PremierPreferredHour = pc.Schedule.PremierPreferredHour
	cfg.PremierWeight = pc.Weights.Premier
	cfg.PriorityWeight = pc.Weights.Priority
	cfg.JitterMinutes = pc.Jitter.Minutes
	cfg.JitterSeed = pc.Jitter.Seed
	cfg.BaseLimit = pc.Score.BaseLimit
	return cfg, nil
}
