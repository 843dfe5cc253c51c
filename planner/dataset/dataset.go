// Package dataset parses the YAML files the CLI feeds the engine: the
// attraction catalog, the hourly wait table, the availability table and the
// guest's picks. Files are hand-edited, so parsing is strict about shape
// but permissive about text (key matching is normalized downstream).
package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tubuyakinote/disney-konzatsu-navi/planner"
)

// catalogFile is the on-disk shape of a catalog.
type catalogFile struct {
	Attractions []struct {
		Site        string   `yaml:"site"`
		Name        string   `yaml:"name"`
		Standby     *float64 `yaml:"standby_points"`
		Premier     *float64 `yaml:"premier_points"`
		Priority    *float64 `yaml:"priority_points"`
		RideMinutes *int     `yaml:"ride_minutes"`
	} `yaml:"attractions"`
}

// LoadCatalog reads an attraction catalog file.
func LoadCatalog(path string) (*planner.Catalog, error) {
	var cfg catalogFile
	if err := readYAML(path, &cfg); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if len(cfg.Attractions) == 0 {
		return nil, fmt.Errorf("catalog %s: no attractions defined", path)
	}
	activities := make([]planner.Activity, 0, len(cfg.Attractions))
	for i, row := range cfg.Attractions {
		if row.Name == "" {
			return nil, fmt.Errorf("catalog %s: attraction %d has no name", path, i)
		}
		activities = append(activities, planner.Activity{
			Site:           row.Site,
			Name:           row.Name,
			StandbyPoints:  row.Standby,
			PremierPoints:  row.Premier,
			PriorityPoints: row.Priority,
			RideMinutes:    row.RideMinutes,
		})
	}
	return planner.NewCatalog(activities), nil
}

// waitFile is the on-disk shape of the hourly wait table.
type waitFile struct {
	Waits []struct {
		Site    string `yaml:"site"`
		Name    string `yaml:"name"`
		Minutes []int  `yaml:"minutes"` // one entry per hour from window open
	} `yaml:"waits"`
}

// LoadWaits reads the wait dataset and binds it to the window and fallback
// the engine is configured with.
func LoadWaits(path string, cfg planner.Config) (*planner.WaitTable, error) {
	var f waitFile
	if err := readYAML(path, &f); err != nil {
		return nil, fmt.Errorf("waits: %w", err)
	}
	rows := make([]planner.WaitRow, 0, len(f.Waits))
	for i, w := range f.Waits {
		if w.Name == "" {
			return nil, fmt.Errorf("waits %s: row %d has no name", path, i)
		}
		for _, m := range w.Minutes {
			if m < 0 {
				return nil, fmt.Errorf("waits %s: %s/%s has a negative wait", path, w.Site, w.Name)
			}
		}
		rows = append(rows, planner.WaitRow{Site: w.Site, Name: w.Name, Minutes: w.Minutes})
	}
	return planner.NewWaitTable(cfg.Window, cfg.FallbackWaitMin, cfg.JitterMinutes, cfg.JitterSeed, rows), nil
}

// availabilityFile is the on-disk shape of the availability table.
type availabilityFile struct {
	Slots []struct {
		Site         string `yaml:"site"`
		Name         string `yaml:"name"`
		Mode         string `yaml:"mode"`
		LastHour     int    `yaml:"last_bookable_hour"`
		NextFreeHour *int   `yaml:"next_free_hour"`
	} `yaml:"slots"`
}

// LoadAvailability reads the availability dataset. Attractions absent from
// the file never sell out.
func LoadAvailability(path string, cfg planner.Config) (*planner.AvailabilityTable, error) {
	var f availabilityFile
	if err := readYAML(path, &f); err != nil {
		return nil, fmt.Errorf("availability: %w", err)
	}
	rules := make([]planner.SlotRule, 0, len(f.Slots))
	for i, s := range f.Slots {
		mode, err := planner.ParseMode(s.Mode)
		if err != nil {
			return nil, fmt.Errorf("availability %s: row %d: %w", path, i, err)
		}
		if !mode.Constrained() {
			return nil, fmt.Errorf("availability %s: row %d: %s is not capacity-constrained", path, i, mode)
		}
		rules = append(rules, planner.SlotRule{
			Site:         s.Site,
			Name:         s.Name,
			Mode:         mode,
			LastHour:     s.LastHour,
			NextFreeHour: s.NextFreeHour,
		})
	}
	return planner.NewAvailabilityTable(cfg.Window, rules), nil
}

// picksFile is the on-disk shape of the guest's selections.
type picksFile struct {
	Picks []struct {
		Site string `yaml:"site"`
		Name string `yaml:"name"`
		Mode string `yaml:"mode"`
	} `yaml:"picks"`
}

// LoadPicks reads the selection file.
func LoadPicks(path string) ([]planner.Selection, error) {
	var f picksFile
	if err := readYAML(path, &f); err != nil {
		return nil, fmt.Errorf("picks: %w", err)
	}
	picks := make([]planner.Selection, 0, len(f.Picks))
	for i, p := range f.Picks {
		mode, err := planner.ParseMode(p.Mode)
		if err != nil {
			return nil, fmt.Errorf("picks %s: row %d: %w", path, i, err)
		}
		picks = append(picks, planner.Selection{
			Key:  planner.ActivityKey{Site: p.Site, Name: p.Name},
			Mode: mode,
		})
	}
	return picks, nil
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
