// Package timeline renders a run's action list as a presentation-ready
// sequence. Pure transformation: no side effects, and an empty action list
// is valid input yielding an empty timeline.
package timeline

import (
	"fmt"
	"sort"

	"github.com/tubuyakinote/disney-konzatsu-navi/planner"
)

// Entry is one presentation row of the day plan.
type Entry struct {
	Start    string
	End      string
	Kind     planner.ActionKind
	Activity planner.ActivityKey
	Note     string
	Minutes  int
}

// Build orders the actions by start time and renders wall-clock text.
// The scheduler already emits non-decreasing starts; the stable sort is a
// guard against callers that concatenate lists.
func Build(actions []planner.Action) []Entry {
	sorted := make([]planner.Action, len(actions))
	copy(sorted, actions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	entries := make([]Entry, 0, len(sorted))
	for _, a := range sorted {
		entries = append(entries, Entry{
			Start:    a.Start.String(),
			End:      a.End.String(),
			Kind:     a.Kind,
			Activity: a.Activity,
			Note:     a.Note,
			Minutes:  a.Minutes(),
		})
	}
	return entries
}

// Lines formats entries as one human-readable line each.
func Lines(entries []Entry) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s-%s  %-5s %s (%s, %d min)",
			e.Start, e.End, e.Kind, e.Activity, e.Note, e.Minutes))
	}
	return lines
}
