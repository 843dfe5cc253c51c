package planner

import (
	"fmt"
	"strings"
	"unicode"
)

// Mode is the method by which an attraction is obtained.
// Exactly three variants exist in the domain; the planner switches on the
// tag, never on display strings.
type Mode int

const (
	// ModeStandby queues in the physical line. Unconstrained and
	// repeatable; its cost is the wait model's answer at the current clock.
	ModeStandby Mode = iota
	// ModePremier is a paid reservation (DPA). Capacity-constrained, the
	// guest may target a preferred hour bucket, and booking a future slot
	// starts the premier cooldown.
	ModePremier
	// ModePriority is a free reservation (Priority Pass). Capacity-
	// constrained, always the earliest remaining bucket, with its own
	// cooldown.
	ModePriority
)

// Constrained reports whether the mode is capacity-constrained, i.e. backed
// by a reservation right with a cooldown.
func (m Mode) Constrained() bool {
	return m == ModePremier || m == ModePriority
}

func (m Mode) String() string {
	switch m {
	case ModeStandby:
		return "standby"
	case ModePremier:
		return "premier"
	case ModePriority:
		return "priority"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps dataset text to a Mode. The paid and free reservation
// mechanisms go by several names in hand-edited files (DPA, PP), all accepted.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standby", "queue", "wait":
		return ModeStandby, nil
	case "premier", "dpa":
		return ModePremier, nil
	case "priority", "pp":
		return ModePriority, nil
	default:
		return 0, fmt.Errorf("unknown acquisition mode %q", s)
	}
}

// ActivityKey identifies an attraction by park site and name.
// The pair is unique within a catalog.
type ActivityKey struct {
	Site string
	Name string
}

func (k ActivityKey) String() string {
	return k.Site + "/" + k.Name
}

// Normalized folds the key for lookup across independently maintained
// datasets. Hand-edited catalogs disagree on case, whitespace, punctuation
// and quote characters, so all of those are stripped before matching.
func (k ActivityKey) Normalized() string {
	return foldText(k.Site) + "/" + foldText(k.Name)
}

// foldText lowercases and drops whitespace, punctuation and symbol runes.
// "Soarin': Fantastic Flight" and "soarin fantastic flight" fold equal.
func foldText(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Activity is one catalog row: an attraction, its per-mode score points and
// an optional nominal ride duration. Nil fields mean the catalog carries no
// value for that mode; the planner substitutes documented defaults instead
// of failing. Immutable for the duration of a run.
type Activity struct {
	Site           string
	Name           string
	StandbyPoints  *float64
	PremierPoints  *float64
	PriorityPoints *float64
	RideMinutes    *int
}

// Key returns the activity's identity.
func (a Activity) Key() ActivityKey {
	return ActivityKey{Site: a.Site, Name: a.Name}
}

// Points returns the activity's score cost under the given mode.
// A priority pick without its own points falls back to the premier points
// (the original table priced only standby and DPA). Missing data is 0.
func (a Activity) Points(mode Mode) float64 {
	var p *float64
	switch mode {
	case ModeStandby:
		p = a.StandbyPoints
	case ModePremier:
		p = a.PremierPoints
	case ModePriority:
		p = a.PriorityPoints
		if p == nil {
			p = a.PremierPoints
		}
	}
	if p == nil {
		return 0
	}
	return *p
}

// Selection is one guest pick: an attraction bound to exactly one mode.
// Picking a second mode for the same attraction replaces the first.
type Selection struct {
	Key  ActivityKey
	Mode Mode
}

func (s Selection) String() string {
	return fmt.Sprintf("%s [%s]", s.Key, s.Mode)
}
