package planner

// ActionKind tags one step of the emitted itinerary.
type ActionKind string

const (
	ActionMove ActionKind = "move" // walk to the attraction
	ActionWait ActionKind = "wait" // stand in the physical line
	ActionRide ActionKind = "ride" // experience the attraction
	ActionBook ActionKind = "book" // obtain a reservation for a later slot
)

// Action is one immutable record of the run: never mutated after append,
// and start times are non-decreasing across the emitted sequence. Book
// actions are instantaneous (Start == End).
type Action struct {
	Start    Clock
	End      Clock
	Kind     ActionKind
	Activity ActivityKey
	Note     string
}

// Minutes returns the action's duration.
func (a Action) Minutes() int {
	return int(a.End - a.Start)
}
