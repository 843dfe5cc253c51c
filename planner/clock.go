package planner

import "fmt"

// Clock is a simulated time of day, in minutes since midnight.
// The planner never touches wall-clock time; a run advances a Clock
// monotonically from the operating window's open to its close.
type Clock int

// ClockAt builds a Clock from an hour and minute of day.
func ClockAt(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// Hour returns the hour bucket the clock falls in (0-23).
func (c Clock) Hour() int {
	return int(c) / 60
}

// Add returns the clock advanced by the given number of minutes.
func (c Clock) Add(minutes int) Clock {
	return c + Clock(minutes)
}

// String renders the clock as zero-padded wall-clock text, e.g. "09:05".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// ParseClock parses "HH:MM" text into a Clock.
func ParseClock(s string) (Clock, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("parse clock %q: out of range", s)
	}
	return ClockAt(h, m), nil
}

// Window is the single day's open-to-close range the planner schedules within.
type Window struct {
	Open  Clock
	Close Clock
}

// Contains reports whether the clock falls inside the window.
func (w Window) Contains(c Clock) bool {
	return c >= w.Open && c < w.Close
}

// ClampHour maps a clock to an hour bucket inside the window.
// Out-of-window times clamp to the nearest open or close bucket, so
// lookups keyed by hour stay total over any input clock.
func (w Window) ClampHour(c Clock) int {
	if c < w.Open {
		return w.Open.Hour()
	}
	// the bucket starting at close time is already outside the window
	last := (w.Close - 1).Hour()
	if c.Hour() > last {
		return last
	}
	return c.Hour()
}
