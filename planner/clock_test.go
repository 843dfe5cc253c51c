package planner

import "testing"

func TestClock_String_ZeroPads(t *testing.T) {
	if got := ClockAt(9, 5).String(); got != "09:05" {
		t.Errorf("String: got %s, want 09:05", got)
	}
	if got := ClockAt(21, 0).String(); got != "21:00" {
		t.Errorf("String: got %s, want 21:00", got)
	}
}

func TestParseClock_RoundTrips(t *testing.T) {
	for _, s := range []string{"00:00", "09:00", "12:34", "23:59"} {
		c, err := ParseClock(s)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", s, err)
		}
		if c.String() != s {
			t.Errorf("round trip %q: got %s", s, c.String())
		}
	}
}

func TestParseClock_Rejects(t *testing.T) {
	for _, s := range []string{"24:00", "09:60", "-1:00", "garbage"} {
		if _, err := ParseClock(s); err == nil {
			t.Errorf("ParseClock(%q): expected error", s)
		}
	}
}

func TestWindow_ClampHour(t *testing.T) {
	// GIVEN a 09:00-21:00 window
	w := Window{Open: ClockAt(9, 0), Close: ClockAt(21, 0)}

	cases := []struct {
		at   Clock
		want int
	}{
		{ClockAt(7, 30), 9},   // before open clamps to open bucket
		{ClockAt(9, 0), 9},    // open itself
		{ClockAt(14, 59), 14}, // in-window
		{ClockAt(20, 59), 20}, // last bucket
		{ClockAt(21, 0), 20},  // close clamps back to last bucket
		{ClockAt(23, 0), 20},  // after close
	}
	for _, tc := range cases {
		if got := w.ClampHour(tc.at); got != tc.want {
			t.Errorf("ClampHour(%s): got %d, want %d", tc.at, got, tc.want)
		}
	}
}
