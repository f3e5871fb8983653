package scheduling

import (
	"fmt"
	"time"
)

// ClockFormat is the wire format for times of day ("09:00", "15:30").
const ClockFormat = "15:04"

// DateOnly truncates t to midnight in its own location. Availability and
// slot rows are keyed on this normalized value.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CombineClock anchors a "15:04" clock string on the given date.
func CombineClock(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse(ClockFormat, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock %q: %w", clock, err)
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), nil
}

// Window is one availability interval on a concrete date.
type Window struct {
	Date  time.Time
	Start string
	End   string
}

// SlotStarts expands the window into slot start instants of the given
// duration. Expansion begins at the later of the window start and now, so
// no slot is ever emitted in the past, and stops once a full slot no
// longer fits before the window end.
func (w Window) SlotStarts(now time.Time, duration time.Duration) ([]time.Time, error) {
	if w.Start == "" || w.End == "" {
		return nil, fmt.Errorf("window missing start or end time")
	}

	windowStart, err := CombineClock(w.Date, w.Start)
	if err != nil {
		return nil, err
	}
	windowEnd, err := CombineClock(w.Date, w.End)
	if err != nil {
		return nil, err
	}

	if !windowEnd.After(now) {
		return nil, nil
	}

	cursor := windowStart
	if now.After(cursor) {
		cursor = now
	}

	var starts []time.Time
	for !cursor.Add(duration).After(windowEnd) {
		starts = append(starts, cursor)
		cursor = cursor.Add(duration)
	}
	return starts, nil
}
