package schedule

import (
	"errors"
	"fmt"
	"time"
)

// CalendarDateLayout is the wire format for calendar dates.
const CalendarDateLayout = "2006-01-02"

// DateOnly strips the time of day, keeping the location of t.
// All "has this day passed" checks compare values returned by DateOnly.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays moves a calendar date by n days. Uses AddDate so DST shifts never
// push the result off midnight.
func AddDays(date time.Time, n int) time.Time {
	return DateOnly(date).AddDate(0, 0, n)
}

// ParseCalendarDate parses a YYYY-MM-DD date, or an RFC3339 timestamp whose date part is kept,
// into a local midnight date.
func ParseCalendarDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	if t, err := time.ParseInLocation(CalendarDateLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse calendar date %q: %w", s, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

// ParseInstant parses an RFC3339 timestamp into local time, or a YYYY-MM-DD date into
// local midnight.
func ParseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Local(), nil
	}
	d, err := ParseCalendarDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse instant %q: expected RFC3339 or YYYY-MM-DD", s)
	}
	return d, nil
}

// RoutineWindow is the inclusive span of one weekly cycle.
type RoutineWindow struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

var ErrInvalidWindow = errors.New("routine window end date before start date")

func (w RoutineWindow) Validate() error {
	if DateOnly(w.EndDate).Before(DateOnly(w.StartDate)) {
		return fmt.Errorf("%w: %s < %s", ErrInvalidWindow,
			w.EndDate.Format(CalendarDateLayout), w.StartDate.Format(CalendarDateLayout))
	}
	return nil
}

// Contains reports whether the date of t is within the window, both ends included.
func (w RoutineWindow) Contains(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(DateOnly(w.StartDate)) && !d.After(DateOnly(w.EndDate))
}
