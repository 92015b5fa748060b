package schedule

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Weekday is a training day label. Monday is 0 and Sunday is 6 (ISO week ordering),
// which is not the same as time.Weekday where Sunday is 0.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const DaysInWeek = 7

var weekdayNames = [DaysInWeek]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// AllWeekdays returns the seven labels, Monday first.
func AllWeekdays() []Weekday {
	days := make([]Weekday, DaysInWeek)
	for i := range days {
		days[i] = Weekday(i)
	}
	return days
}

func (w Weekday) String() string {
	if !w.IsValid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

// Index is the zero based, Monday anchored position of the label.
func (w Weekday) Index() int {
	return int(w)
}

// WeekdayOf returns the Monday anchored label of the given date.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % DaysInWeek)
}

// ParseWeekday parses an English weekday name, case-insensitive.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.TrimSpace(s)
	for i, name := range weekdayNames {
		if strings.EqualFold(name, s) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday: %q", s)
}

func (w Weekday) MarshalJSON() ([]byte, error) {
	if !w.IsValid() {
		return nil, fmt.Errorf("marshal invalid weekday: %d", int(w))
	}
	return json.Marshal(w.String())
}

func (w *Weekday) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("weekday must be a string: %w", err)
	}
	parsed, err := ParseWeekday(name)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// TrainingDaySchedule is the ordered list of weekday labels for one week. Its order lines up
// with the order of the daily routines of a weekly routine.
type TrainingDaySchedule []Weekday

func (s TrainingDaySchedule) Names() []string {
	names := make([]string, len(s))
	for i, d := range s {
		names[i] = d.String()
	}
	return names
}

func (s TrainingDaySchedule) Contains(day Weekday) bool {
	for _, d := range s {
		if d == day {
			return true
		}
	}
	return false
}
