package schedule

import (
	"errors"
	"fmt"
	"time"
)

const (
	MinDaysPerWeek = 1
	MaxDaysPerWeek = DaysInWeek
)

var ErrInvalidFrequency = errors.New("invalid training frequency")

// ValidateFrequency checks that daysPerWeek is within [1, 7].
func ValidateFrequency(daysPerWeek int) error {
	if daysPerWeek < MinDaysPerWeek || daysPerWeek > MaxDaysPerWeek {
		return fmt.Errorf("%w: days per week must be in [%d, %d], got %d",
			ErrInvalidFrequency, MinDaysPerWeek, MaxDaysPerWeek, daysPerWeek)
	}
	return nil
}

// MapTrainingDays spreads daysPerWeek training days evenly over a Monday first week.
// Slot i takes the weekday floor(i*7/n), so 3 days per week is always Monday, Wednesday, Friday.
//
// The selection depends on the count only. startDate does not pick weekdays, it anchors
// them to dates later on (see ResolveTrainingDates), and is accepted here so both
// calls share the same inputs.
func MapTrainingDays(daysPerWeek int, startDate time.Time) (TrainingDaySchedule, error) {
	if err := ValidateFrequency(daysPerWeek); err != nil {
		return nil, err
	}

	days := make(TrainingDaySchedule, daysPerWeek)
	for i := 0; i < daysPerWeek; i++ {
		days[i] = Weekday(i * DaysInWeek / daysPerWeek)
	}
	return days, nil
}
