package schedule

import "time"

// ProgressRatio is the share of training days already elapsed, in [0, 1].
type ProgressRatio float64

// Percent is the ratio scaled to [0, 100], unrounded.
func (p ProgressRatio) Percent() float64 {
	return float64(p) * 100
}

// ResolveDate returns the date of day within the week starting at startDate.
// The result is always in [startDate, startDate+6].
func ResolveDate(day Weekday, startDate time.Time) time.Time {
	startIdx := WeekdayOf(startDate).Index()
	offset := (day.Index() - startIdx + DaysInWeek) % DaysInWeek
	return AddDays(startDate, offset)
}

// ResolveTrainingDates maps every label to its date, keeping the order of trainingDays.
func ResolveTrainingDates(trainingDays TrainingDaySchedule, startDate time.Time) []time.Time {
	dates := make([]time.Time, len(trainingDays))
	for i, day := range trainingDays {
		dates[i] = ResolveDate(day, startDate)
	}
	return dates
}

// IsElapsed reports whether the whole calendar day of date is over as of now.
// The same day is not elapsed yet. Day boundaries are taken in date's location.
func IsElapsed(date, now time.Time) bool {
	return DateOnly(date).Before(DateOnly(now.In(date.Location())))
}

// ComputeProgress returns completed/total training days of the week starting at startDate.
// now is passed in by the caller and is never read from the clock here.
func ComputeProgress(trainingDays TrainingDaySchedule, startDate time.Time, now time.Time) ProgressRatio {
	total := len(trainingDays)
	if total == 0 {
		return 0
	}

	completed := 0
	for _, date := range ResolveTrainingDates(trainingDays, startDate) {
		if IsElapsed(date, now) {
			completed++
		}
	}
	return ProgressRatio(float64(completed) / float64(total))
}
