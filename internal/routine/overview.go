package routine

import (
	"fmt"
	"time"

	"github.com/2beens/fitroutine/internal/schedule"
)

type TrainingDay struct {
	Title           string           `json:"title"`
	DayNumber       int              `json:"dayNumber"`
	Weekday         schedule.Weekday `json:"weekday"`
	Date            Date             `json:"date"`
	Completed       bool             `json:"completed"`
	MuscleGroups    string           `json:"muscleGroups"`
	DailyRoutineID  int              `json:"dailyRoutineId,omitempty"`
	ExerciseDetails []ExerciseDetail `json:"exerciseDetails"`
}

// WeekOverview is everything needed to show the current week: labeled days and progress.
type WeekOverview struct {
	RoutineID       int                          `json:"routineId"`
	DateRange       string                       `json:"dateRange"`
	StartDate       Date                         `json:"startDate"`
	EndDate         Date                         `json:"endDate"`
	DaysPerWeek     int                          `json:"daysPerWeek"`
	TrainingDays    schedule.TrainingDaySchedule `json:"trainingDays"`
	Days            []TrainingDay                `json:"days"`
	CompletedDays   int                          `json:"completedDays"`
	Progress        schedule.ProgressRatio       `json:"progress"`
	ProgressPercent float64                      `json:"progressPercent"`
}

// FormatDateRange renders e.g. "January 1 - January 7".
func FormatDateRange(start, end time.Time) string {
	const layout = "January 2"
	return fmt.Sprintf("%s - %s", start.Format(layout), end.Format(layout))
}

// BuildOverview labels the routine's days and computes the week progress as of now.
func BuildOverview(r *WeeklyRoutine, now time.Time) (*WeekOverview, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid routine %d: %w", r.ID, err)
	}

	trainingDays, err := r.TrainingDays()
	if err != nil {
		return nil, err
	}

	start := r.StartDate.Time
	dates := schedule.ResolveTrainingDates(trainingDays, start)

	overview := &WeekOverview{
		RoutineID:    r.ID,
		DateRange:    FormatDateRange(r.StartDate.Time, r.EndDate.Time),
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		DaysPerWeek:  r.DaysPerWeek,
		TrainingDays: trainingDays,
		Days:         make([]TrainingDay, len(trainingDays)),
	}

	for i, weekday := range trainingDays {
		day := TrainingDay{
			DayNumber: i + 1,
			Weekday:   weekday,
			Date:      NewDate(dates[i]),
			Completed: schedule.IsElapsed(dates[i], now),
		}
		if i < len(r.DailyRoutines) {
			daily := r.DailyRoutines[i]
			if daily.DayNumber != 0 {
				day.DayNumber = daily.DayNumber
			}
			day.DailyRoutineID = daily.ID
			day.MuscleGroups = daily.MuscleGroupsHeader()
			day.ExerciseDetails = daily.ExerciseDetails
		}
		day.Title = fmt.Sprintf("Day %d - %s", day.DayNumber, weekday)
		if day.Completed {
			overview.CompletedDays++
		}
		overview.Days[i] = day
	}

	overview.Progress = schedule.ComputeProgress(trainingDays, start, now)
	overview.ProgressPercent = overview.Progress.Percent()

	return overview, nil
}
