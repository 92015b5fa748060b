package routine

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitroutine/internal/schedule"
)

var (
	ErrRoutineNotFound   = errors.New("weekly routine not found")
	ErrMisalignedRoutine = errors.New("more daily routines than training days")
)

// Date is a calendar date, encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: schedule.DateOnly(t)}
}

func (d Date) String() string {
	return d.Format(schedule.CalendarDateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts YYYY-MM-DD and RFC3339 values.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := schedule.ParseCalendarDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

type MuscleGroup struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

type Exercise struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	MuscleGroups []MuscleGroup `json:"muscleGroups"`
}

type ExerciseDetail struct {
	Exercise Exercise `json:"exercise"`
	Sets     int      `json:"sets"`
	Reps     int      `json:"reps"`
	Weight   float64  `json:"weight"`
}

type DailyRoutine struct {
	ID              int              `json:"id"`
	DayNumber       int              `json:"dayNumber"`
	ExerciseDetails []ExerciseDetail `json:"exerciseDetails"`
}

// MuscleGroupsHeader joins the distinct muscle group descriptions of the day, in first seen order.
func (dr DailyRoutine) MuscleGroupsHeader() string {
	seen := make(map[string]bool)
	var groups []string
	for _, detail := range dr.ExerciseDetails {
		for _, mg := range detail.Exercise.MuscleGroups {
			if seen[mg.Description] {
				continue
			}
			seen[mg.Description] = true
			groups = append(groups, mg.Description)
		}
	}
	return strings.Join(groups, " & ")
}

// WeeklyRoutine is one week of training as produced by the remote routine service.
// DailyRoutines line up positionally with the weekday labels of the training schedule.
type WeeklyRoutine struct {
	ID            int            `json:"id"`
	UserID        int            `json:"userId"`
	StartDate     Date           `json:"startDate"`
	EndDate       Date           `json:"endDate"`
	DaysPerWeek   int            `json:"daysPerWeek"`
	DailyRoutines []DailyRoutine `json:"dailyRoutines"`
}

func (r *WeeklyRoutine) Window() schedule.RoutineWindow {
	return schedule.RoutineWindow{
		StartDate: r.StartDate.Time,
		EndDate:   r.EndDate.Time,
	}
}

func (r *WeeklyRoutine) Validate() error {
	if err := schedule.ValidateFrequency(r.DaysPerWeek); err != nil {
		return err
	}
	if err := r.Window().Validate(); err != nil {
		return err
	}
	if len(r.DailyRoutines) > r.DaysPerWeek {
		return fmt.Errorf("%w: %d daily routines, %d days per week",
			ErrMisalignedRoutine, len(r.DailyRoutines), r.DaysPerWeek)
	}
	return nil
}

// TrainingDays maps the routine's frequency to weekday labels.
func (r *WeeklyRoutine) TrainingDays() (schedule.TrainingDaySchedule, error) {
	return schedule.MapTrainingDays(r.DaysPerWeek, r.StartDate.Time)
}
