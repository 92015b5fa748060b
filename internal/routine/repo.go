package routine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitroutine/internal/schedule"
	"github.com/2beens/fitroutine/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Save upserts the routine. Routines coming from the remote service keep their remote id.
func (r *Repo) Save(ctx context.Context, routine *WeeklyRoutine) (_ *WeeklyRoutine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routine.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", routine.ID))

	dailyRoutines := routine.DailyRoutines
	if dailyRoutines == nil {
		dailyRoutines = []DailyRoutine{}
	}

	if routine.ID == 0 {
		err = r.db.QueryRow(ctx, `
			INSERT INTO weekly_routine (user_id, start_date, end_date, days_per_week, daily_routines)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`,
			routine.UserID,
			routine.StartDate.Time,
			routine.EndDate.Time,
			routine.DaysPerWeek,
			dailyRoutines,
		).Scan(&routine.ID)
		if err != nil {
			return nil, fmt.Errorf("insert weekly routine: %w", err)
		}
		return routine, nil
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO weekly_routine (id, user_id, start_date, end_date, days_per_week, daily_routines)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			days_per_week = EXCLUDED.days_per_week,
			daily_routines = EXCLUDED.daily_routines
	`,
		routine.ID,
		routine.UserID,
		routine.StartDate.Time,
		routine.EndDate.Time,
		routine.DaysPerWeek,
		dailyRoutines,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert weekly routine: %w", err)
	}
	return routine, nil
}

// GetCurrent returns the routine whose window contains the given day, falling back
// to the most recent one.
func (r *Repo) GetCurrent(ctx context.Context, userID int, day time.Time) (_ *WeeklyRoutine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routine.get-current")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	day = schedule.DateOnly(day)
	dayUTC := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	routine := &WeeklyRoutine{}
	var start, end time.Time
	err = r.db.QueryRow(ctx, `
		SELECT id, user_id, start_date, end_date, days_per_week, daily_routines
		FROM weekly_routine
		WHERE user_id = $1
		ORDER BY (start_date <= $2::date AND end_date >= $2::date) DESC, start_date DESC
		LIMIT 1
	`, userID, dayUTC).Scan(
		&routine.ID,
		&routine.UserID,
		&start,
		&end,
		&routine.DaysPerWeek,
		&routine.DailyRoutines,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoutineNotFound
		}
		return nil, fmt.Errorf("get current weekly routine: %w", err)
	}

	routine.StartDate = localDate(start)
	routine.EndDate = localDate(end)
	return routine, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routine.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM weekly_routine WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete weekly routine: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineNotFound
	}
	return nil
}

// postgres dates come back as UTC midnight
func localDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)}
}
