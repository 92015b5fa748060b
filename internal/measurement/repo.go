package measurement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitroutine/internal/routine"
	"github.com/2beens/fitroutine/internal/telemetry/tracing"
	"github.com/2beens/fitroutine/pkg"

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

func (r *Repo) SaveMeasurement(ctx context.Context, m *Measurement) (_ *Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurement.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", m.UserID))

	err = r.db.QueryRow(ctx, `
		INSERT INTO body_measurement (
			user_id, weekly_routine_id, weight, chest, abdomen, thigh,
			bypass_measurement_flag, body_fat_percent, muscle_mass, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`,
		m.UserID,
		m.WeeklyRoutineID,
		m.Weight,
		m.Chest,
		m.Abdomen,
		m.Thigh,
		m.BypassMeasurementFlag,
		m.BodyFatPercent,
		m.MuscleMass,
		m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return nil, fmt.Errorf("insert body measurement: %w", err)
	}

	return m, nil
}

// ListMeasurements returns the user's measurements, newest first. limit <= 0 means all.
func (r *Repo) ListMeasurements(ctx context.Context, userID, limit int) (_ []Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurement.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	query := `
		SELECT id, user_id, weekly_routine_id, weight, chest, abdomen, thigh,
			bypass_measurement_flag, body_fat_percent, muscle_mass, created_at
		FROM body_measurement
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query body measurements: %w", err)
	}
	defer rows.Close()

	var measurements []Measurement
	for rows.Next() {
		var m Measurement
		if err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.WeeklyRoutineID,
			&m.Weight,
			&m.Chest,
			&m.Abdomen,
			&m.Thigh,
			&m.BypassMeasurementFlag,
			&m.BodyFatPercent,
			&m.MuscleMass,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan body measurement: %w", err)
		}
		measurements = append(measurements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate body measurements: %w", err)
	}

	return measurements, nil
}

func (r *Repo) CreateProfile(ctx context.Context, p *Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO user_profile (user_id, dob, gender)
		VALUES ($1, $2, $3)
	`, p.UserID, dateParam(p.DOB), string(p.Gender))
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrProfileExists
		}
		return fmt.Errorf("insert user profile: %w", err)
	}
	return nil
}

func (r *Repo) GetProfile(ctx context.Context, userID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.scanProfile(r.db.QueryRow(ctx, `
		SELECT user_id, dob, gender
		FROM user_profile
		WHERE user_id = $1
	`, userID))
}

// UpdateProfile changes only the fields set in upd.
func (r *Repo) UpdateProfile(ctx context.Context, userID int, upd ProfileUpdate) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var dob *time.Time
	if upd.DOB != nil {
		d := dateParam(*upd.DOB)
		dob = &d
	}
	var gender *string
	if upd.Gender != nil {
		g := string(*upd.Gender)
		gender = &g
	}

	return r.scanProfile(r.db.QueryRow(ctx, `
		UPDATE user_profile
		SET dob = COALESCE($2, dob), gender = COALESCE($3, gender)
		WHERE user_id = $1
		RETURNING user_id, dob, gender
	`, userID, dob, gender))
}

func (r *Repo) scanProfile(row pgx.Row) (*Profile, error) {
	var (
		p      Profile
		dob    time.Time
		gender string
	)
	if err := row.Scan(&p.UserID, &dob, &gender); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("scan user profile: %w", err)
	}
	p.DOB = routine.NewDate(time.Date(dob.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, time.Local))
	p.Gender = Gender(gender)
	return &p, nil
}

// postgres DATE columns ignore the zone, keep the calendar day
func dateParam(d routine.Date) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
