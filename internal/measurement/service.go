package measurement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitroutine/internal/telemetry/metrics"
	"github.com/2beens/fitroutine/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=measurement_test

type measurementRepo interface {
	SaveMeasurement(ctx context.Context, m *Measurement) (*Measurement, error)
	ListMeasurements(ctx context.Context, userID, limit int) ([]Measurement, error)
	CreateProfile(ctx context.Context, p *Profile) error
	GetProfile(ctx context.Context, userID int) (*Profile, error)
	UpdateProfile(ctx context.Context, userID int, upd ProfileUpdate) (*Profile, error)
}

// SaveResult is the stored measurement plus its chart classification, when the profile is known.
type SaveResult struct {
	Measurement    *Measurement  `json:"measurement"`
	Classification *BodyFatRange `json:"classification,omitempty"`
}

type Service struct {
	repo    measurementRepo
	metrics *metrics.Manager
	now     func() time.Time
}

func NewService(repo measurementRepo, metricsManager *metrics.Manager, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:    repo,
		metrics: metricsManager,
		now:     now,
	}
}

// Save stores a measurement for the user. Body fat is estimated from the skinfold sites
// when not given, muscle mass defaults to lean mass.
func (s *Service) Save(ctx context.Context, userID int, m *Measurement) (_ *SaveResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.measurement.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	m.ID = 0
	m.UserID = userID
	if m.CreatedAt.IsZero() {
		m.CreatedAt = s.now()
	}

	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil && !errors.Is(err, ErrProfileNotFound) {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	// with the bypass flag the body fat comes from the user and the sites are not used
	if !m.BypassMeasurementFlag && m.BodyFatPercent == 0 && m.HasSites() {
		if profile == nil {
			return nil, fmt.Errorf("estimate body fat: %w", ErrProfileNotFound)
		}
		m.BodyFatPercent, err = EstimateBodyFat(profile.Gender, profile.Age(s.now()), *m.Chest, *m.Abdomen, *m.Thigh)
		if err != nil {
			return nil, err
		}
	}
	if m.MuscleMass == 0 && m.BodyFatPercent > 0 {
		m.MuscleMass = LeanMass(m.Weight, m.BodyFatPercent)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.repo.SaveMeasurement(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("save measurement: %w", err)
	}
	if s.metrics != nil {
		s.metrics.CounterMeasurements.Inc()
	}

	result := &SaveResult{Measurement: saved}
	if profile != nil {
		classification, err := Classify(profile.Gender, saved.BodyFatPercent)
		if err != nil {
			log.Warnf("classify body fat for user %d: %s", userID, err)
		} else {
			result.Classification = &classification
		}
	}

	log.Debugf("measurement %d saved for user %d: %.1f%% body fat", saved.ID, userID, saved.BodyFatPercent)
	return result, nil
}

func (s *Service) List(ctx context.Context, userID, limit int) (_ []Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.measurement.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	measurements, err := s.repo.ListMeasurements(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	if measurements == nil {
		measurements = []Measurement{}
	}
	return measurements, nil
}

// Export returns all the user's measurements as a parquet file.
func (s *Service) Export(ctx context.Context, userID int) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.measurement.export")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	measurements, err := s.repo.ListMeasurements(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	span.SetAttributes(attribute.Int("measurements.count", len(measurements)))

	return ExportParquet(measurements)
}

func (s *Service) CreateProfile(ctx context.Context, p *Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := p.Validate(s.now()); err != nil {
		return err
	}
	return s.repo.CreateProfile(ctx, p)
}

func (s *Service) Profile(ctx context.Context, userID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.GetProfile(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, userID int, upd ProfileUpdate) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if upd.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidProfile)
	}
	if upd.Gender != nil && !upd.Gender.IsValid() {
		return nil, fmt.Errorf("%w: gender must be M or F", ErrInvalidProfile)
	}
	if upd.DOB != nil && !upd.DOB.Before(s.now()) {
		return nil, fmt.Errorf("%w: date of birth must be in the past", ErrInvalidProfile)
	}

	return s.repo.UpdateProfile(ctx, userID, upd)
}

// Chart returns the body fat chart for the gender. When gender is empty it is taken
// from the user's profile.
func (s *Service) Chart(ctx context.Context, userID int, gender Gender) (_ []BodyFatRange, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.measurement.chart")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if gender == "" && userID > 0 {
		profile, err := s.repo.GetProfile(ctx, userID)
		if err != nil {
			return nil, err
		}
		gender = profile.Gender
	}
	return BodyFatChart(gender)
}
