package routine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitroutine/internal/schedule"
	"github.com/2beens/fitroutine/internal/telemetry/metrics"
	"github.com/2beens/fitroutine/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=routine_test

type routineRepo interface {
	Save(ctx context.Context, routine *WeeklyRoutine) (*WeeklyRoutine, error)
	GetCurrent(ctx context.Context, userID int, day time.Time) (*WeeklyRoutine, error)
	Delete(ctx context.Context, userID, id int) error
}

type remoteFetcher interface {
	FetchCurrent(ctx context.Context, token string) (*WeeklyRoutine, error)
}

type routineCache interface {
	Get(userID int) (*WeeklyRoutine, bool)
	Set(userID int, routine *WeeklyRoutine) error
	Invalidate(userID int)
}

type ScheduleResponse struct {
	DaysPerWeek  int                          `json:"daysPerWeek"`
	StartDate    Date                         `json:"startDate"`
	TrainingDays schedule.TrainingDaySchedule `json:"trainingDays"`
	Dates        []Date                       `json:"dates"`
}

type ProgressResponse struct {
	ScheduleResponse
	Now             time.Time              `json:"now"`
	Progress        schedule.ProgressRatio `json:"progress"`
	ProgressPercent float64                `json:"progressPercent"`
}

type Service struct {
	repo    routineRepo
	remote  remoteFetcher
	cache   routineCache
	metrics *metrics.Manager
	now     func() time.Time
}

type NewServiceParams struct {
	Repo    routineRepo
	Remote  remoteFetcher // optional
	Cache   routineCache  // optional
	Metrics *metrics.Manager
	Now     func() time.Time
}

func NewService(params NewServiceParams) *Service {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:    params.Repo,
		remote:  params.Remote,
		cache:   params.Cache,
		metrics: params.Metrics,
		now:     now,
	}
}

// Current returns the user's current weekly routine: cache first, then the local store, then
// the remote routine service. Routines fetched remotely are stored and cached. A stored routine
// whose window has passed is only served when the remote service has nothing newer.
func (s *Service) Current(ctx context.Context, userID int, token string) (_ *WeeklyRoutine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routine.current")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	return s.current(ctx, userID, token, s.now())
}

func (s *Service) current(ctx context.Context, userID int, token string, now time.Time) (*WeeklyRoutine, error) {
	if s.cache != nil {
		cached, ok := s.cache.Get(userID)
		switch {
		case ok && cached.Window().Contains(now):
			s.countCache("hit")
			return cached, nil
		case ok:
			s.countCache("stale")
			s.cache.Invalidate(userID)
		default:
			s.countCache("miss")
		}
	}

	stored, err := s.repo.GetCurrent(ctx, userID, now)
	switch {
	case err == nil:
		if stored.Window().Contains(now) {
			s.cacheRoutine(userID, stored)
			return stored, nil
		}
	case errors.Is(err, ErrRoutineNotFound):
		stored = nil
	default:
		return nil, fmt.Errorf("get current routine from repo: %w", err)
	}

	if s.remote == nil {
		if stored != nil {
			return stored, nil
		}
		return nil, ErrRoutineNotFound
	}

	routine, err := s.remote.FetchCurrent(ctx, token)
	if err != nil {
		if stored != nil && (errors.Is(err, ErrRoutineNotFound) || errors.Is(err, ErrRemoteUnavailable)) {
			log.Warnf("user %d: serving past routine %d, remote fetch: %s", userID, stored.ID, err)
			return stored, nil
		}
		return nil, fmt.Errorf("fetch remote routine: %w", err)
	}
	routine.UserID = userID
	if err := routine.Validate(); err != nil {
		return nil, fmt.Errorf("remote routine %d: %w", routine.ID, err)
	}

	saved, err := s.repo.Save(ctx, routine)
	if err != nil {
		// still usable, just not stored locally
		log.Errorf("save remote routine %d for user %d: %s", routine.ID, userID, err)
		saved = routine
	}
	s.cacheRoutine(userID, saved)

	return saved, nil
}

// Overview returns the labeled week and its progress. The clock is read once so the day
// flags and the ratio always agree.
func (s *Service) Overview(ctx context.Context, userID int, token string) (_ *WeekOverview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routine.overview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	now := s.now()
	routine, err := s.current(ctx, userID, token, now)
	if err != nil {
		return nil, err
	}

	overview, err := BuildOverview(routine, now)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Float64("routine.progress", float64(overview.Progress)))
	if s.metrics != nil {
		s.metrics.GaugeWeeklyProgress.Set(float64(overview.Progress))
	}

	return overview, nil
}

func (s *Service) Schedule(daysPerWeek int, startDate time.Time) (*ScheduleResponse, error) {
	trainingDays, err := schedule.MapTrainingDays(daysPerWeek, startDate)
	if err != nil {
		return nil, err
	}

	resolved := schedule.ResolveTrainingDates(trainingDays, startDate)
	dates := make([]Date, len(resolved))
	for i, d := range resolved {
		dates[i] = NewDate(d)
	}

	return &ScheduleResponse{
		DaysPerWeek:  daysPerWeek,
		StartDate:    NewDate(startDate),
		TrainingDays: trainingDays,
		Dates:        dates,
	}, nil
}

func (s *Service) Progress(daysPerWeek int, startDate, now time.Time) (*ProgressResponse, error) {
	sched, err := s.Schedule(daysPerWeek, startDate)
	if err != nil {
		return nil, err
	}

	progress := schedule.ComputeProgress(sched.TrainingDays, startDate, now)
	return &ProgressResponse{
		ScheduleResponse: *sched,
		Now:              now,
		Progress:         progress,
		ProgressPercent:  progress.Percent(),
	}, nil
}

// Reset drops the stored routine so a new one can be generated.
func (s *Service) Reset(ctx context.Context, userID, routineID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routine.reset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if s.cache != nil {
		defer s.cache.Invalidate(userID)
	}
	if err := s.repo.Delete(ctx, userID, routineID); err != nil {
		return fmt.Errorf("delete routine %d: %w", routineID, err)
	}
	return nil
}

// Now exposes the service clock to handlers that need a default reference instant.
func (s *Service) Now() time.Time {
	return s.now()
}

func (s *Service) cacheRoutine(userID int, routine *WeeklyRoutine) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(userID, routine); err != nil {
		log.Warnf("cache routine for user %d: %s", userID, err)
	}
}

func (s *Service) countCache(result string) {
	if s.metrics != nil {
		s.metrics.CounterRoutineCache.WithLabelValues(result).Inc()
	}
}
