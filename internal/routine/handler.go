package routine

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitroutine/internal/auth"
	"github.com/2beens/fitroutine/internal/schedule"
	"github.com/2beens/fitroutine/internal/telemetry/tracing"
	"github.com/2beens/fitroutine/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=routine_test

type routineService interface {
	Current(ctx context.Context, userID int, token string) (*WeeklyRoutine, error)
	Overview(ctx context.Context, userID int, token string) (*WeekOverview, error)
	Schedule(daysPerWeek int, startDate time.Time) (*ScheduleResponse, error)
	Progress(daysPerWeek int, startDate, now time.Time) (*ProgressResponse, error)
	Reset(ctx context.Context, userID, routineID int) error
	Now() time.Time
}

type ResetRoutineResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	service routineService
}

func NewHandler(service routineService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/current", handler.HandleCurrent).Methods("GET", "OPTIONS").Name("current")
	router.HandleFunc("/overview", handler.HandleOverview).Methods("GET", "OPTIONS").Name("overview")
	router.HandleFunc("/schedule", handler.HandleSchedule).Methods("GET", "OPTIONS").Name("schedule")
	router.HandleFunc("/progress", handler.HandleProgress).Methods("GET", "OPTIONS").Name("progress")
	router.HandleFunc("/{id}", handler.HandleReset).Methods("DELETE", "OPTIONS").Name("reset")
}

func (handler *Handler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routine.current")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	routine, err := handler.service.Current(ctx, session.UserID, session.Token)
	if err != nil {
		writeServiceError(w, "get current routine", session.UserID, err)
		return
	}

	pkg.WriteJSON(w, routine, http.StatusOK)
}

func (handler *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routine.overview")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	overview, err := handler.service.Overview(ctx, session.UserID, session.Token)
	if err != nil {
		writeServiceError(w, "get routine overview", session.UserID, err)
		return
	}

	pkg.WriteJSON(w, overview, http.StatusOK)
}

// HandleSchedule maps ?daysPerWeek=&startDate= to weekday labels and their dates.
func (handler *Handler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.routine.schedule")
	defer span.End()

	daysPerWeek, startDate, ok := handler.parseScheduleParams(w, r)
	if !ok {
		return
	}

	resp, err := handler.service.Schedule(daysPerWeek, startDate)
	if err != nil {
		log.Tracef("map training days [%d]: %s", daysPerWeek, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}

// HandleProgress is HandleSchedule plus the week progress as of ?now= (defaults to the current time).
func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.routine.progress")
	defer span.End()

	daysPerWeek, startDate, ok := handler.parseScheduleParams(w, r)
	if !ok {
		return
	}

	now := handler.service.Now()
	if nowStr := r.URL.Query().Get("now"); nowStr != "" {
		parsed, err := schedule.ParseInstant(nowStr)
		if err != nil {
			http.Error(w, "invalid <now> param, expected RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		now = parsed
	}

	resp, err := handler.service.Progress(daysPerWeek, startDate, now)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (handler *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routine.reset")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.service.Reset(ctx, session.UserID, id); err != nil {
		writeServiceError(w, "reset routine", session.UserID, err)
		return
	}

	resp, err := json.Marshal(ResetRoutineResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal reset response: %s", err)
		http.Error(w, "failed to marshal reset response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(resp))
}

func (handler *Handler) parseScheduleParams(w http.ResponseWriter, r *http.Request) (int, time.Time, bool) {
	query := r.URL.Query()

	daysPerWeek, err := strconv.Atoi(query.Get("daysPerWeek"))
	if err != nil {
		http.Error(w, "invalid <daysPerWeek> param", http.StatusBadRequest)
		return 0, time.Time{}, false
	}

	startDate := schedule.DateOnly(handler.service.Now())
	if startStr := query.Get("startDate"); startStr != "" {
		startDate, err = schedule.ParseCalendarDate(startStr)
		if err != nil {
			http.Error(w, "invalid <startDate> param", http.StatusBadRequest)
			return 0, time.Time{}, false
		}
	}

	return daysPerWeek, startDate, true
}

func writeServiceError(w http.ResponseWriter, action string, userID int, err error) {
	switch {
	case errors.Is(err, ErrRoutineNotFound):
		http.Error(w, "routine not found", http.StatusNotFound)
	case errors.Is(err, schedule.ErrInvalidFrequency),
		errors.Is(err, schedule.ErrInvalidWindow),
		errors.Is(err, ErrMisalignedRoutine):
		log.Warnf("%s for user %d: %s", action, userID, err)
		http.Error(w, "invalid routine", http.StatusUnprocessableEntity)
	case errors.Is(err, ErrRemoteUnavailable):
		log.Errorf("%s for user %d: %s", action, userID, err)
		http.Error(w, "routine service unavailable", http.StatusBadGateway)
	default:
		log.Errorf("%s for user %d: %s", action, userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
