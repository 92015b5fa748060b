package measurement

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/2beens/fitroutine/internal/auth"
	"github.com/2beens/fitroutine/internal/telemetry/tracing"
	"github.com/2beens/fitroutine/pkg"

	log "github.com/sirupsen/logrus"
)

const maxListLimit = 500

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurement.save")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var m Measurement
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		log.Errorf("save measurement, unmarshal json params: %s", err)
		http.Error(w, "save measurement failed", http.StatusBadRequest)
		return
	}

	result, err := handler.service.Save(ctx, session.UserID, &m)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidMeasurement), errors.Is(err, ErrInvalidProfile):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrProfileNotFound):
			http.Error(w, "enter your profile first", http.StatusUnprocessableEntity)
		default:
			log.Errorf("failed to save measurement for user %d: %s", session.UserID, err)
			http.Error(w, "error, failed to save measurement", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, result, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurement.list")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > maxListLimit {
			http.Error(w, fmt.Sprintf("invalid <limit> param, expected 1-%d", maxListLimit), http.StatusBadRequest)
			return
		}
	}

	measurements, err := handler.service.List(ctx, session.UserID, limit)
	if err != nil {
		log.Errorf("list measurements for user %d: %s", session.UserID, err)
		http.Error(w, "failed to get measurements", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, measurements, http.StatusOK)
}

func (handler *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurement.export")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	data, err := handler.service.Export(ctx, session.UserID)
	if err != nil {
		log.Errorf("export measurements for user %d: %s", session.UserID, err)
		http.Error(w, "failed to export measurements", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="measurements.parquet"`)
	pkg.WriteResponseBytes(w, pkg.ContentType.Parquet, data, http.StatusOK)
}

// HandleBodyFatChart serves the chart for ?gender=M|F, or for the session user's profile.
func (handler *Handler) HandleBodyFatChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurement.bodyfat-chart")
	defer span.End()

	gender := Gender(r.URL.Query().Get("gender"))
	userID := 0
	if session, ok := auth.SessionFromContext(ctx); ok {
		userID = session.UserID
	}
	if gender == "" && userID == 0 {
		http.Error(w, "missing <gender> param", http.StatusBadRequest)
		return
	}

	chart, err := handler.service.Chart(ctx, userID, gender)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidProfile):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrProfileNotFound):
			http.Error(w, "profile not found", http.StatusNotFound)
		default:
			log.Errorf("body fat chart: %s", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, chart, http.StatusOK)
}

func (handler *Handler) HandleEnterProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.enter")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var p Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid profile payload", http.StatusBadRequest)
		return
	}
	p.UserID = session.UserID

	if err := handler.service.CreateProfile(ctx, &p); err != nil {
		switch {
		case errors.Is(err, ErrInvalidProfile):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrProfileExists):
			http.Error(w, "profile already entered", http.StatusConflict)
		default:
			log.Errorf("create profile for user %d: %s", session.UserID, err)
			http.Error(w, "failed to save profile", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, p, http.StatusCreated)
}

func (handler *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	p, err := handler.service.Profile(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("get profile for user %d: %s", session.UserID, err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, p, http.StatusOK)
}

func (handler *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.update")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var upd ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "invalid profile payload", http.StatusBadRequest)
		return
	}

	p, err := handler.service.UpdateProfile(ctx, session.UserID, upd)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidProfile):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrProfileNotFound):
			http.Error(w, "profile not found", http.StatusNotFound)
		default:
			log.Errorf("update profile for user %d: %s", session.UserID, err)
			http.Error(w, "failed to update profile", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, p, http.StatusOK)
}
