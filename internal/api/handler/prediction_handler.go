package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/flowise/cycle-tracker/internal/domain"
	"github.com/flowise/cycle-tracker/internal/service"
	"github.com/flowise/cycle-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PredictionHandler serves calendar, single-day and dashboard predictions.
// Without a profile every endpoint answers with neutral values rather than
// an error.
type PredictionHandler struct {
	service service.PredictionService
}

func NewPredictionHandler(service service.PredictionService) *PredictionHandler {
	return &PredictionHandler{service: service}
}

// GetCalendar handles GET /v1/users/{userId}/calendar
// @Summary Get calendar month
// @Description Month grid in whole Sunday-first weeks with period, fertile window and ovulation predictions and the symptoms logged per day.
// @Tags predictions
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param month query string false "Month to show (YYYY-MM), defaults to the user's current month" example(2024-02)
// @Param source query string false "Baseline source" Enums(profile, entries) default(profile)
// @Success 200 {object} domain.CalendarResponse
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/calendar [get]
func (h *PredictionHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var fieldErrors []problem.FieldError
	var month time.Time
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		month, err = time.Parse(service.MonthLayout, monthStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "month",
				Message: "must be a month in YYYY-MM format",
			})
		}
	}
	source, sourceErrors := parseSource(r)
	fieldErrors = append(fieldErrors, sourceErrors...)
	if len(fieldErrors) > 0 {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.Calendar(r.Context(), userID, month, source)
	if err != nil {
		writePredictionError(w, err, "Failed to build calendar")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetDay handles GET /v1/users/{userId}/calendar/{date}
// @Summary Classify one day
// @Description Cycle day, period, fertile window, ovulation and phase of one calendar date, with the symptoms logged on it.
// @Tags predictions
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param date path string true "Date (YYYY-MM-DD)" format(date) example(2024-01-14)
// @Param source query string false "Baseline source" Enums(profile, entries) default(profile)
// @Success 200 {object} domain.DayResponse
// @Failure 400 {object} problem.Problem "Invalid user ID or date"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/calendar/{date} [get]
func (h *PredictionHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	date, err := domain.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		problem.BadRequest("Invalid date format, expected YYYY-MM-DD").Write(w)
		return
	}

	source, fieldErrors := parseSource(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.Day(r.Context(), userID, date, source)
	if err != nil {
		writePredictionError(w, err, "Failed to classify day")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetDashboard handles GET /v1/users/{userId}/dashboard
// @Summary Get dashboard summary
// @Description Current cycle day, progress, phase, days until the next period and ovulation, and today's symptoms.
// @Tags predictions
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param source query string false "Baseline source" Enums(profile, entries) default(profile)
// @Success 200 {object} domain.DashboardResponse
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/dashboard [get]
func (h *PredictionHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	source, fieldErrors := parseSource(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.Dashboard(r.Context(), userID, source)
	if err != nil {
		writePredictionError(w, err, "Failed to build dashboard")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseSource(r *http.Request) (domain.BaselineSource, []problem.FieldError) {
	source, err := domain.ParseBaselineSource(r.URL.Query().Get("source"))
	if err != nil {
		return "", []problem.FieldError{{
			Field:   "source",
			Message: "must be one of: profile entries",
		}}
	}
	return source, nil
}

func writePredictionError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, domain.ErrNotFound) {
		problem.NotFound("User not found").Write(w)
		return
	}
	problem.InternalError(fallback).Write(w)
}
