package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/flowise/cycle-tracker/internal/domain"
	"github.com/flowise/cycle-tracker/internal/service"
	"github.com/flowise/cycle-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// StoreHandler exposes the complete stored state of a user.
type StoreHandler struct {
	service service.StoreService
}

func NewStoreHandler(service service.StoreService) *StoreHandler {
	return &StoreHandler{service: service}
}

// Get handles GET /v1/users/{userId}/store
// @Summary Get stored state
// @Description Return the profile (null until the questionnaire is submitted) and every logged cycle entry, symptom entry and insight.
// @Tags store
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.SnapshotResponse
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/store [get]
func (h *StoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	snapshot, err := h.service.Get(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err, "User not found", "Failed to load stored data")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snapshot.ToResponse())
}

// Clear handles DELETE /v1/users/{userId}/store
// @Summary Clear stored state
// @Description Remove the profile and every entry of the user. The user itself is kept.
// @Tags store
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 204 "Store cleared"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/store [delete]
func (h *StoreHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	if err := h.service.Clear(r.Context(), userID); err != nil {
		writeStoreError(w, err, "User not found", "Failed to clear stored data")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeStoreError maps store service errors to problem responses.
func writeStoreError(w http.ResponseWriter, err error, notFound, fallback string) {
	var invalid *domain.ProfileInvalidError
	switch {
	case errors.As(err, &invalid):
		fieldErrors := make([]problem.FieldError, 0, len(invalid.Violations))
		for _, v := range invalid.Violations {
			fieldErrors = append(fieldErrors, problem.FieldError{Field: v.Field, Message: v.Message})
		}
		problem.ValidationError("Profile breaks cycle constraints", fieldErrors).Write(w)
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound(notFound).Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest(err.Error()).Write(w)
	default:
		problem.InternalError(fallback).Write(w)
	}
}
