package handler

import (
	"encoding/json"
	"net/http"

	"github.com/flowise/cycle-tracker/internal/api/validation"
	"github.com/flowise/cycle-tracker/internal/domain"
	"github.com/flowise/cycle-tracker/internal/service"
	"github.com/flowise/cycle-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// EntryHandler handles the append-only cycle and symptom logs.
type EntryHandler struct {
	service service.StoreService
}

func NewEntryHandler(service service.StoreService) *EntryHandler {
	return &EntryHandler{service: service}
}

// CreateCycleEntry handles POST /v1/users/{userId}/cycle-entries
// @Summary Log a cycle event
// @Description Append a period start, period end, ovulation or fertile window event. Logged period starts refine predictions when source=entries.
// @Tags entries
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateCycleEntryRequest true "Cycle event"
// @Success 201 {object} domain.CycleEntryResponse
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/cycle-entries [post]
func (h *EntryHandler) CreateCycleEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateCycleEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, err := h.service.AppendCycleEntry(r.Context(), userID, &req)
	if err != nil {
		writeStoreError(w, err, "User not found", "Failed to create cycle entry")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(entry.ToResponse())
}

// ListCycleEntries handles GET /v1/users/{userId}/cycle-entries
// @Summary List cycle events
// @Description List every logged cycle event in the order it was logged.
// @Tags entries
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.CycleEntryListResponse
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/cycle-entries [get]
func (h *EntryHandler) ListCycleEntries(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	entries, err := h.service.ListCycleEntries(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err, "User not found", "Failed to list cycle entries")
		return
	}

	response := domain.CycleEntryListResponse{Data: make([]domain.CycleEntryResponse, len(entries))}
	for i := range entries {
		response.Data[i] = entries[i].ToResponse()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// CreateSymptomEntry handles POST /v1/users/{userId}/symptom-entries
// @Summary Log symptoms
// @Description Append the symptoms, mood and pain level of one day.
// @Tags entries
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateSymptomEntryRequest true "Symptom entry"
// @Success 201 {object} domain.SymptomEntryResponse
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/symptom-entries [post]
func (h *EntryHandler) CreateSymptomEntry(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateSymptomEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, err := h.service.AppendSymptomEntry(r.Context(), userID, &req)
	if err != nil {
		writeStoreError(w, err, "User not found", "Failed to create symptom entry")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(entry.ToResponse())
}

// ListSymptomEntries handles GET /v1/users/{userId}/symptom-entries
// @Summary List symptom entries
// @Description List logged symptom entries, optionally restricted to an inclusive date range.
// @Tags entries
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "First date (YYYY-MM-DD)" format(date) example(2024-01-01)
// @Param to query string false "Last date (YYYY-MM-DD)" format(date) example(2024-01-31)
// @Success 200 {object} domain.SymptomEntryListResponse
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/symptom-entries [get]
func (h *EntryHandler) ListSymptomEntries(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, fieldErrors := parseSymptomFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	entries, err := h.service.ListSymptomEntries(r.Context(), userID, filter)
	if err != nil {
		writeStoreError(w, err, "User not found", "Failed to list symptom entries")
		return
	}

	response := domain.SymptomEntryListResponse{Data: make([]domain.SymptomEntryResponse, len(entries))}
	for i := range entries {
		response.Data[i] = entries[i].ToResponse()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseSymptomFilter(r *http.Request) (domain.SymptomEntryFilter, []problem.FieldError) {
	var filter domain.SymptomEntryFilter
	var fieldErrors []problem.FieldError

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := domain.ParseDate(fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a date in YYYY-MM-DD format",
			})
		} else {
			filter.From = &from
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := domain.ParseDate(toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a date in YYYY-MM-DD format",
			})
		} else {
			filter.To = &to
		}
	}

	if filter.From != nil && filter.To != nil && filter.To.Before(filter.From.Time) {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   "to",
			Message: "must not be before from",
		})
	}

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}
