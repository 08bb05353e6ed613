package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/flowise/cycle-tracker/internal/api/validation"
	"github.com/flowise/cycle-tracker/internal/domain"
	"github.com/flowise/cycle-tracker/internal/service"
	"github.com/flowise/cycle-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// InsightsHandler handles AI insight endpoints.
type InsightsHandler struct {
	insightsService service.InsightsService
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(insightsService service.InsightsService) *InsightsHandler {
	return &InsightsHandler{insightsService: insightsService}
}

// Generate handles POST /v1/users/{userId}/insights
// @Summary Generate AI insights
// @Description Ask the language model for 3 to 4 insights about the stored profile and recent entries and append them to the history. The model is called once; any failure returns the same generic message and stores nothing.
// @Tags insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.GenerateInsightsResponse "Generated insights"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 409 {object} problem.Problem "Questionnaire not submitted"
// @Failure 502 {object} problem.Problem "Model call or response failed"
// @Failure 503 {object} problem.Problem "Model not configured"
// @Router /users/{userId}/insights [post]
func (h *InsightsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.insightsService.Generate(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, domain.ErrProfileIncomplete):
			problem.Conflict("Submit the questionnaire before generating insights").Write(w)
		case errors.Is(err, domain.ErrInsightsUnavailable):
			problem.ServiceUnavailable(domain.InsightsFailedMessage).Write(w)
		case errors.Is(err, domain.ErrInsightsFailed):
			problem.BadGateway(domain.InsightsFailedMessage).Write(w)
		default:
			problem.InternalError(domain.InsightsFailedMessage).Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// List handles GET /v1/users/{userId}/insights
// @Summary List insight history
// @Description Fetch stored insights, newest first, with cursor pagination.
// @Tags insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.InsightListResponse "Insights with pagination"
// @Failure 400 {object} problem.Problem "Invalid cursor"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/insights [get]
func (h *InsightsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter := domain.InsightFilter{Cursor: r.URL.Query().Get("cursor")}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			problem.ValidationError("Invalid query parameters", []problem.FieldError{{
				Field:   "limit",
				Message: "must be a positive integer",
			}}).Write(w)
			return
		}
		filter.Limit = limit
	}

	response, err := h.insightsService.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid cursor").Write(w)
			return
		}
		problem.InternalError("Failed to list insights").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// PostFeedback handles POST /v1/users/{userId}/insights/feedback
// @Summary Submit feedback on generated insights
// @Description Submit a user rating and optional comment for a previous generation, identified by its trace ID.
// @Tags insights
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param body body domain.InsightFeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/insights/feedback [post]
func (h *InsightsHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.InsightFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	if err := h.insightsService.Feedback(r.Context(), userID, &req); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to submit feedback").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
