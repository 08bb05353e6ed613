package handler

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/flowise/cycle-tracker/internal/api/validation"
	"github.com/flowise/cycle-tracker/internal/domain"
	"github.com/flowise/cycle-tracker/internal/questionnaire"
	"github.com/flowise/cycle-tracker/internal/service"
	"github.com/flowise/cycle-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxFormBytes = 1 << 20

type ProfileHandler struct {
	service service.StoreService
}

func NewProfileHandler(service service.StoreService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get handles GET /v1/users/{userId}/profile
// @Summary Get profile
// @Description Get the questionnaire profile of a user.
// @Tags profile
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.ProfileResponse
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User or profile not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/profile [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err, "Profile not found", "Failed to get profile")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile.ToResponse())
}

// Put handles PUT /v1/users/{userId}/profile
// @Summary Set profile
// @Description Replace the questionnaire profile. Cycle length must be 21-40 days, period length 2-9 days and shorter than the cycle, and the last period date must not be in the future.
// @Tags profile
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.ProfileInput true "Complete profile"
// @Success 200 {object} domain.ProfileResponse
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/profile [put]
func (h *ProfileHandler) Put(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	h.setProfile(w, r, userID, &req)
}

// Patch handles PATCH /v1/users/{userId}/profile
// @Summary Update profile
// @Description Merge the provided fields into the existing profile. The merged profile must still satisfy every profile rule.
// @Tags profile
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} domain.ProfileResponse
// @Failure 400 {object} problem.Problem "Invalid JSON body or no fields"
// @Failure 404 {object} problem.Problem "User or profile not found"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/profile [patch]
func (h *ProfileHandler) Patch(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if !req.HasUpdates() {
		problem.BadRequest("At least one field must be provided").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		writeStoreError(w, err, "Profile not found", "Failed to update profile")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile.ToResponse())
}

// SubmitQuestionnaire handles POST /v1/users/{userId}/questionnaire
// @Summary Submit the onboarding questionnaire
// @Description Parse a form-encoded questionnaire into a profile and store it. Missing or unparsable numbers take defaults: age 0, cycle 28, period 5.
// @Tags profile
// @Accept x-www-form-urlencoded
// @Accept mpfd
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param lastPeriodDate formData string false "Start of the last period (YYYY-MM-DD)"
// @Param averageCycleLength formData string false "Average cycle length in days" default(28)
// @Param averagePeriodLength formData string false "Average period length in days" default(5)
// @Param symptomsToTrack formData []string false "Symptoms to track" collectionFormat(multi)
// @Success 200 {object} domain.ProfileResponse
// @Failure 400 {object} problem.Problem "Malformed form"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 415 {object} problem.Problem "Not a form submission"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/questionnaire [post]
func (h *ProfileHandler) SubmitQuestionnaire(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		problem.UnsupportedMediaType("Questionnaire must be submitted as a form").Write(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	switch mediaType {
	case "application/x-www-form-urlencoded":
		err = r.ParseForm()
	case "multipart/form-data":
		err = r.ParseMultipartForm(maxFormBytes)
	default:
		problem.UnsupportedMediaType("Questionnaire must be submitted as a form").Write(w)
		return
	}
	if err != nil {
		problem.BadRequest("Invalid form body").Write(w)
		return
	}

	in := questionnaire.Parse(r.PostForm)
	h.setProfile(w, r, userID, &in)
}

func (h *ProfileHandler) setProfile(w http.ResponseWriter, r *http.Request, userID uuid.UUID, in *domain.ProfileInput) {
	if fieldErrors := validation.Validate(in); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	profile, err := h.service.SetProfile(r.Context(), userID, in)
	if err != nil {
		writeStoreError(w, err, "User not found", "Failed to save profile")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile.ToResponse())
}
