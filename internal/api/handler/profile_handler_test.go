package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/flowise/cycle-tracker/internal/domain"
	"github.com/flowise/cycle-tracker/pkg/problem"
	"github.com/google/uuid"
)

const validProfileBody = `{
	"name": "Jane",
	"age": 29,
	"last_period_date": "2024-01-01",
	"average_cycle_length": 28,
	"average_period_length": 5,
	"cycle_regularity": "very-regular",
	"symptoms_to_track": ["cramps", "bloating"]
}`

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) problem.Problem {
	t.Helper()
	var p problem.Problem
	if err := json.NewDecoder(rec.Body).Decode(&p); err != nil {
		t.Fatalf("Failed to decode problem: %v", err)
	}
	return p
}

func TestProfileHandler_Get(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		userID         string
		mockService    *MockStoreService
		wantStatusCode int
	}{
		{
			name:   "existing profile",
			userID: userID.String(),
			mockService: &MockStoreService{
				getProfileFunc: func(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
					return &domain.Profile{UserID: id, AverageCycleLength: 28, AveragePeriodLength: 5}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "no profile yet",
			userID:         userID.String(),
			mockService:    &MockStoreService{},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "invalid UUID",
			userID:         "not-a-uuid",
			mockService:    &MockStoreService{},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewProfileHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodGet, "/v1/users/"+tt.userID+"/profile", nil)
			req = withURLParams(req, "userId", tt.userID)
			rec := httptest.NewRecorder()

			handler.Get(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Get() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}

			if tt.wantStatusCode == http.StatusOK {
				var response domain.ProfileResponse
				if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if response.MedicalConditions == nil {
					t.Error("empty lists should be rendered as []")
				}
			}
		})
	}
}

func TestProfileHandler_Put(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		body           string
		mockService    *MockStoreService
		wantStatusCode int
		wantField      string
	}{
		{
			name:           "valid profile",
			body:           validProfileBody,
			mockService:    &MockStoreService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			mockService:    &MockStoreService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "malformed date",
			body:           `{"last_period_date": "01/01/2024", "average_cycle_length": 28, "average_period_length": 5}`,
			mockService:    &MockStoreService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "cycle too long",
			body:           strings.Replace(validProfileBody, `"average_cycle_length": 28`, `"average_cycle_length": 45`, 1),
			mockService:    &MockStoreService{},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantField:      "average_cycle_length",
		},
		{
			name:           "unknown regularity",
			body:           strings.Replace(validProfileBody, "very-regular", "weekly", 1),
			mockService:    &MockStoreService{},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantField:      "cycle_regularity",
		},
		{
			name: "last period in the future",
			body: validProfileBody,
			mockService: &MockStoreService{
				setProfileFunc: func(ctx context.Context, id uuid.UUID, in *domain.ProfileInput) (*domain.Profile, error) {
					return nil, &domain.ProfileInvalidError{Violations: []domain.InvariantViolation{
						{Field: "last_period_date", Message: "must not be in the future"},
					}}
				},
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantField:      "last_period_date",
		},
		{
			name: "user not found",
			body: validProfileBody,
			mockService: &MockStoreService{
				setProfileFunc: func(ctx context.Context, id uuid.UUID, in *domain.ProfileInput) (*domain.Profile, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewProfileHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPut, "/v1/users/"+userID.String()+"/profile", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req = withURLParams(req, "userId", userID.String())
			rec := httptest.NewRecorder()

			handler.Put(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("Put() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}

			if tt.wantField != "" {
				p := decodeProblem(t, rec)
				found := false
				for _, fe := range p.Errors {
					if fe.Field == tt.wantField {
						found = true
					}
				}
				if !found {
					t.Errorf("Put() errors = %+v, want one for %s", p.Errors, tt.wantField)
				}
			}
		})
	}
}

func TestProfileHandler_Patch(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		body           string
		mockService    *MockStoreService
		wantStatusCode int
	}{
		{
			name: "partial update",
			body: `{"average_cycle_length": 30}`,
			mockService: &MockStoreService{
				updateProfileFunc: func(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.Profile, error) {
					if req.AverageCycleLength == nil || *req.AverageCycleLength != 30 || req.Name != nil {
						t.Errorf("UpdateProfile() request = %+v, want only the cycle length", req)
					}
					return &domain.Profile{UserID: id, AverageCycleLength: 30, AveragePeriodLength: 5}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "no fields",
			body:           `{}`,
			mockService:    &MockStoreService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "out of range",
			body:           `{"average_period_length": 12}`,
			mockService:    &MockStoreService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "no profile to update",
			body:           `{"name": "Jane"}`,
			mockService:    &MockStoreService{},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "merged profile breaks a rule",
			body: `{"average_period_length": 9}`,
			mockService: &MockStoreService{
				updateProfileFunc: func(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.Profile, error) {
					return nil, &domain.ProfileInvalidError{Violations: []domain.InvariantViolation{
						{Field: "average_period_length", Message: "must be less than average_cycle_length"},
					}}
				},
			},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewProfileHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPatch, "/v1/users/"+userID.String()+"/profile", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req = withURLParams(req, "userId", userID.String())
			rec := httptest.NewRecorder()

			handler.Patch(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Patch() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestProfileHandler_SubmitQuestionnaire(t *testing.T) {
	userID := uuid.New()

	var got *domain.ProfileInput
	mock := &MockStoreService{
		setProfileFunc: func(ctx context.Context, id uuid.UUID, in *domain.ProfileInput) (*domain.Profile, error) {
			got = in
			return in.ToProfile(id), nil
		},
	}
	handler := NewProfileHandler(mock)

	form := url.Values{}
	form.Set("name", "Jane")
	form.Set("lastPeriodDate", "2024-01-01")
	form.Set("averageCycleLength", "30 days")
	form.Set("averagePeriodLength", "")
	form.Add("symptomsToTrack", "cramps")
	form.Add("symptomsToTrack", "fatigue")
	form.Set("moodTracking", "on")

	req := httptest.NewRequest(http.MethodPost, "/v1/users/"+userID.String()+"/questionnaire", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withURLParams(req, "userId", userID.String())
	rec := httptest.NewRecorder()

	handler.SubmitQuestionnaire(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("SubmitQuestionnaire() status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	if got == nil {
		t.Fatal("SubmitQuestionnaire() did not store the profile")
	}
	if got.AverageCycleLength != 30 || got.AveragePeriodLength != 5 || got.Age != 0 {
		t.Errorf("parsed numbers = %d/%d/%d, want 30/5/0", got.AverageCycleLength, got.AveragePeriodLength, got.Age)
	}
	if len(got.SymptomsToTrack) != 2 || !got.MoodTracking || got.FlowTracking {
		t.Errorf("parsed input = %+v", got)
	}
	if got.LastPeriodDate == nil || got.LastPeriodDate.String() != "2024-01-01" {
		t.Errorf("last period date = %v, want 2024-01-01", got.LastPeriodDate)
	}
}

func TestProfileHandler_SubmitQuestionnaire_Multipart(t *testing.T) {
	userID := uuid.New()
	handler := NewProfileHandler(&MockStoreService{})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("averageCycleLength", "26")
	_ = mw.WriteField("averagePeriodLength", "4")
	_ = mw.WriteField("medicalConditions", "pcos")
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/users/"+userID.String()+"/questionnaire", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req = withURLParams(req, "userId", userID.String())
	rec := httptest.NewRecorder()

	handler.SubmitQuestionnaire(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("SubmitQuestionnaire() status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	var response domain.ProfileResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.AverageCycleLength != 26 || response.AveragePeriodLength != 4 {
		t.Errorf("response = %+v, want 26/4", response)
	}
	if len(response.MedicalConditions) != 1 || response.MedicalConditions[0] != "pcos" {
		t.Errorf("medical conditions = %v, want [pcos]", response.MedicalConditions)
	}
}

func TestProfileHandler_SubmitQuestionnaire_Rejects(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		contentType    string
		body           string
		wantStatusCode int
	}{
		{
			name:           "json body",
			contentType:    "application/json",
			body:           validProfileBody,
			wantStatusCode: http.StatusUnsupportedMediaType,
		},
		{
			name:           "no content type",
			body:           "averageCycleLength=28",
			wantStatusCode: http.StatusUnsupportedMediaType,
		},
		{
			name:           "period out of range",
			contentType:    "application/x-www-form-urlencoded",
			body:           "averageCycleLength=28&averagePeriodLength=12",
			wantStatusCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewProfileHandler(&MockStoreService{})

			req := httptest.NewRequest(http.MethodPost, "/v1/users/"+userID.String()+"/questionnaire", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			req = withURLParams(req, "userId", userID.String())
			rec := httptest.NewRecorder()

			handler.SubmitQuestionnaire(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("SubmitQuestionnaire() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}
