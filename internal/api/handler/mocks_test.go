package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/flowise/cycle-tracker/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MockStoreService is a mock implementation of StoreService
type MockStoreService struct {
	getFunc                func(ctx context.Context, userID uuid.UUID) (*domain.Snapshot, error)
	clearFunc              func(ctx context.Context, userID uuid.UUID) error
	getProfileFunc         func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	setProfileFunc         func(ctx context.Context, userID uuid.UUID, in *domain.ProfileInput) (*domain.Profile, error)
	updateProfileFunc      func(ctx context.Context, userID uuid.UUID, req *domain.UpdateProfileRequest) (*domain.Profile, error)
	appendCycleEntryFunc   func(ctx context.Context, userID uuid.UUID, req *domain.CreateCycleEntryRequest) (*domain.CycleEntry, error)
	listCycleEntriesFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.CycleEntry, error)
	appendSymptomEntryFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateSymptomEntryRequest) (*domain.SymptomEntry, error)
	listSymptomEntriesFunc func(ctx context.Context, userID uuid.UUID, filter domain.SymptomEntryFilter) ([]domain.SymptomEntry, error)
}

func (m *MockStoreService) Get(ctx context.Context, userID uuid.UUID) (*domain.Snapshot, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID)
	}
	return &domain.Snapshot{}, nil
}

func (m *MockStoreService) Clear(ctx context.Context, userID uuid.UUID) error {
	if m.clearFunc != nil {
		return m.clearFunc(ctx, userID)
	}
	return nil
}

func (m *MockStoreService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if m.getProfileFunc != nil {
		return m.getProfileFunc(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *MockStoreService) SetProfile(ctx context.Context, userID uuid.UUID, in *domain.ProfileInput) (*domain.Profile, error) {
	if m.setProfileFunc != nil {
		return m.setProfileFunc(ctx, userID, in)
	}
	return in.ToProfile(userID), nil
}

func (m *MockStoreService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *domain.UpdateProfileRequest) (*domain.Profile, error) {
	if m.updateProfileFunc != nil {
		return m.updateProfileFunc(ctx, userID, req)
	}
	return nil, domain.ErrNotFound
}

func (m *MockStoreService) AppendCycleEntry(ctx context.Context, userID uuid.UUID, req *domain.CreateCycleEntryRequest) (*domain.CycleEntry, error) {
	if m.appendCycleEntryFunc != nil {
		return m.appendCycleEntryFunc(ctx, userID, req)
	}
	return &domain.CycleEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      *req.Date,
		Type:      req.Type,
		Flow:      req.Flow,
		Notes:     req.Notes,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockStoreService) ListCycleEntries(ctx context.Context, userID uuid.UUID) ([]domain.CycleEntry, error) {
	if m.listCycleEntriesFunc != nil {
		return m.listCycleEntriesFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockStoreService) AppendSymptomEntry(ctx context.Context, userID uuid.UUID, req *domain.CreateSymptomEntryRequest) (*domain.SymptomEntry, error) {
	if m.appendSymptomEntryFunc != nil {
		return m.appendSymptomEntryFunc(ctx, userID, req)
	}
	return &domain.SymptomEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      *req.Date,
		Symptoms:  req.Symptoms,
		Mood:      req.Mood,
		PainLevel: req.PainLevel,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockStoreService) ListSymptomEntries(ctx context.Context, userID uuid.UUID, filter domain.SymptomEntryFilter) ([]domain.SymptomEntry, error) {
	if m.listSymptomEntriesFunc != nil {
		return m.listSymptomEntriesFunc(ctx, userID, filter)
	}
	return nil, nil
}

func (m *MockStoreService) AppendInsights(ctx context.Context, userID uuid.UUID, insights []domain.AIInsight) error {
	return nil
}

// MockPredictionService is a mock implementation of PredictionService
type MockPredictionService struct {
	calendarFunc  func(ctx context.Context, userID uuid.UUID, month time.Time, source domain.BaselineSource) (*domain.CalendarResponse, error)
	dayFunc       func(ctx context.Context, userID uuid.UUID, date domain.Date, source domain.BaselineSource) (*domain.DayResponse, error)
	dashboardFunc func(ctx context.Context, userID uuid.UUID, source domain.BaselineSource) (*domain.DashboardResponse, error)
}

func (m *MockPredictionService) Calendar(ctx context.Context, userID uuid.UUID, month time.Time, source domain.BaselineSource) (*domain.CalendarResponse, error) {
	if m.calendarFunc != nil {
		return m.calendarFunc(ctx, userID, month, source)
	}
	return &domain.CalendarResponse{Month: month.Format("2006-01"), Source: source}, nil
}

func (m *MockPredictionService) Day(ctx context.Context, userID uuid.UUID, date domain.Date, source domain.BaselineSource) (*domain.DayResponse, error) {
	if m.dayFunc != nil {
		return m.dayFunc(ctx, userID, date, source)
	}
	return &domain.DayResponse{Date: date.String(), Symptoms: []string{}}, nil
}

func (m *MockPredictionService) Dashboard(ctx context.Context, userID uuid.UUID, source domain.BaselineSource) (*domain.DashboardResponse, error) {
	if m.dashboardFunc != nil {
		return m.dashboardFunc(ctx, userID, source)
	}
	return &domain.DashboardResponse{Source: source, TodaySymptoms: []domain.TodaySymptom{}}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.GenerateInsightsResponse, error)
	listFunc     func(ctx context.Context, userID uuid.UUID, filter domain.InsightFilter) (*domain.InsightListResponse, error)
	feedbackFunc func(ctx context.Context, userID uuid.UUID, req *domain.InsightFeedbackRequest) error
}

func (m *MockInsightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.GenerateInsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return &domain.GenerateInsightsResponse{Insights: []domain.AIInsightResponse{}}, nil
}

func (m *MockInsightsService) List(ctx context.Context, userID uuid.UUID, filter domain.InsightFilter) (*domain.InsightListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.InsightListResponse{Data: []domain.AIInsightResponse{}}, nil
}

func (m *MockInsightsService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.InsightFeedbackRequest) error {
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, userID, req)
	}
	return nil
}

// withURLParams attaches chi route parameters as name/value pairs.
func withURLParams(req *http.Request, params ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(params); i += 2 {
		rctx.URLParams.Add(params[i], params[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
