package service

import (
	"context"
	"sort"
	"sync"

	"github.com/flowise/cycle-tracker/internal/domain"
	"github.com/flowise/cycle-tracker/internal/langfuse"
	"github.com/flowise/cycle-tracker/internal/llm"
	"github.com/google/uuid"
)

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	profiles map[uuid.UUID]*domain.Profile
	saves    int
	err      error
}

func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		profiles: make(map[uuid.UUID]*domain.Profile),
	}
}

func (m *MockProfileRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.profiles[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *MockProfileRepository) Save(ctx context.Context, profile *domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	m.saves++
	cp := *profile
	m.profiles[profile.UserID] = &cp
	return nil
}

// MockEntryRepository is a mock implementation of EntryRepository
type MockEntryRepository struct {
	cycles   []domain.CycleEntry
	symptoms []domain.SymptomEntry
	err      error
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{}
}

func (m *MockEntryRepository) CreateCycleEntry(ctx context.Context, entry *domain.CycleEntry) error {
	if m.err != nil {
		return m.err
	}
	m.cycles = append(m.cycles, *entry)
	return nil
}

func (m *MockEntryRepository) ListCycleEntries(ctx context.Context, userID uuid.UUID) ([]domain.CycleEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.CycleEntry
	for _, e := range m.cycles {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *MockEntryRepository) ListPeriodStarts(ctx context.Context, userID uuid.UUID) ([]domain.Date, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Date
	for _, e := range m.cycles {
		if e.UserID == userID && e.Type == domain.CycleEntryPeriodStart {
			result = append(result, e.Date)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Before(result[j].Time) })
	return result, nil
}

func (m *MockEntryRepository) CreateSymptomEntry(ctx context.Context, entry *domain.SymptomEntry) error {
	if m.err != nil {
		return m.err
	}
	m.symptoms = append(m.symptoms, *entry)
	return nil
}

func (m *MockEntryRepository) ListSymptomEntries(ctx context.Context, userID uuid.UUID, filter domain.SymptomEntryFilter) ([]domain.SymptomEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.SymptomEntry
	for _, e := range m.symptoms {
		if e.UserID != userID {
			continue
		}
		if filter.From != nil && e.Date.Before(filter.From.Time) {
			continue
		}
		if filter.To != nil && e.Date.After(filter.To.Time) {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

// MockInsightRepository is a mock implementation of InsightRepository
type MockInsightRepository struct {
	insights   []domain.AIInsight
	listResult []domain.AIInsight
	lastFilter domain.InsightFilter
	err        error
}

func NewMockInsightRepository() *MockInsightRepository {
	return &MockInsightRepository{}
}

func (m *MockInsightRepository) CreateBatch(ctx context.Context, insights []domain.AIInsight) error {
	if m.err != nil {
		return m.err
	}
	m.insights = append(m.insights, insights...)
	return nil
}

func (m *MockInsightRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.AIInsight, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.AIInsight
	for _, in := range m.insights {
		if in.UserID == userID {
			result = append(result, in)
		}
	}
	return result, nil
}

func (m *MockInsightRepository) List(ctx context.Context, userID uuid.UUID, filter domain.InsightFilter) ([]domain.AIInsight, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastFilter = filter
	if m.listResult != nil {
		result := make([]domain.AIInsight, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	return nil, nil
}

// MockStoreRepository is a mock implementation of StoreRepository
type MockStoreRepository struct {
	profiles *MockProfileRepository
	entries  *MockEntryRepository
	insights *MockInsightRepository
	cleared  []uuid.UUID
	err      error
}

func (m *MockStoreRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	m.cleared = append(m.cleared, userID)
	delete(m.profiles.profiles, userID)

	var cycles []domain.CycleEntry
	for _, e := range m.entries.cycles {
		if e.UserID != userID {
			cycles = append(cycles, e)
		}
	}
	m.entries.cycles = cycles

	var symptoms []domain.SymptomEntry
	for _, e := range m.entries.symptoms {
		if e.UserID != userID {
			symptoms = append(symptoms, e)
		}
	}
	m.entries.symptoms = symptoms

	var insights []domain.AIInsight
	for _, in := range m.insights.insights {
		if in.UserID != userID {
			insights = append(insights, in)
		}
	}
	m.insights.insights = insights
	return nil
}

// mockLLM returns a canned reply and records the request it received.
type mockLLM struct {
	reply []byte
	err   error
	calls int
	last  llm.Request
}

func (m *mockLLM) Complete(ctx context.Context, req llm.Request) ([]byte, error) {
	m.calls++
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	return m.reply, nil
}

// mockLangfuseClient records traces and scores.
type mockLangfuseClient struct {
	mu      sync.Mutex
	enabled bool
	traceID string
	traces  []langfuse.TraceInput
	scores  []langfuse.ScoreInput
	err     error
}

func (m *mockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *mockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.traces = append(m.traces, in)
	if !m.enabled {
		return "", nil
	}
	if in.ID != "" {
		return in.ID, m.err
	}
	return m.traceID, m.err
}

func (m *mockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores = append(m.scores, in)
	return m.err
}

func (m *mockLangfuseClient) Flush(ctx context.Context) error {
	return nil
}

// fixture wires a store over fresh mocks with one existing user.
type fixture struct {
	users    *MockUserRepository
	profiles *MockProfileRepository
	entries  *MockEntryRepository
	insights *MockInsightRepository
	storeRep *MockStoreRepository
	store    *storeService
	userID   uuid.UUID
}

func newFixture(timezone string) *fixture {
	f := &fixture{
		users:    NewMockUserRepository(),
		profiles: NewMockProfileRepository(),
		entries:  NewMockEntryRepository(),
		insights: NewMockInsightRepository(),
		userID:   uuid.New(),
	}
	f.storeRep = &MockStoreRepository{profiles: f.profiles, entries: f.entries, insights: f.insights}
	f.users.users[f.userID] = &domain.User{ID: f.userID, Timezone: timezone}
	f.store = NewStoreService(f.users, f.profiles, f.entries, f.insights, f.storeRep).(*storeService)
	return f
}
