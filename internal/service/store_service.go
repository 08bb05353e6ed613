package service

import (
	"context"
	"errors"
	"time"

	"github.com/flowise/cycle-tracker/internal/domain"
	"github.com/flowise/cycle-tracker/internal/repository"
	"github.com/google/uuid"
)

// StoreService is the boundary of everything persisted for a user: the
// questionnaire profile and the append-only cycle, symptom and insight logs.
type StoreService interface {
	// Get returns the complete stored state. Profile is nil until set.
	Get(ctx context.Context, userID uuid.UUID) (*domain.Snapshot, error)
	// Clear removes the profile and every entry in one transaction.
	Clear(ctx context.Context, userID uuid.UUID) error

	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	// SetProfile replaces the profile wholesale.
	SetProfile(ctx context.Context, userID uuid.UUID, in *domain.ProfileInput) (*domain.Profile, error)
	// UpdateProfile merges the set fields into the existing profile.
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *domain.UpdateProfileRequest) (*domain.Profile, error)

	AppendCycleEntry(ctx context.Context, userID uuid.UUID, req *domain.CreateCycleEntryRequest) (*domain.CycleEntry, error)
	ListCycleEntries(ctx context.Context, userID uuid.UUID) ([]domain.CycleEntry, error)
	AppendSymptomEntry(ctx context.Context, userID uuid.UUID, req *domain.CreateSymptomEntryRequest) (*domain.SymptomEntry, error)
	ListSymptomEntries(ctx context.Context, userID uuid.UUID, filter domain.SymptomEntryFilter) ([]domain.SymptomEntry, error)
	// AppendInsights stores a generated batch all-or-nothing.
	AppendInsights(ctx context.Context, userID uuid.UUID, insights []domain.AIInsight) error
}

type storeService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	entryRepo   repository.EntryRepository
	insightRepo repository.InsightRepository
	storeRepo   repository.StoreRepository

	now func() time.Time
}

func NewStoreService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	entryRepo repository.EntryRepository,
	insightRepo repository.InsightRepository,
	storeRepo repository.StoreRepository,
) StoreService {
	return &storeService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		entryRepo:   entryRepo,
		insightRepo: insightRepo,
		storeRepo:   storeRepo,
		now:         time.Now,
	}
}

func (s *storeService) Get(ctx context.Context, userID uuid.UUID) (*domain.Snapshot, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	cycles, err := s.entryRepo.ListCycleEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	symptoms, err := s.entryRepo.ListSymptomEntries(ctx, userID, domain.SymptomEntryFilter{})
	if err != nil {
		return nil, err
	}
	insights, err := s.insightRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.Snapshot{
		Profile:        profile,
		CycleEntries:   cycles,
		SymptomEntries: symptoms,
		AIInsights:     insights,
	}, nil
}

func (s *storeService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return err
	}
	return s.storeRepo.Clear(ctx, userID)
}

func (s *storeService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	return s.profileRepo.Get(ctx, userID)
}

func (s *storeService) SetProfile(ctx context.Context, userID uuid.UUID, in *domain.ProfileInput) (*domain.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := in.ToProfile(userID)
	if err := s.check(user, profile); err != nil {
		return nil, err
	}
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *storeService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *domain.UpdateProfileRequest) (*domain.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// A partial update needs something to merge into.
	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	req.Apply(profile)
	if err := s.check(user, profile); err != nil {
		return nil, err
	}
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *storeService) check(user *domain.User, profile *domain.Profile) error {
	today := domain.Today(s.now(), user.Location())
	if violations := profile.CheckInvariants(today); len(violations) > 0 {
		return &domain.ProfileInvalidError{Violations: violations}
	}
	return nil
}

func (s *storeService) AppendCycleEntry(ctx context.Context, userID uuid.UUID, req *domain.CreateCycleEntryRequest) (*domain.CycleEntry, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	entry := &domain.CycleEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      *req.Date,
		Type:      req.Type,
		Flow:      req.Flow,
		Notes:     req.Notes,
		CreatedAt: s.now().UTC(),
	}
	if err := s.entryRepo.CreateCycleEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *storeService) ListCycleEntries(ctx context.Context, userID uuid.UUID) ([]domain.CycleEntry, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	return s.entryRepo.ListCycleEntries(ctx, userID)
}

func (s *storeService) AppendSymptomEntry(ctx context.Context, userID uuid.UUID, req *domain.CreateSymptomEntryRequest) (*domain.SymptomEntry, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	symptoms := req.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}
	entry := &domain.SymptomEntry{
		ID:           uuid.New(),
		UserID:       userID,
		Date:         *req.Date,
		Symptoms:     symptoms,
		Mood:         req.Mood,
		PainLevel:    req.PainLevel,
		PainLocation: req.PainLocation,
		Notes:        req.Notes,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.entryRepo.CreateSymptomEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *storeService) ListSymptomEntries(ctx context.Context, userID uuid.UUID, filter domain.SymptomEntryFilter) ([]domain.SymptomEntry, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	return s.entryRepo.ListSymptomEntries(ctx, userID, filter)
}

func (s *storeService) AppendInsights(ctx context.Context, userID uuid.UUID, insights []domain.AIInsight) error {
	for i := range insights {
		if insights[i].UserID != userID {
			return domain.ErrInvalidInput
		}
	}
	return s.insightRepo.CreateBatch(ctx, insights)
}

// requireUser maps an unknown user to domain.ErrNotFound.
func requireUser(ctx context.Context, users repository.UserRepository, userID uuid.UUID) error {
	exists, err := users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}
