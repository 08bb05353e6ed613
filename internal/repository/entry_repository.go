package repository

import (
	"context"

	"github.com/flowise/cycle-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntryRepository stores the append-only cycle and symptom logs. Listings
// return entries in insertion order.
type EntryRepository interface {
	CreateCycleEntry(ctx context.Context, entry *domain.CycleEntry) error
	ListCycleEntries(ctx context.Context, userID uuid.UUID) ([]domain.CycleEntry, error)
	ListPeriodStarts(ctx context.Context, userID uuid.UUID) ([]domain.Date, error)

	CreateSymptomEntry(ctx context.Context, entry *domain.SymptomEntry) error
	ListSymptomEntries(ctx context.Context, userID uuid.UUID, filter domain.SymptomEntryFilter) ([]domain.SymptomEntry, error)
}

type entryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) CreateCycleEntry(ctx context.Context, entry *domain.CycleEntry) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(entry).Error
}

func (r *entryRepository) ListCycleEntries(ctx context.Context, userID uuid.UUID) ([]domain.CycleEntry, error) {
	var entries []domain.CycleEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").Order("id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *entryRepository) ListPeriodStarts(ctx context.Context, userID uuid.UUID) ([]domain.Date, error) {
	var entries []domain.CycleEntry
	err := r.db.WithContext(ctx).
		Select("date").
		Where("user_id = ? AND type = ?", userID, domain.CycleEntryPeriodStart).
		Order("date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	dates := make([]domain.Date, 0, len(entries))
	for _, e := range entries {
		dates = append(dates, e.Date)
	}
	return dates, nil
}

func (r *entryRepository) CreateSymptomEntry(ctx context.Context, entry *domain.SymptomEntry) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(entry).Error
}

func (r *entryRepository) ListSymptomEntries(ctx context.Context, userID uuid.UUID, filter domain.SymptomEntryFilter) ([]domain.SymptomEntry, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}

	var entries []domain.SymptomEntry
	err := query.Order("created_at ASC").Order("id ASC").Find(&entries).Error
	return entries, err
}
