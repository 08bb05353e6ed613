package repository

import (
	"context"
	"errors"

	"github.com/flowise/cycle-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	// Get returns domain.ErrNotFound until a profile has been saved.
	Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	// Save inserts the profile or replaces every field of the existing one.
	Save(ctx context.Context, profile *domain.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Save(ctx context.Context, profile *domain.Profile) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(profile).Error
}
