package repository

import (
	"context"

	"github.com/flowise/cycle-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreRepository operates on everything stored for a user at once.
type StoreRepository interface {
	// Clear deletes the profile and every entry and insight in one
	// transaction. The user itself is kept.
	Clear(ctx context.Context, userID uuid.UUID) error
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&domain.AIInsight{},
			&domain.SymptomEntry{},
			&domain.CycleEntry{},
			&domain.Profile{},
		} {
			if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Models lists every persisted model in dependency order.
func Models() []any {
	return []any{
		&domain.User{},
		&domain.Profile{},
		&domain.CycleEntry{},
		&domain.SymptomEntry{},
		&domain.AIInsight{},
	}
}

// Migrate creates or updates the schema of every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
