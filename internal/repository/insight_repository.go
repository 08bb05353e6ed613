package repository

import (
	"context"

	"github.com/flowise/cycle-tracker/internal/domain"
	"github.com/flowise/cycle-tracker/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InsightRepository interface {
	// CreateBatch stores all insights or none of them.
	CreateBatch(ctx context.Context, insights []domain.AIInsight) error
	// ListAll returns the full history in insertion order.
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.AIInsight, error)
	// List returns one page of history, newest first, with one extra record
	// when more pages follow.
	List(ctx context.Context, userID uuid.UUID, filter domain.InsightFilter) ([]domain.AIInsight, error)
}

type insightRepository struct {
	db *gorm.DB
}

func NewInsightRepository(db *gorm.DB) InsightRepository {
	return &insightRepository{db: db}
}

func (r *insightRepository) CreateBatch(ctx context.Context, insights []domain.AIInsight) error {
	if len(insights) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&insights).Error
	})
}

func (r *insightRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.AIInsight, error) {
	var insights []domain.AIInsight
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").Order("position ASC").Order("id ASC").
		Find(&insights).Error
	return insights, err
}

func (r *insightRepository) List(ctx context.Context, userID uuid.UUID, filter domain.InsightFilter) ([]domain.AIInsight, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("position DESC").Order("id DESC")

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		if cursor != nil {
			query = query.Where(
				"(created_at < ?) OR (created_at = ? AND position < ?) OR (created_at = ? AND position = ? AND id < ?)",
				cursor.CreatedAt, cursor.CreatedAt, cursor.Position, cursor.CreatedAt, cursor.Position, cursor.ID,
			)
		}
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	var insights []domain.AIInsight
	if err := query.Limit(limit + 1).Find(&insights).Error; err != nil {
		return nil, err
	}
	return insights, nil
}
