package persistence

import (
	"context"

	"github.com/coffeehouse/backend/internal/domain/feedback"
	"github.com/coffeehouse/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormFeedbackRepository implements feedback.Repository using GORM
type GormFeedbackRepository struct {
	db *gorm.DB
}

// NewGormFeedbackRepository creates a new GormFeedbackRepository
func NewGormFeedbackRepository(db *gorm.DB) *GormFeedbackRepository {
	return &GormFeedbackRepository{db: db}
}

// Save records a feedback entry
func (r *GormFeedbackRepository) Save(ctx context.Context, entry *feedback.Feedback) error {
	model := models.FeedbackModelFromDomain(entry)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindRecent returns the most recent feedback entries
func (r *GormFeedbackRepository) FindRecent(ctx context.Context, limit int) ([]*feedback.Feedback, error) {
	var rows []models.FeedbackModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]*feedback.Feedback, 0, len(rows))
	for i := range rows {
		entries = append(entries, rows[i].ToDomain())
	}
	return entries, nil
}

// AverageRating returns the mean rating across all feedback, or zero
// when there is none
func (r *GormFeedbackRepository) AverageRating(ctx context.Context) (float64, error) {
	var average *float64
	if err := r.db.WithContext(ctx).Model(&models.FeedbackModel{}).
		Select("AVG(rating)").
		Scan(&average).Error; err != nil {
		return 0, err
	}
	if average == nil {
		return 0, nil
	}
	return *average, nil
}

// Ensure GormFeedbackRepository implements Repository
var _ feedback.Repository = (*GormFeedbackRepository)(nil)
