package feedback

import (
	"context"
)

// Repository defines the persistence interface for feedback entries
type Repository interface {
	Save(ctx context.Context, entry *Feedback) error
	FindRecent(ctx context.Context, limit int) ([]*Feedback, error)
	AverageRating(ctx context.Context) (float64, error)
}
