package feedback

import (
	"context"
	"time"

	"github.com/coffeehouse/backend/internal/domain/feedback"
	"github.com/google/uuid"
)

// SubmitRequest represents a feedback submission
type SubmitRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
}

// FeedbackResponse represents a feedback entry in API responses
type FeedbackResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// SummaryResponse aggregates the recent feedback for the storefront
type SummaryResponse struct {
	AverageRating float64            `json:"average_rating"`
	Entries       []FeedbackResponse `json:"entries"`
}

// FeedbackService handles storefront feedback
type FeedbackService struct {
	repo feedback.Repository
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(repo feedback.Repository) *FeedbackService {
	return &FeedbackService{repo: repo}
}

// Submit records a new feedback entry
func (s *FeedbackService) Submit(ctx context.Context, req SubmitRequest) (*FeedbackResponse, error) {
	entry, err := feedback.NewFeedback(req.Name, req.Rating, req.Comment)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, entry); err != nil {
		return nil, err
	}

	response := toResponse(entry)
	return &response, nil
}

// ListRecent returns the most recent feedback with the average rating
func (s *FeedbackService) ListRecent(ctx context.Context, limit int) (*SummaryResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	entries, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	average, err := s.repo.AverageRating(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]FeedbackResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toResponse(entry))
	}
	return &SummaryResponse{AverageRating: average, Entries: responses}, nil
}

func toResponse(f *feedback.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:        f.ID,
		Name:      f.Name,
		Rating:    f.Rating,
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt,
	}
}
