package feedback

import (
	"context"
	"testing"

	"github.com/coffeehouse/backend/internal/domain/feedback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFeedbackRepository is a mock implementation of feedback.Repository
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Save(ctx context.Context, entry *feedback.Feedback) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockFeedbackRepository) FindRecent(ctx context.Context, limit int) ([]*feedback.Feedback, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*feedback.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) AverageRating(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func TestFeedbackService_Submit(t *testing.T) {
	repo := new(MockFeedbackRepository)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*feedback.Feedback")).Return(nil)
	svc := NewFeedbackService(repo)

	resp, err := svc.Submit(context.Background(), SubmitRequest{
		Name:    "Ada",
		Rating:  5,
		Comment: "Best espresso in town.",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Rating)
	repo.AssertExpectations(t)
}

func TestFeedbackService_Submit_InvalidRating(t *testing.T) {
	svc := NewFeedbackService(new(MockFeedbackRepository))

	_, err := svc.Submit(context.Background(), SubmitRequest{Name: "Ada", Rating: 9})
	assert.Error(t, err)
}

func TestFeedbackService_ListRecent(t *testing.T) {
	entry, err := feedback.NewFeedback("Ada", 4, "Lovely place")
	require.NoError(t, err)

	repo := new(MockFeedbackRepository)
	repo.On("FindRecent", mock.Anything, 20).Return([]*feedback.Feedback{entry}, nil)
	repo.On("AverageRating", mock.Anything).Return(4.0, nil)
	svc := NewFeedbackService(repo)

	resp, err := svc.ListRecent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, 4.0, resp.AverageRating)
}
