package persistence

import (
	"context"
	"testing"

	"github.com/coffeehouse/backend/internal/domain/feedback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormFeedbackRepository_SaveAndFindRecent(t *testing.T) {
	repo := NewGormFeedbackRepository(newTestDB(t))

	for _, data := range []struct {
		name   string
		rating int
	}{
		{"Ada", 5},
		{"Grace", 4},
		{"Linus", 3},
	} {
		entry, err := feedback.NewFeedback(data.name, data.rating, "nice shop")
		require.NoError(t, err)
		require.NoError(t, repo.Save(context.Background(), entry))
	}

	entries, err := repo.FindRecent(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestGormFeedbackRepository_AverageRating(t *testing.T) {
	repo := NewGormFeedbackRepository(newTestDB(t))

	average, err := repo.AverageRating(context.Background())
	require.NoError(t, err)
	assert.Zero(t, average, "no feedback yet")

	for _, rating := range []int{5, 4} {
		entry, err := feedback.NewFeedback("Ada", rating, "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(context.Background(), entry))
	}

	average, err = repo.AverageRating(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 4.5, average, 0.001)
}
