package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFeedback(t *testing.T) {
	f, err := NewFeedback("  Ada  ", 5, "Best espresso in town. ")
	require.NoError(t, err)
	assert.Equal(t, "Ada", f.Name)
	assert.Equal(t, 5, f.Rating)
	assert.Equal(t, "Best espresso in town.", f.Comment)
}

func TestNewFeedback_Validation(t *testing.T) {
	tests := []struct {
		name    string
		author  string
		rating  int
		comment string
	}{
		{"empty name", "", 4, "fine"},
		{"rating too low", "Ada", 0, "fine"},
		{"rating too high", "Ada", 6, "fine"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFeedback(tt.author, tt.rating, tt.comment)
			assert.Error(t, err)
		})
	}
}
