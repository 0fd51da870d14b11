package feedback

import (
	"strings"

	"github.com/coffeehouse/backend/internal/domain/shared"
)

// Feedback represents a customer review left on the storefront
type Feedback struct {
	shared.BaseEntity
	Name    string
	Rating  int
	Comment string
}

// NewFeedback creates a new feedback entry. Rating must be between 1 and 5.
func NewFeedback(name string, rating int, comment string) (*Feedback, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if rating < 1 || rating > 5 {
		return nil, shared.NewDomainError("INVALID_RATING", "Rating must be between 1 and 5")
	}
	if len(comment) > 2000 {
		return nil, shared.NewDomainError("INVALID_COMMENT", "Comment cannot exceed 2000 characters")
	}

	return &Feedback{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Rating:     rating,
		Comment:    strings.TrimSpace(comment),
	}, nil
}
