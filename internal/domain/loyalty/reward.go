package loyalty

import (
	"time"

	"github.com/coffeehouse/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Reward is a redeemable item in the loyalty rewards catalog
type Reward struct {
	shared.BaseEntity
	Name           string
	Description    string
	PointsRequired int64
	Active         bool
}

// NewReward creates a new active reward
func NewReward(name, description string, pointsRequired int64) (*Reward, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Reward name cannot be empty")
	}
	if pointsRequired <= 0 {
		return nil, shared.NewDomainError("INVALID_POINTS", "Points required must be positive")
	}
	return &Reward{
		BaseEntity:     shared.NewBaseEntity(),
		Name:           name,
		Description:    description,
		PointsRequired: pointsRequired,
		Active:         true,
	}, nil
}

// Deactivate takes the reward out of the catalog
func (r *Reward) Deactivate() {
	r.Active = false
	r.UpdatedAt = time.Now()
}

// Redemption records one reward redeemed from an account
type Redemption struct {
	shared.BaseEntity
	AccountID  uuid.UUID
	UserID     uuid.UUID
	RewardID   uuid.UUID
	RewardName string
	PointsUsed int64
	Code       string
	RedeemedAt time.Time
}
