package loyalty

import (
	"time"

	"github.com/coffeehouse/backend/internal/domain/loyalty"
	"github.com/google/uuid"
)

// AccountResponse represents a loyalty account in API responses
type AccountResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	Points         int64     `json:"points"`
	LifetimePoints int64     `json:"lifetime_points"`
	Tier           string    `json:"tier"`
}

// RewardResponse represents a redeemable reward in API responses
type RewardResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	PointsRequired int64     `json:"points_required"`
}

// RedemptionResponse represents one redeemed reward in API responses
type RedemptionResponse struct {
	ID         uuid.UUID `json:"id"`
	RewardName string    `json:"reward_name"`
	PointsUsed int64     `json:"points_used"`
	Code       string    `json:"code"`
	RedeemedAt time.Time `json:"redeemed_at"`
}

// RedeemRequest represents a request to redeem a reward
type RedeemRequest struct {
	RewardID uuid.UUID `json:"reward_id" binding:"required"`
}

// CreateRewardRequest represents an admin request to add a reward to the
// catalog
type CreateRewardRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=200"`
	Description    string `json:"description" binding:"max=2000"`
	PointsRequired int64  `json:"points_required" binding:"required,min=1"`
}

// ToAccountResponse converts a domain Account to AccountResponse
func ToAccountResponse(a *loyalty.Account) AccountResponse {
	return AccountResponse{
		UserID:         a.UserID,
		Points:         a.Points,
		LifetimePoints: a.LifetimePoints,
		Tier:           string(a.Tier()),
	}
}

// ToRewardResponse converts a domain Reward to RewardResponse
func ToRewardResponse(r *loyalty.Reward) RewardResponse {
	return RewardResponse{
		ID:             r.ID,
		Name:           r.Name,
		Description:    r.Description,
		PointsRequired: r.PointsRequired,
	}
}

// ToRedemptionResponse converts a domain Redemption to RedemptionResponse
func ToRedemptionResponse(r *loyalty.Redemption) RedemptionResponse {
	return RedemptionResponse{
		ID:         r.ID,
		RewardName: r.RewardName,
		PointsUsed: r.PointsUsed,
		Code:       r.Code,
		RedeemedAt: r.RedeemedAt,
	}
}
