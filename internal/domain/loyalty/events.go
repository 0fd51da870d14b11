package loyalty

import (
	"github.com/coffeehouse/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeLoyaltyAccount = "LoyaltyAccount"

// Event type constants
const (
	EventTypePointsEarned   = "LoyaltyPointsEarned"
	EventTypeTierChanged    = "LoyaltyTierChanged"
	EventTypeRewardRedeemed = "LoyaltyRewardRedeemed"
)

// PointsEarnedEvent is published when points are credited to an account
type PointsEarnedEvent struct {
	shared.BaseDomainEvent
	UserID  uuid.UUID `json:"user_id"`
	Points  int64     `json:"points"`
	Balance int64     `json:"balance"`
}

// NewPointsEarnedEvent creates a new PointsEarnedEvent
func NewPointsEarnedEvent(a *Account, points int64) *PointsEarnedEvent {
	return &PointsEarnedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePointsEarned, AggregateTypeLoyaltyAccount, a.ID),
		UserID:          a.UserID,
		Points:          points,
		Balance:         a.Points,
	}
}

// TierChangedEvent is published when lifetime points cross a tier threshold
type TierChangedEvent struct {
	shared.BaseDomainEvent
	UserID  uuid.UUID `json:"user_id"`
	OldTier Tier      `json:"old_tier"`
	NewTier Tier      `json:"new_tier"`
}

// NewTierChangedEvent creates a new TierChangedEvent
func NewTierChangedEvent(a *Account, oldTier, newTier Tier) *TierChangedEvent {
	return &TierChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTierChanged, AggregateTypeLoyaltyAccount, a.ID),
		UserID:          a.UserID,
		OldTier:         oldTier,
		NewTier:         newTier,
	}
}

// RewardRedeemedEvent is published when a reward is redeemed
type RewardRedeemedEvent struct {
	shared.BaseDomainEvent
	UserID     uuid.UUID `json:"user_id"`
	RewardID   uuid.UUID `json:"reward_id"`
	RewardName string    `json:"reward_name"`
	PointsUsed int64     `json:"points_used"`
	Balance    int64     `json:"balance"`
}

// NewRewardRedeemedEvent creates a new RewardRedeemedEvent
func NewRewardRedeemedEvent(a *Account, redemption *Redemption) *RewardRedeemedEvent {
	return &RewardRedeemedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRewardRedeemed, AggregateTypeLoyaltyAccount, a.ID),
		UserID:          a.UserID,
		RewardID:        redemption.RewardID,
		RewardName:      redemption.RewardName,
		PointsUsed:      redemption.PointsUsed,
		Balance:         a.Points,
	}
}
