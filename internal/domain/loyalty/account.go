package loyalty

import (
	"time"

	"github.com/coffeehouse/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Tier represents a loyalty tier derived from lifetime points
type Tier string

const (
	TierBronze Tier = "Bronze"
	TierSilver Tier = "Silver"
	TierGold   Tier = "Gold"
)

// Tier thresholds in lifetime points
const (
	silverThreshold int64 = 1000
	goldThreshold   int64 = 2500
)

// TierForLifetimePoints returns the tier a lifetime point total earns
func TierForLifetimePoints(points int64) Tier {
	switch {
	case points >= goldThreshold:
		return TierGold
	case points >= silverThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}

// Account is the loyalty account aggregate root, one per user. The
// spendable balance goes up and down; lifetime points only grow and
// determine the tier.
type Account struct {
	shared.BaseAggregateRoot
	UserID         uuid.UUID
	Points         int64
	LifetimePoints int64
}

// NewAccount creates an empty loyalty account for the given user
func NewAccount(userID uuid.UUID) (*Account, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	return &Account{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
	}, nil
}

// Tier returns the account's current tier
func (a *Account) Tier() Tier {
	return TierForLifetimePoints(a.LifetimePoints)
}

// Earn credits points to the account, typically after an order is placed
func (a *Account) Earn(points int64) error {
	if points <= 0 {
		return shared.NewDomainError("INVALID_POINTS", "Earned points must be positive")
	}

	oldTier := a.Tier()
	a.Points += points
	a.LifetimePoints += points
	a.UpdatedAt = time.Now()

	a.AddDomainEvent(NewPointsEarnedEvent(a, points))
	if newTier := a.Tier(); newTier != oldTier {
		a.AddDomainEvent(NewTierChangedEvent(a, oldTier, newTier))
	}

	return nil
}

// Redeem debits the points required by a reward and records the redemption.
// The check and the debit happen together so the balance can never go
// negative.
func (a *Account) Redeem(reward *Reward, code string) (*Redemption, error) {
	if reward == nil {
		return nil, shared.NewDomainError("INVALID_REWARD", "Reward cannot be nil")
	}
	if !reward.Active {
		return nil, shared.NewDomainError("INACTIVE_REWARD", "Reward is not active")
	}
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Reward code cannot be empty")
	}
	if a.Points < reward.PointsRequired {
		return nil, shared.ErrInsufficientPoints
	}

	a.Points -= reward.PointsRequired
	a.UpdatedAt = time.Now()

	redemption := &Redemption{
		BaseEntity: shared.NewBaseEntity(),
		AccountID:  a.ID,
		UserID:     a.UserID,
		RewardID:   reward.ID,
		RewardName: reward.Name,
		PointsUsed: reward.PointsRequired,
		Code:       code,
		RedeemedAt: time.Now(),
	}

	a.AddDomainEvent(NewRewardRedeemedEvent(a, redemption))

	return redemption, nil
}
