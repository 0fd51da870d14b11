package loyalty

import (
	"context"

	"github.com/google/uuid"
)

// AccountRepository defines the persistence interface for loyalty accounts
type AccountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	FindByUser(ctx context.Context, userID uuid.UUID) (*Account, error)
	Save(ctx context.Context, account *Account) error
	// SaveRedemption debits the redeemed points and records the redemption
	// in a single transaction. The debit is guarded against the stored
	// balance; when a concurrent redemption has already spent it, the call
	// returns shared.ErrInsufficientPoints and writes nothing.
	SaveRedemption(ctx context.Context, account *Account, redemption *Redemption) error
}

// RewardRepository defines the persistence interface for the rewards catalog
type RewardRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Reward, error)
	FindActive(ctx context.Context) ([]Reward, error)
	Save(ctx context.Context, reward *Reward) error
}

// RedemptionRepository defines the persistence interface for redemption history
type RedemptionRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Redemption, error)
	Save(ctx context.Context, redemption *Redemption) error
}
