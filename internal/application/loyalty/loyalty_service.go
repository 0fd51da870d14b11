package loyalty

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/coffeehouse/backend/internal/domain/loyalty"
	"github.com/coffeehouse/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const rewardCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// LoyaltyService handles loyalty account, rewards and redemption
// operations
type LoyaltyService struct {
	accountRepo    loyalty.AccountRepository
	rewardRepo     loyalty.RewardRepository
	redemptionRepo loyalty.RedemptionRepository
	eventBus       shared.EventPublisher
	logger         *zap.Logger
}

// NewLoyaltyService creates a new LoyaltyService
func NewLoyaltyService(
	accountRepo loyalty.AccountRepository,
	rewardRepo loyalty.RewardRepository,
	redemptionRepo loyalty.RedemptionRepository,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *LoyaltyService {
	return &LoyaltyService{
		accountRepo:    accountRepo,
		rewardRepo:     rewardRepo,
		redemptionRepo: redemptionRepo,
		eventBus:       eventBus,
		logger:         logger,
	}
}

// GetAccount returns the user's loyalty account, creating it on first
// access
func (s *LoyaltyService) GetAccount(ctx context.Context, userID uuid.UUID) (*AccountResponse, error) {
	account, err := s.loadOrCreateAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	response := ToAccountResponse(account)
	return &response, nil
}

// ListRewards returns the active rewards catalog
func (s *LoyaltyService) ListRewards(ctx context.Context) ([]RewardResponse, error) {
	rewards, err := s.rewardRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]RewardResponse, 0, len(rewards))
	for i := range rewards {
		responses = append(responses, ToRewardResponse(&rewards[i]))
	}
	return responses, nil
}

// CreateReward adds a reward to the catalog
func (s *LoyaltyService) CreateReward(ctx context.Context, req CreateRewardRequest) (*RewardResponse, error) {
	reward, err := loyalty.NewReward(req.Name, req.Description, req.PointsRequired)
	if err != nil {
		return nil, err
	}
	if err := s.rewardRepo.Save(ctx, reward); err != nil {
		return nil, err
	}
	response := ToRewardResponse(reward)
	return &response, nil
}

// Redeem exchanges points for a reward and returns the redemption with
// its generated code. The point debit and the redemption record commit
// together or not at all.
func (s *LoyaltyService) Redeem(ctx context.Context, userID uuid.UUID, req RedeemRequest) (*RedemptionResponse, error) {
	account, err := s.loadOrCreateAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	reward, err := s.rewardRepo.FindByID(ctx, req.RewardID)
	if err != nil {
		return nil, err
	}

	redemption, err := account.Redeem(reward, GenerateRewardCode())
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.SaveRedemption(ctx, account, redemption); err != nil {
		return nil, err
	}

	if err := s.eventBus.Publish(ctx, account.GetDomainEvents()...); err != nil {
		s.logger.Warn("failed to publish loyalty events",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}
	account.ClearDomainEvents()

	s.logger.Info("reward redeemed",
		zap.String("user_id", userID.String()),
		zap.String("reward", redemption.RewardName),
		zap.Int64("points_used", redemption.PointsUsed),
	)

	response := ToRedemptionResponse(redemption)
	return &response, nil
}

// History returns the user's redemption history
func (s *LoyaltyService) History(ctx context.Context, userID uuid.UUID) ([]RedemptionResponse, error) {
	redemptions, err := s.redemptionRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]RedemptionResponse, 0, len(redemptions))
	for i := range redemptions {
		responses = append(responses, ToRedemptionResponse(&redemptions[i]))
	}
	return responses, nil
}

func (s *LoyaltyService) loadOrCreateAccount(ctx context.Context, userID uuid.UUID) (*loyalty.Account, error) {
	account, err := s.accountRepo.FindByUser(ctx, userID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	account, err = loyalty.NewAccount(userID)
	if err != nil {
		return nil, err
	}
	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// GenerateRewardCode builds a redemption code such as BREW7K2N4X
func GenerateRewardCode() string {
	suffix := make([]byte, 6)
	max := big.NewInt(int64(len(rewardCodeAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			suffix[i] = rewardCodeAlphabet[0]
			continue
		}
		suffix[i] = rewardCodeAlphabet[n.Int64()]
	}
	return "BREW" + string(suffix)
}
