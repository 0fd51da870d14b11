package persistence

import (
	"context"
	"errors"

	"github.com/coffeehouse/backend/internal/domain/loyalty"
	"github.com/coffeehouse/backend/internal/domain/shared"
	"github.com/coffeehouse/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLoyaltyAccountRepository implements loyalty.AccountRepository using GORM
type GormLoyaltyAccountRepository struct {
	db *gorm.DB
}

// NewGormLoyaltyAccountRepository creates a new GormLoyaltyAccountRepository
func NewGormLoyaltyAccountRepository(db *gorm.DB) *GormLoyaltyAccountRepository {
	return &GormLoyaltyAccountRepository{db: db}
}

// FindByID finds a loyalty account by its ID
func (r *GormLoyaltyAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*loyalty.Account, error) {
	var model models.LoyaltyAccountModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUser finds the loyalty account owned by a user
func (r *GormLoyaltyAccountRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*loyalty.Account, error) {
	var model models.LoyaltyAccountModel
	if err := r.db.WithContext(ctx).First(&model, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a loyalty account
func (r *GormLoyaltyAccountRepository) Save(ctx context.Context, account *loyalty.Account) error {
	model := models.LoyaltyAccountModelFromDomain(account)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveRedemption debits the redeemed points and records the redemption in
// one transaction. The debit only applies while the stored balance still
// covers it, so two concurrent redemptions cannot overdraw the account;
// a failed redemption insert rolls the debit back.
func (r *GormLoyaltyAccountRepository) SaveRedemption(ctx context.Context, account *loyalty.Account, redemption *loyalty.Redemption) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.LoyaltyAccountModel{}).
			Where("id = ? AND points >= ?", account.ID, redemption.PointsUsed).
			Update("points", gorm.Expr("points - ?", redemption.PointsUsed))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrInsufficientPoints
		}
		return tx.Create(models.RedemptionModelFromDomain(redemption)).Error
	})
}

var _ loyalty.AccountRepository = (*GormLoyaltyAccountRepository)(nil)

// GormRewardRepository implements loyalty.RewardRepository using GORM
type GormRewardRepository struct {
	db *gorm.DB
}

// NewGormRewardRepository creates a new GormRewardRepository
func NewGormRewardRepository(db *gorm.DB) *GormRewardRepository {
	return &GormRewardRepository{db: db}
}

// FindByID finds a reward by its ID
func (r *GormRewardRepository) FindByID(ctx context.Context, id uuid.UUID) (*loyalty.Reward, error) {
	var model models.RewardModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActive finds the rewards currently offered in the catalog
func (r *GormRewardRepository) FindActive(ctx context.Context) ([]loyalty.Reward, error) {
	var rows []models.RewardModel
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("points_required ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	rewards := make([]loyalty.Reward, 0, len(rows))
	for i := range rows {
		rewards = append(rewards, *rows[i].ToDomain())
	}
	return rewards, nil
}

// Save creates or updates a reward
func (r *GormRewardRepository) Save(ctx context.Context, reward *loyalty.Reward) error {
	model := models.RewardModelFromDomain(reward)
	return r.db.WithContext(ctx).Save(model).Error
}

var _ loyalty.RewardRepository = (*GormRewardRepository)(nil)

// GormRedemptionRepository implements loyalty.RedemptionRepository using GORM
type GormRedemptionRepository struct {
	db *gorm.DB
}

// NewGormRedemptionRepository creates a new GormRedemptionRepository
func NewGormRedemptionRepository(db *gorm.DB) *GormRedemptionRepository {
	return &GormRedemptionRepository{db: db}
}

// FindByUser returns a user's redemption history, newest first
func (r *GormRedemptionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]loyalty.Redemption, error) {
	var rows []models.RedemptionModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("redeemed_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	redemptions := make([]loyalty.Redemption, 0, len(rows))
	for i := range rows {
		redemptions = append(redemptions, *rows[i].ToDomain())
	}
	return redemptions, nil
}

// Save records a redemption
func (r *GormRedemptionRepository) Save(ctx context.Context, redemption *loyalty.Redemption) error {
	model := models.RedemptionModelFromDomain(redemption)
	return r.db.WithContext(ctx).Save(model).Error
}

var _ loyalty.RedemptionRepository = (*GormRedemptionRepository)(nil)
