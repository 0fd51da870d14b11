package models

import (
	"time"

	"github.com/coffeehouse/backend/internal/domain/loyalty"
	"github.com/google/uuid"
)

// LoyaltyAccountModel is the persistence model for the loyalty Account
// aggregate root.
type LoyaltyAccountModel struct {
	AggregateModel
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Points         int64     `gorm:"not null;default:0"`
	LifetimePoints int64     `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (LoyaltyAccountModel) TableName() string {
	return "loyalty_accounts"
}

// ToDomain converts the persistence model to a domain Account
func (m *LoyaltyAccountModel) ToDomain() *loyalty.Account {
	return &loyalty.Account{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		UserID:            m.UserID,
		Points:            m.Points,
		LifetimePoints:    m.LifetimePoints,
	}
}

// LoyaltyAccountModelFromDomain converts a domain Account to its persistence model
func LoyaltyAccountModelFromDomain(a *loyalty.Account) *LoyaltyAccountModel {
	m := &LoyaltyAccountModel{
		UserID:         a.UserID,
		Points:         a.Points,
		LifetimePoints: a.LifetimePoints,
	}
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	return m
}

// RewardModel is the persistence model for a loyalty reward.
type RewardModel struct {
	BaseModel
	Name           string `gorm:"type:varchar(200);not null"`
	Description    string `gorm:"type:text"`
	PointsRequired int64  `gorm:"not null"`
	Active         bool   `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (RewardModel) TableName() string {
	return "loyalty_rewards"
}

// ToDomain converts the persistence model to a domain Reward
func (m *RewardModel) ToDomain() *loyalty.Reward {
	return &loyalty.Reward{
		BaseEntity:     m.BaseModel.ToDomain(),
		Name:           m.Name,
		Description:    m.Description,
		PointsRequired: m.PointsRequired,
		Active:         m.Active,
	}
}

// RewardModelFromDomain converts a domain Reward to its persistence model
func RewardModelFromDomain(r *loyalty.Reward) *RewardModel {
	m := &RewardModel{
		Name:           r.Name,
		Description:    r.Description,
		PointsRequired: r.PointsRequired,
		Active:         r.Active,
	}
	m.FromDomainBaseEntity(r.BaseEntity)
	return m
}

// RedemptionModel is the persistence model for a reward redemption.
type RedemptionModel struct {
	BaseModel
	AccountID  uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	RewardID   uuid.UUID `gorm:"type:uuid;not null"`
	RewardName string    `gorm:"type:varchar(200);not null"`
	PointsUsed int64     `gorm:"not null"`
	Code       string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	RedeemedAt time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (RedemptionModel) TableName() string {
	return "loyalty_redemptions"
}

// ToDomain converts the persistence model to a domain Redemption
func (m *RedemptionModel) ToDomain() *loyalty.Redemption {
	return &loyalty.Redemption{
		BaseEntity: m.BaseModel.ToDomain(),
		AccountID:  m.AccountID,
		UserID:     m.UserID,
		RewardID:   m.RewardID,
		RewardName: m.RewardName,
		PointsUsed: m.PointsUsed,
		Code:       m.Code,
		RedeemedAt: m.RedeemedAt,
	}
}

// RedemptionModelFromDomain converts a domain Redemption to its persistence model
func RedemptionModelFromDomain(r *loyalty.Redemption) *RedemptionModel {
	m := &RedemptionModel{
		AccountID:  r.AccountID,
		UserID:     r.UserID,
		RewardID:   r.RewardID,
		RewardName: r.RewardName,
		PointsUsed: r.PointsUsed,
		Code:       r.Code,
		RedeemedAt: r.RedeemedAt,
	}
	m.FromDomainBaseEntity(r.BaseEntity)
	return m
}
