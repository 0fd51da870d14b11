package persistence

import (
	"context"
	"testing"

	"github.com/coffeehouse/backend/internal/domain/loyalty"
	"github.com/coffeehouse/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormLoyaltyAccountRepository_SaveAndFindByUser(t *testing.T) {
	repo := NewGormLoyaltyAccountRepository(newTestDB(t))
	userID := uuid.New()

	account, err := loyalty.NewAccount(userID)
	require.NoError(t, err)
	require.NoError(t, account.Earn(150))
	require.NoError(t, repo.Save(context.Background(), account))

	found, err := repo.FindByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(150), found.Points)
	assert.Equal(t, int64(150), found.LifetimePoints)
	assert.Equal(t, loyalty.TierBronze, found.Tier())
}

func TestGormLoyaltyAccountRepository_FindByUser_NotFound(t *testing.T) {
	repo := NewGormLoyaltyAccountRepository(newTestDB(t))

	_, err := repo.FindByUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormLoyaltyAccountRepository_UpdateBalance(t *testing.T) {
	repo := NewGormLoyaltyAccountRepository(newTestDB(t))

	account, err := loyalty.NewAccount(uuid.New())
	require.NoError(t, err)
	require.NoError(t, account.Earn(1200))
	require.NoError(t, repo.Save(context.Background(), account))

	require.NoError(t, account.Earn(50))
	require.NoError(t, repo.Save(context.Background(), account))

	found, err := repo.FindByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1250), found.Points)
	assert.Equal(t, loyalty.TierSilver, found.Tier())
}

func TestGormLoyaltyAccountRepository_SaveRedemption(t *testing.T) {
	db := newTestDB(t)
	accountRepo := NewGormLoyaltyAccountRepository(db)
	redemptionRepo := NewGormRedemptionRepository(db)

	account, err := loyalty.NewAccount(uuid.New())
	require.NoError(t, err)
	require.NoError(t, account.Earn(500))
	require.NoError(t, accountRepo.Save(context.Background(), account))

	reward, err := loyalty.NewReward("Free Espresso", "One free espresso", 300)
	require.NoError(t, err)
	redemption, err := account.Redeem(reward, "BREWAAA111")
	require.NoError(t, err)

	require.NoError(t, accountRepo.SaveRedemption(context.Background(), account, redemption))

	found, err := accountRepo.FindByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(200), found.Points)

	history, err := redemptionRepo.FindByUser(context.Background(), account.UserID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "BREWAAA111", history[0].Code)
}

func TestGormLoyaltyAccountRepository_SaveRedemption_RollsBackDebit(t *testing.T) {
	db := newTestDB(t)
	accountRepo := NewGormLoyaltyAccountRepository(db)
	redemptionRepo := NewGormRedemptionRepository(db)

	account, err := loyalty.NewAccount(uuid.New())
	require.NoError(t, err)
	require.NoError(t, account.Earn(1000))
	require.NoError(t, accountRepo.Save(context.Background(), account))

	reward, err := loyalty.NewReward("Free Espresso", "One free espresso", 300)
	require.NoError(t, err)

	first, err := account.Redeem(reward, "BREWDUP111")
	require.NoError(t, err)
	require.NoError(t, accountRepo.SaveRedemption(context.Background(), account, first))

	// The duplicate code trips the unique index on the second write
	second, err := account.Redeem(reward, "BREWDUP111")
	require.NoError(t, err)
	require.Error(t, accountRepo.SaveRedemption(context.Background(), account, second))

	found, err := accountRepo.FindByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(700), found.Points, "a failed redemption write must not commit the debit")

	history, err := redemptionRepo.FindByUser(context.Background(), account.UserID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestGormLoyaltyAccountRepository_SaveRedemption_StaleBalance(t *testing.T) {
	db := newTestDB(t)
	accountRepo := NewGormLoyaltyAccountRepository(db)

	account, err := loyalty.NewAccount(uuid.New())
	require.NoError(t, err)
	require.NoError(t, account.Earn(300))
	require.NoError(t, accountRepo.Save(context.Background(), account))

	reward, err := loyalty.NewReward("Free Espresso", "One free espresso", 300)
	require.NoError(t, err)

	// Two requests load the same balance; only one debit may commit
	copyA, err := accountRepo.FindByID(context.Background(), account.ID)
	require.NoError(t, err)
	copyB, err := accountRepo.FindByID(context.Background(), account.ID)
	require.NoError(t, err)

	redemptionA, err := copyA.Redeem(reward, "BREWAAA222")
	require.NoError(t, err)
	redemptionB, err := copyB.Redeem(reward, "BREWBBB333")
	require.NoError(t, err)

	require.NoError(t, accountRepo.SaveRedemption(context.Background(), copyA, redemptionA))
	err = accountRepo.SaveRedemption(context.Background(), copyB, redemptionB)
	assert.ErrorIs(t, err, shared.ErrInsufficientPoints)

	found, err := accountRepo.FindByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), found.Points)
}

func TestGormRewardRepository_FindActiveOrdersByPoints(t *testing.T) {
	repo := NewGormRewardRepository(newTestDB(t))

	espresso, err := loyalty.NewReward("Free Espresso", "One free espresso", 300)
	require.NoError(t, err)
	pastry, err := loyalty.NewReward("Free Pastry", "Any pastry", 150)
	require.NoError(t, err)
	retired, err := loyalty.NewReward("Retired Mug", "", 500)
	require.NoError(t, err)
	retired.Deactivate()

	for _, reward := range []*loyalty.Reward{espresso, pastry, retired} {
		require.NoError(t, repo.Save(context.Background(), reward))
	}

	rewards, err := repo.FindActive(context.Background())
	require.NoError(t, err)
	require.Len(t, rewards, 2)
	assert.Equal(t, "Free Pastry", rewards[0].Name)
	assert.Equal(t, "Free Espresso", rewards[1].Name)
}

func TestGormRedemptionRepository_FindByUser(t *testing.T) {
	db := newTestDB(t)
	accountRepo := NewGormLoyaltyAccountRepository(db)
	redemptionRepo := NewGormRedemptionRepository(db)

	account, err := loyalty.NewAccount(uuid.New())
	require.NoError(t, err)
	require.NoError(t, account.Earn(500))

	reward, err := loyalty.NewReward("Free Espresso", "One free espresso", 300)
	require.NoError(t, err)

	redemption, err := account.Redeem(reward, "BREWABC123")
	require.NoError(t, err)

	require.NoError(t, accountRepo.Save(context.Background(), account))
	require.NoError(t, redemptionRepo.Save(context.Background(), redemption))

	history, err := redemptionRepo.FindByUser(context.Background(), account.UserID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "BREWABC123", history[0].Code)
	assert.Equal(t, int64(300), history[0].PointsUsed)

	other, err := redemptionRepo.FindByUser(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}
