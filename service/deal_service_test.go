package service

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escrowbot/pkg/logger"
	"escrowbot/pkg/models"
	"escrowbot/storage"
	"escrowbot/storage/stubs"
)

func newTestDealService(t *testing.T) (DealService, *stubs.MockStorage) {
	t.Helper()
	stg := stubs.NewMockStorage()
	return NewDealService(stg, logger.New("test", "error")), stg
}

func mustCreateDeal(t *testing.T, svc DealService) *models.Deal {
	t.Helper()
	deal, err := svc.Create(context.Background(), 100, models.MethodWallet,
		"USDT", decimal.RequireFromString("100.5"), "NFT gift")
	require.NoError(t, err)
	return deal
}

func TestNewTokenFormat(t *testing.T) {
	for i := 0; i < 50; i++ {
		tok := newToken(dealIDLength)
		assert.Len(t, tok, 8)
		for _, r := range tok {
			assert.Contains(t, tokenAlphabet, string(r))
		}
	}

	assert.Len(t, newToken(memoLength), 10)
}

func TestDealServiceCreate(t *testing.T) {
	svc, _ := newTestDealService(t)

	deal := mustCreateDeal(t, svc)
	assert.Len(t, deal.DealID, 8)
	assert.Len(t, deal.Memo, 10)
	assert.NotEqual(t, deal.DealID, deal.Memo)
	assert.Equal(t, int64(100), deal.SellerID)
	assert.Nil(t, deal.BuyerID)
	assert.Equal(t, models.MethodWallet, deal.PaymentMethod)
	assert.Equal(t, "USDT", deal.Currency)
	assert.Equal(t, "100.5", deal.Amount.String())
	assert.Equal(t, models.StatusActive, deal.Status)

	got, err := svc.GetByID(context.Background(), deal.DealID)
	require.NoError(t, err)
	assert.Equal(t, deal.Memo, got.Memo)
}

func TestDealServiceCreateRetriesOnCollision(t *testing.T) {
	svc, stg := newTestDealService(t)
	stg.CreateDealErrs = []error{storage.ErrTokenCollision, storage.ErrTokenCollision}

	deal := mustCreateDeal(t, svc)
	assert.Equal(t, models.StatusActive, deal.Status)
	assert.Empty(t, stg.CreateDealErrs)
}

func TestDealServiceCreateGivesUpAfterRepeatedCollisions(t *testing.T) {
	svc, stg := newTestDealService(t)
	for i := 0; i < maxCreateAttempts; i++ {
		stg.CreateDealErrs = append(stg.CreateDealErrs, storage.ErrTokenCollision)
	}

	_, err := svc.Create(context.Background(), 100, models.MethodCard,
		"RUB", decimal.RequireFromString("500"), "gift")
	assert.ErrorIs(t, err, storage.ErrTokenCollision)
}

func TestDealServiceJoinAndLeave(t *testing.T) {
	svc, _ := newTestDealService(t)
	ctx := context.Background()

	deal := mustCreateDeal(t, svc)

	joined, err := svc.Join(ctx, deal.DealID, 200)
	require.NoError(t, err)
	require.NotNil(t, joined.BuyerID)
	assert.Equal(t, int64(200), *joined.BuyerID)

	_, err = svc.Join(ctx, "missing1", 200)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// leaving by someone who is not the recorded buyer changes nothing
	left, err := svc.Leave(ctx, deal.DealID, 300)
	require.NoError(t, err)
	require.NotNil(t, left.BuyerID)
	assert.Equal(t, int64(200), *left.BuyerID)

	left, err = svc.Leave(ctx, deal.DealID, 200)
	require.NoError(t, err)
	assert.Nil(t, left.BuyerID)
}

func TestDealServiceConfirmPayment(t *testing.T) {
	svc, _ := newTestDealService(t)
	ctx := context.Background()

	deal := mustCreateDeal(t, svc)

	confirmed, err := svc.ConfirmPayment(ctx, deal.Memo)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaymentConfirmed, confirmed.Status)

	// the memo resolves only while the deal is still awaiting payment
	_, err = svc.ConfirmPayment(ctx, deal.Memo)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = svc.ConfirmPayment(ctx, "nosuchmemo")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDealServiceStatusGuards(t *testing.T) {
	svc, _ := newTestDealService(t)
	ctx := context.Background()

	deal := mustCreateDeal(t, svc)

	// transfer cannot be confirmed before payment
	_, err := svc.ConfirmTransfer(ctx, deal.DealID)
	assert.ErrorIs(t, err, storage.ErrStatusConflict)

	_, err = svc.ConfirmPayment(ctx, deal.Memo)
	require.NoError(t, err)

	// completion cannot skip the transfer confirmation
	_, err = svc.Complete(ctx, deal.DealID)
	assert.ErrorIs(t, err, storage.ErrStatusConflict)

	_, err = svc.ConfirmTransfer(ctx, deal.DealID)
	require.NoError(t, err)

	// a second press of the same button is rejected
	_, err = svc.ConfirmTransfer(ctx, deal.DealID)
	assert.ErrorIs(t, err, storage.ErrStatusConflict)

	_, err = svc.Complete(ctx, deal.DealID)
	require.NoError(t, err)

	_, err = svc.Complete(ctx, deal.DealID)
	assert.ErrorIs(t, err, storage.ErrStatusConflict)
}

func TestDealServiceCancel(t *testing.T) {
	svc, _ := newTestDealService(t)
	ctx := context.Background()

	deal := mustCreateDeal(t, svc)
	require.NoError(t, svc.Cancel(ctx, deal.DealID))

	_, err := svc.GetByID(ctx, deal.DealID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = svc.ConfirmPayment(ctx, deal.Memo)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// once the payment is in, the seller can no longer cancel
	deal = mustCreateDeal(t, svc)
	_, err = svc.ConfirmPayment(ctx, deal.Memo)
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Cancel(ctx, deal.DealID), storage.ErrStatusConflict)
}

func TestDealServiceLifecycle(t *testing.T) {
	svc, _ := newTestDealService(t)
	ctx := context.Background()

	deal, err := svc.Create(ctx, 100, models.MethodWallet, "USDT",
		decimal.RequireFromString("250"), "rare username")
	require.NoError(t, err)

	_, err = svc.Join(ctx, deal.DealID, 200)
	require.NoError(t, err)

	confirmed, err := svc.ConfirmPayment(ctx, strings.TrimSpace(deal.Memo))
	require.NoError(t, err)
	assert.Equal(t, deal.DealID, confirmed.DealID)

	transferred, err := svc.ConfirmTransfer(ctx, deal.DealID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusTransferConfirmed, transferred.Status)
	require.NotNil(t, transferred.BuyerID)
	assert.Equal(t, int64(200), *transferred.BuyerID)

	completed, err := svc.Complete(ctx, deal.DealID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, completed.Status)
}
