package bot

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escrowbot/config"
	"escrowbot/pkg/logger"
	"escrowbot/pkg/models"
	"escrowbot/storage/stubs"
)

func newTestNotifier(t *testing.T) (*Notifier, *stubs.MockStorage) {
	t.Helper()
	stg := stubs.NewMockStorage()
	n := NewNotifier(nil, stg, logger.New("test", "error"), &config.Config{}, time.Hour)
	return n, stg
}

func TestNotifierSchedulePersists(t *testing.T) {
	n, stg := newTestNotifier(t)
	ctx := context.Background()

	require.NoError(t, n.Schedule(ctx, "Ab3dEf9h", 200))

	pending, err := stg.Reminder().GetPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Ab3dEf9h", pending[0].DealID)
	assert.Equal(t, int64(200), pending[0].BuyerID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), pending[0].DueAt, time.Minute)
}

func TestNotifierRecoverEmpty(t *testing.T) {
	n, _ := newTestNotifier(t)
	assert.NoError(t, n.Recover(context.Background()))
}

func TestNotifierFireDropsStaleReminder(t *testing.T) {
	n, stg := newTestNotifier(t)
	ctx := context.Background()

	buyerID := int64(200)
	deal := &models.Deal{
		DealID:        "Ab3dEf9h",
		SellerID:      100,
		BuyerID:       &buyerID,
		PaymentMethod: models.MethodWallet,
		Currency:      "USDT",
		Amount:        decimal.RequireFromString("100.5"),
		Memo:          "xK9mP2qR7s",
		Status:        models.StatusCompleted,
	}
	require.NoError(t, stg.Deal().Create(ctx, deal))

	rem, err := stg.Reminder().Create(ctx, deal.DealID, buyerID, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	// the buyer already confirmed receipt, so nothing is sent and the
	// reminder is consumed
	n.fire(rem)

	pending, err := stg.Reminder().GetPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestNotifierFireDropsReminderForDeletedDeal(t *testing.T) {
	n, stg := newTestNotifier(t)
	ctx := context.Background()

	rem, err := stg.Reminder().Create(ctx, "gone1234", 200, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	n.fire(rem)

	pending, err := stg.Reminder().GetPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
