package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escrowbot/pkg/logger"
	"escrowbot/storage/stubs"
)

func newTestUserService(t *testing.T) (UserService, *stubs.MockStorage) {
	t.Helper()
	stg := stubs.NewMockStorage()
	return NewUserService(stg, logger.New("test", "error")), stg
}

func TestUserServiceRegisterIsIdempotent(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	u1, err := svc.Register(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), u1.TelegramID)
	assert.Equal(t, "ru", u1.Language)

	require.NoError(t, svc.SetLanguage(ctx, 100, "en"))

	u2, err := svc.Register(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, "en", u2.Language)
}

func TestUserServiceGetUnknown(t *testing.T) {
	svc, _ := newTestUserService(t)

	u, err := svc.Get(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserServiceRequisites(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, 100)
	require.NoError(t, err)

	require.NoError(t, svc.SetWallet(ctx, 100, "UQabc123"))
	require.NoError(t, svc.SetCard(ctx, 100, "2200 1234 5678 9012"))

	u, err := svc.Get(ctx, 100)
	require.NoError(t, err)
	require.NotNil(t, u.WalletAddress)
	assert.Equal(t, "UQabc123", *u.WalletAddress)
	require.NotNil(t, u.CardDetails)
	assert.Equal(t, "2200 1234 5678 9012", *u.CardDetails)
}

func TestUserServiceRegisterReferral(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, 100)
	require.NoError(t, err)
	_, err = svc.Register(ctx, 200)
	require.NoError(t, err)
	_, err = svc.Register(ctx, 300)
	require.NoError(t, err)

	added, err := svc.RegisterReferral(ctx, 100, 200)
	require.NoError(t, err)
	assert.True(t, added)

	// a referred user is credited at most once, regardless of whose
	// link brings them back
	added, err = svc.RegisterReferral(ctx, 100, 200)
	require.NoError(t, err)
	assert.False(t, added)

	added, err = svc.RegisterReferral(ctx, 300, 200)
	require.NoError(t, err)
	assert.False(t, added)

	// self referrals are ignored
	added, err = svc.RegisterReferral(ctx, 300, 300)
	require.NoError(t, err)
	assert.False(t, added)

	count, err := svc.ReferralCount(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = svc.ReferralCount(ctx, 300)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestUserServiceSetSuccessfulDeals(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, 100)
	require.NoError(t, err)

	require.NoError(t, svc.SetSuccessfulDeals(ctx, 100, 25))
	u, err := svc.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 25, u.SuccessfulDeals)

	err = svc.SetSuccessfulDeals(ctx, 100, -1)
	assert.ErrorIs(t, err, ErrNegativeCount)

	u, err = svc.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 25, u.SuccessfulDeals)
}
