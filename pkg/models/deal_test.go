package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDealStatusCanAdvanceTo(t *testing.T) {
	testCases := []struct {
		name    string
		from    DealStatus
		to      DealStatus
		allowed bool
	}{
		{"active to payment confirmed", StatusActive, StatusPaymentConfirmed, true},
		{"payment confirmed to transfer confirmed", StatusPaymentConfirmed, StatusTransferConfirmed, true},
		{"transfer confirmed to completed", StatusTransferConfirmed, StatusCompleted, true},
		{"active cannot skip to transfer confirmed", StatusActive, StatusTransferConfirmed, false},
		{"active cannot skip to completed", StatusActive, StatusCompleted, false},
		{"payment confirmed cannot skip to completed", StatusPaymentConfirmed, StatusCompleted, false},
		{"no backwards move", StatusTransferConfirmed, StatusPaymentConfirmed, false},
		{"completed is terminal", StatusCompleted, StatusActive, false},
		{"no self transition", StatusActive, StatusActive, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanAdvanceTo(tc.to))
		})
	}
}

func TestPaymentMethodDefaultCurrency(t *testing.T) {
	assert.Equal(t, "USDT", MethodWallet.DefaultCurrency())
	assert.Equal(t, "RUB", MethodCard.DefaultCurrency())
	assert.Equal(t, "Stars", MethodStars.DefaultCurrency())
}

func TestUserLang(t *testing.T) {
	u := &User{Language: "en"}
	assert.Equal(t, "en", u.Lang())

	u.Language = ""
	assert.Equal(t, "ru", u.Lang())
}
