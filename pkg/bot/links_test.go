package bot

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"escrowbot/config"
	"escrowbot/pkg/models"
)

func TestReferralLink(t *testing.T) {
	assert.Equal(t,
		"https://t.me/GlftEIflBot?start=ref_42",
		referralLink("GlftEIflBot", 42))
}

func TestDealLink(t *testing.T) {
	assert.Equal(t,
		"https://t.me/GlftEIflBot?start=Ab3dEf9h",
		dealLink("GlftEIflBot", "Ab3dEf9h"))
}

func TestTonTransferURL(t *testing.T) {
	amount := decimal.RequireFromString("100.5")
	assert.Equal(t,
		"ton://transfer/UQabc123?amount=100.5&text=xK9mP2qR7s",
		tonTransferURL("UQabc123", amount, "xK9mP2qR7s"))
}

func TestPaymentAddress(t *testing.T) {
	b := &Bot{Cfg: &config.Config{
		CardPaymentAddress:   "2200 1234 5678 9012",
		WalletPaymentAddress: "UQabc123",
	}}

	assert.Equal(t, "UQabc123", b.paymentAddress(models.MethodWallet))
	assert.Equal(t, "2200 1234 5678 9012", b.paymentAddress(models.MethodCard))
	assert.Equal(t, "None", b.paymentAddress(models.MethodStars))
}
