package bot

import (
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"escrowbot/pkg/models"
)

func referralLink(botUsername string, userID int64) string {
	return fmt.Sprintf("https://t.me/%s?start=ref_%d", botUsername, userID)
}

func dealLink(botUsername, dealID string) string {
	return fmt.Sprintf("https://t.me/%s?start=%s", botUsername, dealID)
}

// tonTransferURL builds the wallet-app deep link for wallet-method deals.
// The memo rides in the text parameter so the payment can be matched.
func tonTransferURL(address string, amount decimal.Decimal, memo string) string {
	return fmt.Sprintf("ton://transfer/%s?amount=%s&text=%s",
		address, amount.String(), url.QueryEscape(memo))
}

// paymentAddress picks the address the buyer pays to for a given method.
func (b *Bot) paymentAddress(method models.PaymentMethod) string {
	switch method {
	case models.MethodCard:
		return b.Cfg.CardPaymentAddress
	case models.MethodStars:
		return "None"
	default:
		return b.Cfg.WalletPaymentAddress
	}
}
