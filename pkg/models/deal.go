package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	MethodWallet PaymentMethod = "wallet"
	MethodCard   PaymentMethod = "card"
	MethodStars  PaymentMethod = "stars"
)

// DefaultCurrency returns the currency preselected for a payment method.
// It can be overridden from the currency menu for wallet and card deals.
func (m PaymentMethod) DefaultCurrency() string {
	switch m {
	case MethodCard:
		return "RUB"
	case MethodStars:
		return "Stars"
	default:
		return "USDT"
	}
}

type DealStatus string

const (
	StatusActive            DealStatus = "active"
	StatusPaymentConfirmed  DealStatus = "payment_confirmed"
	StatusTransferConfirmed DealStatus = "transfer_confirmed"
	StatusCompleted         DealStatus = "completed"
)

// statusFlow is the only legal order of status advances. A deal is
// deletable (cancel) only while StatusActive; no transition is reversible.
var statusFlow = map[DealStatus]DealStatus{
	StatusActive:            StatusPaymentConfirmed,
	StatusPaymentConfirmed:  StatusTransferConfirmed,
	StatusTransferConfirmed: StatusCompleted,
}

// CanAdvanceTo reports whether next is the immediate successor of s.
func (s DealStatus) CanAdvanceTo(next DealStatus) bool {
	return statusFlow[s] == next
}

type Deal struct {
	DealID        string          `json:"deal_id"`
	SellerID      int64           `json:"seller_id"`
	BuyerID       *int64          `json:"buyer_id"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Currency      string          `json:"currency"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Memo          string          `json:"memo"`
	Status        DealStatus      `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}
