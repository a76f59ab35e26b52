package models

import "time"

type User struct {
	TelegramID      int64     `json:"telegram_id"`
	Language        string    `json:"language"`
	WalletAddress   *string   `json:"wallet_address"`
	CardDetails     *string   `json:"card_details"`
	Earnings        string    `json:"earnings"`
	ReferrerID      *int64    `json:"referrer_id"`
	SuccessfulDeals int       `json:"successful_deals"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Lang returns the stored language preference, defaulting to Russian.
func (u *User) Lang() string {
	if u != nil && u.Language == "en" {
		return "en"
	}
	return "ru"
}
