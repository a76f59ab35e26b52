package models

import "time"

// Reminder is a durable record of a deferred delivery notification.
// Rows survive restarts; pending ones are re-scheduled at startup.
type Reminder struct {
	ID      int64     `json:"id"`
	DealID  string    `json:"deal_id"`
	BuyerID int64     `json:"buyer_id"`
	DueAt   time.Time `json:"due_at"`
	Sent    bool      `json:"sent"`
}
