package storage

import (
	"context"
	"errors"
	"time"

	"escrowbot/pkg/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound is returned on exact-match lookups that hit no row.
	ErrNotFound = errors.New("not found")

	// ErrStatusConflict is returned when a guarded status change finds the
	// deal in a different status than the caller expected.
	ErrStatusConflict = errors.New("deal status conflict")

	// ErrTokenCollision is returned when a freshly generated deal id or memo
	// already exists; the caller regenerates and retries.
	ErrTokenCollision = errors.New("token collision")
)

type IStorage interface {
	User() IUserStorage
	Referral() IReferralStorage
	Deal() IDealStorage
	Reminder() IReminderStorage
	Close()
	GetPool() *pgxpool.Pool
}

type IUserStorage interface {
	GetOrCreate(ctx context.Context, teleID int64) (*models.User, error)
	Get(ctx context.Context, teleID int64) (*models.User, error)
	UpdateLanguage(ctx context.Context, teleID int64, lang string) error
	UpdateWallet(ctx context.Context, teleID int64, address string) error
	UpdateCard(ctx context.Context, teleID int64, details string) error
	SetReferrer(ctx context.Context, teleID, referrerID int64) (bool, error)
	SetSuccessfulDeals(ctx context.Context, teleID int64, count int) error
}

type IReferralStorage interface {
	Add(ctx context.Context, referrerID, referredID int64) error
	CountByReferrer(ctx context.Context, referrerID int64) (int, error)
}

type IDealStorage interface {
	Create(ctx context.Context, deal *models.Deal) error
	GetByID(ctx context.Context, dealID string) (*models.Deal, error)
	AdvanceStatus(ctx context.Context, dealID string, from, to models.DealStatus) error
	ConfirmPaymentByMemo(ctx context.Context, memo string) (*models.Deal, error)
	SetBuyer(ctx context.Context, dealID string, buyerID int64) error
	ClearBuyer(ctx context.Context, dealID string) error
	DeleteActive(ctx context.Context, dealID string) error
}

type IReminderStorage interface {
	Create(ctx context.Context, dealID string, buyerID int64, dueAt time.Time) (*models.Reminder, error)
	GetPending(ctx context.Context) ([]*models.Reminder, error)
	MarkSent(ctx context.Context, id int64) error
}
