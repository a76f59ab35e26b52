package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"escrowbot/pkg/logger"
	"escrowbot/pkg/models"
	"escrowbot/storage"
)

type userRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewUserRepo(db *pgxpool.Pool, log logger.ILogger) storage.IUserStorage {
	return &userRepo{db: db, log: log}
}

const userColumns = `telegram_id, language, wallet_address, card_details, earnings::text, referrer_id, successful_deals, created_at, updated_at`

func (r *userRepo) GetOrCreate(ctx context.Context, teleID int64) (*models.User, error) {
	var user models.User
	query := `
		INSERT INTO users (telegram_id)
		VALUES ($1)
		ON CONFLICT (telegram_id) DO UPDATE
		SET updated_at = NOW()
		RETURNING ` + userColumns
	err := r.db.QueryRow(ctx, query, teleID).Scan(
		&user.TelegramID, &user.Language, &user.WalletAddress, &user.CardDetails,
		&user.Earnings, &user.ReferrerID, &user.SuccessfulDeals, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		r.log.Error("failed to get or create user", logger.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Get(ctx context.Context, teleID int64) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE telegram_id = $1`
	err := r.db.QueryRow(ctx, query, teleID).Scan(
		&user.TelegramID, &user.Language, &user.WalletAddress, &user.CardDetails,
		&user.Earnings, &user.ReferrerID, &user.SuccessfulDeals, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.log.Error("failed to get user", logger.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) UpdateLanguage(ctx context.Context, teleID int64, lang string) error {
	_, err := r.db.Exec(ctx, "UPDATE users SET language=$1, updated_at=NOW() WHERE telegram_id=$2", lang, teleID)
	return err
}

func (r *userRepo) UpdateWallet(ctx context.Context, teleID int64, address string) error {
	_, err := r.db.Exec(ctx, "UPDATE users SET wallet_address=$1, updated_at=NOW() WHERE telegram_id=$2", address, teleID)
	return err
}

func (r *userRepo) UpdateCard(ctx context.Context, teleID int64, details string) error {
	_, err := r.db.Exec(ctx, "UPDATE users SET card_details=$1, updated_at=NOW() WHERE telegram_id=$2", details, teleID)
	return err
}

// SetReferrer assigns a referrer only when none is recorded yet. The guard
// lives in the statement so the referrer can never be overwritten.
func (r *userRepo) SetReferrer(ctx context.Context, teleID, referrerID int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		"UPDATE users SET referrer_id=$1, updated_at=NOW() WHERE telegram_id=$2 AND referrer_id IS NULL",
		referrerID, teleID)
	if err != nil {
		r.log.Error("failed to set referrer", logger.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *userRepo) SetSuccessfulDeals(ctx context.Context, teleID int64, count int) error {
	_, err := r.db.Exec(ctx, "UPDATE users SET successful_deals=$1, updated_at=NOW() WHERE telegram_id=$2", count, teleID)
	return err
}
