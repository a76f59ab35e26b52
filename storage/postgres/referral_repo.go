package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"escrowbot/pkg/logger"
	"escrowbot/storage"
)

type referralRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewReferralRepo(db *pgxpool.Pool, log logger.ILogger) storage.IReferralStorage {
	return &referralRepo{db: db, log: log}
}

func (r *referralRepo) Add(ctx context.Context, referrerID, referredID int64) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO referrals (referrer_id, referred_id) VALUES ($1, $2)",
		referrerID, referredID)
	if err != nil {
		r.log.Error("failed to add referral", logger.Error(err))
	}
	return err
}

func (r *referralRepo) CountByReferrer(ctx context.Context, referrerID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT count(*) FROM referrals WHERE referrer_id=$1", referrerID).Scan(&count)
	return count, err
}
