package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"escrowbot/pkg/logger"
	"escrowbot/pkg/models"
	"escrowbot/storage"
)

type dealRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewDealRepo(db *pgxpool.Pool, log logger.ILogger) storage.IDealStorage {
	return &dealRepo{db: db, log: log}
}

const dealColumns = `deal_id, seller_id, buyer_id, payment_method, currency, amount::text, description, memo, status, created_at`

func (r *dealRepo) scanDeal(row pgx.Row) (*models.Deal, error) {
	var d models.Deal
	var amount string
	err := row.Scan(
		&d.DealID, &d.SellerID, &d.BuyerID, &d.PaymentMethod, &d.Currency,
		&amount, &d.Description, &d.Memo, &d.Status, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	d.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *dealRepo) Create(ctx context.Context, deal *models.Deal) error {
	query := `
		INSERT INTO deals (deal_id, seller_id, payment_method, currency, amount, description, memo, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		deal.DealID,
		deal.SellerID,
		deal.PaymentMethod,
		deal.Currency,
		deal.Amount.String(),
		deal.Description,
		deal.Memo,
		deal.Status,
	).Scan(&deal.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return storage.ErrTokenCollision
		}
		r.log.Error("failed to create deal", logger.Error(err))
		return err
	}
	return nil
}

func (r *dealRepo) GetByID(ctx context.Context, dealID string) (*models.Deal, error) {
	deal, err := r.scanDeal(r.db.QueryRow(ctx, `SELECT `+dealColumns+` FROM deals WHERE deal_id = $1`, dealID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		r.log.Error("failed to get deal by id", logger.String("deal_id", dealID), logger.Error(err))
		return nil, err
	}
	return deal, nil
}

// AdvanceStatus performs a guarded overwrite: the row must still be in the
// status the caller observed, otherwise ErrStatusConflict is returned.
func (r *dealRepo) AdvanceStatus(ctx context.Context, dealID string, from, to models.DealStatus) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE deals SET status=$1 WHERE deal_id=$2 AND status=$3",
		to, dealID, from)
	if err != nil {
		r.log.Error("failed to advance deal status", logger.String("deal_id", dealID), logger.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrStatusConflict
	}
	return nil
}

// ConfirmPaymentByMemo finds the active deal for a memo and marks its payment
// confirmed in a single statement, so the lookup and the flip cannot race.
func (r *dealRepo) ConfirmPaymentByMemo(ctx context.Context, memo string) (*models.Deal, error) {
	query := `
		UPDATE deals SET status = 'payment_confirmed'
		WHERE memo = $1 AND status = 'active'
		RETURNING ` + dealColumns
	deal, err := r.scanDeal(r.db.QueryRow(ctx, query, memo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		r.log.Error("failed to confirm payment by memo", logger.Error(err))
		return nil, err
	}
	return deal, nil
}

func (r *dealRepo) SetBuyer(ctx context.Context, dealID string, buyerID int64) error {
	_, err := r.db.Exec(ctx, "UPDATE deals SET buyer_id=$1 WHERE deal_id=$2", buyerID, dealID)
	return err
}

func (r *dealRepo) ClearBuyer(ctx context.Context, dealID string) error {
	_, err := r.db.Exec(ctx, "UPDATE deals SET buyer_id=NULL WHERE deal_id=$1", dealID)
	return err
}

// DeleteActive cancels a deal, guarded so a deal that has already advanced
// past 'active' cannot be removed.
func (r *dealRepo) DeleteActive(ctx context.Context, dealID string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM deals WHERE deal_id=$1 AND status='active'", dealID)
	if err != nil {
		r.log.Error("failed to delete deal", logger.String("deal_id", dealID), logger.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrStatusConflict
	}
	return nil
}
