package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"escrowbot/pkg/logger"
	"escrowbot/pkg/models"
	"escrowbot/storage"
)

type reminderRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewReminderRepo(db *pgxpool.Pool, log logger.ILogger) storage.IReminderStorage {
	return &reminderRepo{db: db, log: log}
}

func (r *reminderRepo) Create(ctx context.Context, dealID string, buyerID int64, dueAt time.Time) (*models.Reminder, error) {
	rem := &models.Reminder{DealID: dealID, BuyerID: buyerID, DueAt: dueAt}
	err := r.db.QueryRow(ctx,
		"INSERT INTO reminders (deal_id, buyer_id, due_at) VALUES ($1, $2, $3) RETURNING id",
		dealID, buyerID, dueAt).Scan(&rem.ID)
	if err != nil {
		r.log.Error("failed to create reminder", logger.Error(err))
		return nil, err
	}
	return rem, nil
}

func (r *reminderRepo) GetPending(ctx context.Context) ([]*models.Reminder, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, deal_id, buyer_id, due_at, sent FROM reminders WHERE sent = FALSE ORDER BY due_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []*models.Reminder
	for rows.Next() {
		var rem models.Reminder
		if err := rows.Scan(&rem.ID, &rem.DealID, &rem.BuyerID, &rem.DueAt, &rem.Sent); err != nil {
			return nil, err
		}
		reminders = append(reminders, &rem)
	}
	return reminders, rows.Err()
}

func (r *reminderRepo) MarkSent(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "UPDATE reminders SET sent = TRUE WHERE id = $1", id)
	return err
}
