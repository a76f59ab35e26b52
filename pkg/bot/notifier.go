package bot

import (
	"context"
	"errors"
	"time"

	tele "gopkg.in/telebot.v3"

	"escrowbot/config"
	"escrowbot/pkg/logger"
	"escrowbot/pkg/models"
	"escrowbot/storage"
)

// Notifier delivers the deferred "manager handed over the goods" prompt to
// the buyer. Every reminder is persisted before it is scheduled, so pending
// ones survive a restart and are re-armed by Recover.
type Notifier struct {
	bot   *tele.Bot
	stg   storage.IStorage
	log   logger.ILogger
	cfg   *config.Config
	delay time.Duration
}

func NewNotifier(bot *tele.Bot, stg storage.IStorage, log logger.ILogger, cfg *config.Config, delay time.Duration) *Notifier {
	return &Notifier{
		bot:   bot,
		stg:   stg,
		log:   log,
		cfg:   cfg,
		delay: delay,
	}
}

func (n *Notifier) Schedule(ctx context.Context, dealID string, buyerID int64) error {
	rem, err := n.stg.Reminder().Create(ctx, dealID, buyerID, time.Now().Add(n.delay))
	if err != nil {
		return err
	}
	n.arm(rem)
	return nil
}

// Recover re-arms every unsent reminder; overdue ones fire immediately.
func (n *Notifier) Recover(ctx context.Context) error {
	pending, err := n.stg.Reminder().GetPending(ctx)
	if err != nil {
		return err
	}
	for _, rem := range pending {
		n.arm(rem)
	}
	if len(pending) > 0 {
		n.log.Info("re-armed pending delivery reminders", logger.Int("count", len(pending)))
	}
	return nil
}

func (n *Notifier) arm(rem *models.Reminder) {
	wait := time.Until(rem.DueAt)
	if wait < 0 {
		wait = 0
	}
	time.AfterFunc(wait, func() { n.fire(rem) })
}

// fire re-reads the deal and prompts the buyer only if the transfer is
// still awaiting receipt confirmation; any later status drops the reminder.
func (n *Notifier) fire(rem *models.Reminder) {
	ctx := context.Background()

	deal, err := n.stg.Deal().GetByID(ctx, rem.DealID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		n.log.Error("failed to load deal for reminder",
			logger.String("deal_id", rem.DealID), logger.Error(err))
		return
	}
	if deal != nil && deal.Status == models.StatusTransferConfirmed {
		lang := "ru"
		if buyer, err := n.stg.User().Get(ctx, rem.BuyerID); err == nil && buyer != nil {
			lang = buyer.Lang()
		}
		_, err := n.bot.Send(&tele.User{ID: rem.BuyerID},
			text(lang, "delivery_reminder"),
			receiptKeyboard(rem.DealID, lang), tele.ModeHTML)
		if err != nil {
			n.log.Error("failed to send delivery reminder",
				logger.Int64("buyer_id", rem.BuyerID), logger.Error(err))
		}
	}

	if err := n.stg.Reminder().MarkSent(ctx, rem.ID); err != nil {
		n.log.Error("failed to mark reminder sent", logger.Int64("id", rem.ID), logger.Error(err))
	}
}
