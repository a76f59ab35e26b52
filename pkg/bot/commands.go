package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v3"

	"escrowbot/pkg/logger"
	"escrowbot/pkg/models"
	"escrowbot/service"
	"escrowbot/storage"
)

// handleStart serves three entry points: a referral link (ref_<id>), a deal
// join link (<dealId>), and the plain main menu.
func (b *Bot) handleStart(c tele.Context) error {
	ctx := context.Background()
	userID := c.Sender().ID

	user, err := b.Svc.User().Register(ctx, userID)
	if err != nil {
		return err
	}
	lang := user.Lang()

	payload := c.Message().Payload
	if payload != "" {
		if strings.HasPrefix(payload, "ref_") {
			referrerID, err := strconv.ParseInt(strings.TrimPrefix(payload, "ref_"), 10, 64)
			if err == nil {
				if _, err := b.Svc.User().RegisterReferral(ctx, referrerID, userID); err != nil {
					b.Log.Error("failed to register referral", logger.Error(err))
				}
			}
		} else {
			deal, err := b.Svc.Deal().Join(ctx, payload, userID)
			if err == nil {
				b.notifySellerOfBuyer(ctx, deal, c.Sender(), user.SuccessfulDeals)
				view, kb := b.buyerDealView(ctx, deal, lang)
				return c.Send(view, kb, tele.ModeHTML)
			}
			if !errors.Is(err, storage.ErrNotFound) {
				b.Log.Error("failed to join deal", logger.String("deal_id", payload), logger.Error(err))
			}
		}
	}

	return b.sendMainMenu(c, lang)
}

func (b *Bot) sendMainMenu(c tele.Context, lang string) error {
	return c.Send(text(lang, "welcome"), b.mainMenuKeyboard(lang), tele.ModeHTML)
}

func (b *Bot) notifySellerOfBuyer(ctx context.Context, deal *models.Deal, buyer *tele.User, buyerDeals int) {
	buyerName := fmt.Sprintf("ID %d", buyer.ID)
	if buyer.Username != "" {
		buyerName = "@" + buyer.Username
	}
	sellerLang := b.lang(ctx, deal.SellerID)
	b.notify(deal.SellerID,
		fmt.Sprintf(text(sellerLang, "seller_buyer_joined"), buyerName, deal.DealID, buyerDeals))
}

// buyerDealView renders the deal panel shown to an arriving buyer, with the
// payment address for the deal's method and the memo the payment must carry.
func (b *Bot) buyerDealView(ctx context.Context, deal *models.Deal, lang string) (string, *tele.ReplyMarkup) {
	sellerDeals := 0
	if seller, err := b.Svc.User().Get(ctx, deal.SellerID); err == nil && seller != nil {
		sellerDeals = seller.SuccessfulDeals
	}
	view := fmt.Sprintf(text(lang, "buyer_deal_info"),
		deal.DealID,
		deal.SellerID,
		sellerDeals,
		deal.Description,
		b.paymentAddress(deal.PaymentMethod),
		deal.Amount.String(),
		deal.Currency,
		deal.Memo,
		b.Cfg.ManagerUsername,
	)
	return view, b.buyerDealKeyboard(deal, lang)
}

func (b *Bot) handleOperatorHelp(c tele.Context) error {
	return c.Send(text("ru", "operator_help"), tele.ModeHTML)
}

// handleBuy is the operator command confirming that a payment tagged with
// the given memo has been visually verified.
func (b *Bot) handleBuy(c tele.Context) error {
	ctx := context.Background()

	args := c.Args()
	if len(args) < 1 {
		return c.Send(text("ru", "buy_usage"))
	}
	memo := args[0]

	deal, err := b.Svc.Deal().ConfirmPayment(ctx, memo)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Send(text("ru", "buy_not_found"))
		}
		return err
	}

	if err := c.Send(fmt.Sprintf(text("ru", "operator_payment_confirmed"),
		deal.DealID, deal.SellerID, deal.Amount.String(), deal.Currency,
		deal.Description, b.Cfg.ManagerUsername), tele.ModeHTML); err != nil {
		b.Log.Error("failed to send operator confirmation", logger.Error(err))
	}

	sellerLang := b.lang(ctx, deal.SellerID)
	b.notify(deal.SellerID,
		fmt.Sprintf(text(sellerLang, "seller_payment_confirmed"),
			deal.DealID, deal.Amount.String(), deal.Currency, deal.Description,
			b.Cfg.ManagerUsername, b.Cfg.ManagerUsername),
		transferKeyboard(deal.DealID, sellerLang))
	b.notify(deal.SellerID,
		fmt.Sprintf(text(sellerLang, "seller_warning"), b.Cfg.ManagerUsername))

	return nil
}

// handleSetMyDeals is the operator self-report of the successful-deals
// counter shown in buyer-arrival notifications.
func (b *Bot) handleSetMyDeals(c tele.Context) error {
	ctx := context.Background()

	args := c.Args()
	if len(args) < 1 {
		return c.Send(text("ru", "set_deals_usage"))
	}
	count, err := strconv.Atoi(args[0])
	if err != nil {
		return c.Send(text("ru", "set_deals_format"))
	}

	if _, err := b.Svc.User().Register(ctx, c.Sender().ID); err != nil {
		return err
	}
	if err := b.Svc.User().SetSuccessfulDeals(ctx, c.Sender().ID, count); err != nil {
		if errors.Is(err, service.ErrNegativeCount) {
			return c.Send(text("ru", "set_deals_negative"))
		}
		return err
	}
	return c.Send(fmt.Sprintf(text("ru", "set_deals_ok"), count))
}
