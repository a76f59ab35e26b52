package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v3"

	"escrowbot/pkg/logger"
	"escrowbot/pkg/models"
	"escrowbot/storage"
)

// handleCallback dispatches every button press by its data prefix.
func (b *Bot) handleCallback(c tele.Context) error {
	if err := c.Respond(); err != nil {
		b.Log.Warning("failed to answer callback", logger.Error(err))
	}

	ctx := context.Background()
	userID := c.Sender().ID
	user, err := b.Svc.User().Register(ctx, userID)
	if err != nil {
		return err
	}
	lang := user.Lang()

	data := strings.TrimPrefix(c.Callback().Data, "\f")

	switch {
	case data == "manage_requisites":
		return b.editCallback(c, text(lang, "requisites"), requisitesKeyboard(lang))

	case data == "add_wallet":
		prompt := text(lang, "wallet_request")
		if user.WalletAddress != nil {
			prompt = fmt.Sprintf(text(lang, "wallet_current"), *user.WalletAddress)
		}
		b.Sessions.SetState(userID, StateWaitingWallet)
		b.Sessions.SetLastMessage(userID, c.Callback().Message)
		return b.editCallback(c, prompt, backKeyboard(lang))

	case data == "add_card":
		prompt := text(lang, "card_request")
		if user.CardDetails != nil {
			prompt = fmt.Sprintf(text(lang, "card_current"), *user.CardDetails)
		}
		b.Sessions.SetState(userID, StateWaitingCard)
		b.Sessions.SetLastMessage(userID, c.Callback().Message)
		return b.editCallback(c, prompt, backKeyboard(lang))

	case data == "create_deal":
		return b.editCallback(c, text(lang, "payment_method"), paymentMethodKeyboard(lang))

	case strings.HasPrefix(data, "payment_"):
		return b.handlePaymentMethod(c, user, models.PaymentMethod(strings.TrimPrefix(data, "payment_")), lang)

	case data == "change_currency":
		return b.editCallback(c, text(lang, "choose_currency"), currencyKeyboard(lang))

	case strings.HasPrefix(data, "currency_"):
		draft := b.Sessions.Draft(userID)
		if draft == nil {
			return nil
		}
		draft.Currency = strings.TrimPrefix(data, "currency_")
		b.Sessions.SetDraft(userID, draft)
		return b.editCallback(c,
			fmt.Sprintf(text(lang, "deal_amount"), draft.Currency),
			amountKeyboard(draft.Method, lang))

	case data == "referral_link":
		count, err := b.Svc.User().ReferralCount(ctx, userID)
		if err != nil {
			b.Log.Error("failed to count referrals", logger.Error(err))
		}
		return b.editCallback(c,
			fmt.Sprintf(text(lang, "referral"),
				referralLink(b.Cfg.BotUsername, userID), count, user.Earnings),
			backKeyboard(lang))

	case data == "change_language":
		return b.editCallback(c, text(lang, "choose_language"), languageKeyboard(lang))

	case strings.HasPrefix(data, "lang_"):
		newLang := strings.TrimPrefix(data, "lang_")
		if err := b.Svc.User().SetLanguage(ctx, userID, newLang); err != nil {
			return err
		}
		return b.editCallback(c, text(newLang, "welcome"), b.mainMenuKeyboard(newLang))

	case strings.HasPrefix(data, "confirm_cancel_"):
		dealID := strings.TrimPrefix(data, "confirm_cancel_")
		if err := b.Svc.Deal().Cancel(ctx, dealID); err != nil {
			if errors.Is(err, storage.ErrStatusConflict) {
				return b.editCallback(c, text(lang, "err_deal_unavailable"), backKeyboard(lang))
			}
			return err
		}
		return b.editCallback(c, text(lang, "welcome"), b.mainMenuKeyboard(lang))

	case strings.HasPrefix(data, "cancel_deal_"):
		dealID := strings.TrimPrefix(data, "cancel_deal_")
		return b.editCallback(c,
			fmt.Sprintf(text(lang, "cancel_confirm"), dealID),
			cancelConfirmKeyboard(dealID, lang))

	case strings.HasPrefix(data, "back_to_deal_info_"):
		dealID := strings.TrimPrefix(data, "back_to_deal_info_")
		deal, err := b.Svc.Deal().GetByID(ctx, dealID)
		if err != nil {
			return b.editCallback(c, text(lang, "err_deal_unavailable"), backKeyboard(lang))
		}
		view, kb := b.buyerDealView(ctx, deal, lang)
		return b.editCallback(c, view, kb)

	case strings.HasPrefix(data, "back_to_deal_"):
		dealID := strings.TrimPrefix(data, "back_to_deal_")
		deal, err := b.Svc.Deal().GetByID(ctx, dealID)
		if err != nil {
			return b.editCallback(c, text(lang, "err_deal_unavailable"), backKeyboard(lang))
		}
		return b.editCallback(c,
			fmt.Sprintf(text(lang, "deal_created"),
				deal.Amount.String(), deal.Currency, deal.Description,
				dealLink(b.Cfg.BotUsername, deal.DealID)),
			cancelDealKeyboard(deal.DealID, lang))

	case strings.HasPrefix(data, "confirm_payment_"):
		// Payment is verified by the operator outside the software; the
		// buyer-side button only reports that nothing was matched yet.
		return b.editCallback(c, text(lang, "payment_not_found"))

	case strings.HasPrefix(data, "confirm_exit_"):
		dealID := strings.TrimPrefix(data, "confirm_exit_")
		deal, err := b.Svc.Deal().Leave(ctx, dealID, userID)
		if err == nil {
			sellerLang := b.lang(ctx, deal.SellerID)
			b.notify(deal.SellerID, fmt.Sprintf(text(sellerLang, "seller_buyer_left"), deal.DealID))
		}
		return b.editCallback(c, text(lang, "welcome"), b.mainMenuKeyboard(lang))

	case strings.HasPrefix(data, "exit_deal_"):
		dealID := strings.TrimPrefix(data, "exit_deal_")
		return b.editCallback(c,
			fmt.Sprintf(text(lang, "exit_confirm"), dealID),
			exitConfirmKeyboard(dealID, lang))

	case strings.HasPrefix(data, "confirm_transfer_"):
		return b.handleConfirmTransfer(c, strings.TrimPrefix(data, "confirm_transfer_"), lang)

	case strings.HasPrefix(data, "confirm_receipt_"):
		return b.handleConfirmReceipt(c, strings.TrimPrefix(data, "confirm_receipt_"), lang)

	case data == "back_to_menu":
		b.Sessions.Clear(userID)
		return b.editCallback(c, text(lang, "welcome"), b.mainMenuKeyboard(lang))
	}

	return nil
}

// handlePaymentMethod starts the create-deal form. The matching requisite
// must already be on file, otherwise the flow halts with an inline error.
func (b *Bot) handlePaymentMethod(c tele.Context, user *models.User, method models.PaymentMethod, lang string) error {
	if method == models.MethodWallet && user.WalletAddress == nil {
		return b.editCallback(c, text(lang, "err_no_wallet"), backKeyboard(lang))
	}
	if method == models.MethodCard && user.CardDetails == nil {
		return b.editCallback(c, text(lang, "err_no_card"), backKeyboard(lang))
	}

	draft := &DealDraft{Method: method, Currency: method.DefaultCurrency()}
	b.Sessions.SetDraft(user.TelegramID, draft)
	b.Sessions.SetState(user.TelegramID, StateWaitingAmount)
	b.Sessions.SetLastMessage(user.TelegramID, c.Callback().Message)

	return b.editCallback(c,
		fmt.Sprintf(text(lang, "deal_amount"), draft.Currency),
		amountKeyboard(method, lang))
}

// handleConfirmTransfer is pressed by the seller once the goods have been
// handed to the manager. It schedules the durable delivery reminder.
func (b *Bot) handleConfirmTransfer(c tele.Context, dealID, lang string) error {
	ctx := context.Background()

	deal, err := b.Svc.Deal().ConfirmTransfer(ctx, dealID)
	if err != nil {
		if errors.Is(err, storage.ErrStatusConflict) || errors.Is(err, storage.ErrNotFound) {
			return b.editCallback(c, text(lang, "err_deal_unavailable"))
		}
		return err
	}

	if err := b.editCallback(c,
		fmt.Sprintf(text(lang, "seller_transfer_confirmed"), deal.DealID, b.Cfg.ManagerUsername)); err != nil {
		b.Log.Error("failed to render transfer confirmation", logger.Error(err))
	}

	if deal.BuyerID == nil {
		return nil
	}
	buyerLang := b.lang(ctx, *deal.BuyerID)
	b.notify(*deal.BuyerID,
		fmt.Sprintf(text(buyerLang, "buyer_verification"), deal.DealID, b.Cfg.ManagerUsername))

	if err := b.Notifier.Schedule(ctx, deal.DealID, *deal.BuyerID); err != nil {
		b.Log.Error("failed to schedule delivery reminder",
			logger.String("deal_id", deal.DealID), logger.Error(err))
	}
	return nil
}

// handleConfirmReceipt closes the deal once the buyer confirms delivery.
func (b *Bot) handleConfirmReceipt(c tele.Context, dealID, lang string) error {
	ctx := context.Background()

	deal, err := b.Svc.Deal().Complete(ctx, dealID)
	if err != nil {
		if errors.Is(err, storage.ErrStatusConflict) || errors.Is(err, storage.ErrNotFound) {
			return b.editCallback(c, text(lang, "err_deal_unavailable"))
		}
		return err
	}

	sellerLang := b.lang(ctx, deal.SellerID)
	b.notify(deal.SellerID, fmt.Sprintf(text(sellerLang, "seller_completed"), deal.DealID))

	return b.editCallback(c, fmt.Sprintf(text(lang, "buyer_completed"), deal.DealID))
}
