package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	tele "gopkg.in/telebot.v3"

	"escrowbot/pkg/logger"
)

func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// handleText routes free-text input by the sender's current waiting-state.
// Messages outside any form step are ignored.
func (b *Bot) handleText(c tele.Context) error {
	ctx := context.Background()
	userID := c.Sender().ID
	lang := b.lang(ctx, userID)

	switch b.Sessions.State(userID) {
	case StateWaitingWallet:
		address := strings.TrimSpace(c.Text())
		if err := b.Svc.User().SetWallet(ctx, userID, address); err != nil {
			return err
		}
		return b.editOrSend(c, fmt.Sprintf(text(lang, "wallet_current"), address), backKeyboard(lang))

	case StateWaitingCard:
		details := strings.TrimSpace(c.Text())
		if err := b.Svc.User().SetCard(ctx, userID, details); err != nil {
			return err
		}
		return b.editOrSend(c, fmt.Sprintf(text(lang, "card_current"), details), backKeyboard(lang))

	case StateWaitingAmount:
		draft := b.Sessions.Draft(userID)
		if draft == nil {
			return nil
		}
		amount, err := parseAmount(c.Text())
		if err != nil {
			return c.Send(text(lang, "err_amount_format"))
		}
		draft.Amount = amount
		b.Sessions.SetDraft(userID, draft)
		b.Sessions.SetState(userID, StateWaitingDescription)
		return c.Send(
			fmt.Sprintf(text(lang, "deal_description"), amount.String(), draft.Currency),
			tele.ModeHTML)

	case StateWaitingDescription:
		draft := b.Sessions.Draft(userID)
		if draft == nil {
			return nil
		}
		description := strings.TrimSpace(c.Text())
		deal, err := b.Svc.Deal().Create(ctx, userID, draft.Method, draft.Currency, draft.Amount, description)
		if err != nil {
			b.Log.Error("failed to create deal", logger.Error(err))
			return err
		}
		b.Sessions.Clear(userID)
		return c.Send(
			fmt.Sprintf(text(lang, "deal_created"),
				deal.Amount.String(), deal.Currency, deal.Description,
				dealLink(b.Cfg.BotUsername, deal.DealID)),
			cancelDealKeyboard(deal.DealID, lang), tele.ModeHTML)
	}

	return nil
}
