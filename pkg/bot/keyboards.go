package bot

import (
	tele "gopkg.in/telebot.v3"

	"escrowbot/pkg/models"
)

func (b *Bot) mainMenuKeyboard(lang string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(menu.Data(text(lang, "btn_requisites"), "manage_requisites")),
		menu.Row(menu.Data(text(lang, "btn_create_deal"), "create_deal")),
		menu.Row(menu.Data(text(lang, "btn_referral"), "referral_link")),
		menu.Row(menu.Data(text(lang, "btn_language"), "change_language")),
		menu.Row(menu.URL(text(lang, "btn_support"), "https://t.me/"+b.Cfg.ManagerUsername)),
	)
	return menu
}

func backKeyboard(lang string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(menu.Data(text(lang, "btn_back"), "back_to_menu")))
	return menu
}

func requisitesKeyboard(lang string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(menu.Data(text(lang, "btn_add_wallet"), "add_wallet")),
		menu.Row(menu.Data(text(lang, "btn_add_card"), "add_card")),
		menu.Row(menu.Data(text(lang, "btn_back"), "back_to_menu")),
	)
	return menu
}

func paymentMethodKeyboard(lang string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(menu.Data(text(lang, "btn_pay_wallet"), "payment_wallet")),
		menu.Row(menu.Data(text(lang, "btn_pay_card"), "payment_card")),
		menu.Row(menu.Data(text(lang, "btn_pay_stars"), "payment_stars")),
		menu.Row(menu.Data(text(lang, "btn_back"), "back_to_menu")),
	)
	return menu
}

// amountKeyboard offers a currency override for every method except stars,
// which has no alternative unit.
func amountKeyboard(method models.PaymentMethod, lang string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	var rows []tele.Row
	if method != models.MethodStars {
		rows = append(rows, menu.Row(menu.Data(text(lang, "btn_change_currency"), "change_currency")))
	}
	rows = append(rows, menu.Row(menu.Data(text(lang, "btn_back"), "back_to_menu")))
	menu.Inline(rows...)
	return menu
}

func currencyKeyboard(lang string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(
			menu.Data("RUB 🇷🇺", "currency_RUB"),
			menu.Data("UAH 🇺🇦", "currency_UAH"),
			menu.Data("KZT 🇰🇿", "currency_KZT"),
			menu.Data("BYN 🇧🇾", "currency_BYN"),
		),
		menu.Row(
			menu.Data("UZS 🇺🇿", "currency_UZS"),
			menu.Data("KGS 🇰🇬", "currency_KGS"),
			menu.Data("AZN 🇦🇿", "currency_AZN"),
			menu.Data("USDT 💎", "currency_USDT"),
		),
		menu.Row(menu.Data(text(lang, "btn_back"), "back_to_menu")),
	)
	return menu
}

func languageKeyboard(lang string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(menu.Data("🇷🇺 Русский", "lang_ru"), menu.Data("🇬🇧 English", "lang_en")),
		menu.Row(menu.Data(text(lang, "btn_back"), "back_to_menu")),
	)
	return menu
}

func cancelDealKeyboard(dealID, lang string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(menu.Data(text(lang, "btn_cancel_deal"), "cancel_deal_"+dealID)))
	return menu
}

func cancelConfirmKeyboard(dealID, lang string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(menu.Data(text(lang, "btn_cancel_yes"), "confirm_cancel_"+dealID)),
		menu.Row(menu.Data(text(lang, "btn_cancel_no"), "back_to_deal_"+dealID)),
	)
	return menu
}

func exitConfirmKeyboard(dealID, lang string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(menu.Data(text(lang, "btn_exit_yes"), "confirm_exit_"+dealID)),
		menu.Row(menu.Data(text(lang, "btn_exit_no"), "back_to_deal_info_"+dealID)),
	)
	return menu
}

// buyerDealKeyboard renders the buyer's deal view actions. Wallet deals get
// a deep link into the wallet app with the memo prefilled.
func (b *Bot) buyerDealKeyboard(deal *models.Deal, lang string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	var rows []tele.Row
	if deal.PaymentMethod == models.MethodWallet {
		url := tonTransferURL(b.Cfg.WalletPaymentAddress, deal.Amount, deal.Memo)
		rows = append(rows, menu.Row(menu.URL(text(lang, "btn_open_tonkeeper"), url)))
	}
	rows = append(rows,
		menu.Row(menu.Data(text(lang, "btn_confirm_payment"), "confirm_payment_"+deal.DealID)),
		menu.Row(menu.Data(text(lang, "btn_exit_deal"), "exit_deal_"+deal.DealID)),
	)
	menu.Inline(rows...)
	return menu
}

func transferKeyboard(dealID, lang string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(menu.Data(text(lang, "btn_confirm_transfer"), "confirm_transfer_"+dealID)))
	return menu
}

func receiptKeyboard(dealID, lang string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(menu.Data(text(lang, "btn_confirm_receipt"), "confirm_receipt_"+dealID)))
	return menu
}
