package bot

// messages holds every outbound template keyed by locale. Operator-facing
// texts exist only in Russian; text() falls back to "ru" for missing keys.
var messages = map[string]map[string]string{
	"ru": {
		"welcome": "<b>Добро пожаловать в ELF OTC – надежный P2P-гарант</b>\n\n" +
			"<b>💼 Покупайте и продавайте всё, что угодно – безопасно!</b>\n" +
			"От Telegram-подарков и NFT до токенов и фиата – сделки проходят легко и без риска.\n\n" +
			"🔹 Удобное управление кошельками\n" +
			"🔹 Реферальная система\n" +
			"🔹 Безопасные сделки с гарантией\n\n" +
			"Выберите нужный раздел ниже:",
		"requisites": "<b>📩 Управление реквизитами</b>\n\n" +
			"<i>Используйте кнопки ниже чтобы добавить/изменить реквизиты👇</i>",
		"wallet_request": "<b>🔑 Добавьте ваш кошелек</b>:\n\n" +
			"Пожалуйста, отправьте адрес вашего кошелька",
		"wallet_current": "<b>🔑 Ваш текущий TON-кошелек: %s</b>\n\n" +
			"Отправьте новый адрес кошелька для изменения или нажмите кнопку ниже для возврата в меню.",
		"card_request": "<b>💳 Добавьте ваши реквизиты</b>:\n\n" +
			"Пожалуйста, отправьте реквизиты в таком формате:\n" +
			"<code>ЕвроБанк - 1234567891012345</code>",
		"card_current": "<b>💳 Ваши текущие реквизиты карты: %s</b>\n\n" +
			"Отправьте новые реквизиты для изменения или нажмите кнопку ниже для возврата в меню.",
		"payment_method":    "<b>💰 Выберите метод получения оплаты</b>:",
		"err_no_wallet":     "<b>❌ Сначала добавьте ваш кошелек перед созданием сделки.</b>",
		"err_no_card":       "<b>❌ Сначала добавьте ваш номер карты перед созданием сделки.</b>",
		"deal_amount":       "<b>💼 Создание сделки</b>\n\nВведите сумму %s сделки в формате: <code>100.5</code>",
		"err_amount_format": "❌ Неверный формат суммы. Используйте формат: 100.5",
		"choose_currency":   "💱 Выберите валюту:",
		"deal_description": "📝 Укажите, что вы предлагаете в этой сделке за %s %s:\n\n" +
			"Пример: <code>10 Кепок и Пепе...</code>",
		"deal_created": "✅ Сделка успешно создана!\n\n" +
			"💰 Сумма: %s %s\n" +
			"📜 Описание: %s\n" +
			"🔗 Ссылка для покупателя: %s",
		"referral": "🔗 Ваша реферальная ссылка:\n%s\n\n" +
			"👥 Количество рефералов: %d\n" +
			"💰 Заработано с рефералов: %s TON\n\n" +
			"40%% от комиссии бота",
		"choose_language":      "🌐 Выберите язык:",
		"cancel_confirm":       "<b>❌ Вы уверены, что хотите отменить сделку #%s</b>?\n\nЭто действие нельзя будет отменить.",
		"exit_confirm":         "<b>❓ Вы уверены, что хотите покинуть сделку #%s</b>?\n\nЭто действие уведомит продавца, и сделка будет возвращена в исходное состояние.",
		"payment_not_found":    "Оплата не найдена.",
		"err_deal_unavailable": "❌ Сделка не найдена или уже в работе.",
		"buyer_deal_info": "<b>💳 Информация о сделке #%s\n" +
			"👤 Вы покупатель в сделке.</b>\n\n" +
			"📌 Продавец: ID: %d\n" +
			"• Успешные сделки: %d\n" +
			"• Вы покупаете: %s\n\n" +
			"🏦 Адрес для оплаты:\n%s\n\n" +
			"💰 Сумма к оплате: %s %s\n" +
			"📝 Комментарий к платежу (мемо): %s\n\n" +
			"<b>⚠️ Пожалуйста, убедитесь в правильности данных перед оплатой. Комментарий (мемо) обязателен!</b>\n\n" +
			"В случае если вы отправили транзакцию без комментария заполните форму — @%s",
		"seller_buyer_joined": "<b>Пользователь %s\n" +
			"Присоединился к сделке #%s</b>\n\n" +
			"<b>· Успешные сделки</b>: %d\n\n" +
			"<b>⚠️ Проверьте соответствие пользователя</b>",
		"seller_buyer_left": "<b>Покупатель покинул сделку #%s.</b>\n\nСделка снова доступна по ссылке для покупателя.",

		"operator_help": "<b>Добро пожаловать!</b>\n\n" +
			"Вам доступны следующие административные команды:\n\n" +
			"🔹 <code>/buy &lt;Код сделки (мемо который указан в каждой сделке)&gt;</code> - Взять сделку на себя и подтвердить оплату.\n\n" +
			"🔹 <code>/set_my_deals &lt;число&gt;</code> - Установить себе количество успешных сделок.\n\n" +
			"<i>Пример: /set_my_deals 100</i>",
		"buy_usage":     "❌ Укажите код сделки (мемо).\nПример: /buy ABC123DEF0",
		"buy_not_found": "❌ Сделка с таким мемо не найдена или уже завершена.",
		"operator_payment_confirmed": "<b>💳 Оплата подтверждена!</b>\n\n" +
			"<b>▸ Сделка</b>: #%s\n" +
			"<b>▸ Продавец</b>: ID %d\n" +
			"<b>▸ Сумма</b>: <code>%s %s</code>\n" +
			"<b>▸ Описание</b>: %s\n\n" +
			"<b>Ожидайте, продавец отправит подарок менеджеру @%s для проверки.</b>\n\n" +
			"⏳ Ожидайте уведомления о передаче подарка.",
		"seller_payment_confirmed": "<b>✅ Оплата подтверждена для сделки #%s</b>.\n\n" +
			"<b>Сумма</b>: <code>%s %s</code>\n" +
			"<b>Описание</b>: <code>%s</code>\n\n" +
			"<b>❗️ Пожалуйста, передайте NFT-подарок</b>:\n" +
			"Только менеджеру бота для обработки:\n" +
			"<b>@%s</b>\n\n" +
			"<b>⚠️ Обратите внимание</b>:\n" +
			"➤ Подарок <b>необходимо передать именно менеджеру @%s</b>, а не покупателю напрямую.\n" +
			"➤ Это стандартный процесс для автоматического завершения сделки через бота.\n\n" +
			"<b>После отправки менеджеру</b>:\n" +
			"Подтвердите действие кнопкой ниже:",
		"seller_warning": "<b>🛡 Критически важное правило</b>:\n\n" +
			"Подарок должен быть передан исключительно менеджеру\n" +
			"👉 <b>@%s</b>\n\n" +
			"🚫 <b>Если вам предлагают нарушить процедуру</b>:\n" +
			"• <i>\"Передайте напрямую покупателю/другому лицу\"</i> →\n" +
			"• Это <b>мошенническая схема</b>!\n\n" +
			"• Любая передача мимо менеджера:\n" +
			"- <b>Автоматически отменяет сделку</b>\n" +
			"- <b>Лишает гарантий возврата средств</b>",
		"seller_transfer_confirmed": "✅ Вы подтвердили отправку подарка.\n\n" +
			"▸ <b>Сделка</b>: #%s\n\n" +
			"<b>Следующие шаги</b>:\n" +
			"1. Менеджер @%s проверит получение подарка.\n" +
			"2. После проверки вам придет уведомление.\n\n" +
			"⌛️ Обычно это занимает несколько минут.\n\n" +
			"Бот уведомит вас о результате!",
		"buyer_verification": "⏳ <b>Статус сделки #%s</b>\n\n" +
			"✅ Продавец подтвердил отправку подарка\n" +
			"🔎 Менеджер @%s проверяет наличие NFT\n\n" +
			"📭 <b>Ожидайте доставки!</b>\n\n" +
			"Бот уведомит вас, как только подарок будет готов.",
		"delivery_reminder": "<b>✅ Менеджер подтвердил передачу подарка</b>\n\n" +
			"<b>💎 Подарок был передан на ваш аккаунт</b>.\n\n" +
			"💳 Подтвердите получение подарка кнопкой ниже.",
		"seller_completed":  "✅ Сделка <b>#%s</b> успешно завершена!\n\nПокупатель подтвердил получение подарка.",
		"buyer_completed":   "✅ Вы подтвердили получение подарка для сделки <b>#%s</b>.\n\nСделка успешно завершена!",
		"set_deals_usage":   "❌ Укажите количество сделок.\nПример: /set_my_deals 100",
		"set_deals_negative": "❌ Количество сделок не может быть отрицательным.",
		"set_deals_format":  "❌ Неверный формат числа.\nПример: /set_my_deals 100",
		"set_deals_ok":      "✅ Количество ваших успешных сделок установлено: %d",

		"btn_requisites":       "📩 Управление реквизитами",
		"btn_create_deal":      "📝 Создать сделку",
		"btn_referral":         "🔗 Реферальная ссылка",
		"btn_language":         "🌐 Change language",
		"btn_support":          "📞 Поддержка",
		"btn_add_wallet":       "🪙 Добавить/изменить кошелёк",
		"btn_add_card":         "💳 Добавить/изменить карту",
		"btn_back":             "🔙 Вернуться в меню",
		"btn_pay_wallet":       "💎 На кошелек",
		"btn_pay_card":         "💳 На карту",
		"btn_pay_stars":        "⭐️ Звезды",
		"btn_change_currency":  "💱 Изменить валюту",
		"btn_cancel_deal":      "❌ Отменить сделку",
		"btn_cancel_yes":       "✅ Да, отменить",
		"btn_cancel_no":        "🔙 Нет",
		"btn_open_tonkeeper":   "Открыть в Tonkeeper",
		"btn_confirm_payment":  "✅ Подтвердить оплату",
		"btn_exit_deal":        "❌ Выйти из сделки",
		"btn_exit_yes":         "✅ Да, покинуть",
		"btn_exit_no":          "🔙 Нет",
		"btn_confirm_transfer": "✅ Подтвердить передачу",
		"btn_confirm_receipt":  "✅ Подтвердить получение",
	},
	"en": {
		"welcome": "<b>Welcome to ELF OTC – Reliable P2P Guarantor</b>\n\n" +
			"<b>💼 Buy and sell anything – safely!</b>\n" +
			"From Telegram gifts and NFTs to tokens and fiat – transactions are easy and risk-free.\n\n" +
			"🔹 Convenient wallet management\n" +
			"🔹 Referral system\n" +
			"🔹 Secure deals with guarantee\n\n" +
			"Choose the desired section below:",
		"requisites": "<b>📩 Manage requisites</b>\n\n" +
			"<i>Use the buttons below to add/change requisites👇</i>",
		"wallet_request": "<b>🔑 Add your wallet</b>:\n\n" +
			"Please send your wallet address",
		"wallet_current": "<b>🔑 Your current TON wallet: %s</b>\n\n" +
			"Send a new wallet address to change it or press the button below to return to the menu.",
		"card_request": "<b>💳 Add your requisites</b>:\n\n" +
			"Please send requisites in this format:\n" +
			"<code>EuroBank - 1234567891012345</code>",
		"card_current": "<b>💳 Your current card details: %s</b>\n\n" +
			"Send new card details to change them or press the button below to return to the menu.",
		"payment_method":    "<b>💰 Choose payment method</b>:",
		"err_no_wallet":     "<b>❌ Add your wallet before creating a deal.</b>",
		"err_no_card":       "<b>❌ Add your card before creating a deal.</b>",
		"deal_amount":       "<b>💼 Creating deal</b>\n\nEnter the %s deal amount in format: <code>100.5</code>",
		"err_amount_format": "❌ Invalid amount format. Use format: 100.5",
		"choose_currency":   "💱 Choose currency:",
		"deal_description": "📝 Specify what you offer in this deal for %s %s:\n\n" +
			"Example: <code>10 Caps and Pepe...</code>",
		"deal_created": "✅ Deal successfully created!\n\n" +
			"💰 Amount: %s %s\n" +
			"📜 Description: %s\n" +
			"🔗 Link for buyer: %s",
		"referral": "🔗 Your referral link:\n%s\n\n" +
			"👥 Number of referrals: %d\n" +
			"💰 Earned from referrals: %s TON\n\n" +
			"40%% of bot's commission",
		"choose_language":      "🌐 Choose language:",
		"cancel_confirm":       "<b>❌ Are you sure you want to cancel deal #%s</b>?\n\nThis action cannot be undone.",
		"exit_confirm":         "<b>❓ Are you sure you want to leave deal #%s</b>?\n\nThis action will notify the seller and the deal will be returned to its original state.",
		"payment_not_found":    "Payment not found.",
		"err_deal_unavailable": "❌ Deal not found or already in progress.",
		"buyer_deal_info": "<b>💳 Deal information #%s\n" +
			"👤 You are the buyer in this deal.</b>\n\n" +
			"📌 Seller: ID: %d\n" +
			"• Successful deals: %d\n" +
			"• You are buying: %s\n\n" +
			"🏦 Payment address:\n%s\n\n" +
			"💰 Amount to pay: %s %s\n" +
			"📝 Payment comment (memo): %s\n\n" +
			"<b>⚠️ Please make sure the data is correct before payment. Comment (memo) is required!</b>\n\n" +
			"If you sent a transaction without a comment, fill out the form — @%s",
		"seller_buyer_joined": "<b>User %s\n" +
			"Joined deal #%s</b>\n\n" +
			"<b>· Successful deals</b>: %d\n\n" +
			"<b>⚠️ Verify the user carefully</b>",
		"seller_buyer_left": "<b>The buyer left deal #%s.</b>\n\nThe deal is available via the buyer link again.",

		"btn_requisites":       "📩 Manage requisites",
		"btn_create_deal":      "📝 Create a deal",
		"btn_referral":         "🔗 Referral link",
		"btn_language":         "🌐 Change language",
		"btn_support":          "📞 Support",
		"btn_add_wallet":       "🪙 Add/change wallet",
		"btn_add_card":         "💳 Add/change card",
		"btn_back":             "🔙 Back to menu",
		"btn_pay_wallet":       "💎 To wallet",
		"btn_pay_card":         "💳 To card",
		"btn_pay_stars":        "⭐️ Stars",
		"btn_change_currency":  "💱 Change currency",
		"btn_cancel_deal":      "❌ Cancel deal",
		"btn_cancel_yes":       "✅ Yes, cancel",
		"btn_cancel_no":        "🔙 No",
		"btn_open_tonkeeper":   "Open in Tonkeeper",
		"btn_confirm_payment":  "✅ Confirm payment",
		"btn_exit_deal":        "❌ Exit deal",
		"btn_exit_yes":         "✅ Yes, leave",
		"btn_exit_no":          "🔙 No",
		"btn_confirm_transfer": "✅ Confirm transfer",
		"btn_confirm_receipt":  "✅ Confirm receipt",
	},
}

// text resolves a template for a locale, falling back to Russian.
func text(lang, key string) string {
	if m, ok := messages[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	return messages["ru"][key]
}
