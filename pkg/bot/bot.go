package bot

import (
	"context"
	"sync"
	"time"

	"github.com/avast/retry-go"
	tele "gopkg.in/telebot.v3"

	"escrowbot/config"
	"escrowbot/pkg/logger"
	"escrowbot/service"
	"escrowbot/storage"
)

type Bot struct {
	Bot      *tele.Bot
	Cfg      *config.Config
	Log      logger.ILogger
	Stg      storage.IStorage
	Svc      service.IServiceManager
	Sessions *SessionStore
	Notifier *Notifier

	userLocks sync.Map // int64 -> *sync.Mutex
	stop      chan struct{}
}

func New(cfg *config.Config, stg storage.IStorage, log logger.ILogger) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.TelegramBotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		Bot:      b,
		Cfg:      cfg,
		Log:      log,
		Stg:      stg,
		Svc:      service.New(stg, log),
		Sessions: NewSessionStore(time.Duration(cfg.SessionTTLMinutes) * time.Minute),
		stop:     make(chan struct{}),
	}
	bot.Notifier = NewNotifier(b, stg, log, cfg,
		time.Duration(cfg.ReminderDelaySeconds)*time.Second)

	b.Use(bot.sequentialPerUser)
	bot.registerHandlers()
	return bot, nil
}

func (b *Bot) registerHandlers() {
	b.Bot.Handle("/start", b.handleStart)
	b.Bot.Handle("/nftgift", b.handleOperatorHelp)
	b.Bot.Handle("/buy", b.handleBuy)
	b.Bot.Handle("/set_my_deals", b.handleSetMyDeals)
	b.Bot.Handle(tele.OnCallback, b.handleCallback)
	b.Bot.Handle(tele.OnText, b.handleText)
}

// sequentialPerUser serializes update processing per sender so a second
// message cannot interleave with a form step that is still in flight.
func (b *Bot) sequentialPerUser(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		sender := c.Sender()
		if sender == nil {
			return next(c)
		}
		muAny, _ := b.userLocks.LoadOrStore(sender.ID, &sync.Mutex{})
		mu := muAny.(*sync.Mutex)
		mu.Lock()
		defer mu.Unlock()
		return next(c)
	}
}

func (b *Bot) Start() {
	if err := b.Notifier.Recover(context.Background()); err != nil {
		b.Log.Error("failed to recover pending reminders", logger.Error(err))
	}
	go b.Sessions.RunJanitor(b.stop)
	b.Log.Info("🤖 Bot started")
	b.Bot.Start()
}

func (b *Bot) Stop() {
	close(b.stop)
	b.Bot.Stop()
}

// lang resolves the sender's locale from the store, defaulting to Russian.
func (b *Bot) lang(ctx context.Context, userID int64) string {
	user, err := b.Svc.User().Get(ctx, userID)
	if err != nil || user == nil {
		return "ru"
	}
	return user.Lang()
}

// editOrSend updates the user's last interactive message in place; when the
// edit fails (stale message, incompatible type) it degrades to a fresh send.
func (b *Bot) editOrSend(c tele.Context, what string, opts ...interface{}) error {
	opts = append(opts, tele.ModeHTML)
	last := b.Sessions.LastMessage(c.Sender().ID)
	if last != nil {
		if _, err := b.Bot.Edit(last, what, opts...); err == nil {
			return nil
		} else {
			b.Log.Warning("failed to edit message, sending new one", logger.Error(err))
		}
	}
	return c.Send(what, opts...)
}

// editCallback replaces the message the pressed button is attached to.
func (b *Bot) editCallback(c tele.Context, what string, opts ...interface{}) error {
	opts = append(opts, tele.ModeHTML)
	if err := c.Edit(what, opts...); err != nil {
		b.Log.Warning("failed to edit callback message, sending new one", logger.Error(err))
		return c.Send(what, opts...)
	}
	return nil
}

// notify sends a message to an arbitrary user, retrying transient transport
// failures. Delivery failures are logged, never surfaced to the caller flow.
func (b *Bot) notify(userID int64, what string, opts ...interface{}) {
	opts = append(opts, tele.ModeHTML)
	err := retry.Do(
		func() error {
			_, err := b.Bot.Send(&tele.User{ID: userID}, what, opts...)
			return err
		},
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
	)
	if err != nil {
		b.Log.Error("failed to notify user", logger.Int64("user_id", userID), logger.Error(err))
	}
}
