package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	ServiceName string
	LoggerLevel string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	TelegramBotToken string
	BotUsername      string
	ManagerUsername  string

	CardPaymentAddress   string
	WalletPaymentAddress string

	ReminderDelaySeconds int
	SessionTTLMinutes    int
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "escrowbot"))
	cfg.LoggerLevel = cast.ToString(getOrReturnDefault("LOGGER_LEVEL", "debug"))

	cfg.PostgresHost = cast.ToString(getOrReturnDefault("POSTGRES_HOST", "localhost"))
	cfg.PostgresPort = cast.ToString(getOrReturnDefault("POSTGRES_PORT", "5432"))
	cfg.PostgresUser = cast.ToString(getOrReturnDefault("POSTGRES_USER", "postgres"))
	cfg.PostgresPassword = cast.ToString(getOrReturnDefault("POSTGRES_PASSWORD", "1234"))
	cfg.PostgresDB = cast.ToString(getOrReturnDefault("POSTGRES_DB", "escrowbot"))

	cfg.TelegramBotToken = cast.ToString(getOrReturnDefault("TG_BOT_TOKEN", ""))
	cfg.BotUsername = cast.ToString(getOrReturnDefault("BOT_USERNAME", "GlftEIflBot"))
	cfg.ManagerUsername = cast.ToString(getOrReturnDefault("MANAGER_USERNAME", "GlftOtcSup"))

	cfg.CardPaymentAddress = cast.ToString(getOrReturnDefault("CARD_PAYMENT_ADDRESS", ""))
	cfg.WalletPaymentAddress = cast.ToString(getOrReturnDefault("WALLET_PAYMENT_ADDRESS", ""))

	cfg.ReminderDelaySeconds = cast.ToInt(getOrReturnDefault("REMINDER_DELAY_SECONDS", 60))
	cfg.SessionTTLMinutes = cast.ToInt(getOrReturnDefault("SESSION_TTL_MINUTES", 60))

	return cfg
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
