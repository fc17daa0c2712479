// Package notify pushes transaction confirmations to Telegram when the
// operator has configured a bot. It is strictly best-effort: a missing
// configuration disables it, a send failure only logs.
package notify

import (
	"fmt"
	"os"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Notifier x
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger zerolog.Logger
}

// New connects to the Telegram bot API. endpoint is overridable for
// tests; pass tgbotapi.APIEndpoint otherwise.
func New(token string, chatID int64, endpoint string, logger zerolog.Logger) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("telegram connect: %w", err)
	}
	return &Notifier{bot: bot, chatID: chatID, logger: logger}, nil
}

// NewFromEnv reads TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID. Both unset
// means notifications are off and nil is returned without error.
func NewFromEnv(logger zerolog.Logger) (*Notifier, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chat := os.Getenv("TELEGRAM_CHAT_ID")
	if token == "" || chat == "" {
		return nil, nil
	}
	chatID, err := strconv.ParseInt(chat, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID: %w", err)
	}
	return New(token, chatID, tgbotapi.APIEndpoint, logger)
}

// TransactionConfirmed announces a confirmed transaction. Safe to call on
// a nil notifier.
func (n *Notifier) TransactionConfirmed(command string, signature string) {
	if n == nil {
		return
	}
	text := fmt.Sprintf("%s confirmed: %s", command, signature)
	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		n.logger.Warn().Err(err).Msg("telegram notification failed")
	}
}
