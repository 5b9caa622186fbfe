// Package telegram provides the Telegram Bot API client and its Fx
// module.
package telegram

import (
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/fetamlet/go-telegram-cutbot/internal/config"
)

// Module provides Telegram-related dependencies.
var Module = fx.Module("telegram",
	fx.Provide(NewBotAPI),
)

// BotAPIParams holds dependencies for NewBotAPI.
type BotAPIParams struct {
	fx.In
	Cfg    *config.Config
	Logger *zap.Logger
}

// NewBotAPI creates the Telegram client. Construction authenticates
// against the Bot API (getMe), so a bad token fails application start.
// Polling shutdown is owned by the bot loop, which must stop receiving
// exactly once.
func NewBotAPI(params BotAPIParams) (*tgbotapi.BotAPI, error) {
	if params.Cfg.Telegram.BotToken == "" {
		return nil, errors.New("telegram bot token is not set in config")
	}

	api, err := tgbotapi.NewBotAPI(params.Cfg.Telegram.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram client: %w", err)
	}
	api.Debug = params.Cfg.Telegram.Debug

	params.Logger.Info("Authorized on Telegram", zap.String("username", api.Self.UserName))

	return api, nil
}
