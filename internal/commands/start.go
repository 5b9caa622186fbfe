package commands

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/fetamlet/go-telegram-cutbot/internal/conversation"
)

// StartCommand begins (or restarts) the regime selection dialog.
type StartCommand struct {
	engine *conversation.Engine
}

// NewStartCommand creates a new StartCommand instance.
func NewStartCommand(engine *conversation.Engine) Command {
	return &StartCommand{engine: engine}
}

// Name returns the name of the command.
func (c *StartCommand) Name() string {
	return "start"
}

// Description returns the description of the command.
func (c *StartCommand) Description() string {
	return "Начать подбор режимов резания"
}

// Execute runs the command.
func (c *StartCommand) Execute(ctx context.Context, api *tgbotapi.BotAPI, msg *tgbotapi.Message) error {
	return SendReply(api, msg.Chat.ID, c.engine.Start(msg.Chat.ID))
}
