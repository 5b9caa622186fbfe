package commands

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/fetamlet/go-telegram-cutbot/internal/conversation"
)

// CancelCommand aborts the current dialog.
type CancelCommand struct {
	engine *conversation.Engine
}

// NewCancelCommand creates a new CancelCommand instance.
func NewCancelCommand(engine *conversation.Engine) Command {
	return &CancelCommand{engine: engine}
}

// Name returns the name of the command.
func (c *CancelCommand) Name() string {
	return "cancel"
}

// Description returns the description of the command.
func (c *CancelCommand) Description() string {
	return "Отменить текущий подбор"
}

// Execute runs the command.
func (c *CancelCommand) Execute(ctx context.Context, api *tgbotapi.BotAPI, msg *tgbotapi.Message) error {
	return SendReply(api, msg.Chat.ID, c.engine.Cancel(msg.Chat.ID))
}
