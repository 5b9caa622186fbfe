package commands

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// AppVersion is the version of the application, should be set during
// build time.
var AppVersion = "dev"

// VersionCommand replies with the application version.
type VersionCommand struct{}

// NewVersionCommand creates a new VersionCommand instance.
func NewVersionCommand() Command {
	return &VersionCommand{}
}

// Name returns the name of the command.
func (c *VersionCommand) Name() string {
	return "version"
}

// Description returns the description of the command.
func (c *VersionCommand) Description() string {
	return "Версия бота"
}

// Execute runs the command.
func (c *VersionCommand) Execute(ctx context.Context, api *tgbotapi.BotAPI, msg *tgbotapi.Message) error {
	_, err := api.Send(tgbotapi.NewMessage(msg.Chat.ID, "Версия бота: "+AppVersion))

	return err
}
