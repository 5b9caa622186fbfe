package commands

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const helpText = `Я подбираю режимы резания по каталожным данным ZCC.

/start — начать подбор: материал, операция, инструмент, размеры
/cancel — отменить текущий подбор
/history — последние расчёты
/version — версия бота

В диалоге выбирайте варианты кнопками, числа вводите через точку или запятую.`

// HelpCommand describes the bot and its commands.
type HelpCommand struct{}

// NewHelpCommand creates a new HelpCommand instance.
func NewHelpCommand() Command {
	return &HelpCommand{}
}

// Name returns the name of the command.
func (c *HelpCommand) Name() string {
	return "help"
}

// Description returns the description of the command.
func (c *HelpCommand) Description() string {
	return "Справка по командам"
}

// Execute runs the command.
func (c *HelpCommand) Execute(ctx context.Context, api *tgbotapi.BotAPI, msg *tgbotapi.Message) error {
	_, err := api.Send(tgbotapi.NewMessage(msg.Chat.ID, helpText))

	return err
}
