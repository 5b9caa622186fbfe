package commands

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/fetamlet/go-telegram-cutbot/internal/conversation"
)

// Command defines the interface for bot commands.
type Command interface {
	// Name is the command without the leading slash.
	Name() string
	// Description is shown in the Telegram command menu.
	Description() string
	Execute(ctx context.Context, api *tgbotapi.BotAPI, msg *tgbotapi.Message) error
}

// SendReply sends an engine reply to the chat, attaching a one-time
// reply keyboard when the engine asks for one.
func SendReply(api *tgbotapi.BotAPI, chatID int64, reply conversation.Reply) error {
	out := tgbotapi.NewMessage(chatID, reply.Text)
	if reply.Keyboard != nil {
		out.ReplyMarkup = buildKeyboard(reply.Keyboard)
	}

	_, err := api.Send(out)

	return err
}

func buildKeyboard(rows [][]string) tgbotapi.ReplyKeyboardMarkup {
	buttonRows := make([][]tgbotapi.KeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, label := range row {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(label))
		}
		buttonRows = append(buttonRows, buttons)
	}

	return tgbotapi.NewOneTimeReplyKeyboard(buttonRows...)
}
