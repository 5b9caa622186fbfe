package commands

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/fetamlet/go-telegram-cutbot/internal/storage"
)

// historyLimit caps how many recent calculations /history shows.
const historyLimit = 5

// HistoryCommand lists the user's recent calculations.
type HistoryCommand struct {
	repo   *storage.Repository
	logger *zap.Logger
}

// NewHistoryCommand creates a new HistoryCommand instance.
func NewHistoryCommand(repo *storage.Repository, logger *zap.Logger) Command {
	return &HistoryCommand{repo: repo, logger: logger.Named("history_command")}
}

// Name returns the name of the command.
func (c *HistoryCommand) Name() string {
	return "history"
}

// Description returns the description of the command.
func (c *HistoryCommand) Description() string {
	return "Последние расчёты"
}

// Execute runs the command.
func (c *HistoryCommand) Execute(ctx context.Context, api *tgbotapi.BotAPI, msg *tgbotapi.Message) error {
	if !c.repo.Enabled() {
		_, err := api.Send(tgbotapi.NewMessage(msg.Chat.ID, "История недоступна: база данных не настроена."))

		return err
	}

	calcs, err := c.repo.RecentCalculations(msg.Chat.ID, historyLimit)
	if err != nil {
		c.logger.Error("Failed to load calculation history", zap.Int64("chatID", msg.Chat.ID), zap.Error(err))
		_, sendErr := api.Send(tgbotapi.NewMessage(msg.Chat.ID, "Не удалось получить историю расчётов."))
		if sendErr != nil {
			return sendErr
		}

		return err
	}

	if len(calcs) == 0 {
		_, err := api.Send(tgbotapi.NewMessage(msg.Chat.ID, "Расчётов пока нет. Напишите /start, чтобы сделать первый."))

		return err
	}

	_, err = api.Send(tgbotapi.NewMessage(msg.Chat.ID, formatHistory(calcs)))

	return err
}

func formatHistory(calcs []storage.Calculation) string {
	var b strings.Builder
	b.WriteString("Последние расчёты:\n\n")

	for _, calc := range calcs {
		tool := calc.ToolType
		if calc.ToolSubtype != "" {
			tool = fmt.Sprintf("%s (%s)", calc.ToolType, calc.ToolSubtype)
		}

		fmt.Fprintf(&b, "• %s — %s / %s / %s: %.1f м/мин, %.2f мм/об",
			calc.CreatedAt.Format("02.01.2006"),
			calc.Material, calc.Operation, tool,
			calc.Speed, calc.Feed,
		)
		if calc.SpindleSpeed != nil {
			fmt.Fprintf(&b, ", %.0f об/мин", *calc.SpindleSpeed)
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
