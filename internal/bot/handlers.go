package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/fetamlet/go-telegram-cutbot/internal/commands"
	"github.com/fetamlet/go-telegram-cutbot/internal/conversation"
	"github.com/fetamlet/go-telegram-cutbot/internal/storage"
)

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Text == "" {
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	b.handleDialog(ctx, msg)
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	name := msg.Command()

	cmd, ok := b.manager.Get(name)
	if !ok {
		b.logger.Debug("Unknown command", zap.String("command", name), zap.Int64("chatID", msg.Chat.ID))
		b.send(msg.Chat.ID, conversation.Reply{Text: "Неизвестная команда. Напишите /start."})
		return
	}

	b.logger.Info("Executing command",
		zap.String("command", name),
		zap.Int64("chatID", msg.Chat.ID),
		zap.String("user", msg.From.UserName),
	)

	if err := cmd.Execute(ctx, b.api, msg); err != nil {
		b.logger.Error("Command execution failed",
			zap.String("command", name),
			zap.Int64("chatID", msg.Chat.ID),
			zap.Error(err),
		)
	}
}

func (b *Bot) handleDialog(ctx context.Context, msg *tgbotapi.Message) {
	reply := b.engine.Advance(msg.Chat.ID, msg.Text)
	b.send(msg.Chat.ID, reply)

	if reply.Result != nil {
		b.persistResult(msg.Chat.ID, reply)
	}
}

// persistResult records a completed calculation. History is best
// effort: a storage failure never disturbs the chat.
func (b *Bot) persistResult(chatID int64, reply conversation.Reply) {
	if !b.repo.Enabled() {
		return
	}

	rec := reply.Result
	calc := &storage.Calculation{
		ChatID:       chatID,
		Material:     rec.Selection.Material,
		Operation:    rec.Selection.Operation,
		ToolType:     rec.Selection.ToolType,
		ToolSubtype:  rec.Selection.Subtype,
		Speed:        rec.Speed,
		Feed:         rec.Feed,
		SpindleSpeed: rec.SpindleSpeed,
		Diameter:     reply.Inputs.Diameter,
		Teeth:        reply.Inputs.Teeth,
		DepthOfCut:   reply.Inputs.DepthOfCut,
	}

	if err := b.repo.SaveCalculation(calc); err != nil {
		b.logger.Error("Failed to persist calculation", zap.Int64("chatID", chatID), zap.Error(err))
	}
}

// send delivers an engine reply, logging failures instead of surfacing
// them to the update loop.
func (b *Bot) send(chatID int64, reply conversation.Reply) {
	if err := commands.SendReply(b.api, chatID, reply); err != nil {
		b.logger.Error("Failed to send message", zap.Int64("chatID", chatID), zap.Error(err))
	}
}
