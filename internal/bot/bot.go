package bot

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/fetamlet/go-telegram-cutbot/internal/commands"
	"github.com/fetamlet/go-telegram-cutbot/internal/config"
	"github.com/fetamlet/go-telegram-cutbot/internal/conversation"
	"github.com/fetamlet/go-telegram-cutbot/internal/storage"
)

// defaultPollTimeoutSeconds is used when the config leaves the long
// poll timeout unset.
const defaultPollTimeoutSeconds = 60

// Bot owns the Telegram update loop and dispatches updates to commands
// and the dialog engine.
type Bot struct {
	api     *tgbotapi.BotAPI
	cfg     *config.Config
	engine  *conversation.Engine
	manager *commands.Manager
	repo    *storage.Repository
	logger  *zap.Logger

	done chan struct{}
}

// NewBotParams holds dependencies for NewBot.
type NewBotParams struct {
	fx.In

	API     *tgbotapi.BotAPI
	Cfg     *config.Config
	Engine  *conversation.Engine
	Manager *commands.Manager
	Repo    *storage.Repository
	Logger  *zap.Logger
}

// NewBot creates and initializes a new Bot.
func NewBot(params NewBotParams) (*Bot, error) {
	if params.API == nil {
		return nil, errors.New("telegram client provided to NewBot is nil")
	}
	if params.Cfg == nil {
		return nil, errors.New("config provided to NewBot is nil")
	}

	return &Bot{
		api:     params.API,
		cfg:     params.Cfg,
		engine:  params.Engine,
		manager: params.Manager,
		repo:    params.Repo,
		logger:  params.Logger.Named("bot"),
		done:    make(chan struct{}),
	}, nil
}

// Start registers the command menu with Telegram and launches the
// update loop.
func (b *Bot) Start(ctx context.Context) error {
	menu := b.manager.MenuCommands()
	if _, err := b.api.Request(tgbotapi.NewSetMyCommands(menu...)); err != nil {
		return fmt.Errorf("failed to register command menu: %w", err)
	}
	b.logger.Info("Command menu registered", zap.Int("count", len(menu)))

	timeout := b.cfg.Telegram.PollTimeoutSeconds
	if timeout <= 0 {
		timeout = defaultPollTimeoutSeconds
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeout

	updates := b.api.GetUpdatesChan(u)
	go b.loop(updates)

	b.logger.Info("Bot started", zap.Int("pollTimeoutSeconds", timeout))

	return nil
}

// Stop shuts the update loop down and waits for it to drain.
func (b *Bot) Stop(ctx context.Context) error {
	b.api.StopReceivingUpdates()

	select {
	case <-b.done:
		b.logger.Info("Bot stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("timed out waiting for update loop: %w", ctx.Err())
	}
}

func (b *Bot) loop(updates tgbotapi.UpdatesChannel) {
	defer close(b.done)

	for update := range updates {
		b.handleUpdate(context.Background(), update)
	}
}
