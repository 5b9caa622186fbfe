package commands

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ManagerParams holds dependencies for NewManager.
type ManagerParams struct {
	fx.In
	Logger   *zap.Logger
	Commands []Command `group:"commands"`
}

// Manager holds the registered commands and builds the Telegram
// command menu from them.
type Manager struct {
	logger   *zap.Logger
	commands map[string]Command
	order    []string
}

// NewManager creates a Manager from the command group.
func NewManager(params ManagerParams) *Manager {
	m := &Manager{
		logger:   params.Logger.Named("commands"),
		commands: make(map[string]Command, len(params.Commands)),
	}

	for _, cmd := range params.Commands {
		if cmd == nil {
			m.logger.Warn("Skipping nil command in group")
			continue
		}
		if _, exists := m.commands[cmd.Name()]; exists {
			m.logger.Warn("Duplicate command name, keeping the first", zap.String("name", cmd.Name()))
			continue
		}
		m.commands[cmd.Name()] = cmd
		m.order = append(m.order, cmd.Name())
	}

	m.logger.Info("Commands registered", zap.Strings("names", m.order))

	return m
}

// Get retrieves a command by its name.
func (m *Manager) Get(name string) (Command, bool) {
	cmd, ok := m.commands[name]
	return cmd, ok
}

// MenuCommands returns the command list for SetMyCommands, in
// registration order.
func (m *Manager) MenuCommands() []tgbotapi.BotCommand {
	menu := make([]tgbotapi.BotCommand, 0, len(m.order))
	for _, name := range m.order {
		menu = append(menu, tgbotapi.BotCommand{
			Command:     name,
			Description: m.commands[name].Description(),
		})
	}

	return menu
}
