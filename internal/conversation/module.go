package conversation

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/fetamlet/go-telegram-cutbot/internal/catalog"
	"github.com/fetamlet/go-telegram-cutbot/internal/config"
	"github.com/fetamlet/go-telegram-cutbot/internal/cutting"
)

// Module provides dialog dependencies.
var Module = fx.Module("conversation",
	fx.Provide(
		catalog.New,
		NewResultFormatterProvider,
		NewSessionStoreProvider,
		NewEngine,
	),
)

// NewResultFormatterProvider creates the result formatter with the
// configured support footer.
func NewResultFormatterProvider(cfg *config.Config) *cutting.ResultFormatter {
	return cutting.NewResultFormatter(cfg.SupportFooter)
}

// NewSessionStoreProvider creates a SessionStore with a config-derived
// cache size.
func NewSessionStoreProvider(logger *zap.Logger, cfg *config.Config) (SessionStore, error) {
	size := cfg.SessionCacheSize
	if size <= 0 {
		logger.Warn("Session cache size is not configured or is invalid, defaulting to 1024",
			zap.Int("configuredSize", size))
		size = 1024
	}

	return NewSessionStore(logger, size)
}
