package conversation

import (
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/fetamlet/go-telegram-cutbot/internal/catalog"
	"github.com/fetamlet/go-telegram-cutbot/internal/config"
	"github.com/fetamlet/go-telegram-cutbot/internal/cutting"
)

func TestModule(t *testing.T) {
	// Create a test configuration
	testConfig := &config.Config{
		SessionCacheSize: 8,
		SupportFooter:    "",
	}

	// Create a test logger
	logger := zap.NewNop()

	// Test that the module wires the dialog dependencies correctly
	app := fxtest.New(t,
		fx.Supply(testConfig, logger),
		Module,
		fx.Invoke(func(cat *catalog.Catalog, formatter *cutting.ResultFormatter, store SessionStore, engine *Engine) {
			if cat == nil {
				t.Error("Catalog should not be nil")
			}
			if formatter == nil {
				t.Error("Result formatter should not be nil")
			}
			if store == nil {
				t.Error("Session store should not be nil")
			}
			if engine == nil {
				t.Error("Engine should not be nil")
			}
		}),
	)

	app.RequireStart()
	app.RequireStop()
}

func TestNewSessionStoreProviderDefaultsSize(t *testing.T) {
	store, err := NewSessionStoreProvider(zap.NewNop(), &config.Config{SessionCacheSize: 0})
	if err != nil {
		t.Fatalf("NewSessionStoreProvider returned error: %v", err)
	}
	if store == nil {
		t.Error("SessionStore should not be nil")
	}
}
