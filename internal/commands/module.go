// Package commands provides command infrastructure and Fx modules.
package commands

import (
	"go.uber.org/fx"
)

// Module provides command-related dependencies.
var Module = fx.Module("commands",
	fx.Provide(
		NewManager,
		fx.Annotate(
			NewStartCommand,
			fx.ResultTags(`group:"commands"`),
		),
		fx.Annotate(
			NewCancelCommand,
			fx.ResultTags(`group:"commands"`),
		),
		fx.Annotate(
			NewHelpCommand,
			fx.ResultTags(`group:"commands"`),
		),
		fx.Annotate(
			NewHistoryCommand,
			fx.ResultTags(`group:"commands"`),
		),
		fx.Annotate(
			NewVersionCommand,
			fx.ResultTags(`group:"commands"`),
		),
	),
)
