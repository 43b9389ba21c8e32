//go:build wireinject
// +build wireinject

package di

import (
	"CTPConsole/pkg/config"
	"CTPConsole/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation of this function (wire_gen.go).
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Backend clients
		ProvideRequestClient,
		ProvideBackend,

		// Console session
		ProvideAlertBus,
		ProvideConsole,

		// Debug endpoints
		ProvideDebugHandler,
		ProvideDebugServer,

		// UI and application
		ProvideUI,
		ProvideApp,
	)
	return &server.App{}, nil
}
