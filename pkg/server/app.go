package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"CTPConsole/internal/ui"
	"CTPConsole/internal/usecase"
	"CTPConsole/pkg/config"
	xhttp "CTPConsole/pkg/http"
	applogger "CTPConsole/pkg/logger"
)

// App encapsulates the entire application lifecycle: the console
// session, its terminal UI, and the local debug server.
type App struct {
	cfg     *config.Config
	console *usecase.Console
	debug   *xhttp.Server
	ui      *ui.UI
	logger  *applogger.Logger
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	console *usecase.Console,
	debug *xhttp.Server,
	u *ui.UI,
	logger *applogger.Logger,
) *App {
	return &App{
		cfg:     cfg,
		console: console,
		debug:   debug,
		ui:      u,
		logger:  logger,
	}
}

// Run starts the application and blocks until the operator quits.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.cfg.Server.Enabled && a.debug != nil {
		if err := a.debug.Start(); err != nil {
			a.logger.Error("debug server start error", applogger.Error(err))
			return err
		}
		a.logger.Info("debug server started", applogger.Int("port", a.cfg.Server.Port))
	}

	// A termination signal tears the UI down the same way as quitting.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		a.ui.Quit()
	}()

	a.logger.Info("console started",
		applogger.String("backend", a.cfg.Backend.URL),
		applogger.String("symbol", a.cfg.Trading.Symbol),
	)

	err := a.ui.Start(ctx)

	a.shutdown(ctx)
	return err
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) {
	// Detach controllers first so late completions are dropped.
	a.console.Close()

	if a.cfg.Server.Enabled && a.debug != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := a.debug.Stop(shutdownCtx); err != nil {
			a.logger.Warn("debug server stop error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
}
