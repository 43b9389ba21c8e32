package di

import (
	"fmt"

	"CTPConsole/internal/domain/repository"
	"CTPConsole/internal/handler/api"
	"CTPConsole/internal/service/alerts"
	"CTPConsole/internal/service/backend"
	"CTPConsole/internal/ui"
	"CTPConsole/internal/usecase"
	"CTPConsole/pkg/config"
	xhttp "CTPConsole/pkg/http"
	"CTPConsole/pkg/logger"
	"CTPConsole/pkg/metrics"
	"CTPConsole/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideRequestClient creates the low-level backend request client.
func ProvideRequestClient(cfg *config.Config) *xhttp.Client {
	return xhttp.NewClient(
		cfg.Backend.URL,
		cfg.Backend.AdminToken,
		xhttp.WithTimeout(cfg.Backend.Timeout),
	)
}

// ProvideBackend creates the typed backend API client.
func ProvideBackend(cfg *config.Config, client *xhttp.Client, m repository.Metrics, l *logger.Logger) repository.Backend {
	return backend.New(client, cfg.Trading.Symbol, cfg.Trading.Interval, m, l)
}

// ProvideAlertBus creates the shared alert bus.
func ProvideAlertBus(cfg *config.Config) *alerts.Bus {
	return alerts.NewBus(cfg.Alerts.TTL)
}

// ProvideConsole creates the console session with all controllers.
func ProvideConsole(b repository.Backend, bus *alerts.Bus, l *logger.Logger) *usecase.Console {
	return usecase.NewConsole(b, bus, l)
}

// ProvideDebugHandler creates the debug endpoint handler.
func ProvideDebugHandler(c *usecase.Console, b repository.Backend, l *logger.Logger) *api.DebugHandler {
	return api.NewDebugHandler(l, c, b)
}

// ProvideDebugServer creates the local debug HTTP server.
func ProvideDebugServer(cfg *config.Config, h *api.DebugHandler) *xhttp.Server {
	return xhttp.NewServer(h,
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
	)
}

// ProvideUI creates the terminal UI.
func ProvideUI(cfg *config.Config, c *usecase.Console) *ui.UI {
	return ui.New(cfg, c)
}

// ProvideApp creates the application.
func ProvideApp(
	cfg *config.Config,
	c *usecase.Console,
	debug *xhttp.Server,
	u *ui.UI,
	l *logger.Logger,
) *server.App {
	return server.New(cfg, c, debug, u, l)
}
