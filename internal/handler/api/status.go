package api

import (
	"net/http"

	drepo "CTPConsole/internal/domain/repository"
	"CTPConsole/internal/usecase"
	xlogger "CTPConsole/pkg/logger"

	"github.com/labstack/echo/v4"
)

// DebugHandler exposes the console's controller state and backend
// health over the local debug server.
type DebugHandler struct {
	logger  *xlogger.Logger
	console *usecase.Console
	backend drepo.Backend
}

func NewDebugHandler(logger *xlogger.Logger, console *usecase.Console, backend drepo.Backend) *DebugHandler {
	return &DebugHandler{logger: logger, console: console, backend: backend}
}

func (h *DebugHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)
	e.GET("/status", h.Status)
}

// Health proxies the backend root health check.
func (h *DebugHandler) Health(c echo.Context) error {
	hs, err := h.backend.Health(c.Request().Context())
	if err != nil {
		h.logger.Warn("health proxy failed", xlogger.Error(err))
		return c.JSON(http.StatusBadGateway, map[string]interface{}{
			"status":  "unreachable",
			"message": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, hs)
}

// Status returns a snapshot of every controller lifecycle.
func (h *DebugHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, h.console.Snapshot())
}
