package usecase

import (
	"context"
	"fmt"

	"CTPConsole/internal/domain/models"
	drepo "CTPConsole/internal/domain/repository"
	"CTPConsole/internal/service/alerts"
	xlogger "CTPConsole/pkg/logger"

	json "github.com/goccy/go-json"
)

// Console owns every per-resource and per-command lifecycle of one
// operator session. The view layer reads state from here and triggers
// refreshes and submissions back into it; it holds no state of its own.
type Console struct {
	Alerts  *alerts.Bus
	Signal  *Resource[models.Signal]
	Account *Resource[models.AccountSnapshot]
	Orders  *Resource[models.OrderList]
	Trade   *Command[models.TradeRequest, json.RawMessage]
	Chat    *ChatSession

	backend drepo.Backend
	logger  *xlogger.Logger
}

// NewConsole wires controllers for every backend operation against one
// alert bus.
func NewConsole(backend drepo.Backend, bus *alerts.Bus, logger *xlogger.Logger) *Console {
	c := &Console{
		Alerts:  bus,
		backend: backend,
		logger:  logger,
	}

	c.Signal = NewResource("signal", "Signal updated.", backend.Signal, bus, logger)
	c.Account = NewResource("account", "Account loaded.", backend.Account, bus, logger)
	c.Orders = NewResource("orders", "Open orders loaded.", backend.OpenOrders, bus, logger)
	c.Trade = NewCommand("trade", "Trade executed.", backend.Trade, bus, logger)
	c.Chat = NewChatSession(NewCommand("chat", "AI Responded", backend.Chat, bus, logger))

	return c
}

// TestConnection pings the backend root and reports the outcome as an
// alert.
func (c *Console) TestConnection(ctx context.Context) {
	h, err := c.backend.Health(ctx)
	if err != nil {
		c.Alerts.Error(err.Error())
		return
	}
	c.Alerts.Ok(fmt.Sprintf("Backend online: %s", h.Service))
}

// Snapshot is the JSON view of all controller states, served by the
// debug endpoint.
type Snapshot struct {
	Signal  ResourceState[models.Signal]                              `json:"signal"`
	Account ResourceState[models.AccountSnapshot]                     `json:"account"`
	Orders  ResourceState[models.OrderList]                           `json:"orders"`
	Trade   CommandState[models.TradeRequest, json.RawMessage]        `json:"trade"`
	Chat    CommandState[models.ChatRequest, models.ChatResponse]     `json:"chat"`
	Turns   int                                                       `json:"chat_turns"`
}

// Snapshot returns a copy of every controller state.
func (c *Console) Snapshot() Snapshot {
	return Snapshot{
		Signal:  c.Signal.State(),
		Account: c.Account.State(),
		Orders:  c.Orders.State(),
		Trade:   c.Trade.State(),
		Chat:    c.Chat.State(),
		Turns:   len(c.Chat.Turns()),
	}
}

// Close detaches all controllers; late completions are dropped.
func (c *Console) Close() {
	c.Signal.Close()
	c.Account.Close()
	c.Orders.Close()
	c.Trade.Close()
	c.Chat.cmd.Close()
	c.Alerts.Clear()
}
