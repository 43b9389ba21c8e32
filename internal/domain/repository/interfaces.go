package repository

import (
	"context"

	"CTPConsole/internal/domain/models"

	json "github.com/goccy/go-json"
)

// Backend is the request contract against the remote trade backend.
type Backend interface {
	Health(ctx context.Context) (models.HealthStatus, error)
	Signal(ctx context.Context) (models.Signal, error)
	Account(ctx context.Context) (models.AccountSnapshot, error)
	OpenOrders(ctx context.Context) (models.OrderList, error)
	// Trade returns the backend result verbatim; the console displays
	// it without interpreting it.
	Trade(ctx context.Context, req models.TradeRequest) (json.RawMessage, error)
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)
}

// Notifier surfaces a transient status message to the operator.
type Notifier interface {
	Ok(text string)
	Error(text string)
}

// Metrics records backend request outcomes.
type Metrics interface {
	RecordRequest(operation, outcome string)
	RecordError(kind string)
	RecordLastPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
