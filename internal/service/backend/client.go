package backend

import (
	"context"
	"time"

	"CTPConsole/internal/domain/models"
	drepo "CTPConsole/internal/domain/repository"
	xhttp "CTPConsole/pkg/http"
	xlogger "CTPConsole/pkg/logger"

	json "github.com/goccy/go-json"
)

// Client is the typed API surface of the trade backend, one method per
// operation. It implements repository.Backend.
type Client struct {
	http     *xhttp.Client
	symbol   string
	interval string
	metrics  drepo.Metrics
	logger   *xlogger.Logger
}

// New creates a new backend API client. Symbol and interval are fixed
// for the session; they come from configuration.
func New(httpClient *xhttp.Client, symbol, interval string, metrics drepo.Metrics, logger *xlogger.Logger) drepo.Backend {
	return &Client{
		http:     httpClient,
		symbol:   symbol,
		interval: interval,
		metrics:  metrics,
		logger:   logger,
	}
}

// Health checks the backend root endpoint.
func (c *Client) Health(ctx context.Context) (models.HealthStatus, error) {
	var out models.HealthStatus
	err := c.call(ctx, "health", "/", nil, &out)
	return out, err
}

// Signal fetches the strategy signal for the configured symbol/interval.
func (c *Client) Signal(ctx context.Context) (models.Signal, error) {
	var out models.Signal
	opts := &xhttp.RequestOptions{
		QueryParams: map[string][]string{
			"symbol":   {c.symbol},
			"interval": {c.interval},
		},
	}
	err := c.call(ctx, "signal", "/strategy/signal", opts, &out)
	if err == nil {
		c.metrics.RecordLastPrice(c.symbol, out.Price)
	}
	return out, err
}

// Account fetches the account snapshot.
func (c *Client) Account(ctx context.Context) (models.AccountSnapshot, error) {
	var out models.AccountSnapshot
	err := c.call(ctx, "account", "/account", nil, &out)
	return out, err
}

// OpenOrders fetches open orders for the configured symbol, normalized
// to the canonical list shape.
func (c *Client) OpenOrders(ctx context.Context) (models.OrderList, error) {
	var out models.OrderList
	opts := &xhttp.RequestOptions{
		QueryParams: map[string][]string{
			"symbol": {c.symbol},
		},
	}
	err := c.call(ctx, "open_orders", "/open-orders", opts, &out)
	return out, err
}

// Trade submits a trade and returns the backend result verbatim.
func (c *Client) Trade(ctx context.Context, req models.TradeRequest) (json.RawMessage, error) {
	var out json.RawMessage
	opts := &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		Body:   req,
	}
	err := c.call(ctx, "trade", "/trade", opts, &out)
	return out, err
}

// Chat sends one assistant query.
func (c *Client) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	var out models.ChatResponse
	opts := &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		Body:   req,
	}
	err := c.call(ctx, "chat", "/chat", opts, &out)
	return out, err
}

func (c *Client) call(ctx context.Context, op, path string, opts *xhttp.RequestOptions, dest interface{}) error {
	start := time.Now()
	err := c.http.Do(ctx, path, opts, dest)
	c.metrics.RecordLatency(op, time.Since(start).Seconds())

	if err != nil {
		c.metrics.RecordRequest(op, "error")
		c.logger.Debug("backend call failed",
			xlogger.String("operation", op),
			xlogger.Error(err),
		)
		return err
	}

	c.metrics.RecordRequest(op, "ok")
	return nil
}
