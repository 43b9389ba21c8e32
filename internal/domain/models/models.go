package models

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Signal is the strategy snapshot returned by the backend. EMA and RSI
// are absent when the strategy has too little data to compute them.
type Signal struct {
	Signal string   `json:"signal"`
	Price  float64  `json:"price"`
	EMA    *float64 `json:"ema,omitempty"`
	RSI    *float64 `json:"rsi,omitempty"`
	Reason string   `json:"reason,omitempty"`
}

// Balance is one asset row of the account snapshot. The exchange sends
// amounts as decimal strings.
type Balance struct {
	Asset  string          `json:"asset"`
	Free   decimal.Decimal `json:"free"`
	Locked decimal.Decimal `json:"locked"`
}

// HasFunds reports whether the row is worth showing to the operator.
func (b Balance) HasFunds() bool {
	return b.Free.IsPositive() || b.Locked.IsPositive()
}

// AccountSnapshot holds the filtered balances plus the raw exchange payload.
type AccountSnapshot struct {
	Balances []Balance       `json:"balances"`
	Raw      json.RawMessage `json:"raw,omitempty"`
}

// Order is a single open order.
type Order struct {
	OrderID int64           `json:"orderId"`
	Symbol  string          `json:"symbol,omitempty"`
	Side    string          `json:"side"`
	Price   decimal.Decimal `json:"price"`
	OrigQty decimal.Decimal `json:"origQty"`
	Status  string          `json:"status"`
}

// HealthStatus is the backend's root health response.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Trade sides and order types accepted by the backend.
const (
	SideBuy  = "BUY"
	SideSell = "SELL"

	TypeMarket = "MARKET"
	TypeLimit  = "LIMIT"
)

// TradeRequest is the payload for the trade endpoint. Type and
// timeInForce default to MARKET/GTC; a LIMIT order requires a positive
// price.
type TradeRequest struct {
	Symbol       string   `json:"symbol" validate:"required"`
	Side         string   `json:"side" validate:"required,oneof=BUY SELL"`
	Type         string   `json:"type" default:"MARKET" validate:"required,oneof=MARKET LIMIT"`
	Quantity     float64  `json:"quantity" validate:"required,gt=0"`
	Price        *float64 `json:"price,omitempty" validate:"required_if=Type LIMIT,omitempty,gt=0"`
	TimeInForce  string   `json:"timeInForce" default:"GTC"`
	ForceExecute bool     `json:"force_execute"`
}

// ChatRequest wraps one free-text assistant query.
type ChatRequest struct {
	Q string `json:"q" validate:"required"`
}

// ChatResponse carries the assistant answer; Raw is the unmodified
// provider payload, kept for debugging.
type ChatResponse struct {
	Answer string          `json:"answer"`
	Raw    json.RawMessage `json:"raw,omitempty"`
}

// Chat transcript roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one entry of the append-only conversation log.
type ChatTurn struct {
	Role string    `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// FormatPrice renders a price the way the console displays it.
func FormatPrice(p float64) string {
	return decimal.NewFromFloat(p).StringFixed(2)
}
