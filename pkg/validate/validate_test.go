package validate

import (
	"strings"
	"testing"
)

type tradePayload struct {
	Symbol   string   `validate:"required"`
	Side     string   `validate:"required,oneof=BUY SELL"`
	Type     string   `default:"MARKET" validate:"required,oneof=MARKET LIMIT"`
	Quantity float64  `validate:"required,gt=0"`
	Price    *float64 `validate:"required_if=Type LIMIT,omitempty,gt=0"`
}

func TestStructAppliesDefaults(t *testing.T) {
	p := tradePayload{Symbol: "BTCUSDT", Side: "BUY", Quantity: 0.001}
	if err := Struct(&p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Type != "MARKET" {
		t.Fatalf("expected MARKET default, got %q", p.Type)
	}
}

func TestStructRejectsBadSide(t *testing.T) {
	p := tradePayload{Symbol: "BTCUSDT", Side: "HOLD", Quantity: 0.001}
	err := Struct(&p)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "Side must be one of") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestStructRequiresLimitPrice(t *testing.T) {
	p := tradePayload{Symbol: "BTCUSDT", Side: "BUY", Type: "LIMIT", Quantity: 0.001}
	if err := Struct(&p); err == nil {
		t.Fatalf("expected error for LIMIT without price")
	}

	neg := -5.0
	p = tradePayload{Symbol: "BTCUSDT", Side: "BUY", Type: "LIMIT", Quantity: 0.001, Price: &neg}
	if err := Struct(&p); err == nil {
		t.Fatalf("expected error for non-positive limit price")
	}

	price := 61000.0
	p = tradePayload{Symbol: "BTCUSDT", Side: "BUY", Type: "LIMIT", Quantity: 0.001, Price: &price}
	if err := Struct(&p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructCollectsAllFailures(t *testing.T) {
	p := tradePayload{}
	err := Struct(&p)
	if err == nil {
		t.Fatalf("expected error")
	}
	errs, ok := err.(Errors)
	if !ok {
		t.Fatalf("expected Errors, got %T", err)
	}
	if len(errs) < 3 {
		t.Fatalf("expected several failures, got %d: %v", len(errs), errs)
	}
}
