package models

import (
	"testing"

	json "github.com/goccy/go-json"
)

func TestOrderListBareArray(t *testing.T) {
	data := []byte(`[{"orderId":42,"side":"BUY","price":"61000.00","origQty":"0.001","status":"NEW"}]`)

	var l OrderList
	if err := json.Unmarshal(data, &l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l) != 1 {
		t.Fatalf("expected 1 order, got %d", len(l))
	}
	if l[0].OrderID != 42 || l[0].Side != "BUY" {
		t.Fatalf("unexpected order %+v", l[0])
	}
	if l[0].Price.String() != "61000" {
		t.Fatalf("unexpected price %s", l[0].Price.String())
	}
}

func TestOrderListCountWrapper(t *testing.T) {
	data := []byte(`{"Count":2,"value":[
		{"orderId":1,"side":"BUY","price":"60000","origQty":"0.002","status":"NEW"},
		{"orderId":2,"side":"SELL","price":"62000","origQty":"0.001","status":"PARTIALLY_FILLED"}
	]}`)

	var l OrderList
	if err := json.Unmarshal(data, &l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(l))
	}
	if l[1].OrderID != 2 || l[1].Status != "PARTIALLY_FILLED" {
		t.Fatalf("unexpected order %+v", l[1])
	}
}

func TestOrderListNull(t *testing.T) {
	var l OrderList
	if err := json.Unmarshal([]byte(`null`), &l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l != nil {
		t.Fatalf("expected nil list")
	}
}

func TestBalanceHasFunds(t *testing.T) {
	var b Balance
	if err := json.Unmarshal([]byte(`{"asset":"BTC","free":"0.5","locked":"0"}`), &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.HasFunds() {
		t.Fatalf("expected funded balance")
	}

	if err := json.Unmarshal([]byte(`{"asset":"DUST","free":"0","locked":"0"}`), &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.HasFunds() {
		t.Fatalf("expected unfunded balance")
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(61234.5); got != "61234.50" {
		t.Fatalf("unexpected price %q", got)
	}
	if got := FormatPrice(0.1); got != "0.10" {
		t.Fatalf("unexpected price %q", got)
	}
}
