package usecase

import (
	"context"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"CTPConsole/internal/domain/models"
	"CTPConsole/internal/service/alerts"
	xhttp "CTPConsole/pkg/http"
)

// fakeBackend returns canned responses per operation.
type fakeBackend struct {
	health     models.HealthStatus
	healthErr  error
	signal     models.Signal
	signalErr  error
	account    models.AccountSnapshot
	accountErr error
	orders     models.OrderList
	ordersErr  error
	trade      json.RawMessage
	tradeErr   error
	chat       models.ChatResponse
	chatErr    error
}

func (f *fakeBackend) Health(ctx context.Context) (models.HealthStatus, error) {
	return f.health, f.healthErr
}

func (f *fakeBackend) Signal(ctx context.Context) (models.Signal, error) {
	return f.signal, f.signalErr
}

func (f *fakeBackend) Account(ctx context.Context) (models.AccountSnapshot, error) {
	return f.account, f.accountErr
}

func (f *fakeBackend) OpenOrders(ctx context.Context) (models.OrderList, error) {
	return f.orders, f.ordersErr
}

func (f *fakeBackend) Trade(ctx context.Context, req models.TradeRequest) (json.RawMessage, error) {
	return f.trade, f.tradeErr
}

func (f *fakeBackend) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	return f.chat, f.chatErr
}

func newTestConsole(t *testing.T, backend *fakeBackend) *Console {
	t.Helper()
	return NewConsole(backend, alerts.NewBus(time.Minute), testLogger(t))
}

func TestConsoleSignalRefresh(t *testing.T) {
	backend := &fakeBackend{
		signal: models.Signal{Signal: "BUY", Price: 61234.5},
	}
	c := newTestConsole(t, backend)

	c.Signal.Refresh(context.Background())

	st := c.Signal.State()
	if st.Status != StatusReady || st.Data.Signal != "BUY" {
		t.Fatalf("unexpected signal state %+v", st)
	}
	a := c.Alerts.Current()
	if a == nil || a.Kind != alerts.KindOk || a.Text != "Signal updated." {
		t.Fatalf("unexpected alert %+v", a)
	}
}

func TestConsoleOrdersFailureAlert(t *testing.T) {
	backend := &fakeBackend{
		ordersErr: &xhttp.APIError{Status: 500, Body: "insufficient permissions"},
	}
	c := newTestConsole(t, backend)

	c.Orders.Refresh(context.Background())

	st := c.Orders.State()
	if st.Status != StatusFailed {
		t.Fatalf("expected failed, got %q", st.Status)
	}
	want := "Backend error: 500 → insufficient permissions"
	if st.Err != want {
		t.Fatalf("unexpected error %q", st.Err)
	}
	a := c.Alerts.Current()
	if a == nil || a.Kind != alerts.KindError || a.Text != want {
		t.Fatalf("unexpected alert %+v", a)
	}
}

func TestConsoleTradeResultVerbatim(t *testing.T) {
	raw := json.RawMessage(`{"orderId":7,"status":"NEW","fills":[]}`)
	backend := &fakeBackend{trade: raw}
	c := newTestConsole(t, backend)

	c.Trade.Submit(context.Background(), models.TradeRequest{
		Symbol:       "BTCUSDT",
		Side:         models.SideBuy,
		Quantity:     0.001,
		ForceExecute: true,
	})

	st := c.Trade.State()
	if st.Status != StatusSucceeded || string(st.Result) != string(raw) {
		t.Fatalf("unexpected trade state %+v", st)
	}
	if a := c.Alerts.Current(); a == nil || a.Text != "Trade executed." {
		t.Fatalf("unexpected alert %+v", a)
	}
}

func TestConsoleChatFlow(t *testing.T) {
	backend := &fakeBackend{
		chat: models.ChatResponse{Answer: "All clear."},
	}
	c := newTestConsole(t, backend)

	c.Chat.Ask(context.Background(), "status?")

	if turns := c.Chat.Turns(); len(turns) != 2 || turns[1].Text != "All clear." {
		t.Fatalf("unexpected transcript %v", turns)
	}
	if a := c.Alerts.Current(); a == nil || a.Text != "AI Responded" {
		t.Fatalf("unexpected alert %+v", a)
	}
}

func TestConsoleTestConnection(t *testing.T) {
	backend := &fakeBackend{
		health: models.HealthStatus{Status: "ok", Service: "trade-backend"},
	}
	c := newTestConsole(t, backend)

	c.TestConnection(context.Background())
	if a := c.Alerts.Current(); a == nil || a.Text != "Backend online: trade-backend" {
		t.Fatalf("unexpected alert %+v", a)
	}

	backend.healthErr = &xhttp.APIError{Status: 503, Body: "down"}
	c.TestConnection(context.Background())
	if a := c.Alerts.Current(); a == nil || a.Kind != alerts.KindError {
		t.Fatalf("unexpected alert %+v", a)
	}
}

func TestConsoleSnapshot(t *testing.T) {
	backend := &fakeBackend{
		signal: models.Signal{Signal: "SELL", Price: 60000},
		account: models.AccountSnapshot{Balances: []models.Balance{
			{Asset: "BTC", Free: decimal.NewFromFloat(0.5)},
		}},
	}
	c := newTestConsole(t, backend)

	c.Signal.Refresh(context.Background())
	c.Account.Refresh(context.Background())

	snap := c.Snapshot()
	if snap.Signal.Status != StatusReady || snap.Signal.Data.Signal != "SELL" {
		t.Fatalf("unexpected signal snapshot %+v", snap.Signal)
	}
	if snap.Account.Status != StatusReady || len(snap.Account.Data.Balances) != 1 {
		t.Fatalf("unexpected account snapshot %+v", snap.Account)
	}
	if snap.Orders.Status != StatusIdle || snap.Trade.Status != StatusIdle {
		t.Fatalf("expected untouched controllers to stay idle")
	}
	if snap.Turns != 0 {
		t.Fatalf("expected empty transcript, got %d", snap.Turns)
	}
}

func TestConsoleCloseDropsEverything(t *testing.T) {
	backend := &fakeBackend{
		signal: models.Signal{Signal: "BUY", Price: 1},
	}
	c := newTestConsole(t, backend)

	c.Signal.Refresh(context.Background())
	c.Close()

	if a := c.Alerts.Current(); a != nil {
		t.Fatalf("expected alerts cleared, got %+v", a)
	}
	if c.Signal.Refresh(context.Background()) {
		t.Fatalf("expected refresh after close to be ignored")
	}
	if c.Trade.Submit(context.Background(), models.TradeRequest{
		Symbol: "BTCUSDT", Side: models.SideBuy, Quantity: 1,
	}) {
		t.Fatalf("expected submit after close to be ignored")
	}
}
