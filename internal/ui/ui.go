package ui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"CTPConsole/internal/domain/models"
	"CTPConsole/internal/usecase"
	"CTPConsole/pkg/config"

	tea "github.com/charmbracelet/bubbletea"
)

// UI is the terminal shell of the console. It renders controller state
// and feeds triggers back into the use cases; all lifecycle state
// lives in usecase.Console.
type UI struct {
	cfg     *config.Config
	console *usecase.Console
	program *tea.Program
	ctx     context.Context
}

// New creates the terminal UI over a console session.
func New(cfg *config.Config, console *usecase.Console) *UI {
	return &UI{cfg: cfg, console: console}
}

// Start runs the UI until the operator quits. Blocking.
func (u *UI) Start(ctx context.Context) error {
	u.ctx = ctx
	u.program = tea.NewProgram(newModel(u), tea.WithAltScreen())

	// Redraw whenever the alert slot changes (publish, expiry, clear).
	u.console.Alerts.SetOnChange(func() {
		if u.program != nil {
			u.program.Send(stateMsg{})
		}
	})

	_, err := u.program.Run()
	return err
}

// Quit stops the UI from outside (signal handling).
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

type tab int

const (
	tabDashboard tab = iota
	tabTrading
	tabAssistant
)

// stateMsg asks for a redraw after controller state moved.
type stateMsg struct{}

// tickMsg keeps the view current while calls are in flight.
type tickMsg time.Time

type formField struct {
	label string
	value string
}

type consoleModel struct {
	ui     *UI
	tab    tab
	width  int
	height int

	// trading form
	fields []formField
	focus  int

	// assistant input
	chatInput string
}

func newModel(u *UI) consoleModel {
	return consoleModel{
		ui:    u,
		tab:   tabDashboard,
		width: 100,
		fields: []formField{
			{label: "Symbol", value: u.cfg.Trading.Symbol},
			{label: "Side", value: models.SideBuy},
			{label: "Type", value: models.TypeMarket},
			{label: "Quantity", value: "0.001"},
			{label: "Price", value: ""},
			{label: "Force", value: "false"},
		},
	}
}

func tick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m consoleModel) Init() tea.Cmd {
	return tick()
}

func (m consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tick()

	case stateMsg:
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.tab {
		case tabDashboard:
			return m.updateDashboard(msg)
		case tabTrading:
			return m.updateTrading(msg)
		case tabAssistant:
			return m.updateAssistant(msg)
		}
	}

	return m, nil
}

func (m consoleModel) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.ui.console
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "1":
		m.tab = tabDashboard
	case "2":
		m.tab = tabTrading
	case "3":
		m.tab = tabAssistant
	case "s":
		return m, m.run(func(ctx context.Context) { c.Signal.Refresh(ctx) })
	case "a":
		return m, m.run(func(ctx context.Context) { c.Account.Refresh(ctx) })
	case "o":
		return m, m.run(func(ctx context.Context) { c.Orders.Refresh(ctx) })
	case "t":
		return m, m.run(func(ctx context.Context) { c.TestConnection(ctx) })
	case "x":
		c.Alerts.Clear()
	}
	return m, nil
}

func (m consoleModel) updateTrading(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.tab = tabDashboard
	case "tab", "down":
		m.focus = (m.focus + 1) % len(m.fields)
	case "shift+tab", "up":
		m.focus = (m.focus + len(m.fields) - 1) % len(m.fields)
	case "enter":
		req := m.tradeRequest()
		return m, m.run(func(ctx context.Context) { m.ui.console.Trade.Submit(ctx, req) })
	case "backspace":
		v := m.fields[m.focus].value
		if len(v) > 0 {
			m.fields[m.focus].value = v[:len(v)-1]
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.fields[m.focus].value += string(msg.Runes)
		}
	}
	return m, nil
}

func (m consoleModel) updateAssistant(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.tab = tabDashboard
	case "enter":
		q := m.chatInput
		m.chatInput = ""
		return m, m.run(func(ctx context.Context) { m.ui.console.Chat.Ask(ctx, q) })
	case "backspace":
		if len(m.chatInput) > 0 {
			m.chatInput = m.chatInput[:len(m.chatInput)-1]
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.chatInput += string(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			m.chatInput += " "
		}
	}
	return m, nil
}

// run executes a controller trigger off the UI goroutine and redraws
// when it completes. bubbletea runs each Cmd concurrently, so the view
// stays responsive while the call is in flight.
func (m consoleModel) run(fn func(ctx context.Context)) tea.Cmd {
	ctx := m.ui.ctx
	return func() tea.Msg {
		fn(ctx)
		return stateMsg{}
	}
}

// tradeRequest builds the payload from the form as typed. Anything
// unparsable is left for payload validation to reject.
func (m consoleModel) tradeRequest() models.TradeRequest {
	get := func(i int) string { return strings.TrimSpace(m.fields[i].value) }

	req := models.TradeRequest{
		Symbol: get(0),
		Side:   strings.ToUpper(get(1)),
		Type:   strings.ToUpper(get(2)),
	}
	if q, err := strconv.ParseFloat(get(3), 64); err == nil {
		req.Quantity = q
	}
	if p := get(4); p != "" {
		if v, err := strconv.ParseFloat(p, 64); err == nil {
			req.Price = &v
		}
	}
	req.ForceExecute = strings.EqualFold(get(5), "true")
	return req
}
