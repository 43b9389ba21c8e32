package ui

import (
	"bytes"
	"fmt"
	"strings"

	"CTPConsole/internal/domain/models"
	"CTPConsole/internal/service/alerts"
	"CTPConsole/internal/usecase"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"
)

var (
	primaryColor = lipgloss.Color("#0077cc")
	okColor      = lipgloss.Color("#33cc33")
	errColor     = lipgloss.Color("#cc3300")
	dimColor     = lipgloss.Color("#999999")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(primaryColor).
			Padding(0, 1)

	pillStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().Bold(true)

	alertOkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(okColor).
			Padding(0, 1)

	alertErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(errColor).
			Padding(0, 1)

	focusStyle  = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(dimColor).Padding(0, 1)
	userStyle   = lipgloss.NewStyle().Foreground(primaryColor)
	botStyle    = lipgloss.NewStyle().Foreground(okColor)
)

func (m consoleModel) View() string {
	var b strings.Builder

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("CTP·BOT operator console"),
		pillStyle.Render(m.ui.cfg.Backend.URL),
	)
	b.WriteString(header + "\n")
	b.WriteString(m.renderAlert() + "\n\n")

	switch m.tab {
	case tabDashboard:
		b.WriteString(m.renderDashboard())
		b.WriteString(footerStyle.Render("Keys: S signal · A account · O orders · T test connection · X dismiss · 2 trading · 3 assistant · Q quit"))
	case tabTrading:
		b.WriteString(m.renderTrading())
		b.WriteString(footerStyle.Render("Keys: Tab next field · Enter send order · Esc back"))
	case tabAssistant:
		b.WriteString(m.renderAssistant())
		b.WriteString(footerStyle.Render("Keys: Enter send · Esc back"))
	}

	return b.String()
}

func (m consoleModel) renderAlert() string {
	a := m.ui.console.Alerts.Current()
	if a == nil {
		return pillStyle.Render("—")
	}
	if a.Kind == alerts.KindOk {
		return alertOkStyle.Render(a.Text)
	}
	return alertErrStyle.Render(a.Text)
}

func (m consoleModel) renderDashboard() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderSignalCard(),
		m.renderBalancesCard(),
		m.renderOrdersCard(),
		"",
	)
}

func (m consoleModel) renderSignalCard() string {
	st := m.ui.console.Signal.State()
	title := cardTitleStyle.Render(fmt.Sprintf("Market Snapshot · %s %s %s",
		m.ui.cfg.Trading.Symbol, m.ui.cfg.Trading.Interval, statusSuffix(st.Status)))

	var body string
	if !st.HasData {
		body = "No data yet."
	} else {
		s := st.Data
		rsi, ema := "--", "--"
		if s.RSI != nil {
			rsi = models.FormatPrice(*s.RSI)
		}
		if s.EMA != nil {
			ema = models.FormatPrice(*s.EMA)
		}
		body = fmt.Sprintf("Signal: %-6s  Price: %s  RSI: %s  EMA: %s",
			s.Signal, models.FormatPrice(s.Price), rsi, ema)
		if s.Reason != "" {
			body += "\n" + s.Reason
		}
	}
	if st.Status == usecase.StatusFailed {
		body += "\n" + alertErrStyle.Render(st.Err)
	}

	return cardStyle.Render(title + "\n" + body)
}

func (m consoleModel) renderBalancesCard() string {
	st := m.ui.console.Account.State()
	title := cardTitleStyle.Render("Account Balances " + statusSuffix(st.Status))

	var body strings.Builder
	if !st.HasData {
		body.WriteString("No data yet.")
	} else {
		body.WriteString(fmt.Sprintf("%-8s %16s %16s\n", "Asset", "Free", "Locked"))
		shown := 0
		for _, bal := range st.Data.Balances {
			if !bal.HasFunds() {
				continue
			}
			body.WriteString(fmt.Sprintf("%-8s %16s %16s\n", bal.Asset, bal.Free.String(), bal.Locked.String()))
			shown++
			if shown >= 8 {
				break
			}
		}
		if shown == 0 {
			body.WriteString("No funded assets.")
		}
	}
	if st.Status == usecase.StatusFailed {
		body.WriteString("\n" + alertErrStyle.Render(st.Err))
	}

	return cardStyle.Render(title + "\n" + strings.TrimRight(body.String(), "\n"))
}

func (m consoleModel) renderOrdersCard() string {
	st := m.ui.console.Orders.State()
	title := cardTitleStyle.Render("Open Orders " + statusSuffix(st.Status))

	var body strings.Builder
	if !st.HasData {
		body.WriteString("No data yet.")
	} else if len(st.Data) == 0 {
		body.WriteString("No open orders.")
	} else {
		body.WriteString(fmt.Sprintf("%-12s %-5s %14s %12s %-10s\n", "ID", "Side", "Price", "Qty", "Status"))
		for _, o := range st.Data {
			body.WriteString(fmt.Sprintf("%-12d %-5s %14s %12s %-10s\n",
				o.OrderID, o.Side, o.Price.String(), o.OrigQty.String(), o.Status))
		}
	}
	if st.Status == usecase.StatusFailed {
		body.WriteString("\n" + alertErrStyle.Render(st.Err))
	}

	return cardStyle.Render(title + "\n" + strings.TrimRight(body.String(), "\n"))
}

func (m consoleModel) renderTrading() string {
	st := m.ui.console.Trade.State()
	title := cardTitleStyle.Render("Quick Trade " + statusSuffix(st.Status))

	var form strings.Builder
	for i, f := range m.fields {
		line := fmt.Sprintf("%-10s %s", f.label, f.value)
		if i == m.focus {
			line = focusStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		form.WriteString(line + "\n")
	}

	result := "Order result will appear here…"
	if st.Status == usecase.StatusFailed && st.Err != "" {
		result = st.Err
	} else if st.HasResult {
		result = indentJSON(st.Result)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		cardStyle.Render(title+"\n"+strings.TrimRight(form.String(), "\n")),
		cardStyle.Render(cardTitleStyle.Render("Result")+"\n"+result),
		"",
	)
}

func (m consoleModel) renderAssistant() string {
	session := m.ui.console.Chat
	title := cardTitleStyle.Render("AI Assistant")

	var log strings.Builder
	turns := session.Turns()
	if len(turns) == 0 {
		log.WriteString("Ask the bot anything about the market…\n")
	}
	for _, turn := range turns {
		if turn.Role == models.RoleUser {
			log.WriteString(userStyle.Render("you> ") + turn.Text + "\n")
		} else {
			log.WriteString(botStyle.Render("bot> ") + turn.Text + "\n")
		}
	}
	if session.Pending() {
		log.WriteString(botStyle.Render("bot> ") + "Thinking…\n")
	}

	input := focusStyle.Render("> ") + m.chatInput + "█"

	return lipgloss.JoinVertical(lipgloss.Left,
		cardStyle.Render(title+"\n"+strings.TrimRight(log.String(), "\n")),
		input,
		"",
	)
}

func statusSuffix(s usecase.Status) string {
	switch s {
	case usecase.StatusLoading:
		return "(refreshing…)"
	case usecase.StatusSubmitting:
		return "(sending…)"
	case usecase.StatusFailed:
		return "(failed)"
	default:
		return ""
	}
}

func indentJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
