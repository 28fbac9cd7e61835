package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/blinxlabs/zaps/internal/logger"
	"github.com/blinxlabs/zaps/internal/tui/theme"
	"github.com/blinxlabs/zaps/internal/wallet"
)

const recentLimit = 3

// dashboard holds the data both home screens load.
type dashboard struct {
	records []wallet.Transaction
	tokens  []wallet.Token
	err     error
	loaded  bool
}

func (d *dashboard) load(e *env) tea.Cmd {
	return tea.Batch(loadRecords(e), loadTokens(e))
}

func (d *dashboard) update(msg tea.Msg) {
	switch msg := msg.(type) {
	case recordsLoadedMsg:
		d.loaded = true
		d.err = msg.err
		if msg.err != nil {
			logger.Error("Failed to load records: %v", msg.err)
			return
		}
		d.records = msg.records
	case tokensLoadedMsg:
		if msg.err != nil {
			logger.Error("Failed to load tokens: %v", msg.err)
			return
		}
		d.tokens = msg.tokens
	}
}

func (d *dashboard) recentView(filter wallet.Filter) string {
	st := theme.Current().S()
	switch {
	case d.err != nil:
		return st.Error.Render("Could not load transactions")
	case !d.loaded:
		return st.Muted.Render("Loading…")
	}
	records := filter.Apply(d.records)
	if len(records) == 0 {
		return st.Muted.Render("No transactions yet")
	}
	if len(records) > recentLimit {
		records = records[:recentLimit]
	}
	rows := make([]string, 0, len(records))
	for _, tx := range records {
		rows = append(rows, transactionRow(tx))
	}
	return strings.Join(rows, "\n")
}

func (d *dashboard) tokensView() string {
	st := theme.Current().S()
	rows := make([]string, 0, len(d.tokens))
	for _, t := range d.tokens {
		rows = append(rows, fmt.Sprintf("%-5s %s  %s", t.Symbol, st.Amount.Render(t.Balance), st.Muted.Render(t.Name)))
	}
	return strings.Join(rows, "\n")
}

// transactionRow renders one history line.
func transactionRow(tx wallet.Transaction) string {
	st := theme.Current().S()
	label, sign := "Received", "+"
	if tx.Kind == wallet.KindTransfer {
		label, sign = "Transfer", "-"
	}
	amount := sign + tx.Amount
	if tx.Token != "" {
		amount += " " + strings.ToUpper(tx.Token)
	}
	if tx.Value != "" {
		amount += " " + st.Muted.Render("("+tx.Value+")")
	}
	return fmt.Sprintf("%-9s %s  %s  %s",
		label,
		st.Subtitle.Render(tx.Address),
		st.Amount.Render(amount),
		st.Muted.Render(tx.Date()+" "+tx.Time()),
	)
}

// personalHomeScreen is the personal dashboard.
type personalHomeScreen struct {
	env  *env
	data dashboard
	menu *menu
}

func newPersonalHomeScreen(e *env) *personalHomeScreen {
	s := &personalHomeScreen{env: e}
	s.menu = newMenu(
		menuItem{Label: "Send", Detail: "to a Zaps ID or wallet", Action: func() tea.Cmd { return push(newTransferScreen(e)) }},
		menuItem{Label: "Receive", Detail: "share your Zaps ID or address", Action: func() tea.Cmd { return push(newReceiveScreen(e)) }},
		menuItem{Label: "Scan", Detail: "pay a QR code", Action: func() tea.Cmd { return push(newScanScreen(e)) }},
		menuItem{Label: "Tap to pay", Detail: "pay at a terminal", Action: func() tea.Cmd { return push(newTapToPayScreen(e)) }},
		menuItem{Label: "History", Detail: "all transactions", Action: func() tea.Cmd { return push(newHistoryScreen(e)) }},
	)
	return s
}

func (s *personalHomeScreen) Init() tea.Cmd   { return s.data.load(s.env) }
func (s *personalHomeScreen) Resume() tea.Cmd { return s.data.load(s.env) }
func (s *personalHomeScreen) Title() string   { return "Home" }

func (s *personalHomeScreen) Update(msg tea.Msg) tea.Cmd {
	s.data.update(msg)
	return s.menu.Update(msg)
}

func (s *personalHomeScreen) View(width, height int) string {
	st := theme.Current().S()
	p := s.env.profile
	body := strings.Join([]string{
		st.Subtitle.Render("Hi, "+p.Username) + "  " + st.Muted.Render(p.ZapsID),
		"",
		st.Muted.Render("Total balance"),
		st.Amount.Render(p.Balance),
		"",
		s.data.tokensView(),
		"",
		s.menu.View(),
		"",
		st.Muted.Render("Recent"),
		s.data.recentView(wallet.FilterAll),
	}, "\n")
	return renderFrame(width, height, "Zaps", "", body, st.Muted.Render("? help • ctrl+c quit"))
}

// merchantHomeScreen is the merchant dashboard.
type merchantHomeScreen struct {
	env  *env
	data dashboard
	menu *menu
}

func newMerchantHomeScreen(e *env) *merchantHomeScreen {
	s := &merchantHomeScreen{env: e}
	s.menu = newMenu(
		menuItem{Label: "Accept payment", Detail: "tap to pay", Action: func() tea.Cmd { return push(newAcceptPaymentScreen(e)) }},
		menuItem{Label: "QR code", Detail: "payment request", Action: func() tea.Cmd { return push(newQRCodeScreen(e)) }},
		menuItem{Label: "History", Detail: "received payments", Action: func() tea.Cmd { return push(newHistoryScreen(e)) }},
		menuItem{Label: "Settings", Action: func() tea.Cmd { return push(newSettingsScreen(e)) }},
	)
	return s
}

func (s *merchantHomeScreen) Init() tea.Cmd   { return s.data.load(s.env) }
func (s *merchantHomeScreen) Resume() tea.Cmd { return s.data.load(s.env) }
func (s *merchantHomeScreen) Title() string   { return "Merchant" }

func (s *merchantHomeScreen) Update(msg tea.Msg) tea.Cmd {
	s.data.update(msg)
	return s.menu.Update(msg)
}

func (s *merchantHomeScreen) View(width, height int) string {
	st := theme.Current().S()
	body := strings.Join([]string{
		st.Subtitle.Render(s.env.cfg.MerchantName),
		"",
		st.Muted.Render("Today's balance"),
		st.Amount.Render(s.env.profile.Balance),
		"",
		s.menu.View(),
		"",
		st.Muted.Render("Recent payments"),
		s.data.recentView(wallet.FilterReceived),
	}, "\n")
	return renderFrame(width, height, "Zaps Merchant", "", body, st.Muted.Render("? help • ctrl+c quit"))
}
