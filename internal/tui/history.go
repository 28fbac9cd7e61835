package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/blinxlabs/zaps/internal/logger"
	"github.com/blinxlabs/zaps/internal/tui/theme"
	"github.com/blinxlabs/zaps/internal/wallet"
)

const historyPageSize = 10

// historyScreen lists records with All/Received/Transfer tabs. The selected
// tab is remembered in preferences.
type historyScreen struct {
	env     *env
	filter  wallet.Filter
	records []wallet.Transaction
	offset  int
	loaded  bool
	err     error
}

func newHistoryScreen(e *env) *historyScreen {
	filter, err := wallet.ParseFilter(e.prefs.HistoryFilter)
	if err != nil {
		logger.Warn("Ignoring saved history filter: %v", err)
	}
	return &historyScreen{env: e, filter: filter}
}

func (s *historyScreen) Init() tea.Cmd { return loadRecords(s.env) }

func (s *historyScreen) Title() string { return "History" }

func (s *historyScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case recordsLoadedMsg:
		s.loaded = true
		s.err = msg.err
		if msg.err != nil {
			logger.Error("Failed to load history: %v", msg.err)
			return nil
		}
		s.records = msg.records
	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return back
		case "right", "l", "tab":
			s.setFilter(s.filter.Next())
		case "left", "h", "shift+tab":
			s.setFilter(s.filter.Prev())
		case "down", "j":
			if s.offset+historyPageSize < len(s.visible()) {
				s.offset++
			}
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		}
	}
	return nil
}

func (s *historyScreen) setFilter(f wallet.Filter) {
	s.filter = f
	s.offset = 0
	s.env.prefs.HistoryFilter = string(f)
	s.env.savePrefs()
}

func (s *historyScreen) visible() []wallet.Transaction {
	return s.filter.Apply(s.records)
}

func (s *historyScreen) View(width, height int) string {
	st := theme.Current().S()

	tabs := make([]string, 0, len(wallet.Filters))
	for _, f := range wallet.Filters {
		if f == s.filter {
			tabs = append(tabs, st.TabActive.Render(string(f)))
		} else {
			tabs = append(tabs, st.TabInactive.Render(string(f)))
		}
	}

	var list string
	switch {
	case s.err != nil:
		list = st.Error.Render("Could not load transactions")
	case !s.loaded:
		list = st.Muted.Render("Loading…")
	default:
		rows := s.visible()
		if len(rows) == 0 {
			list = st.Muted.Render("No " + strings.ToLower(string(s.filter)) + " transactions")
			break
		}
		end := min(s.offset+historyPageSize, len(rows))
		lines := make([]string, 0, end-s.offset)
		for _, tx := range rows[s.offset:end] {
			lines = append(lines, transactionRow(tx))
		}
		list = strings.Join(lines, "\n")
	}

	body := strings.Join(tabs, " ") + "\n\n" + list
	return renderFrame(width, height, "Transaction history", "", body, st.Muted.Render("←/→ filter • ↑/↓ scroll • esc back"))
}
