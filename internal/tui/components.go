package tui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/blinxlabs/zaps/internal/config"
	"github.com/blinxlabs/zaps/internal/logger"
	"github.com/blinxlabs/zaps/internal/state"
	"github.com/blinxlabs/zaps/internal/tui/theme"
	"github.com/blinxlabs/zaps/internal/wallet"
)

// env is shared by every screen of one App.
type env struct {
	ctx     context.Context
	cfg     *config.Config
	profile wallet.Profile
	source  wallet.RecordSource
	prefs   *state.Preferences
}

func (e *env) savePrefs() {
	if e.cfg.DataDir == "" {
		return
	}
	if err := state.Save(e.cfg.DataDir, e.prefs); err != nil {
		logger.Warn("Failed to save preferences: %v", err)
	}
}

// RecordMsg asks the App to append a completed transaction to the sink.
type RecordMsg struct {
	Tx wallet.Transaction
}

func record(tx wallet.Transaction) tea.Cmd {
	return func() tea.Msg { return RecordMsg{Tx: tx} }
}

type recordsLoadedMsg struct {
	records []wallet.Transaction
	err     error
}

type tokensLoadedMsg struct {
	tokens []wallet.Token
	err    error
}

func loadRecords(e *env) tea.Cmd {
	return func() tea.Msg {
		records, err := e.source.FetchRecords(e.ctx)
		return recordsLoadedMsg{records: records, err: err}
	}
}

func loadTokens(e *env) tea.Cmd {
	return func() tea.Msg {
		tokens, err := e.source.FetchTokens(e.ctx)
		return tokensLoadedMsg{tokens: tokens, err: err}
	}
}

// frameWidth is the inner width used by every screen frame.
func frameWidth(width int) int {
	w := width - 4
	if w > 72 {
		w = 72
	}
	if w < 40 {
		w = 40
	}
	return w
}

// renderFrame centers a titled box on screen. counter and footer may be empty.
func renderFrame(width, height int, title, counter, body, footer string) string {
	s := theme.Current().S()

	parts := []string{s.Title.Render(title)}
	if counter != "" {
		parts = append(parts, s.StepCounter.Render(counter))
	}
	parts = append(parts, "", body)
	if footer != "" {
		parts = append(parts, "", footer)
	}

	box := s.Frame.Width(frameWidth(width)).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func stepCounter(pos, total int) string {
	return fmt.Sprintf("Step %d of %d", pos, total)
}

func flowFooter(width int, canContinue bool, label string) string {
	bar := NewButtonBar(FlowButtons(canContinue, label))
	bar.SetWidth(frameWidth(width) - 6)
	return bar.Render()
}

// menuItem is one selectable row of a menu.
type menuItem struct {
	Label  string
	Detail string
	Action func() tea.Cmd
}

// menu is a vertical list of actions navigated with arrow keys.
type menu struct {
	items  []menuItem
	cursor int
}

func newMenu(items ...menuItem) *menu {
	return &menu{items: items}
}

func (m *menu) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.items) == 0 {
		return nil
	}
	switch key.String() {
	case "up", "k":
		m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)
	case "down", "j":
		m.cursor = (m.cursor + 1) % len(m.items)
	case "enter":
		if action := m.items[m.cursor].Action; action != nil {
			return action()
		}
	}
	return nil
}

func (m *menu) View() string {
	s := theme.Current().S()
	lines := make([]string, 0, len(m.items))
	for i, item := range m.items {
		label := "  " + item.Label
		style := s.Subtitle
		if i == m.cursor {
			label = "› " + item.Label
			style = s.Title
		}
		line := style.Render(label)
		if item.Detail != "" {
			line += "  " + s.Muted.Render(item.Detail)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// picker is a set of cards where nothing is selected until the user moves
// onto one, so choose steps start out gated.
type picker struct {
	titles   []string
	details  []string
	selected int
}

func newPicker(titles, details []string) *picker {
	return &picker{titles: titles, details: details, selected: -1}
}

// Update moves the selection and reports whether it changed.
func (p *picker) Update(msg tea.Msg) bool {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || len(p.titles) == 0 {
		return false
	}
	switch key.String() {
	case "up", "k", "left", "h", "shift+tab":
		if p.selected <= 0 {
			p.selected = len(p.titles) - 1
		} else {
			p.selected--
		}
		return true
	case "down", "j", "right", "l", "tab":
		p.selected = (p.selected + 1) % len(p.titles)
		return true
	}
	return false
}

func (p *picker) Select(i int) {
	if i >= -1 && i < len(p.titles) {
		p.selected = i
	}
}

func (p *picker) Selected() int {
	return p.selected
}

func (p *picker) View(width int) string {
	s := theme.Current().S()
	cards := make([]string, 0, len(p.titles))
	for i, title := range p.titles {
		body := title
		if i < len(p.details) && p.details[i] != "" {
			body += "\n" + s.Muted.Render(p.details[i])
		}
		style := s.Card
		if i == p.selected {
			style = s.CardSelected
		}
		cards = append(cards, style.Width(frameWidth(width)-6).Render(body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// newInput returns a text field styled for the wallet theme.
func newInput(placeholder string, secret bool) textinput.Model {
	t := theme.Current()
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = "› "
	in.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.White)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Gray)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.DarkGray)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(t.Secondary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	})
	in.SetWidth(40)
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return in
}

// fieldGroup is an ordered set of inputs with tab focus cycling.
type fieldGroup struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newFieldGroup() *fieldGroup {
	return &fieldGroup{}
}

func (g *fieldGroup) Add(label string, in textinput.Model) *fieldGroup {
	g.labels = append(g.labels, label)
	g.inputs = append(g.inputs, in)
	return g
}

// Focus focuses field i and blurs the rest.
func (g *fieldGroup) Focus(i int) tea.Cmd {
	if len(g.inputs) == 0 {
		return nil
	}
	g.focus = (i + len(g.inputs)) % len(g.inputs)
	for j := range g.inputs {
		if j != g.focus {
			g.inputs[j].Blur()
		}
	}
	return g.inputs[g.focus].Focus()
}

func (g *fieldGroup) Blur() {
	for j := range g.inputs {
		g.inputs[j].Blur()
	}
}

func (g *fieldGroup) Focused() bool {
	for _, in := range g.inputs {
		if in.Focused() {
			return true
		}
	}
	return false
}

// Update handles tab cycling and forwards everything else to the focused
// field.
func (g *fieldGroup) Update(msg tea.Msg) tea.Cmd {
	if len(g.inputs) == 0 {
		return nil
	}
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "tab", "down":
			return g.Focus(g.focus + 1)
		case "shift+tab", "up":
			return g.Focus(g.focus - 1)
		}
	}
	var cmd tea.Cmd
	g.inputs[g.focus], cmd = g.inputs[g.focus].Update(msg)
	return cmd
}

func (g *fieldGroup) Value(i int) string {
	return g.inputs[i].Value()
}

func (g *fieldGroup) SetValue(i int, v string) {
	g.inputs[i].SetValue(v)
}

func (g *fieldGroup) View() string {
	s := theme.Current().S()
	rows := make([]string, 0, len(g.inputs)*2)
	for i, in := range g.inputs {
		rows = append(rows, s.Muted.Render(g.labels[i]), in.View())
	}
	return strings.Join(rows, "\n")
}
