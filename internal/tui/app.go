// Package tui is the terminal host for the wallet flows: a stack of screens
// driven by Bubbletea, with timers owned by the screens that start them.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/blinxlabs/zaps/internal/config"
	"github.com/blinxlabs/zaps/internal/logger"
	"github.com/blinxlabs/zaps/internal/state"
	"github.com/blinxlabs/zaps/internal/tui/theme"
	"github.com/blinxlabs/zaps/internal/wallet"
)

// Options configures an App.
type Options struct {
	Config  *config.Config
	Profile wallet.Profile
	Source  wallet.RecordSource
	// Sink receives completed transactions. Nil disables recording.
	Sink  wallet.RecordSink
	Prefs *state.Preferences
	// Onboard starts at the welcome screen instead of the dashboard.
	Onboard bool
}

// recordSavedMsg reports the result of appending a record to the sink.
type recordSavedMsg struct {
	tx  wallet.Transaction
	err error
}

// App is the root Bubbletea model.
type App struct {
	env      *env
	sink     wallet.RecordSink
	router   *Router
	toast    *Toast
	help     helpOverlay
	width    int
	height   int
	quitting bool
}

// New creates the App. Missing options fall back to defaults: the built-in
// config, the static record source and default preferences.
func New(ctx context.Context, opts Options) *App {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Source == nil {
		opts.Source = wallet.NewStaticSource()
	}
	if opts.Prefs == nil {
		opts.Prefs = state.DefaultPreferences()
	}
	if opts.Profile.ZapsID == "" {
		kind, err := wallet.ParseAccountKind(opts.Config.Account)
		if err != nil {
			logger.Warn("Falling back to personal account: %v", err)
		}
		opts.Profile = wallet.DefaultProfile(kind, opts.Config.Username)
	}

	e := &env{
		ctx:     ctx,
		cfg:     opts.Config,
		profile: opts.Profile,
		source:  opts.Source,
		prefs:   opts.Prefs,
	}

	var root Screen
	switch {
	case opts.Onboard:
		root = newWelcomeScreen(e)
	case opts.Profile.Kind == wallet.AccountMerchant:
		root = newMerchantHomeScreen(e)
	default:
		root = newPersonalHomeScreen(e)
	}

	return &App{
		env:    e,
		sink:   opts.Sink,
		router: NewRouter(root),
		toast:  NewToast(),
	}
}

// Run starts a full-screen program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	app := New(ctx, opts)
	defer app.router.CloseAll()

	p := tea.NewProgram(app, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}

// Init initializes the home screen.
func (a *App) Init() tea.Cmd {
	logger.Debug("TUI starting on %s", a.router.Current().Title())
	return a.router.Current().Init()
}

// Update routes navigation and record messages and forwards the rest to the
// top screen.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyPressMsg:
		if cmd, handled := a.handleKey(msg); handled {
			return a, cmd
		}

	case PushMsg:
		logger.Debug("Navigate: push %s", msg.Screen.Title())
		return a, a.router.Push(msg.Screen)

	case ReplaceMsg:
		logger.Debug("Navigate: replace with %s", msg.Screen.Title())
		return a, a.router.Replace(msg.Screen)

	case ResetMsg:
		logger.Debug("Navigate: reset to %s", msg.Screen.Title())
		return a, a.router.Reset(msg.Screen)

	case BackMsg:
		cmd, _ := a.router.Back()
		return a, cmd

	case HomeMsg:
		return a, a.router.Home()

	case RecordMsg:
		return a, a.appendRecord(msg.Tx)

	case recordSavedMsg:
		if msg.err != nil {
			logger.Error("Failed to record %s of %s: %v", msg.tx.Kind, msg.tx.Amount, msg.err)
			return a, a.toast.Show("Could not save transaction")
		}
		logger.Debug("Recorded %s of %s", msg.tx.Kind, msg.tx.Amount)
		return a, nil

	case ShowToastMsg:
		return a, a.toast.Show(msg.Text)

	case ToastDismissMsg:
		return a, a.toast.Update(msg)

	case DelayMsg:
		if a.toast.IsVisible() {
			a.toast.Update(msg)
		}
	}

	return a, a.router.Current().Update(msg)
}

// handleKey processes global keys. It reports false when the key should go
// to the current screen.
func (a *App) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return a.quit(), true
	}

	if a.help.visible {
		switch msg.String() {
		case "?", "esc", "q", "f1":
			a.help.Toggle()
		}
		return nil, true
	}

	if msg.String() == "f1" {
		a.help.Toggle()
		return nil, true
	}

	if capt, ok := a.router.Current().(InputCapturer); ok && capt.CapturesInput() {
		return nil, false
	}

	switch msg.String() {
	case "?":
		a.help.Toggle()
		return nil, true
	case "q":
		if a.router.AtHome() {
			return a.quit(), true
		}
	}
	return nil, false
}

func (a *App) quit() tea.Cmd {
	a.quitting = true
	a.router.CloseAll()
	return tea.Quit
}

// appendRecord hands a completed transaction to the sink off the UI loop.
func (a *App) appendRecord(tx wallet.Transaction) tea.Cmd {
	if a.sink == nil {
		logger.Debug("No record sink configured, dropping %s", tx.Kind)
		return nil
	}
	tx = tx.Stamped(time.Now())
	sink, ctx := a.sink, a.env.ctx
	return func() tea.Msg {
		return recordSavedMsg{tx: tx, err: sink.Append(ctx, tx)}
	}
}

// Current returns the top screen.
func (a *App) Current() Screen {
	return a.router.Current()
}

// View renders the top screen, the help overlay and the toast.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if a.quitting {
		view.AltScreen = false
		view.Content = lipgloss.NewLayer("")
		return view
	}

	canvas := uv.NewScreenBuffer(a.width, a.height)
	area := canvas.Bounds()

	content := a.router.Current().View(a.width, a.height)
	if a.help.visible {
		content = lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.help.View(a.width))
	}
	uv.NewStyledString(content).Draw(canvas, area)

	if toast := a.toast.View(); toast != "" {
		w := lipgloss.Width(toast)
		x := max(a.width-w-1, 0)
		y := max(a.height-2, 0)
		uv.NewStyledString(toast).Draw(canvas, uv.Rect(x, y, w, 1))
	}

	view.Content = lipgloss.NewLayer(canvas.Render())
	view.BackgroundColor = theme.HexToColor(theme.Current().Black)
	return view
}
