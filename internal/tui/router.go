package tui

import (
	tea "charm.land/bubbletea/v2"
)

// Screen is one page on the navigation stack.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
	Title() string
}

// Closer is implemented by screens that own timers or other resources.
// Close is called when the screen leaves the stack.
type Closer interface {
	Close()
}

// Resumer is implemented by screens that refresh when they become the top
// of the stack again.
type Resumer interface {
	Resume() tea.Cmd
}

// InputCapturer is implemented by screens with a focused text field; global
// single-key shortcuts are not intercepted while it reports true.
type InputCapturer interface {
	CapturesInput() bool
}

// Navigation messages. Screens return these through the helper commands
// below instead of touching the router directly.
type (
	PushMsg    struct{ Screen Screen }
	ReplaceMsg struct{ Screen Screen }
	ResetMsg   struct{ Screen Screen }
	BackMsg    struct{}
	HomeMsg    struct{}
)

func push(s Screen) tea.Cmd    { return func() tea.Msg { return PushMsg{Screen: s} } }
func replace(s Screen) tea.Cmd { return func() tea.Msg { return ReplaceMsg{Screen: s} } }
func reset(s Screen) tea.Cmd   { return func() tea.Msg { return ResetMsg{Screen: s} } }
func back() tea.Msg            { return BackMsg{} }
func home() tea.Msg            { return HomeMsg{} }

// Router is a stack of screens. The bottom screen is the home screen and is
// never popped by Back.
type Router struct {
	stack []Screen
}

// NewRouter creates a router with root as the home screen.
func NewRouter(root Screen) *Router {
	return &Router{stack: []Screen{root}}
}

// Current returns the top screen.
func (r *Router) Current() Screen {
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// AtHome reports whether only the home screen is on the stack.
func (r *Router) AtHome() bool {
	return len(r.stack) == 1
}

// Push adds s on top and initializes it.
func (r *Router) Push(s Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Back pops the top screen. It reports false at home, where nothing changes.
func (r *Router) Back() (tea.Cmd, bool) {
	if r.AtHome() {
		return nil, false
	}
	r.pop()
	return r.resume(), true
}

// Replace swaps the top screen for s.
func (r *Router) Replace(s Screen) tea.Cmd {
	closeScreen(r.Current())
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Home pops everything above the home screen.
func (r *Router) Home() tea.Cmd {
	if r.AtHome() {
		return nil
	}
	for !r.AtHome() {
		r.pop()
	}
	return r.resume()
}

// Reset closes every screen and makes s the new home screen.
func (r *Router) Reset(s Screen) tea.Cmd {
	r.CloseAll()
	r.stack = []Screen{s}
	return s.Init()
}

// CloseAll closes every screen on the stack, top first.
func (r *Router) CloseAll() {
	for i := len(r.stack) - 1; i >= 0; i-- {
		closeScreen(r.stack[i])
	}
}

func (r *Router) pop() {
	top := r.stack[len(r.stack)-1]
	r.stack[len(r.stack)-1] = nil
	r.stack = r.stack[:len(r.stack)-1]
	closeScreen(top)
}

func (r *Router) resume() tea.Cmd {
	if res, ok := r.Current().(Resumer); ok {
		return res.Resume()
	}
	return nil
}

func closeScreen(s Screen) {
	if c, ok := s.(Closer); ok {
		c.Close()
	}
}
