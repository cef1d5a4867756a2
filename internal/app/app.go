package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kdiallo/rianterm/internal/api"
	"github.com/kdiallo/rianterm/internal/auth"
	"github.com/kdiallo/rianterm/internal/guard"
	"github.com/kdiallo/rianterm/internal/router"
	"github.com/kdiallo/rianterm/internal/screen"
	"github.com/kdiallo/rianterm/internal/screens/dashboard"
	"github.com/kdiallo/rianterm/internal/screens/login"
	"github.com/kdiallo/rianterm/internal/store"
	"github.com/kdiallo/rianterm/internal/ui/layout"
	"github.com/kdiallo/rianterm/internal/ui/theme"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Session *auth.Store
	Client  *api.Client
	Events  store.EventRepo

	// Fragment is a pre-supplied callback URL (--callback); when set the
	// login screen exchanges its token immediately.
	Fragment string
}

// restoredMsg signals that the initial session restore finished.
type restoredMsg struct {
	Session auth.Session
}

// AppModel is the root Bubble Tea model. It owns the screen router and
// applies the access guard on every update: protected screens render only
// for an authenticated session, show a neutral loading frame while the
// restore is pending, and are replaced by login otherwise.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel picks the initial screen: login when a callback fragment is
// pending, otherwise the dashboard (which the guard suspends until the
// restore resolves).
func newAppModel(opts Options) AppModel {
	var initial screen.Screen
	if opts.Fragment != "" {
		initial = login.New(opts.Session, opts.Client, opts.Events, opts.Fragment)
	} else {
		initial = dashboard.New(opts.Session, opts.Client, opts.Events)
	}
	return AppModel{
		opts:   opts,
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	session := m.opts.Session
	restore := func() tea.Msg {
		return restoredMsg{Session: session.Restore(context.Background())}
	}
	if active := m.router.Active(); active != nil {
		return tea.Batch(restore, active.Init())
	}
	return restore
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case restoredMsg:
		// Restore finished; the guard pass below resolves where to go.
		// A restore miss is benign and carries no user-facing error.
		_ = msg
		return m, m.applyGuard()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	if guardCmd := m.applyGuard(); guardCmd != nil {
		return m, tea.Batch(cmd, guardCmd)
	}
	return m, cmd
}

// applyGuard re-evaluates the access guard against the active screen. The
// guard is a pure function of session state; this is its only caller with
// authority to force navigation.
func (m AppModel) applyGuard() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	sess := m.opts.Session.Current()

	if _, isProtected := active.(screen.Protected); isProtected {
		if guard.Evaluate(sess.State) == guard.RedirectLogin {
			// Attempted destination is discarded by design.
			next := login.New(m.opts.Session, m.opts.Client, m.opts.Events, "")
			return func() tea.Msg { return router.ResetScreenMsg{Screen: next} }
		}
		return nil
	}

	// An authenticated session on the login screen goes straight to the
	// dashboard, unless a fresh token exchange is still pending there.
	if l, ok := active.(*login.LoginScreen); ok && sess.State == auth.StateAuthenticated && !l.ExchangePending() {
		next := dashboard.New(m.opts.Session, m.opts.Client, m.opts.Events)
		return func() tea.Msg { return router.ResetScreenMsg{Screen: next} }
	}
	return nil
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	sess := m.opts.Session.Current()
	userName := ""
	if sess.Identity != nil {
		userName = sess.Identity.Name
	}

	header := layout.RenderHeader(title, userName, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	var content string
	if _, isProtected := active.(screen.Protected); isProtected && guard.Evaluate(sess.State) == guard.ShowLoading {
		// Restore still pending: neutral indicator, never a redirect,
		// so a session about to be restored doesn't flash to login.
		content = lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Checking your session..."))
	} else {
		content = m.router.View(m.width, contentHeight)
	}

	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
