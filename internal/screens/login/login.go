package login

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kdiallo/rianterm/internal/api"
	"github.com/kdiallo/rianterm/internal/auth"
	"github.com/kdiallo/rianterm/internal/router"
	"github.com/kdiallo/rianterm/internal/screen"
	"github.com/kdiallo/rianterm/internal/screens/dashboard"
	"github.com/kdiallo/rianterm/internal/store"
	"github.com/kdiallo/rianterm/internal/ui/components"
	"github.com/kdiallo/rianterm/internal/ui/layout"
	"github.com/kdiallo/rianterm/internal/ui/theme"
)

// exchangeResultMsg carries the outcome of a token exchange.
type exchangeResultMsg struct {
	Identity *api.Identity
	Err      error
}

// brokerOpenedMsg carries the broker URL after a login hand-off attempt.
type brokerOpenedMsg struct {
	URL string
	Err error
}

// LoginScreen runs the session exchange protocol. The identity broker sends
// the user back to the portal's return URL with a one-time token in the
// fragment; the user pastes that URL (or just the fragment) here.
type LoginScreen struct {
	session *auth.Store
	client  *api.Client
	events  store.EventRepo

	input      components.TextInput
	fragment   string // pre-supplied via --callback, exchanged on Init
	exchanging bool
	errMsg     string
	brokerURL  string

	ctx    context.Context
	cancel context.CancelFunc
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)
var _ screen.Teardowner = (*LoginScreen)(nil)

// New creates the login screen. fragment may carry a pre-supplied callback
// URL whose token is exchanged immediately on Init.
func New(session *auth.Store, client *api.Client, events store.EventRepo, fragment string) *LoginScreen {
	ctx, cancel := context.WithCancel(context.Background())
	return &LoginScreen{
		session:  session,
		client:   client,
		events:   events,
		input:    components.NewTextInput("Paste the callback URL here...", 512),
		fragment: fragment,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (l *LoginScreen) Title() string {
	return "Sign in"
}

func (l *LoginScreen) Teardown() {
	l.cancel()
}

// ExchangePending reports whether a token exchange is queued or running.
// The app holds off its authenticated-redirect while one is pending so the
// exchange result can clear the fragment first.
func (l *LoginScreen) ExchangePending() bool {
	return l.exchanging || l.fragment != ""
}

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "o", Description: "Open sign-in page"},
		{Key: "Enter", Description: "Exchange token"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (l *LoginScreen) Init() tea.Cmd {
	// Re-entry guard: arriving here with an established session and no
	// pending token goes straight to the dashboard.
	if l.fragment == "" && l.session.Current().State == auth.StateAuthenticated {
		return l.toDashboard()
	}
	if l.fragment != "" {
		return tea.Batch(l.input.Init(), l.exchange(l.fragment))
	}
	return l.input.Init()
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exchangeResultMsg:
		l.exchanging = false
		if msg.Err != nil {
			// Keep the pasted fragment so the user can inspect or
			// retry; only a successful exchange clears it.
			l.errMsg = "Authentication failed: " + msg.Err.Error()
			l.input.Submit(false)
			return l, nil
		}
		l.errMsg = ""
		l.fragment = ""
		l.input.Clear()
		return l, l.toDashboard()

	case brokerOpenedMsg:
		l.brokerURL = msg.URL
		if msg.Err != nil {
			l.errMsg = "Could not open a browser; visit the URL below manually."
		}
		return l, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "o":
			if l.input.Value() == "" {
				return l, l.openBroker()
			}
		case "enter":
			if l.exchanging {
				return l, nil
			}
			value := strings.TrimSpace(l.input.Value())
			if _, err := auth.ParseFragmentToken(value); err != nil {
				l.errMsg = "No session_id token found in the pasted text."
				l.input.Submit(false)
				return l, nil
			}
			l.exchanging = true
			l.errMsg = ""
			return l, l.exchange(value)
		}
	}

	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd
}

// exchange runs the one-shot token exchange off the main loop.
func (l *LoginScreen) exchange(fragment string) tea.Cmd {
	ctx := l.ctx
	session := l.session
	return func() tea.Msg {
		identity, err := session.ExchangeFragment(ctx, fragment)
		if errors.Is(err, auth.ErrNoToken) {
			return exchangeResultMsg{Err: errors.New("no session_id token in callback")}
		}
		return exchangeResultMsg{Identity: identity, Err: err}
	}
}

// openBroker hands the user off to the identity broker.
func (l *LoginScreen) openBroker() tea.Cmd {
	ctx := l.ctx
	session := l.session
	return func() tea.Msg {
		url, err := session.BeginLogin(ctx, "")
		return brokerOpenedMsg{URL: url, Err: err}
	}
}

func (l *LoginScreen) toDashboard() tea.Cmd {
	next := dashboard.New(l.session, l.client, l.events)
	return func() tea.Msg {
		return router.ResetScreenMsg{Screen: next}
	}
}

func (l *LoginScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Render("RIAN Learning Portal")
	sections = append(sections, title, "")

	if l.exchanging {
		sections = append(sections, theme.Hint.Render("Exchanging token..."), "")
	}

	if l.errMsg != "" {
		sections = append(sections, theme.ErrorBanner.Render(l.errMsg), "")
	}

	intro := theme.Body.Render("Press 'o' to open the sign-in page in your browser.\n" +
		"After consenting, paste the callback URL below and press Enter.")
	sections = append(sections, intro, "")
	sections = append(sections, l.input.View())

	if l.brokerURL != "" {
		sections = append(sections, "", theme.Hint.Render(l.brokerURL))
	}

	content := strings.Join(sections, "\n")
	card := theme.Card.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
