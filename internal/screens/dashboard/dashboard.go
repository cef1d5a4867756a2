package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kdiallo/rianterm/internal/api"
	"github.com/kdiallo/rianterm/internal/auth"
	"github.com/kdiallo/rianterm/internal/progress"
	"github.com/kdiallo/rianterm/internal/router"
	"github.com/kdiallo/rianterm/internal/screen"
	"github.com/kdiallo/rianterm/internal/screens/competences"
	"github.com/kdiallo/rianterm/internal/store"
	"github.com/kdiallo/rianterm/internal/ui/components"
	"github.com/kdiallo/rianterm/internal/ui/layout"
	"github.com/kdiallo/rianterm/internal/ui/theme"
)

// catalogMsg carries the competence catalog fetch result.
type catalogMsg struct {
	Catalog []api.Competence
	Err     error
}

// progressMsg carries the progress records fetch result.
type progressMsg struct {
	Records []api.ProgressRecord
	Err     error
}

// loggedOutMsg signals that logout completed and login should take over.
type loggedOutMsg struct{}

// DashboardScreen shows the derived progress summary and the main menu. The
// catalog and progress fetches run concurrently; the summary renders once
// both have resolved, and a failure of either is surfaced instead of being
// silently folded into zeros.
type DashboardScreen struct {
	session *auth.Store
	client  *api.Client
	events  store.EventRepo

	menu components.Menu

	catalog     []api.Competence
	records     []api.ProgressRecord
	catalogDone bool
	recordsDone bool
	fetchErrs   []string

	ctx    context.Context
	cancel context.CancelFunc
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.Protected = (*DashboardScreen)(nil)
var _ screen.Teardowner = (*DashboardScreen)(nil)

// New creates the dashboard screen.
func New(session *auth.Store, client *api.Client, events store.EventRepo) *DashboardScreen {
	ctx, cancel := context.WithCancel(context.Background())
	d := &DashboardScreen{
		session: session,
		client:  client,
		events:  events,
		ctx:     ctx,
		cancel:  cancel,
	}

	d.menu = components.NewMenu([]components.MenuItem{
		{Label: "COMPETENCES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: competences.New(session, client, events),
				}
			}
		}},
		{Label: "REFRESH", Action: func() tea.Cmd {
			return d.refresh()
		}},
		{Label: "SIGN OUT", Action: func() tea.Cmd {
			return d.logout()
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})

	return d
}

func (d *DashboardScreen) Protected() {}

func (d *DashboardScreen) Teardown() {
	d.cancel()
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) Init() tea.Cmd {
	return d.refresh()
}

// refresh launches both fetches concurrently. The view counts as loaded only
// once both messages have arrived.
func (d *DashboardScreen) refresh() tea.Cmd {
	d.catalogDone = false
	d.recordsDone = false
	d.fetchErrs = nil

	ctx := d.ctx
	client := d.client
	return tea.Batch(
		func() tea.Msg {
			catalog, err := client.Competences(ctx)
			return catalogMsg{Catalog: catalog, Err: err}
		},
		func() tea.Msg {
			records, err := client.Progress(ctx)
			return progressMsg{Records: records, Err: err}
		},
	)
}

func (d *DashboardScreen) logout() tea.Cmd {
	ctx := d.ctx
	session := d.session
	return func() tea.Msg {
		session.Logout(ctx)
		return loggedOutMsg{}
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogMsg:
		d.catalogDone = true
		if msg.Err != nil {
			d.fetchErrs = append(d.fetchErrs, "catalog unavailable")
		} else {
			d.catalog = msg.Catalog
		}
		return d, nil

	case progressMsg:
		d.recordsDone = true
		if msg.Err != nil {
			d.fetchErrs = append(d.fetchErrs, "progress unavailable")
		} else {
			d.records = msg.Records
		}
		return d, nil

	case loggedOutMsg:
		// The session store already cleared local state; the app model
		// resets navigation on the next guard pass. Nothing to do here.
		return d, nil
	}

	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (d *DashboardScreen) View(width, height int) string {
	if !d.catalogDone || !d.recordsDone {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading your progress..."))
	}

	summary := progress.Summarize(d.catalog, d.records)

	var sections []string

	if ident := d.session.Current().Identity; ident != nil {
		sections = append(sections, theme.Title.Render("Welcome back, "+ident.Name))
	} else {
		sections = append(sections, theme.Title.Render("Welcome back"))
	}
	sections = append(sections, "")

	if len(d.fetchErrs) > 0 {
		sections = append(sections,
			theme.ErrorBanner.Render("Partial data: "+strings.Join(d.fetchErrs, ", ")),
			"")
	}

	cw := contentWidth(width)
	bar := components.NewProgressBar("Overall", summary.OverallProgress/100, true, cw)
	sections = append(sections, bar.View(), "")

	stats := fmt.Sprintf("%d competences   %s completed   %s in progress   %s certificates",
		summary.Total,
		theme.StatusCompleted.Render(fmt.Sprintf("%d", summary.Completed)),
		theme.StatusInProgress.Render(fmt.Sprintf("%d", summary.InProgress)),
		theme.Selected.Render(fmt.Sprintf("%d", summary.Certificates)),
	)
	sections = append(sections, stats, "")

	sections = append(sections, d.menu.View())

	content := theme.Card.Width(cw + 4).Render(strings.Join(sections, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// contentWidth keeps the dashboard card readable on wide terminals.
func contentWidth(frameWidth int) int {
	w := frameWidth - 8
	if w > 64 {
		w = 64
	}
	if w < 24 {
		w = 24
	}
	return w
}
