package competences

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
	"github.com/kdiallo/rianterm/internal/screens/competencedetail"
	"github.com/kdiallo/rianterm/internal/store"
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

// ListScreen shows the ordered competence catalog with per-competence status
// and score. Catalog and progress load concurrently; either failing renders
// the list with absent data treated as empty plus a partial-data banner.
type ListScreen struct {
	session *auth.Store
	client  *api.Client
	events  store.EventRepo

	catalog     []api.Competence
	records     []api.ProgressRecord
	catalogDone bool
	recordsDone bool
	fetchErrs   []string

	cursor       int
	scrollOffset int

	ctx    context.Context
	cancel context.CancelFunc
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.Protected = (*ListScreen)(nil)
var _ screen.Teardowner = (*ListScreen)(nil)

// New creates the competence list screen.
func New(session *auth.Store, client *api.Client, events store.EventRepo) *ListScreen {
	ctx, cancel := context.WithCancel(context.Background())
	return &ListScreen{
		session: session,
		client:  client,
		events:  events,
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (l *ListScreen) Protected() {}

func (l *ListScreen) Teardown() {
	l.cancel()
}

func (l *ListScreen) Title() string {
	return "Competences"
}

func (l *ListScreen) Init() tea.Cmd {
	ctx := l.ctx
	client := l.client
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

func (l *ListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (l *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogMsg:
		l.catalogDone = true
		if msg.Err != nil {
			l.fetchErrs = append(l.fetchErrs, "catalog unavailable")
		} else {
			l.catalog = msg.Catalog
		}
		return l, nil

	case progressMsg:
		l.recordsDone = true
		if msg.Err != nil {
			l.fetchErrs = append(l.fetchErrs, "progress unavailable")
		} else {
			l.records = msg.Records
		}
		return l, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if l.cursor > 0 {
				l.cursor--
			}
		case "down", "j":
			if l.cursor < len(l.catalog)-1 {
				l.cursor++
			}
		case "enter":
			return l, l.openDetail()
		case "q":
			return l, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return l, nil
}

func (l *ListScreen) openDetail() tea.Cmd {
	if l.cursor < 0 || l.cursor >= len(l.catalog) {
		return nil
	}
	comp := l.catalog[l.cursor]
	rec := progress.Lookup(l.records, comp.ID)
	next := competencedetail.New(l.session, l.client, l.events, comp, rec)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (l *ListScreen) View(width, height int) string {
	if !l.catalogDone || !l.recordsDone {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading the curriculum..."))
	}

	var lines []string
	if len(l.fetchErrs) > 0 {
		lines = append(lines,
			theme.ErrorBanner.Render("Partial data: "+strings.Join(l.fetchErrs, ", ")),
			"")
	}
	if len(l.catalog) == 0 {
		lines = append(lines, theme.Hint.Render("  No competences available."))
		return strings.Join(lines, "\n")
	}

	l.adjustScroll(height - len(lines))

	visible := 0
	for i, comp := range l.catalog {
		if i < l.scrollOffset {
			continue
		}
		if visible >= height-len(lines) {
			break
		}
		lines = append(lines, l.renderRow(comp, i == l.cursor, width))
		visible++
	}

	return strings.Join(lines, "\n")
}

func (l *ListScreen) renderRow(comp api.Competence, selected bool, width int) string {
	rec := progress.Lookup(l.records, comp.ID)

	glyph := theme.StatusNotStarted.Render("○")
	score := ""
	if rec != nil {
		switch rec.Status {
		case api.StatusCompleted:
			glyph = theme.StatusCompleted.Render("●")
		case api.StatusInProgress:
			glyph = theme.StatusInProgress.Render("◐")
		}
		if rec.Status != api.StatusNotStarted {
			score = theme.Hint.Render(fmt.Sprintf(" %.0f%%", rec.CurrentScore))
		}
	}

	title := comp.Title
	maxTitle := width - 16
	if maxTitle > 0 && len(title) > maxTitle {
		title = title[:maxTitle-1] + "…"
	}

	line := fmt.Sprintf("%s  C%-2d  %s%s", glyph, comp.Number, title, score)
	if selected {
		return theme.Selected.Render("  ▸ " + line)
	}
	return theme.Unselected.Render("    " + line)
}

// adjustScroll keeps the cursor inside the visible window.
func (l *ListScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	if l.cursor < l.scrollOffset {
		l.scrollOffset = l.cursor
	}
	if l.cursor >= l.scrollOffset+height {
		l.scrollOffset = l.cursor - height + 1
	}
}
