package competencedetail

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kdiallo/rianterm/internal/api"
	"github.com/kdiallo/rianterm/internal/auth"
	"github.com/kdiallo/rianterm/internal/router"
	"github.com/kdiallo/rianterm/internal/screen"
	"github.com/kdiallo/rianterm/internal/screens/quiz"
	"github.com/kdiallo/rianterm/internal/screens/workshop"
	"github.com/kdiallo/rianterm/internal/store"
	"github.com/kdiallo/rianterm/internal/ui/layout"
	"github.com/kdiallo/rianterm/internal/ui/theme"
)

// competenceMsg carries the refreshed catalog entry.
type competenceMsg struct {
	Competence *api.Competence
	Err        error
}

// quizMsg carries the quiz existence check. Only the question count and
// prompts are consumed here.
type quizMsg struct {
	Questions []api.QuizQuestion
	Err       error
}

// startedMsg carries the result of starting the competence.
type startedMsg struct {
	Record *api.ProgressRecord
	Err    error
}

// DetailScreen shows one competence with its objectives and evaluation, the
// user's progress, and entry points into the quiz and the AI workshop. The
// competence refresh and the quiz check load independently: each suspends
// only its own section.
type DetailScreen struct {
	session *auth.Store
	client  *api.Client
	events  store.EventRepo

	comp      api.Competence
	rec       *api.ProgressRecord
	questions []api.QuizQuestion
	quizDone  bool
	starting  bool
	notice    string

	ctx    context.Context
	cancel context.CancelFunc
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.Protected = (*DetailScreen)(nil)
var _ screen.Teardowner = (*DetailScreen)(nil)

// New creates the detail screen for comp. rec may be nil when the user has
// not started the competence.
func New(session *auth.Store, client *api.Client, events store.EventRepo, comp api.Competence, rec *api.ProgressRecord) *DetailScreen {
	ctx, cancel := context.WithCancel(context.Background())
	return &DetailScreen{
		session: session,
		client:  client,
		events:  events,
		comp:    comp,
		rec:     rec,
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (d *DetailScreen) Protected() {}

func (d *DetailScreen) Teardown() {
	d.cancel()
}

func (d *DetailScreen) Title() string {
	return fmt.Sprintf("Competence %d", d.comp.Number)
}

func (d *DetailScreen) Init() tea.Cmd {
	ctx := d.ctx
	client := d.client
	id := d.comp.ID
	return tea.Batch(
		func() tea.Msg {
			comp, err := client.Competence(ctx, id)
			return competenceMsg{Competence: comp, Err: err}
		},
		func() tea.Msg {
			questions, err := client.QuizQuestions(ctx, id)
			return quizMsg{Questions: questions, Err: err}
		},
	)
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if d.rec == nil {
		hints = append(hints, layout.KeyHint{Key: "s", Description: "Start"})
	}
	if len(d.questions) > 0 {
		hints = append(hints, layout.KeyHint{Key: "t", Description: "Take quiz"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "w", Description: "Workshop"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
	return hints
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case competenceMsg:
		// A failed refresh keeps the entry passed in from the list.
		if msg.Err == nil && msg.Competence != nil {
			d.comp = *msg.Competence
		}
		return d, nil

	case quizMsg:
		d.quizDone = true
		if msg.Err == nil {
			d.questions = msg.Questions
		}
		return d, nil

	case startedMsg:
		d.starting = false
		if msg.Err != nil {
			d.notice = "Could not start: " + msg.Err.Error()
			return d, nil
		}
		d.rec = msg.Record
		d.notice = "Competence started."
		return d, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			if d.rec == nil && !d.starting {
				d.starting = true
				return d, d.start()
			}
		case "t":
			if len(d.questions) > 0 {
				return d, d.openQuiz()
			}
		case "w":
			return d, d.openWorkshop()
		case "q":
			return d, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return d, nil
}

// start creates the progress record on the backend and journals the action.
func (d *DetailScreen) start() tea.Cmd {
	ctx := d.ctx
	client := d.client
	events := d.events
	comp := d.comp
	return func() tea.Msg {
		rec, err := client.StartCompetence(ctx, comp.ID)
		if err == nil && events != nil {
			events.AppendProgressEvent(ctx, store.ProgressEventData{
				CompetenceID:     comp.ID,
				CompetenceNumber: comp.Number,
				Action:           store.ProgressActionStarted,
			})
		}
		return startedMsg{Record: rec, Err: err}
	}
}

func (d *DetailScreen) openQuiz() tea.Cmd {
	next := quiz.New(d.client, d.events, d.comp, d.questions)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (d *DetailScreen) openWorkshop() tea.Cmd {
	next := workshop.New(d.client, d.comp)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (d *DetailScreen) View(width, height int) string {
	cw := width - 8
	if cw > 76 {
		cw = 76
	}
	if cw < 30 {
		cw = 30
	}

	var sections []string

	sections = append(sections,
		theme.Title.Render(fmt.Sprintf("C%d — %s", d.comp.Number, d.comp.Title)))
	sections = append(sections, theme.Subtitle.Render(
		fmt.Sprintf("%dh · %d units · pass mark %.0f%%",
			d.comp.DurationHours, d.comp.Units, d.comp.SuccessThreshold)))
	sections = append(sections, "")

	sections = append(sections, d.renderStatus())
	if d.notice != "" {
		sections = append(sections, theme.Hint.Render(d.notice))
	}
	sections = append(sections, "")

	sections = append(sections, theme.Body.Render(wrap(d.comp.Description, cw)), "")

	if len(d.comp.LearningObjectives) > 0 {
		sections = append(sections, theme.Selected.Render("Learning objectives"))
		for _, obj := range d.comp.LearningObjectives {
			sections = append(sections, theme.Body.Render(wrap("  • "+obj, cw)))
		}
		sections = append(sections, "")
	}

	sections = append(sections, theme.Selected.Render("Evaluation"))
	sections = append(sections, theme.Body.Render("  "+d.comp.EvaluationMethod))
	if len(d.comp.EvaluationCriteria) > 0 {
		sections = append(sections,
			theme.Hint.Render("  Criteria: "+strings.Join(d.comp.EvaluationCriteria, ", ")))
	}
	sections = append(sections, "")

	switch {
	case !d.quizDone:
		sections = append(sections, theme.Hint.Render("Checking for a quiz..."))
	case len(d.questions) > 0:
		sections = append(sections, theme.Body.Render(
			fmt.Sprintf("Quiz available: %d questions. Press 't' to take it.", len(d.questions))))
	default:
		sections = append(sections, theme.Hint.Render("No quiz for this competence."))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func (d *DetailScreen) renderStatus() string {
	if d.starting {
		return theme.Hint.Render("Starting...")
	}
	if d.rec == nil {
		return theme.StatusNotStarted.Render("Not started — press 's' to begin.")
	}
	switch d.rec.Status {
	case api.StatusCompleted:
		return theme.StatusCompleted.Render(fmt.Sprintf("Completed — score %.0f%%", d.rec.CurrentScore))
	case api.StatusInProgress:
		return theme.StatusInProgress.Render(fmt.Sprintf("In progress — score %.0f%%", d.rec.CurrentScore))
	}
	return theme.StatusNotStarted.Render("Not started")
}

// wrap breaks s into lines no wider than w, on spaces.
func wrap(s string, w int) string {
	if w <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}
	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > w {
				b.WriteString("\n")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}
