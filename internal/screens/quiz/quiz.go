package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kdiallo/rianterm/internal/api"
	"github.com/kdiallo/rianterm/internal/router"
	"github.com/kdiallo/rianterm/internal/screen"
	"github.com/kdiallo/rianterm/internal/store"
	"github.com/kdiallo/rianterm/internal/ui/components"
	"github.com/kdiallo/rianterm/internal/ui/layout"
	"github.com/kdiallo/rianterm/internal/ui/theme"
)

// resultMsg carries the server-graded submission outcome.
type resultMsg struct {
	Result *api.QuizResult
	Err    error
}

// QuizScreen walks through the quiz one question at a time and submits the
// collected answers. Grading is entirely server-side: the client never sees
// correct answers, only the returned score.
type QuizScreen struct {
	client *api.Client
	events store.EventRepo
	comp   api.Competence

	questions []api.QuizQuestion
	answers   []int
	current   int
	choice    components.MultiChoice

	submitting bool
	result     *api.QuizResult
	errMsg     string

	ctx    context.Context
	cancel context.CancelFunc
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.Protected = (*QuizScreen)(nil)
var _ screen.Teardowner = (*QuizScreen)(nil)

// New creates a quiz screen over the already-fetched questions.
func New(client *api.Client, events store.EventRepo, comp api.Competence, questions []api.QuizQuestion) *QuizScreen {
	ctx, cancel := context.WithCancel(context.Background())
	q := &QuizScreen{
		client:    client,
		events:    events,
		comp:      comp,
		questions: questions,
		ctx:       ctx,
		cancel:    cancel,
	}
	if len(questions) > 0 {
		q.choice = components.NewMultiChoice(questions[0].Question, questions[0].Options)
	}
	return q
}

func (q *QuizScreen) Protected() {}

func (q *QuizScreen) Teardown() {
	q.cancel()
}

func (q *QuizScreen) Title() string {
	return fmt.Sprintf("Quiz — C%d", q.comp.Number)
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.result != nil {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(resultMsg); ok {
		q.submitting = false
		if m.Err != nil {
			q.errMsg = "Submission failed: " + m.Err.Error()
			return q, nil
		}
		q.result = m.Result
		return q, nil
	}

	if q.result != nil || q.submitting {
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "q" {
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return q, nil
	}

	var cmd tea.Cmd
	q.choice, cmd = q.choice.Update(msg)

	if q.choice.Submitted {
		q.answers = append(q.answers, q.choice.ChosenIndex)
		q.current++
		if q.current < len(q.questions) {
			next := q.questions[q.current]
			q.choice = components.NewMultiChoice(next.Question, next.Options)
			return q, cmd
		}
		q.submitting = true
		return q, q.submit()
	}

	return q, cmd
}

// submit sends the collected answers and journals the graded outcome.
func (q *QuizScreen) submit() tea.Cmd {
	ctx := q.ctx
	client := q.client
	events := q.events
	comp := q.comp
	answers := q.answers
	return func() tea.Msg {
		result, err := client.SubmitQuiz(ctx, comp.ID, answers)
		if err == nil && events != nil {
			events.AppendProgressEvent(ctx, store.ProgressEventData{
				CompetenceID:     comp.ID,
				CompetenceNumber: comp.Number,
				Action:           store.ProgressActionQuizSubmitted,
				Score:            result.Score,
				Passed:           result.Passed,
			})
		}
		return resultMsg{Result: result, Err: err}
	}
}

func (q *QuizScreen) View(width, height int) string {
	if len(q.questions) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No quiz for this competence."))
	}

	if q.submitting {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Submitting your answers..."))
	}

	if q.result != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			q.renderResult())
	}

	var sections []string
	sections = append(sections, theme.Subtitle.Render(
		fmt.Sprintf("Question %d of %d", q.current+1, len(q.questions))))
	sections = append(sections, "")
	if q.errMsg != "" {
		sections = append(sections, theme.ErrorBanner.Render(q.errMsg), "")
	}
	sections = append(sections, q.choice.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (q *QuizScreen) renderResult() string {
	r := q.result

	verdict := theme.StatusCompleted.Render("PASSED")
	if !r.Passed {
		verdict = theme.StatusInProgress.Render("NOT PASSED")
	}

	lines := []string{
		theme.Title.Render("Quiz result"),
		"",
		fmt.Sprintf("%s — %.0f%% (%d/%d correct)",
			verdict, r.Score, r.CorrectAnswers, r.TotalQuestions),
		"",
		theme.Hint.Render(fmt.Sprintf("Pass mark: %.0f%%", q.comp.SuccessThreshold)),
		"",
		theme.Hint.Render("Press Esc to go back."),
	}
	return theme.Card.Render(strings.Join(lines, "\n"))
}
