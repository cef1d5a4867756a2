package workshop

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kdiallo/rianterm/internal/api"
	"github.com/kdiallo/rianterm/internal/router"
	"github.com/kdiallo/rianterm/internal/screen"
	"github.com/kdiallo/rianterm/internal/ui/components"
	"github.com/kdiallo/rianterm/internal/ui/layout"
	"github.com/kdiallo/rianterm/internal/ui/theme"
)

// sessionStartedMsg carries the opened workshop session.
type sessionStartedMsg struct {
	Session *api.WorkshopSession
	Err     error
}

// replyMsg carries one mentor reply.
type replyMsg struct {
	Reply *api.WorkshopReply
	Err   error
}

// turn is one exchange in the transcript.
type turn struct {
	role string // "you" or "mentor"
	text string
}

// WorkshopScreen is a chat with the backend's AI mentor for one competence.
// The model runs server-side; the client only relays messages.
type WorkshopScreen struct {
	client *api.Client
	comp   api.Competence

	sessionID  string
	transcript []turn
	input      components.TextInput
	waiting    bool
	errMsg     string

	ctx    context.Context
	cancel context.CancelFunc
}

var _ screen.Screen = (*WorkshopScreen)(nil)
var _ screen.Protected = (*WorkshopScreen)(nil)
var _ screen.Teardowner = (*WorkshopScreen)(nil)

// New creates a workshop screen for comp.
func New(client *api.Client, comp api.Competence) *WorkshopScreen {
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkshopScreen{
		client: client,
		comp:   comp,
		input:  components.NewTextInput("Ask your mentor...", 280),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (w *WorkshopScreen) Protected() {}

func (w *WorkshopScreen) Teardown() {
	w.cancel()
}

func (w *WorkshopScreen) Title() string {
	return fmt.Sprintf("Workshop — C%d", w.comp.Number)
}

func (w *WorkshopScreen) Init() tea.Cmd {
	ctx := w.ctx
	client := w.client
	id := w.comp.ID
	return tea.Batch(
		w.input.Init(),
		func() tea.Msg {
			ws, err := client.StartWorkshop(ctx, id)
			return sessionStartedMsg{Session: ws, Err: err}
		},
	)
}

func (w *WorkshopScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

func (w *WorkshopScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		if msg.Err != nil {
			w.errMsg = "Workshop unavailable: " + msg.Err.Error()
			return w, nil
		}
		w.sessionID = msg.Session.SessionID
		return w, nil

	case replyMsg:
		w.waiting = false
		if msg.Err != nil {
			w.errMsg = "Mentor unavailable: " + msg.Err.Error()
			return w, nil
		}
		w.errMsg = ""
		w.transcript = append(w.transcript, turn{role: "mentor", text: msg.Reply.Response})
		return w, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			text := strings.TrimSpace(w.input.Value())
			if text == "" || w.waiting || w.sessionID == "" {
				return w, nil
			}
			w.transcript = append(w.transcript, turn{role: "you", text: text})
			w.input.Clear()
			w.waiting = true
			return w, w.send(text)
		}
		if msg.String() == "q" && w.input.Value() == "" {
			return w, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *WorkshopScreen) send(text string) tea.Cmd {
	ctx := w.ctx
	client := w.client
	sessionID := w.sessionID
	return func() tea.Msg {
		reply, err := client.WorkshopChat(ctx, sessionID, text)
		return replyMsg{Reply: reply, Err: err}
	}
}

func (w *WorkshopScreen) View(width, height int) string {
	cw := width - 8
	if cw > 76 {
		cw = 76
	}
	if cw < 30 {
		cw = 30
	}

	var lines []string
	lines = append(lines, theme.Subtitle.Render("AI mentor for "+w.comp.Title), "")

	if w.errMsg != "" {
		lines = append(lines, theme.ErrorBanner.Render(w.errMsg), "")
	}
	if w.sessionID == "" && w.errMsg == "" {
		lines = append(lines, theme.Hint.Render("Opening the workshop..."), "")
	}

	transcriptHeight := height - len(lines) - 3
	start := 0
	if rendered := len(w.transcript) * 2; transcriptHeight > 0 && rendered > transcriptHeight {
		start = len(w.transcript) - transcriptHeight/2
		if start < 0 {
			start = 0
		}
	}

	for _, t := range w.transcript[start:] {
		label := theme.Selected.Render("You")
		if t.role == "mentor" {
			label = theme.StatusInProgress.Render("Mentor")
		}
		lines = append(lines, label+"  "+theme.Body.Render(clip(t.text, cw*3)))
	}

	if w.waiting {
		lines = append(lines, theme.Hint.Render("Mentor is typing..."))
	}

	lines = append(lines, "", w.input.View())

	content := strings.Join(lines, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

// clip truncates long replies so a single turn cannot flood the view.
func clip(s string, max int) string {
	if max > 0 && len(s) > max {
		return s[:max-1] + "…"
	}
	return s
}
