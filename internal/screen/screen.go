package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/kdiallo/rianterm/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Protected marks screens that require an authenticated session. The app
// consults the access guard before rendering them and on every navigation to
// them.
type Protected interface {
	Protected()
}

// Teardowner is an optional interface for screens that own in-flight
// requests; the router calls Teardown when the screen leaves the stack.
type Teardowner interface {
	Teardown()
}
