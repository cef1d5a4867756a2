// Package guard gates navigation to protected views based on session state.
package guard

import "github.com/kdiallo/rianterm/internal/auth"

// Decision is what a protected view should do for a given session state.
type Decision int

const (
	// ShowLoading renders a neutral loading indicator. Used while the
	// initial restore is pending, so the user never sees a flash-redirect
	// to login for a session that is about to be restored.
	ShowLoading Decision = iota

	// RedirectLogin sends the user to the login view. The attempted
	// destination is discarded.
	RedirectLogin

	// Render shows the requested view.
	Render
)

func (d Decision) String() string {
	switch d {
	case RedirectLogin:
		return "redirect-login"
	case Render:
		return "render"
	}
	return "show-loading"
}

// Evaluate maps session state to a decision. Pure: it holds no state and is
// re-evaluated on every navigation attempt.
func Evaluate(state auth.State) Decision {
	switch state {
	case auth.StateAuthenticated:
		return Render
	case auth.StateUnauthenticated:
		return RedirectLogin
	}
	return ShowLoading
}
