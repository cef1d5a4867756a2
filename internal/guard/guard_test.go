package guard

import (
	"testing"

	"github.com/kdiallo/rianterm/internal/auth"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		state auth.State
		want  Decision
	}{
		{"unknown shows loading, never a redirect flash", auth.StateUnknown, ShowLoading},
		{"unauthenticated redirects to login", auth.StateUnauthenticated, RedirectLogin},
		{"authenticated renders", auth.StateAuthenticated, Render},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.state))
		})
	}
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "show-loading", ShowLoading.String())
	assert.Equal(t, "redirect-login", RedirectLogin.String())
	assert.Equal(t, "render", Render.String())
}
