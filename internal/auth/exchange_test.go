package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFragmentToken(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string
		wantErr  bool
	}{
		{"bare token", "session_id=abc123", "abc123", false},
		{"trailing params", "session_id=abc123&foo=bar", "abc123", false},
		{"leading hash", "#session_id=abc123", "abc123", false},
		{"full callback URL", "https://portal.example.org/login#session_id=tok-9&state=x", "tok-9", false},
		{"marker mid-fragment", "foo=bar&session_id=abc123", "abc123", false},
		{"no marker", "foo=bar", "", true},
		{"empty fragment", "", "", true},
		{"empty token", "session_id=", "", true},
		{"empty token before param", "session_id=&foo=bar", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFragmentToken(tt.fragment)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNoToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
