package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.APIURL)
	assert.Equal(t, "https://auth.emergentagent.com", cfg.AuthURL)
	assert.Equal(t, "http://localhost:3000/login", cfg.ReturnURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RIANTERM_API_URL", "https://portal.example.org")
	t.Setenv("RIANTERM_TIMEOUT", "30s")
	t.Setenv("RIANTERM_DATA_DIR", dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://portal.example.org", cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, filepath.Join(dir, "journal.db"), cfg.JournalPath())
	assert.Equal(t, filepath.Join(dir, "cookies.json"), cfg.JarPath())
}

func TestDataDirFallsBackToXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)
	t.Setenv("RIANTERM_DATA_DIR", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, "rianterm"), cfg.DataDir)
}
