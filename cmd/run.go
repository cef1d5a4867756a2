package cmd

import (
	"fmt"

	"github.com/kdiallo/rianterm/internal/api"
	"github.com/kdiallo/rianterm/internal/app"
	"github.com/kdiallo/rianterm/internal/auth"
	"github.com/kdiallo/rianterm/internal/config"
	"github.com/kdiallo/rianterm/internal/store"
	"github.com/spf13/cobra"
)

// deps is the wired dependency set shared by the TUI and the headless
// subcommands.
type deps struct {
	cfg     *config.Config
	store   *store.Store
	client  *api.Client
	session *auth.Store
}

func (d *deps) Close() {
	if d.store != nil {
		_ = d.store.Close()
	}
}

// buildDeps opens the journal, builds the backend client with request
// logging, and assembles the session store around them.
func buildDeps(cmd *cobra.Command) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := store.EnsureDir(cfg.JournalPath()); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	st, err := store.Open(cfg.JournalPath())
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	client, err := api.New(api.Config{
		BaseURL: cfg.APIURL,
		JarPath: cfg.JarPath(),
		Timeout: cfg.Timeout,
	})
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("build client: %w", err)
	}

	eventRepo := st.EventRepo()
	client = api.WithLogging(client, eventRepo)
	session := auth.NewStore(client, eventRepo, auth.BrowserNavigator{}, cfg.AuthURL, cfg.ReturnURL)

	return &deps{cfg: cfg, store: st, client: client, session: session}, nil
}

// runApp wires dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := buildDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	fragment, _ := cmd.Flags().GetString("callback")

	return app.Run(app.Options{
		Session:  d.session,
		Client:   d.client,
		Events:   d.store.EventRepo(),
		Fragment: fragment,
	})
}
