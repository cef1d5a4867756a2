package cmd

import (
	"github.com/kdiallo/rianterm/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rianterm",
	Short: "Terminal client for the RIAN learning platform",
	Long:  "Rianterm — terminal portal for RIAN competences: sign in, track progress, take quizzes and run workshops.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data-dir", "", "Directory for the cookie jar and activity journal (overrides RIANTERM_DATA_DIR)")
	rootCmd.PersistentFlags().String("api", "", "Backend base URL (overrides RIANTERM_API_URL)")
	rootCmd.Flags().String("callback", "", "Callback URL pasted from the browser; its token is exchanged on startup")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(updateCmd)
}

// loadConfig reads env configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		cfg.DataDir = dir
	}
	if api, _ := cmd.Flags().GetString("api"); api != "" {
		cfg.APIURL = api
	}
	return cfg, nil
}
