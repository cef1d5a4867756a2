package cmd

import (
	"fmt"

	"github.com/kdiallo/rianterm/internal/auth"
	"github.com/spf13/cobra"
)

var whoamiFull bool

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user, if any",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		session := d.session.Restore(cmd.Context())
		if session.State != auth.StateAuthenticated || session.Identity == nil {
			fmt.Println("Not signed in. Run `rianterm login` first.")
			return nil
		}

		id := session.Identity
		fmt.Printf("%s <%s>\n", id.Name, id.Email)
		if id.Role != "" {
			fmt.Println("role:", id.Role)
		}

		if !whoamiFull {
			return nil
		}

		data, err := d.client.Dashboard(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch dashboard summary: %w", err)
		}
		fmt.Printf("progress:     %.1f%%\n", data.OverallProgress)
		fmt.Printf("competences:  %d total, %d completed, %d in progress\n",
			data.TotalCompetences, data.CompletedCompetences, data.InProgressCompetences)
		fmt.Printf("certificates: %d\n", data.CertificatesEarned)
		return nil
	},
}

func init() {
	whoamiCmd.Flags().BoolVar(&whoamiFull, "full", false, "include the server-side progress summary")
}
