package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the backend with the default competence catalog",
	Long:  "Asks the backend to (re)create its built-in competence catalog. Safe to run repeatedly; the backend skips entries that already exist.",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.client.InitData(cmd.Context()); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		fmt.Println("Catalog seeded.")
		return nil
	},
}
