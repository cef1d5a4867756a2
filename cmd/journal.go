package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show recent activity from the local journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := d.store.EventRepo().Recent(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("read journal: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("Journal is empty.")
			return nil
		}

		for _, e := range entries {
			status := "ok"
			if !e.Success {
				status = "fail"
			}
			line := fmt.Sprintf("%6d  %s  %-8s %-16s %-4s", e.Sequence, e.Timestamp.Format("2006-01-02 15:04:05"), e.Kind, e.Action, status)
			if e.Detail != "" {
				line += "  " + e.Detail
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	journalCmd.Flags().Int("limit", 20, "Maximum number of entries to show")
}
