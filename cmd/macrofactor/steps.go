// ABOUTME: CLI command for daily step counts.
// ABOUTME: Ranged view defaulting to the last 7 days.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	stepsStart string
	stepsEnd   string
)

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "Step counts",
	Long: `Show daily step counts for a date range.

With no flags, shows the last 7 days ending today.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := resolveRange(stepsStart, stepsEnd)
		if err != nil {
			return err
		}

		cfg, client, err := session()
		if err != nil {
			return err
		}

		entries, err := client.Steps(cmd.Context(), start, end)
		if err != nil {
			return err
		}
		if err := persistSession(cfg, client); err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(entries)
		}

		startStr, endStr := start.Format("2006-01-02"), end.Format("2006-01-02")
		if len(entries) == 0 {
			fmt.Printf("No step data for %s to %s\n", startStr, endStr)
			return nil
		}
		fmt.Printf("── Steps (%s → %s) ──\n", startStr, endStr)
		for _, s := range entries {
			fmt.Printf("  %s:  %d steps\n", s.Date, s.Steps)
		}
		return nil
	},
}

func init() {
	stepsCmd.Flags().StringVar(&stepsStart, "start", "", "start date (YYYY-MM-DD)")
	stepsCmd.Flags().StringVar(&stepsEnd, "end", "", "end date (YYYY-MM-DD)")
	rootCmd.AddCommand(stepsCmd)
}
