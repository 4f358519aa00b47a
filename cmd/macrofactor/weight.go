// ABOUTME: CLI commands for weight entries.
// ABOUTME: Covers the weight view, log-weight, and delete-weight.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	weightStart string
	weightEnd   string

	logWeightDate    string
	logWeightKg      float64
	logWeightBodyFat float64

	deleteWeightDate string
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Weight entries",
	Long: `Show weight entries for a date range.

With no flags, shows the last 7 days ending today.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := resolveRange(weightStart, weightEnd)
		if err != nil {
			return err
		}

		cfg, client, err := session()
		if err != nil {
			return err
		}

		entries, err := client.WeightEntries(cmd.Context(), start, end)
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
			fmt.Printf("No weight entries for %s to %s\n", startStr, endStr)
			return nil
		}
		fmt.Printf("── Weight (%s → %s) ──\n", startStr, endStr)
		for _, w := range entries {
			bf := ""
			if w.BodyFat != nil {
				bf = fmt.Sprintf(" (%.1f%% bf)", *w.BodyFat)
			}
			fmt.Printf("  %s:  %.1f kg%s\n", w.Date, w.Weight, bf)
		}
		return nil
	},
}

var logWeightCmd = &cobra.Command{
	Use:   "log-weight",
	Short: "Log a weight entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDate(logWeightDate)
		if err != nil {
			return err
		}
		if err := nonNegative("weight", logWeightKg); err != nil {
			return err
		}

		var bodyFat *float64
		if cmd.Flags().Changed("body-fat") {
			if err := nonNegative("body-fat", logWeightBodyFat); err != nil {
				return err
			}
			bodyFat = &logWeightBodyFat
		}

		cfg, client, err := session()
		if err != nil {
			return err
		}

		if err := client.LogWeight(cmd.Context(), date, logWeightKg, bodyFat); err != nil {
			return err
		}
		if err := persistSession(cfg, client); err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(okStatus("Weight logged"))
		}
		bf := ""
		if bodyFat != nil {
			bf = fmt.Sprintf(" (%.1f%% bf)", *bodyFat)
		}
		color.Green("✓ Logged %.1f kg%s on %s", logWeightKg, bf, logWeightDate)
		return nil
	},
}

var deleteWeightCmd = &cobra.Command{
	Use:   "delete-weight",
	Short: "Delete a weight entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDate(deleteWeightDate)
		if err != nil {
			return err
		}

		cfg, client, err := session()
		if err != nil {
			return err
		}

		if err := client.DeleteWeightEntry(cmd.Context(), date); err != nil {
			return err
		}
		if err := persistSession(cfg, client); err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(okStatus("Weight entry deleted"))
		}
		color.Yellow("✗ Deleted weight entry on %s", deleteWeightDate)
		return nil
	},
}

func init() {
	weightCmd.Flags().StringVar(&weightStart, "start", "", "start date (YYYY-MM-DD)")
	weightCmd.Flags().StringVar(&weightEnd, "end", "", "end date (YYYY-MM-DD)")
	rootCmd.AddCommand(weightCmd)

	logWeightCmd.Flags().StringVar(&logWeightDate, "date", "", "date (YYYY-MM-DD)")
	logWeightCmd.Flags().Float64Var(&logWeightKg, "weight", 0, "weight (kg)")
	logWeightCmd.Flags().Float64Var(&logWeightBodyFat, "body-fat", 0, "body fat (%)")
	logWeightCmd.MarkFlagRequired("date")
	logWeightCmd.MarkFlagRequired("weight")
	rootCmd.AddCommand(logWeightCmd)

	deleteWeightCmd.Flags().StringVar(&deleteWeightDate, "date", "", "date (YYYY-MM-DD)")
	deleteWeightCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(deleteWeightCmd)
}
