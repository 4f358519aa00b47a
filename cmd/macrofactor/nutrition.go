// ABOUTME: CLI commands for daily nutrition summaries.
// ABOUTME: Covers the nutrition view, log-nutrition import, and sync-day.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	nutritionStart string
	nutritionEnd   string

	logNutritionDate     string
	logNutritionCalories float64
	logNutritionProtein  float64
	logNutritionCarbs    float64
	logNutritionFat      float64

	syncDayDate string
)

var nutritionCmd = &cobra.Command{
	Use:   "nutrition",
	Short: "Daily nutrition summaries",
	Long: `Show daily nutrition summaries for a date range.

With no flags, shows the last 7 days ending today.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := resolveRange(nutritionStart, nutritionEnd)
		if err != nil {
			return err
		}

		cfg, client, err := session()
		if err != nil {
			return err
		}

		days, err := client.Nutrition(cmd.Context(), start, end)
		if err != nil {
			return err
		}
		if err := persistSession(cfg, client); err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(days)
		}

		startStr, endStr := start.Format("2006-01-02"), end.Format("2006-01-02")
		if len(days) == 0 {
			fmt.Printf("No nutrition data for %s to %s\n", startStr, endStr)
			return nil
		}
		fmt.Printf("── Nutrition (%s → %s) ──\n", startStr, endStr)
		for _, d := range days {
			fmt.Printf("  %s:  %s kcal | %sp / %sc / %sf | sugar: %s | fiber: %s\n",
				d.Date, fmtOpt(d.Calories), fmtOpt(d.Protein), fmtOpt(d.Carbs),
				fmtOpt(d.Fat), fmtOpt(d.Sugar), fmtOpt(d.Fiber))
		}
		return nil
	},
}

var logNutritionCmd = &cobra.Command{
	Use:   "log-nutrition",
	Short: "Log a nutrition summary (manual import)",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDate(logNutritionDate)
		if err != nil {
			return err
		}
		for _, check := range []struct {
			name  string
			value float64
		}{
			{"calories", logNutritionCalories},
			{"protein", logNutritionProtein},
			{"carbs", logNutritionCarbs},
			{"fat", logNutritionFat},
		} {
			if err := nonNegative(check.name, check.value); err != nil {
				return err
			}
		}

		cfg, client, err := session()
		if err != nil {
			return err
		}

		if err := client.LogNutrition(cmd.Context(), date,
			logNutritionCalories, logNutritionProtein, logNutritionCarbs, logNutritionFat); err != nil {
			return err
		}
		if err := persistSession(cfg, client); err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(okStatus("Nutrition logged"))
		}
		color.Green("✓ Logged nutrition on %s", logNutritionDate)
		fmt.Printf("  %.0f kcal | %.0fp / %.0fc / %.0ff\n",
			logNutritionCalories, logNutritionProtein, logNutritionCarbs, logNutritionFat)
		return nil
	},
}

var syncDayCmd = &cobra.Command{
	Use:   "sync-day",
	Short: "Sync daily nutrition totals",
	Long:  `Ask the service to recompute the nutrition totals for one day.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDate(syncDayDate)
		if err != nil {
			return err
		}

		cfg, client, err := session()
		if err != nil {
			return err
		}

		if err := client.SyncDay(cmd.Context(), date); err != nil {
			return err
		}
		if err := persistSession(cfg, client); err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(okStatus("Day synced"))
		}
		color.Green("✓ Synced daily totals for %s", syncDayDate)
		return nil
	},
}

func init() {
	nutritionCmd.Flags().StringVar(&nutritionStart, "start", "", "start date (YYYY-MM-DD)")
	nutritionCmd.Flags().StringVar(&nutritionEnd, "end", "", "end date (YYYY-MM-DD)")
	rootCmd.AddCommand(nutritionCmd)

	logNutritionCmd.Flags().StringVar(&logNutritionDate, "date", "", "date (YYYY-MM-DD)")
	logNutritionCmd.Flags().Float64Var(&logNutritionCalories, "calories", 0, "calories (kcal)")
	logNutritionCmd.Flags().Float64Var(&logNutritionProtein, "protein", 0, "protein (g)")
	logNutritionCmd.Flags().Float64Var(&logNutritionCarbs, "carbs", 0, "carbs (g)")
	logNutritionCmd.Flags().Float64Var(&logNutritionFat, "fat", 0, "fat (g)")
	logNutritionCmd.MarkFlagRequired("date")
	logNutritionCmd.MarkFlagRequired("calories")
	logNutritionCmd.MarkFlagRequired("protein")
	logNutritionCmd.MarkFlagRequired("carbs")
	logNutritionCmd.MarkFlagRequired("fat")
	rootCmd.AddCommand(logNutritionCmd)

	syncDayCmd.Flags().StringVar(&syncDayDate, "date", "", "date (YYYY-MM-DD)")
	syncDayCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(syncDayCmd)
}
