// ABOUTME: CLI commands for the food log.
// ABOUTME: Covers the food-log view, quick-add log-food, and delete-food.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	foodLogDate string

	logFoodDate     string
	logFoodName     string
	logFoodCalories float64
	logFoodProtein  float64
	logFoodCarbs    float64
	logFoodFat      float64
	logFoodTime     string

	deleteFoodDate    string
	deleteFoodEntryID string
)

var foodLogCmd = &cobra.Command{
	Use:   "food-log",
	Short: "Food entries for a day",
	Long: `Show the food entries logged on one day (default: today).

Each line ends with the entry ID, which delete-food takes via --entry-id.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := today()
		if foodLogDate != "" {
			var err error
			if date, err = parseDate(foodLogDate); err != nil {
				return err
			}
		}

		cfg, client, err := session()
		if err != nil {
			return err
		}

		entries, err := client.FoodLog(cmd.Context(), date)
		if err != nil {
			return err
		}
		if err := persistSession(cfg, client); err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(entries)
		}

		dateStr := date.Format("2006-01-02")
		if len(entries) == 0 {
			fmt.Printf("No food entries for %s\n", dateStr)
			return nil
		}
		fmt.Printf("── Food Log (%s) ──\n", dateStr)
		faint := color.New(color.Faint)
		for _, e := range entries {
			brand := ""
			if e.Brand != "" {
				brand = fmt.Sprintf(" (%s)", e.Brand)
			}
			grams := ""
			if e.WeightGrams > 0 {
				grams = fmt.Sprintf(" | %.0fg", e.WeightGrams)
			}
			fmt.Printf("  [%02d:%02d] %s%s — %.0f kcal | %.0fp / %.0fc / %.0ff%s  %s\n",
				e.Hour, e.Minute, e.Name, brand,
				e.Calories, e.Protein, e.Carbs, e.Fat, grams,
				faint.Sprintf("[id: %s]", e.EntryID))
		}
		return nil
	},
}

var logFoodCmd = &cobra.Command{
	Use:   "log-food",
	Short: "Log a food entry (quick add)",
	Long: `Log a food entry from manually supplied macros, without a database lookup.

The entry time defaults to now when --date is today, otherwise to 12:00.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDate(logFoodDate)
		if err != nil {
			return err
		}
		at, err := entryTime(date, logFoodTime)
		if err != nil {
			return err
		}
		for _, check := range []struct {
			name  string
			value float64
		}{
			{"calories", logFoodCalories},
			{"protein", logFoodProtein},
			{"carbs", logFoodCarbs},
			{"fat", logFoodFat},
		} {
			if err := nonNegative(check.name, check.value); err != nil {
				return err
			}
		}

		cfg, client, err := session()
		if err != nil {
			return err
		}

		entryID, err := client.LogFood(cmd.Context(), at, logFoodName,
			logFoodCalories, logFoodProtein, logFoodCarbs, logFoodFat)
		if err != nil {
			return err
		}
		if err := persistSession(cfg, client); err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(okStatus("Food logged"))
		}
		color.Green("✓ Logged '%s' on %s", logFoodName, logFoodDate)
		fmt.Printf("  %.0f kcal | %.0fp / %.0fc / %.0ff  %s\n",
			logFoodCalories, logFoodProtein, logFoodCarbs, logFoodFat,
			color.New(color.Faint).Sprintf("[id: %s]", entryID))
		return nil
	},
}

var deleteFoodCmd = &cobra.Command{
	Use:   "delete-food",
	Short: "Delete a food entry",
	Long: `Delete one food entry from a day's log.

The entry ID is shown in food-log output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDate(deleteFoodDate)
		if err != nil {
			return err
		}

		cfg, client, err := session()
		if err != nil {
			return err
		}

		if err := client.DeleteFoodEntry(cmd.Context(), date, deleteFoodEntryID); err != nil {
			return err
		}
		if err := persistSession(cfg, client); err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(okStatus("Food entry deleted"))
		}
		color.Yellow("✗ Deleted food entry %s on %s", deleteFoodEntryID, deleteFoodDate)
		return nil
	},
}

func init() {
	foodLogCmd.Flags().StringVar(&foodLogDate, "date", "", "date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(foodLogCmd)

	logFoodCmd.Flags().StringVar(&logFoodDate, "date", "", "date (YYYY-MM-DD)")
	logFoodCmd.Flags().StringVar(&logFoodName, "name", "", "food name")
	logFoodCmd.Flags().Float64Var(&logFoodCalories, "calories", 0, "calories (kcal)")
	logFoodCmd.Flags().Float64Var(&logFoodProtein, "protein", 0, "protein (g)")
	logFoodCmd.Flags().Float64Var(&logFoodCarbs, "carbs", 0, "carbs (g)")
	logFoodCmd.Flags().Float64Var(&logFoodFat, "fat", 0, "fat (g)")
	logFoodCmd.Flags().StringVar(&logFoodTime, "time", "", "time of day (HH:MM, default now)")
	logFoodCmd.MarkFlagRequired("date")
	logFoodCmd.MarkFlagRequired("name")
	logFoodCmd.MarkFlagRequired("calories")
	logFoodCmd.MarkFlagRequired("protein")
	logFoodCmd.MarkFlagRequired("carbs")
	logFoodCmd.MarkFlagRequired("fat")
	rootCmd.AddCommand(logFoodCmd)

	deleteFoodCmd.Flags().StringVar(&deleteFoodDate, "date", "", "date (YYYY-MM-DD)")
	deleteFoodCmd.Flags().StringVar(&deleteFoodEntryID, "entry-id", "", "entry ID from food-log output")
	deleteFoodCmd.MarkFlagRequired("date")
	deleteFoodCmd.MarkFlagRequired("entry-id")
	rootCmd.AddCommand(deleteFoodCmd)
}
