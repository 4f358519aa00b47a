// ABOUTME: CLI command for showing calorie/macro targets and TDEE.
// ABOUTME: Renders today's targets plus the full weekly table.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var dayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// weekdayIndex maps time.Weekday (Sunday=0) onto the Monday=0 indexing the
// goals arrays use.
func weekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func weekValue(values []float64, i int) string {
	if i < 0 || i >= len(values) {
		return "—"
	}
	return fmt.Sprintf("%.0f", values[i])
}

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Show current calorie/macro targets and TDEE",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := session()
		if err != nil {
			return err
		}

		goals, err := client.Goals(cmd.Context())
		if err != nil {
			return err
		}
		if err := persistSession(cfg, client); err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(goals)
		}

		fmt.Println("── Goals ──")
		if goals.TDEE != nil {
			fmt.Printf("  TDEE: %.0f kcal\n", *goals.TDEE)
		}
		if goals.ProgramStyle != "" {
			programType := goals.ProgramType
			if programType == "" {
				programType = "—"
			}
			fmt.Printf("  Program: %s / %s\n", goals.ProgramStyle, programType)
		}

		dow := weekdayIndex(time.Now().Weekday())
		fmt.Printf("\n  Today (%s):\n", dayNames[dow])
		fmt.Printf("    Calories: %s kcal\n", weekValue(goals.Calories, dow))
		fmt.Printf("    Protein:  %s g\n", weekValue(goals.Protein, dow))
		fmt.Printf("    Carbs:    %s g\n", weekValue(goals.Carbs, dow))
		fmt.Printf("    Fat:      %s g\n", weekValue(goals.Fat, dow))

		fmt.Println("\n  Weekly targets:")
		for i := 0; i < 7; i++ {
			fmt.Printf("    %s: %s kcal | %sp / %sc / %sf\n",
				dayNames[i],
				weekValue(goals.Calories, i),
				weekValue(goals.Protein, i),
				weekValue(goals.Carbs, i),
				weekValue(goals.Fat, i))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(goalsCmd)
}
