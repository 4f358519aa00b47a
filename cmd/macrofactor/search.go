// ABOUTME: CLI commands for food search and logging from cached results.
// ABOUTME: search-food persists results; log-searched-food references them by index.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/macrofactor/internal/api"
	"github.com/harperreed/macrofactor/internal/config"
	"github.com/spf13/cobra"
)

var (
	logSearchedDate     string
	logSearchedIndex    int
	logSearchedServing  int
	logSearchedQuantity float64
	logSearchedTime     string
)

// cachedFood resolves a 1-based index against the persisted search cache.
// It fails without touching the network when the cache is empty or the index
// is out of range.
func cachedFood(cache *config.SearchCache, index int) (*api.SearchFoodResult, error) {
	if cache == nil || len(cache.Results) == 0 {
		return nil, fmt.Errorf("no search results cached: run 'macrofactor search-food' first")
	}
	if index < 1 || index > len(cache.Results) {
		return nil, fmt.Errorf("invalid food index %d: last search had %d results", index, len(cache.Results))
	}
	return &cache.Results[index-1], nil
}

var searchFoodCmd = &cobra.Command{
	Use:   "search-food <query>",
	Short: "Search the food database",
	Long: `Search the MacroFactor food database.

Results are cached in the config file so a later log-searched-food can pick
one by its 1-based index. Each new search overwrites the previous cache; an
empty result set leaves it untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]

		cfg, client, err := session()
		if err != nil {
			return err
		}

		results, err := client.SearchFoods(cmd.Context(), query)
		if err != nil {
			return err
		}

		if len(results) == 0 {
			if err := persistSession(cfg, client); err != nil {
				return err
			}
			if jsonOutput {
				return printJSON([]api.SearchFoodResult{})
			}
			fmt.Printf("No results for '%s'\n", query)
			return nil
		}

		cfg.RefreshToken = client.RefreshToken()
		cfg.LastSearch = &config.SearchCache{Query: query, Results: results}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save search cache: %w", err)
		}

		if jsonOutput {
			return printJSON(results)
		}

		fmt.Printf("── Search Results for '%s' (%d results) ──\n\n", query, len(results))
		for i, r := range results {
			brand := ""
			if r.Brand != "" {
				brand = fmt.Sprintf(" (%s)", r.Brand)
			}
			src := "common"
			if r.Branded {
				src = "branded"
			}

			// Show per default serving if available, otherwise per 100g.
			scale := 1.0
			servingInfo := "per 100g"
			if r.DefaultServing != nil {
				scale = r.DefaultServing.GramWeight / 100
				servingInfo = fmt.Sprintf("per %s (%.0fg)", r.DefaultServing.Description, r.DefaultServing.GramWeight)
			}

			fmt.Printf("  %2d. %s%s [%s]\n", i+1, r.Name, brand, src)
			fmt.Printf("      %.0f kcal | %.0fp / %.0fc / %.0ff  (%s)\n",
				r.CaloriesPer100g*scale, r.ProteinPer100g*scale,
				r.CarbsPer100g*scale, r.FatPer100g*scale, servingInfo)

			if len(r.Servings) > 1 {
				var servings []string
				for _, s := range r.Servings {
					servings = append(servings, fmt.Sprintf("%s (%.0fg)", s.Description, s.GramWeight))
				}
				fmt.Printf("      servings: %s\n", strings.Join(servings, ", "))
			}
			fmt.Println()
		}
		return nil
	},
}

var logSearchedFoodCmd = &cobra.Command{
	Use:   "log-searched-food",
	Short: "Log a food from the last search results",
	Long: `Log a food picked from the last search-food results.

--food-index is the 1-based position shown by search-food. --serving 1 means
the food's default serving; higher values address its serving list. The
entry time defaults to now when --date is today, otherwise to 12:00.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDate(logSearchedDate)
		if err != nil {
			return err
		}
		at, err := entryTime(date, logSearchedTime)
		if err != nil {
			return err
		}
		if logSearchedQuantity <= 0 {
			return fmt.Errorf("--quantity must be positive, got %g", logSearchedQuantity)
		}

		cfg, client, err := session()
		if err != nil {
			return err
		}

		food, err := cachedFood(cfg.LastSearch, logSearchedIndex)
		if err != nil {
			return err
		}
		serving, err := food.Serving(logSearchedServing)
		if err != nil {
			return err
		}

		if _, err := client.LogSearchedFood(cmd.Context(), at, food, serving, logSearchedQuantity); err != nil {
			return err
		}
		if err := persistSession(cfg, client); err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(okStatus("Logged '%s' (%.1fx %s)", food.Name, logSearchedQuantity, serving.Description))
		}
		scale := serving.GramWeight / 100 * logSearchedQuantity
		color.Green("✓ Logged '%s' on %s", food.Name, logSearchedDate)
		fmt.Printf("  %.0f kcal | %.0fp / %.0fc / %.0ff (%.1fx %s)\n",
			food.CaloriesPer100g*scale, food.ProteinPer100g*scale,
			food.CarbsPer100g*scale, food.FatPer100g*scale,
			logSearchedQuantity, serving.Description)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchFoodCmd)

	logSearchedFoodCmd.Flags().StringVar(&logSearchedDate, "date", "", "date (YYYY-MM-DD)")
	logSearchedFoodCmd.Flags().IntVar(&logSearchedIndex, "food-index", 0, "1-based index from search results")
	logSearchedFoodCmd.Flags().IntVar(&logSearchedServing, "serving", 1, "1-based serving index (1 = default serving)")
	logSearchedFoodCmd.Flags().Float64Var(&logSearchedQuantity, "quantity", 1.0, "quantity of servings")
	logSearchedFoodCmd.Flags().StringVar(&logSearchedTime, "time", "", "time of day (HH:MM, default now)")
	logSearchedFoodCmd.MarkFlagRequired("date")
	logSearchedFoodCmd.MarkFlagRequired("food-index")
	rootCmd.AddCommand(logSearchedFoodCmd)
}
