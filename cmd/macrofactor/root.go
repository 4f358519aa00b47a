// ABOUTME: Root Cobra command for macrofactor CLI.
// ABOUTME: Holds the global --json flag and the shared session helpers.
package main

import (
	"fmt"

	"github.com/harperreed/macrofactor/internal/api"
	"github.com/harperreed/macrofactor/internal/config"
	"github.com/spf13/cobra"
)

var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:   "macrofactor",
	Short: "CLI for MacroFactor nutrition tracking",
	Long: `Macrofactor is a CLI client for the MacroFactor nutrition tracking service.

QUICK START:

  $ macrofactor login --email you@example.com --password ...
  $ macrofactor goals                     # Today's calorie/macro targets
  $ macrofactor food-log                  # What you ate today
  $ macrofactor search-food "greek yogurt"
  $ macrofactor log-searched-food --food-index 1 --date 2025-01-15

VIEWS:

  profile      Account profile
  goals        Calorie/macro targets and TDEE
  nutrition    Daily nutrition summaries (default: last 7 days)
  food-log     Food entries for one day (default: today)
  weight       Weight entries (default: last 7 days)
  steps        Step counts (default: last 7 days)

LOGGING:

  search-food         Search the food database and cache the results
  log-searched-food   Log a cached search result by its 1-based index
  log-food            Quick-add a food from manual macros
  log-weight          Record a weight entry
  log-nutrition       Import a manual nutrition summary
  sync-day            Recompute a day's totals server-side

All commands accept a global --json flag that prints the raw response
structure instead of formatted text.

DATA STORAGE:

  The refresh token and the last search results are kept in a single JSON
  file at ~/.config/macrofactor/config.json (respects XDG_CONFIG_HOME).
  Deleting the file logs you out.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// session loads the stored config and builds an API client from its refresh
// token. It never touches the network; a missing config fails immediately
// with the not-logged-in error.
func session() (*config.Config, *api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, api.New(cfg.RefreshToken), nil
}

// persistSession writes the config back when the service rotated the refresh
// token during this invocation.
func persistSession(cfg *config.Config, client *api.Client) error {
	if tok := client.RefreshToken(); tok != "" && tok != cfg.RefreshToken {
		cfg.RefreshToken = tok
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
}
