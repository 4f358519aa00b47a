// ABOUTME: CLI command for authenticating against MacroFactor.
// ABOUTME: Exchanges email+password for a refresh token and persists it.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/macrofactor/internal/api"
	"github.com/harperreed/macrofactor/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and save refresh token",
	Long: `Authenticate against MacroFactor and save the refresh token.

Credentials can come from flags or from the environment:

  MACROFACTOR_EMAIL
  MACROFACTOR_PASSWORD

Logging in rewrites the config file, which also clears any cached search
results.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email := loginEmail
		if email == "" {
			email = viper.GetString("email")
		}
		password := loginPassword
		if password == "" {
			password = viper.GetString("password")
		}
		if email == "" || password == "" {
			return fmt.Errorf("email and password are required (flags or MACROFACTOR_EMAIL/MACROFACTOR_PASSWORD)")
		}

		client := api.New("")
		token, err := client.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		cfg := &config.Config{RefreshToken: token}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		if jsonOutput {
			return printJSON(okStatus("Logged in successfully"))
		}
		color.Green("✓ Logged in successfully")
		fmt.Printf("  config saved to %s\n", config.Path())
		return nil
	},
}

func init() {
	viper.SetEnvPrefix("MACROFACTOR")
	viper.BindEnv("email")
	viper.BindEnv("password")

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	rootCmd.AddCommand(loginCmd)
}
