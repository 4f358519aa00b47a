// ABOUTME: CLI command for showing the user profile.
// ABOUTME: Renders account fields as text or raw JSON.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show user profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := session()
		if err != nil {
			return err
		}

		profile, err := client.Profile(cmd.Context())
		if err != nil {
			return err
		}
		if err := persistSession(cfg, client); err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(profile)
		}

		fmt.Println("── Profile ──")
		fmt.Printf("  name:  %s\n", profile.Name)
		fmt.Printf("  email: %s\n", profile.Email)
		if profile.Sex != "" {
			fmt.Printf("  sex:   %s\n", profile.Sex)
		}
		if profile.Birthday != "" {
			fmt.Printf("  born:  %s\n", profile.Birthday)
		}
		if profile.HeightCM > 0 {
			fmt.Printf("  height: %.0f cm\n", profile.HeightCM)
		}
		if profile.Units != "" {
			fmt.Printf("  units: %s\n", profile.Units)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
