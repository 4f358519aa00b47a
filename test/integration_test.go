// ABOUTME: Integration tests for macrofactor CLI.
// ABOUTME: Exercises validation and not-logged-in failures without a network.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidationWithoutNetwork(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "macrofactor")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/macrofactor")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	configHome := t.TempDir()

	run := func(args ...string) (string, error) {
		cmd := exec.Command(binary, args...)
		cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+configHome)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Every authenticated command fails fast without a config file.
	for _, args := range [][]string{
		{"profile"},
		{"goals"},
		{"nutrition"},
		{"food-log"},
		{"weight"},
		{"steps"},
		{"search-food", "egg"},
		{"sync-day", "--date", "2025-01-15"},
	} {
		output, err := run(args...)
		if err == nil {
			t.Errorf("%v succeeded without config", args)
		}
		if !strings.Contains(output, "not logged in") {
			t.Errorf("%v output = %q, want not-logged-in message", args, output)
		}
	}

	// Invalid dates are rejected before the session is even loaded.
	output, err := run("nutrition", "--start", "15-01-2025")
	if err == nil {
		t.Error("nutrition accepted an invalid start date")
	}
	if !strings.Contains(output, "invalid date") {
		t.Errorf("output = %q, want invalid-date message", output)
	}

	// Seed a config with a two-result search cache.
	configDir := filepath.Join(configHome, "macrofactor")
	if err := os.MkdirAll(configDir, 0750); err != nil {
		t.Fatal(err)
	}
	seeded := `{
  "refresh_token": "seeded-token",
  "last_search": {
    "query": "egg",
    "results": [
      {"food_id": "f1", "name": "Egg", "calories_per_100g": 155},
      {"food_id": "f2", "name": "Egg White", "calories_per_100g": 52}
    ]
  }
}`
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte(seeded), 0600); err != nil {
		t.Fatal(err)
	}

	// Out-of-range indexes fail before any network call.
	for _, index := range []string{"0", "3"} {
		output, err := run("log-searched-food", "--date", "2025-01-15", "--food-index", index)
		if err == nil {
			t.Errorf("log-searched-food accepted index %s", index)
		}
		if !strings.Contains(output, "invalid food index") {
			t.Errorf("index %s output = %q, want index error", index, output)
		}
	}
}
