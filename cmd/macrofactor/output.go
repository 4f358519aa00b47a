// ABOUTME: Output helpers for text and JSON rendering.
// ABOUTME: JSON mode serializes the typed response structs directly.
package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// statusResponse is the JSON body printed by mutating commands.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func okStatus(format string, args ...any) statusResponse {
	return statusResponse{Status: "ok", Message: fmt.Sprintf(format, args...)}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// fmtOpt renders an optional numeric field, using an em dash for missing
// values.
func fmtOpt(v *float64) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%.0f", *v)
}

func nonNegative(name string, v float64) error {
	if v < 0 {
		return fmt.Errorf("--%s must be non-negative, got %g", name, v)
	}
	return nil
}
