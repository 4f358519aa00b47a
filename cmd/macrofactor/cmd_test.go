// ABOUTME: Tests for CLI helper functions and validation.
// ABOUTME: Covers date parsing, default ranges, entry times, and the search cache index.
package main

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/macrofactor/internal/api"
	"github.com/harperreed/macrofactor/internal/config"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid date", input: "2025-01-15", wantErr: false},
		{name: "day-first format", input: "15-01-2025", wantErr: true},
		{name: "missing day", input: "2025-01", wantErr: true},
		{name: "not a date", input: "yesterday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestResolveRangeDefaults(t *testing.T) {
	start, end, err := resolveRange("", "")
	if err != nil {
		t.Fatalf("resolveRange failed: %v", err)
	}
	if !end.Equal(today()) {
		t.Errorf("default end = %s, want today", end.Format("2006-01-02"))
	}
	if !start.AddDate(0, 0, defaultRangeDays).Equal(end) {
		t.Errorf("default span = %s..%s, want %d days",
			start.Format("2006-01-02"), end.Format("2006-01-02"), defaultRangeDays)
	}
}

func TestResolveRangeExplicit(t *testing.T) {
	start, end, err := resolveRange("2025-01-08", "2025-01-15")
	if err != nil {
		t.Fatalf("resolveRange failed: %v", err)
	}
	if start.Format("2006-01-02") != "2025-01-08" || end.Format("2006-01-02") != "2025-01-15" {
		t.Errorf("range = %s..%s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
}

func TestResolveRangeEndOnly(t *testing.T) {
	start, end, err := resolveRange("", "2025-01-15")
	if err != nil {
		t.Fatalf("resolveRange failed: %v", err)
	}
	if end.Format("2006-01-02") != "2025-01-15" {
		t.Errorf("end = %s, want 2025-01-15", end.Format("2006-01-02"))
	}
	if start.Format("2006-01-02") != "2025-01-08" {
		t.Errorf("start = %s, want 2025-01-08", start.Format("2006-01-02"))
	}
}

func TestResolveRangeReversed(t *testing.T) {
	if _, _, err := resolveRange("2025-01-15", "2025-01-08"); err == nil {
		t.Error("resolveRange accepted start after end")
	}
}

func TestEntryTimeExplicit(t *testing.T) {
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)

	at, err := entryTime(date, "08:30")
	if err != nil {
		t.Fatalf("entryTime failed: %v", err)
	}
	if at.Hour() != 8 || at.Minute() != 30 {
		t.Errorf("entryTime = %02d:%02d, want 08:30", at.Hour(), at.Minute())
	}
	if at.Year() != 2025 || at.Month() != time.January || at.Day() != 15 {
		t.Errorf("entryTime date = %s", at.Format("2006-01-02"))
	}
}

func TestEntryTimeInvalid(t *testing.T) {
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)
	for _, input := range []string{"8", "8:30:00", "24:00", "12:60", "ab:cd"} {
		if _, err := entryTime(date, input); err == nil {
			t.Errorf("entryTime accepted %q", input)
		}
	}
}

func TestEntryTimeDefaults(t *testing.T) {
	// Past dates default to noon.
	past := time.Date(2020, 6, 1, 0, 0, 0, 0, time.Local)
	at, err := entryTime(past, "")
	if err != nil {
		t.Fatalf("entryTime failed: %v", err)
	}
	if at.Hour() != 12 || at.Minute() != 0 {
		t.Errorf("past-date default = %02d:%02d, want 12:00", at.Hour(), at.Minute())
	}

	// Today defaults to now.
	at, err = entryTime(today(), "")
	if err != nil {
		t.Fatalf("entryTime failed: %v", err)
	}
	if d := time.Since(at); d < 0 || d > time.Minute {
		t.Errorf("today default = %s, want approximately now", at)
	}
}

func TestCachedFood(t *testing.T) {
	cache := &config.SearchCache{
		Query: "egg",
		Results: []api.SearchFoodResult{
			{FoodID: "f1", Name: "Egg"},
			{FoodID: "f2", Name: "Egg White"},
		},
	}

	tests := []struct {
		name    string
		cache   *config.SearchCache
		index   int
		want    string
		wantErr bool
	}{
		{name: "nil cache", cache: nil, index: 1, wantErr: true},
		{name: "empty cache", cache: &config.SearchCache{Query: "x"}, index: 1, wantErr: true},
		{name: "zero index", cache: cache, index: 0, wantErr: true},
		{name: "index past end", cache: cache, index: 3, wantErr: true},
		{name: "first result", cache: cache, index: 1, want: "Egg"},
		{name: "second result", cache: cache, index: 2, want: "Egg White"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			food, err := cachedFood(tt.cache, tt.index)
			if tt.wantErr {
				if err == nil {
					t.Fatal("cachedFood succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("cachedFood failed: %v", err)
			}
			if food.Name != tt.want {
				t.Errorf("cachedFood = %q, want %q", food.Name, tt.want)
			}
		})
	}
}

// TestSearchCacheAcrossInvocations covers the search-then-log flow: results
// persisted by one invocation must resolve by index in the next.
func TestSearchCacheAcrossInvocations(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// First invocation: search-food persists results.
	cfg := &config.Config{
		RefreshToken: "token",
		LastSearch: &config.SearchCache{
			Query: "egg",
			Results: []api.SearchFoodResult{
				{FoodID: "f1", Name: "Egg", CaloriesPer100g: 155},
				{FoodID: "f2", Name: "Egg White", CaloriesPer100g: 52},
			},
		},
	}
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}

	// Second invocation: log-searched-food loads and indexes the cache.
	loaded, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	food, err := cachedFood(loaded.LastSearch, 1)
	if err != nil {
		t.Fatalf("cachedFood failed: %v", err)
	}
	if food.FoodID != "f1" || food.Name != "Egg" {
		t.Errorf("index 1 = %+v, want the first candidate", food)
	}
}

func TestWeekdayIndex(t *testing.T) {
	if got := weekdayIndex(time.Monday); got != 0 {
		t.Errorf("weekdayIndex(Monday) = %d, want 0", got)
	}
	if got := weekdayIndex(time.Sunday); got != 6 {
		t.Errorf("weekdayIndex(Sunday) = %d, want 6", got)
	}
	if got := weekdayIndex(time.Wednesday); got != 2 {
		t.Errorf("weekdayIndex(Wednesday) = %d, want 2", got)
	}
}

func TestFmtOpt(t *testing.T) {
	if got := fmtOpt(nil); got != "—" {
		t.Errorf("fmtOpt(nil) = %q", got)
	}
	v := 155.6
	if got := fmtOpt(&v); got != "156" {
		t.Errorf("fmtOpt(155.6) = %q, want 156", got)
	}
}

func TestNonNegative(t *testing.T) {
	if err := nonNegative("calories", 100); err != nil {
		t.Errorf("nonNegative(100) = %v", err)
	}
	if err := nonNegative("calories", 0); err != nil {
		t.Errorf("nonNegative(0) = %v", err)
	}
	err := nonNegative("calories", -1)
	if err == nil {
		t.Fatal("nonNegative(-1) succeeded")
	}
	if !strings.Contains(err.Error(), "--calories") {
		t.Errorf("error %q does not name the flag", err)
	}
}

func TestStatusResponseJSON(t *testing.T) {
	data, err := json.Marshal(okStatus("Logged '%s'", "Egg"))
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid(data) {
		t.Fatalf("invalid JSON: %s", data)
	}
	var parsed map[string]string
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatal(err)
	}
	if parsed["status"] != "ok" || parsed["message"] != "Logged 'Egg'" {
		t.Errorf("status body = %v", parsed)
	}
}

func TestAllCommandsRegistered(t *testing.T) {
	want := []string{
		"login", "profile", "goals", "nutrition", "food-log", "weight",
		"steps", "search-food", "log-food", "log-searched-food",
		"log-weight", "log-nutrition", "delete-food", "delete-weight",
		"sync-day", "mcp",
	}
	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}
