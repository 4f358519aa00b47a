// ABOUTME: Tests for MCP server construction and tool input handling.
// ABOUTME: Covers cache index validation and date parsing without network calls.
package mcp

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/harperreed/macrofactor/internal/api"
	"github.com/harperreed/macrofactor/internal/config"
)

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	s, err := NewServer(cfg, api.New(cfg.RefreshToken))
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return s
}

// NewServer registers every tool, which validates the input schemas derived
// from the struct tags. A malformed jsonschema tag panics here instead of at
// first use.
func TestNewServerBuildsToolSchemas(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("NewServer panicked: %v", r)
		}
	}()
	newTestServer(t, &config.Config{RefreshToken: "token"})
}

// Handlers must write the config back when the service rotates the refresh
// token mid-session, or the stored token is stale once the process exits.
func TestHandlersPersistRotatedToken(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &config.Config{RefreshToken: "initial-refresh"}
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}

	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"test-access","token_type":"Bearer","expires_in":3600,"refresh_token":"rotated-refresh"}`)
	}))
	defer tokenSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer apiSrv.Close()

	client := api.New("initial-refresh",
		api.WithBaseURL(apiSrv.URL),
		api.WithAuthURLs("http://unused.invalid", tokenSrv.URL))
	s, err := NewServer(cfg, client)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	if _, _, err := s.handleGetGoals(context.Background(), nil, struct{}{}); err != nil {
		t.Fatalf("handleGetGoals failed: %v", err)
	}

	loaded, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.RefreshToken != "rotated-refresh" {
		t.Errorf("stored refresh token = %q, want rotated-refresh", loaded.RefreshToken)
	}
}

func TestParseDay(t *testing.T) {
	d, err := parseDay("2025-01-15")
	if err != nil {
		t.Fatalf("parseDay failed: %v", err)
	}
	if d.Format("2006-01-02") != "2025-01-15" {
		t.Errorf("parseDay = %s", d.Format("2006-01-02"))
	}

	if _, err := parseDay("not-a-date"); err == nil {
		t.Error("parseDay accepted garbage")
	}

	// Empty defaults to today.
	d, err = parseDay("")
	if err != nil {
		t.Fatalf("parseDay(\"\") failed: %v", err)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Errorf("parseDay(\"\") = %s, want midnight today", d)
	}
}

func TestParseRangeDefaults(t *testing.T) {
	start, end, err := parseRange(dateRangeInput{})
	if err != nil {
		t.Fatalf("parseRange failed: %v", err)
	}
	if !start.AddDate(0, 0, 7).Equal(end) {
		t.Errorf("default range = %s..%s, want 7 days",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
}

func TestLogSearchedFoodEmptyCache(t *testing.T) {
	s := newTestServer(t, &config.Config{RefreshToken: "token"})

	_, _, err := s.handleLogSearchedFood(context.Background(), nil, logSearchedFoodInput{
		Date:      "2025-01-15",
		FoodIndex: 1,
	})
	if err == nil {
		t.Fatal("handleLogSearchedFood succeeded with empty cache")
	}
	if !strings.Contains(err.Error(), "no search results cached") {
		t.Errorf("error %q does not mention the missing cache", err)
	}
}

func TestLogSearchedFoodIndexOutOfRange(t *testing.T) {
	cfg := &config.Config{
		RefreshToken: "token",
		LastSearch: &config.SearchCache{
			Query:   "egg",
			Results: []api.SearchFoodResult{{FoodID: "f1", Name: "Egg"}},
		},
	}
	s := newTestServer(t, cfg)

	for _, index := range []int{-1, 2} {
		_, _, err := s.handleLogSearchedFood(context.Background(), nil, logSearchedFoodInput{
			Date:      "2025-01-15",
			FoodIndex: index,
		})
		if err == nil {
			t.Errorf("handleLogSearchedFood accepted index %d", index)
		}
	}
}
