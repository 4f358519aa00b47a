// ABOUTME: MCP tool implementations for MacroFactor data.
// ABOUTME: Exposes views, food search, and logging over the API client.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/macrofactor/internal/config"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// get_goals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_goals",
		Description: "Get current calorie/macro targets and TDEE",
	}, s.handleGetGoals)

	// get_nutrition
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_nutrition",
		Description: "Get daily nutrition summaries for a date range",
	}, s.handleGetNutrition)

	// get_food_log
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_food_log",
		Description: "Get food entries for one day",
	}, s.handleGetFoodLog)

	// get_weight
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_weight",
		Description: "Get weight entries for a date range",
	}, s.handleGetWeight)

	// search_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_food",
		Description: "Search the food database and cache results for log_searched_food",
	}, s.handleSearchFood)

	// log_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_food",
		Description: "Quick-add a food entry from manual macros",
	}, s.handleLogFood)

	// log_searched_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_searched_food",
		Description: "Log a food from the cached search results by 1-based index",
	}, s.handleLogSearchedFood)

	// log_weight
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_weight",
		Description: "Record a weight entry in kilograms",
	}, s.handleLogWeight)
}

// Tool input/output types

type dateRangeInput struct {
	Start string `json:"start,omitempty" jsonschema:"Start date in YYYY-MM-DD format; defaults to 7 days before end"`
	End   string `json:"end,omitempty" jsonschema:"End date in YYYY-MM-DD format; defaults to today"`
}

type dateInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date in YYYY-MM-DD format; defaults to today"`
}

type searchFoodInput struct {
	Query string `json:"query" jsonschema:"Food search query"`
}

type logFoodInput struct {
	Date     string  `json:"date" jsonschema:"Date in YYYY-MM-DD format"`
	Name     string  `json:"name" jsonschema:"Food name"`
	Calories float64 `json:"calories" jsonschema:"Calories in kcal"`
	Protein  float64 `json:"protein" jsonschema:"Protein in grams"`
	Carbs    float64 `json:"carbs" jsonschema:"Carbs in grams"`
	Fat      float64 `json:"fat" jsonschema:"Fat in grams"`
}

type logSearchedFoodInput struct {
	Date      string  `json:"date" jsonschema:"Date in YYYY-MM-DD format"`
	FoodIndex int     `json:"food_index" jsonschema:"1-based index into the cached search results"`
	Serving   int     `json:"serving,omitempty" jsonschema:"1-based serving index; 1 means the default serving"`
	Quantity  float64 `json:"quantity,omitempty" jsonschema:"Quantity of servings; defaults to 1.0"`
}

type logWeightInput struct {
	Date    string   `json:"date" jsonschema:"Date in YYYY-MM-DD format"`
	Weight  float64  `json:"weight" jsonschema:"Weight in kilograms"`
	BodyFat *float64 `json:"body_fat,omitempty" jsonschema:"Body fat percentage"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// parsing helpers

func parseDay(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

func parseRange(input dateRangeInput) (time.Time, time.Time, error) {
	end, err := parseDay(input.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := end.AddDate(0, 0, -7)
	if input.Start != "" {
		if start, err = parseDay(input.Start); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return start, end, nil
}

// Tool handlers

func (s *Server) handleGetGoals(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	goals, err := s.client.Goals(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := s.persist(); err != nil {
		return nil, nil, err
	}
	return nil, goals, nil
}

func (s *Server) handleGetNutrition(ctx context.Context, req *mcp.CallToolRequest, input dateRangeInput) (*mcp.CallToolResult, any, error) {
	start, end, err := parseRange(input)
	if err != nil {
		return nil, nil, err
	}
	days, err := s.client.Nutrition(ctx, start, end)
	if err != nil {
		return nil, nil, err
	}
	if err := s.persist(); err != nil {
		return nil, nil, err
	}
	return nil, days, nil
}

func (s *Server) handleGetFoodLog(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	date, err := parseDay(input.Date)
	if err != nil {
		return nil, nil, err
	}
	entries, err := s.client.FoodLog(ctx, date)
	if err != nil {
		return nil, nil, err
	}
	if err := s.persist(); err != nil {
		return nil, nil, err
	}
	return nil, entries, nil
}

func (s *Server) handleGetWeight(ctx context.Context, req *mcp.CallToolRequest, input dateRangeInput) (*mcp.CallToolResult, any, error) {
	start, end, err := parseRange(input)
	if err != nil {
		return nil, nil, err
	}
	entries, err := s.client.WeightEntries(ctx, start, end)
	if err != nil {
		return nil, nil, err
	}
	if err := s.persist(); err != nil {
		return nil, nil, err
	}
	return nil, entries, nil
}

func (s *Server) handleSearchFood(ctx context.Context, req *mcp.CallToolRequest, input searchFoodInput) (*mcp.CallToolResult, any, error) {
	results, err := s.client.SearchFoods(ctx, input.Query)
	if err != nil {
		return nil, nil, err
	}

	// Share the cache with the CLI so log_searched_food and
	// log-searched-food see the same indexes. An empty result set keeps the
	// previous cache.
	if len(results) > 0 {
		if err := s.persistSearch(&config.SearchCache{Query: input.Query, Results: results}); err != nil {
			return nil, nil, fmt.Errorf("failed to save search cache: %w", err)
		}
	} else if err := s.persist(); err != nil {
		return nil, nil, err
	}
	return nil, results, nil
}

func (s *Server) handleLogFood(ctx context.Context, req *mcp.CallToolRequest, input logFoodInput) (*mcp.CallToolResult, simpleOutput, error) {
	date, err := parseDay(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	at := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, time.Local)
	entryID, err := s.client.LogFood(ctx, at, input.Name, input.Calories, input.Protein, input.Carbs, input.Fat)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if err := s.persist(); err != nil {
		return nil, simpleOutput{}, err
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged '%s' on %s (ID: %s)", input.Name, input.Date, entryID),
	}, nil
}

func (s *Server) handleLogSearchedFood(ctx context.Context, req *mcp.CallToolRequest, input logSearchedFoodInput) (*mcp.CallToolResult, simpleOutput, error) {
	date, err := parseDay(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	cache := s.cfg.LastSearch
	if cache == nil || len(cache.Results) == 0 {
		return nil, simpleOutput{}, fmt.Errorf("no search results cached: call search_food first")
	}
	if input.FoodIndex < 1 || input.FoodIndex > len(cache.Results) {
		return nil, simpleOutput{}, fmt.Errorf("invalid food index %d: last search had %d results", input.FoodIndex, len(cache.Results))
	}
	food := &cache.Results[input.FoodIndex-1]

	servingIndex := input.Serving
	if servingIndex == 0 {
		servingIndex = 1
	}
	serving, err := food.Serving(servingIndex)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	at := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, time.Local)
	if _, err := s.client.LogSearchedFood(ctx, at, food, serving, quantity); err != nil {
		return nil, simpleOutput{}, err
	}
	if err := s.persist(); err != nil {
		return nil, simpleOutput{}, err
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged '%s' on %s (%.1fx %s)", food.Name, input.Date, quantity, serving.Description),
	}, nil
}

func (s *Server) handleLogWeight(ctx context.Context, req *mcp.CallToolRequest, input logWeightInput) (*mcp.CallToolResult, simpleOutput, error) {
	date, err := parseDay(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	if err := s.client.LogWeight(ctx, date, input.Weight, input.BodyFat); err != nil {
		return nil, simpleOutput{}, err
	}
	if err := s.persist(); err != nil {
		return nil, simpleOutput{}, err
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %.1f kg on %s", input.Weight, input.Date),
	}, nil
}
