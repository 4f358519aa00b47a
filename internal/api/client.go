// ABOUTME: HTTP client for the MacroFactor API.
// ABOUTME: Wraps every remote operation the CLI exposes as a typed method.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const defaultBaseURL = "https://api.macrofactorapp.com"

// DateFormat is the calendar-date wire format used throughout the API.
const DateFormat = "2006-01-02"

// Client talks to the MacroFactor API on behalf of one user session.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	signInURL    string
	tokenURL     string
	refreshToken string
	tokenSource  oauth2.TokenSource
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithAuthURLs overrides the Firebase sign-in and token endpoints.
func WithAuthURLs(signIn, token string) Option {
	return func(c *Client) {
		c.signInURL = signIn
		c.tokenURL = token
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// New creates a Client for the given refresh token. An empty token is valid
// only for Login.
func New(refreshToken string, opts ...Option) *Client {
	c := &Client{
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		baseURL:      defaultBaseURL,
		signInURL:    defaultSignInURL,
		tokenURL:     defaultTokenURL,
		refreshToken: refreshToken,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one authenticated API request, decoding a JSON response into
// out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	tok, err := c.token(ctx)
	if err != nil {
		return err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, bytes.TrimSpace(snippet))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: invalid response: %w", method, path, err)
	}
	return nil
}

func dateRange(start, end time.Time) url.Values {
	return url.Values{
		"start": {start.Format(DateFormat)},
		"end":   {end.Format(DateFormat)},
	}
}

// Profile fetches the user's account profile.
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := c.do(ctx, http.MethodGet, "/v1/profile", nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Goals fetches the current calorie/macro targets and TDEE.
func (c *Client) Goals(ctx context.Context) (*Goals, error) {
	var g Goals
	if err := c.do(ctx, http.MethodGet, "/v1/goals", nil, nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// Nutrition fetches daily nutrition summaries for the inclusive date range.
func (c *Client) Nutrition(ctx context.Context, start, end time.Time) ([]NutritionDay, error) {
	var days []NutritionDay
	if err := c.do(ctx, http.MethodGet, "/v1/nutrition", dateRange(start, end), nil, &days); err != nil {
		return nil, err
	}
	return days, nil
}

// FoodLog fetches food entries for a single day.
func (c *Client) FoodLog(ctx context.Context, date time.Time) ([]FoodEntry, error) {
	query := url.Values{"date": {date.Format(DateFormat)}}
	var entries []FoodEntry
	if err := c.do(ctx, http.MethodGet, "/v1/food-log", query, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// WeightEntries fetches weight entries for the inclusive date range.
func (c *Client) WeightEntries(ctx context.Context, start, end time.Time) ([]WeightEntry, error) {
	var entries []WeightEntry
	if err := c.do(ctx, http.MethodGet, "/v1/weight", dateRange(start, end), nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Steps fetches daily step counts for the inclusive date range.
func (c *Client) Steps(ctx context.Context, start, end time.Time) ([]StepEntry, error) {
	var entries []StepEntry
	if err := c.do(ctx, http.MethodGet, "/v1/steps", dateRange(start, end), nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SearchFoods queries the food database.
func (c *Client) SearchFoods(ctx context.Context, query string) ([]SearchFoodResult, error) {
	var results []SearchFoodResult
	if err := c.do(ctx, http.MethodGet, "/v1/foods/search", url.Values{"q": {query}}, nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}

type logFoodRequest struct {
	EntryID  string  `json:"entry_id"`
	Date     string  `json:"date"`
	Hour     int     `json:"hour"`
	Minute   int     `json:"minute"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// LogFood creates a quick-add food entry with manually supplied macros.
// The entry ID is assigned client-side.
func (c *Client) LogFood(ctx context.Context, at time.Time, name string, calories, protein, carbs, fat float64) (string, error) {
	entryID := uuid.NewString()
	req := logFoodRequest{
		EntryID:  entryID,
		Date:     at.Format(DateFormat),
		Hour:     at.Hour(),
		Minute:   at.Minute(),
		Name:     name,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}
	if err := c.do(ctx, http.MethodPost, "/v1/food-log", nil, req, nil); err != nil {
		return "", err
	}
	return entryID, nil
}

type logSearchedFoodRequest struct {
	EntryID    string      `json:"entry_id"`
	Date       string      `json:"date"`
	Hour       int         `json:"hour"`
	Minute     int         `json:"minute"`
	FoodID     string      `json:"food_id"`
	Name       string      `json:"name"`
	Brand      string      `json:"brand,omitempty"`
	Serving    FoodServing `json:"serving"`
	Quantity   float64     `json:"quantity"`
	GramWeight float64     `json:"gram_weight"`
}

// LogSearchedFood logs a food from a previous search with the chosen serving
// and quantity.
func (c *Client) LogSearchedFood(ctx context.Context, at time.Time, food *SearchFoodResult, serving FoodServing, quantity float64) (string, error) {
	entryID := uuid.NewString()
	req := logSearchedFoodRequest{
		EntryID:    entryID,
		Date:       at.Format(DateFormat),
		Hour:       at.Hour(),
		Minute:     at.Minute(),
		FoodID:     food.FoodID,
		Name:       food.Name,
		Brand:      food.Brand,
		Serving:    serving,
		Quantity:   quantity,
		GramWeight: serving.GramWeight * quantity,
	}
	if err := c.do(ctx, http.MethodPost, "/v1/food-log", nil, req, nil); err != nil {
		return "", err
	}
	return entryID, nil
}

type logWeightRequest struct {
	Date    string   `json:"date"`
	Weight  float64  `json:"weight"`
	BodyFat *float64 `json:"body_fat,omitempty"`
}

// LogWeight records a scale reading in kilograms. bodyFat is a percentage and
// may be nil.
func (c *Client) LogWeight(ctx context.Context, date time.Time, weight float64, bodyFat *float64) error {
	req := logWeightRequest{Date: date.Format(DateFormat), Weight: weight, BodyFat: bodyFat}
	return c.do(ctx, http.MethodPost, "/v1/weight", nil, req, nil)
}

type logNutritionRequest struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// LogNutrition imports a manual nutrition summary for a day.
func (c *Client) LogNutrition(ctx context.Context, date time.Time, calories, protein, carbs, fat float64) error {
	req := logNutritionRequest{
		Date:     date.Format(DateFormat),
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}
	return c.do(ctx, http.MethodPost, "/v1/nutrition", nil, req, nil)
}

// DeleteFoodEntry removes one food entry from a day's log.
func (c *Client) DeleteFoodEntry(ctx context.Context, date time.Time, entryID string) error {
	query := url.Values{"date": {date.Format(DateFormat)}}
	return c.do(ctx, http.MethodDelete, "/v1/food-log/"+url.PathEscape(entryID), query, nil, nil)
}

// DeleteWeightEntry removes the weight entry for a day.
func (c *Client) DeleteWeightEntry(ctx context.Context, date time.Time) error {
	return c.do(ctx, http.MethodDelete, "/v1/weight/"+date.Format(DateFormat), nil, nil, nil)
}

// SyncDay asks the service to recompute a day's nutrition totals.
func (c *Client) SyncDay(ctx context.Context, date time.Time) error {
	return c.do(ctx, http.MethodPost, "/v1/sync/"+date.Format(DateFormat), nil, nil, nil)
}
