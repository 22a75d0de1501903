// Package client is the typed data-access layer for the MealChoice API.
// Every remote operation the dashboard performs goes through here.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/mealchoice/mealchoice/models"
)

// Client talks to one MealChoice API server on behalf of one signed-in user.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// New creates a client for the given API base URL. The token may be empty
// until Login succeeds.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken installs the bearer token used for authenticated requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Session identifies the signed-in user.
type Session struct {
	UserID      uint
	Name        string
	Email       string
	AccessToken string
}

// Login authenticates with email and password and installs the returned
// access token on the client.
func (c *Client) Login(email, password string) (*Session, error) {
	payload := map[string]string{"email": email, "password": password}

	var response struct {
		User struct {
			ID    uint   `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
		AccessToken string `json:"access_token"`
	}
	if err := c.do(http.MethodPost, "/auth/login", payload, &response); err != nil {
		return nil, err
	}

	c.token = response.AccessToken
	return &Session{
		UserID:      response.User.ID,
		Name:        response.User.Name,
		Email:       response.User.Email,
		AccessToken: response.AccessToken,
	}, nil
}

// Register creates an account and installs the returned access token.
func (c *Client) Register(name, email, password string) (*Session, error) {
	payload := map[string]string{"name": name, "email": email, "password": password}

	var response struct {
		User struct {
			ID    uint   `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
		AccessToken string `json:"access_token"`
	}
	if err := c.do(http.MethodPost, "/auth/register", payload, &response); err != nil {
		return nil, err
	}

	c.token = response.AccessToken
	return &Session{
		UserID:      response.User.ID,
		Name:        response.User.Name,
		Email:       response.User.Email,
		AccessToken: response.AccessToken,
	}, nil
}

// ListMeals returns the meal catalogue ordered by name.
func (c *Client) ListMeals() ([]models.Meal, error) {
	var response struct {
		Meals []models.Meal `json:"meals"`
	}
	if err := c.do(http.MethodGet, "/meals/?order=name", nil, &response); err != nil {
		return nil, err
	}
	return response.Meals, nil
}

// MealInput carries the writable fields of a meal.
type MealInput struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageUrl    string `json:"image_url"`
}

// CreateMeal inserts a new catalogue meal.
func (c *Client) CreateMeal(input MealInput) (*models.Meal, error) {
	var response struct {
		Meal models.Meal `json:"meal"`
	}
	if err := c.do(http.MethodPost, "/meals/", input, &response); err != nil {
		return nil, err
	}
	return &response.Meal, nil
}

// UpdateMeal replaces the writable fields of an existing meal.
func (c *Client) UpdateMeal(id uint, input MealInput) (*models.Meal, error) {
	var response struct {
		Meal models.Meal `json:"meal"`
	}
	if err := c.do(http.MethodPut, fmt.Sprintf("/meals/%d", id), input, &response); err != nil {
		return nil, err
	}
	return &response.Meal, nil
}

// DeleteMeal permanently removes one meal by ID.
func (c *Client) DeleteMeal(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/meals/%d", id), nil, nil)
}

// ListRestaurants returns the restaurant catalogue ordered by name.
func (c *Client) ListRestaurants() ([]models.Restaurant, error) {
	var response struct {
		Restaurants []models.Restaurant `json:"restaurants"`
	}
	if err := c.do(http.MethodGet, "/restaurants/?order=name", nil, &response); err != nil {
		return nil, err
	}
	return response.Restaurants, nil
}

// RestaurantInput carries the writable fields of a restaurant.
type RestaurantInput struct {
	Name        string `json:"name"`
	CuisineType string `json:"cuisine_type"`
	Description string `json:"description"`
	ImageUrl    string `json:"image_url"`
}

// CreateRestaurant inserts a new restaurant.
func (c *Client) CreateRestaurant(input RestaurantInput) (*models.Restaurant, error) {
	var response struct {
		Restaurant models.Restaurant `json:"restaurant"`
	}
	if err := c.do(http.MethodPost, "/restaurants/", input, &response); err != nil {
		return nil, err
	}
	return &response.Restaurant, nil
}

// UpdateRestaurant replaces the writable fields of an existing restaurant.
func (c *Client) UpdateRestaurant(id uint, input RestaurantInput) (*models.Restaurant, error) {
	var response struct {
		Restaurant models.Restaurant `json:"restaurant"`
	}
	if err := c.do(http.MethodPut, fmt.Sprintf("/restaurants/%d", id), input, &response); err != nil {
		return nil, err
	}
	return &response.Restaurant, nil
}

// DeleteRestaurant permanently removes one restaurant by ID.
func (c *Client) DeleteRestaurant(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/restaurants/%d", id), nil, nil)
}

// ListLogs returns the signed-in user's logs, newest eaten-at first.
func (c *Client) ListLogs() ([]models.MealLog, error) {
	var response struct {
		Logs []models.MealLog `json:"logs"`
	}
	if err := c.do(http.MethodGet, "/logs/", nil, &response); err != nil {
		return nil, err
	}
	return response.Logs, nil
}

// LogInput carries one consumption event. Exactly one of MealID/RestaurantID
// must be set; Rating nil means unrated.
type LogInput struct {
	MealID       *uint     `json:"meal_id,omitempty"`
	RestaurantID *uint     `json:"restaurant_id,omitempty"`
	Rating       *int      `json:"rating,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	EatenAt      time.Time `json:"eaten_at"`
}

// CreateLog records one consumption event.
func (c *Client) CreateLog(input LogInput) (*models.MealLog, error) {
	var response struct {
		Log models.MealLog `json:"log"`
	}
	if err := c.do(http.MethodPost, "/logs/", input, &response); err != nil {
		return nil, err
	}
	return &response.Log, nil
}

// Preferences fetches the signed-in user's preference record.
func (c *Client) Preferences() (*models.UserPreferences, error) {
	var response struct {
		Preferences models.UserPreferences `json:"preferences"`
	}
	if err := c.do(http.MethodGet, "/preferences/", nil, &response); err != nil {
		return nil, err
	}
	return &response.Preferences, nil
}

// SavePreferences upserts the signed-in user's preference record.
func (c *Client) SavePreferences(prefs models.UserPreferences) (*models.UserPreferences, error) {
	var response struct {
		Preferences models.UserPreferences `json:"preferences"`
	}
	if err := c.do(http.MethodPut, "/preferences/", prefs, &response); err != nil {
		return nil, err
	}
	return &response.Preferences, nil
}

// Snapshot is the dashboard's working set: all three collections loaded
// together.
type Snapshot struct {
	Meals       []models.Meal
	Restaurants []models.Restaurant
	Logs        []models.MealLog
}

// LoadAll fetches meals, restaurants, and the user's logs concurrently and
// joins the results. The batch is all-or-nothing: any failure fails the
// whole load, and the first error observed is returned.
func (c *Client) LoadAll() (*Snapshot, error) {
	var (
		wg   sync.WaitGroup
		snap Snapshot
		errs [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		snap.Meals, errs[0] = c.ListMeals()
	}()
	go func() {
		defer wg.Done()
		snap.Restaurants, errs[1] = c.ListRestaurants()
	}()
	go func() {
		defer wg.Done()
		snap.Logs, errs[2] = c.ListLogs()
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &snap, nil
}

// do performs one request against the API, decoding the JSON body into out
// when out is non-nil. Non-2xx responses are surfaced as errors carrying the
// server's error message.
func (c *Client) do(method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBytes, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("api error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
