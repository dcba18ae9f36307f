package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const giantBombBaseURL = "https://www.giantbomb.com/api"

// GiantBombClient proxies the GiantBomb catalog API.
type GiantBombClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewGiantBombClient(apiKey string) *GiantBombClient {
	return &GiantBombClient{
		apiKey:  apiKey,
		baseURL: giantBombBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GameResult is the catalog shape the frontend consumes.
type GameResult struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Deck  string `json:"deck,omitempty"`
	Image struct {
		IconURL   string `json:"icon_url,omitempty"`
		MediumURL string `json:"medium_url,omitempty"`
		SmallURL  string `json:"small_url,omitempty"`
	} `json:"image"`
	Genres []struct {
		Name string `json:"name"`
	} `json:"genres,omitempty"`
}

type searchResponse struct {
	Results []GameResult `json:"results"`
}

type gameResponse struct {
	Results GameResult `json:"results"`
}

// Search looks up games by free-text query, capped at 10 results.
func (c *GiantBombClient) Search(ctx context.Context, query string) ([]GameResult, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("GiantBomb API key not configured")
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("format", "json")
	params.Set("query", query)
	params.Set("resources", "game")
	params.Set("limit", "10")
	params.Set("field_list", "id,name,image,genres")

	var resp searchResponse
	if err := c.get(ctx, fmt.Sprintf("%s/search/?%s", c.baseURL, params.Encode()), &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Game fetches one game's detail record. GiantBomb game guids are prefixed
// with the 3030 type id.
func (c *GiantBombClient) Game(ctx context.Context, gameID string) (*GameResult, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("GiantBomb API key not configured")
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("format", "json")
	params.Set("field_list", "id,name,deck,image,genres")

	var resp gameResponse
	if err := c.get(ctx, fmt.Sprintf("%s/game/3030-%s/?%s", c.baseURL, gameID, params.Encode()), &resp); err != nil {
		return nil, err
	}
	return &resp.Results, nil
}

func (c *GiantBombClient) get(ctx context.Context, rawURL string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("error building GiantBomb request: %w", err)
	}
	// GiantBomb rejects requests without a user agent
	req.Header.Set("User-Agent", "gamehub-backend")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making request to GiantBomb API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GiantBomb API returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("error decoding GiantBomb response: %w", err)
	}
	return nil
}
