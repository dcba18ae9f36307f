package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const steamBaseURL = "https://api.steampowered.com"

// SteamClient reads the public Steam endpoints. No key is needed for
// player counts or news.
type SteamClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewSteamClient() *SteamClient {
	return &SteamClient{
		baseURL: steamBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// PlayerCount is the current number of in-game players for one app.
type PlayerCount struct {
	AppID       int `json:"appId"`
	PlayerCount int `json:"playerCount"`
}

type playerCountResponse struct {
	Response struct {
		PlayerCount int `json:"player_count"`
		Result      int `json:"result"`
	} `json:"response"`
}

// NewsItem is one entry of an app's news feed.
type NewsItem struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Author string `json:"author,omitempty"`
	Date   int64  `json:"date"`
}

type newsResponse struct {
	AppNews struct {
		NewsItems []NewsItem `json:"newsitems"`
	} `json:"appnews"`
}

// CurrentPlayers fetches the live player count for a Steam app id.
func (c *SteamClient) CurrentPlayers(ctx context.Context, appID int) (*PlayerCount, error) {
	rawURL := fmt.Sprintf("%s/ISteamUserStats/GetNumberOfCurrentPlayers/v1/?appid=%d", c.baseURL, appID)

	var resp playerCountResponse
	if err := c.get(ctx, rawURL, &resp); err != nil {
		return nil, err
	}
	if resp.Response.Result != 1 {
		return nil, fmt.Errorf("Steam has no player data for app %d", appID)
	}
	return &PlayerCount{AppID: appID, PlayerCount: resp.Response.PlayerCount}, nil
}

// News fetches the latest news entries for a Steam app id.
func (c *SteamClient) News(ctx context.Context, appID, count int) ([]NewsItem, error) {
	if count <= 0 {
		count = 5
	}
	rawURL := fmt.Sprintf("%s/ISteamNews/GetNewsForApp/v2/?appid=%d&count=%d&maxlength=300", c.baseURL, appID, count)

	var resp newsResponse
	if err := c.get(ctx, rawURL, &resp); err != nil {
		return nil, err
	}
	return resp.AppNews.NewsItems, nil
}

func (c *SteamClient) get(ctx context.Context, rawURL string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("error building Steam request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making request to Steam API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Steam API returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("error decoding Steam response: %w", err)
	}
	return nil
}
