package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/oauth2"
)

// BaseURL is the Strava API root. Overridable in tests.
var BaseURL = "https://www.strava.com/api/v3"

// Client is a Strava API client.
type Client struct {
	httpClient  *http.Client
	rateLimiter *RateLimiter
}

// NewClient creates a new Strava API client backed by the given token source.
func NewClient(tokenSource oauth2.TokenSource) *Client {
	return &Client{
		httpClient:  oauth2.NewClient(context.Background(), tokenSource),
		rateLimiter: NewRateLimiter(),
	}
}

// NewClientWithHTTP creates a client over an explicit http.Client. Used in tests.
func NewClientWithHTTP(httpClient *http.Client) *Client {
	return &Client{
		httpClient:  httpClient,
		rateLimiter: NewRateLimiter(),
	}
}

// GetAthlete fetches the authenticated athlete. It doubles as the
// connection test: a 401 here means the token is bad.
func (c *Client) GetAthlete(ctx context.Context) (*Athlete, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, "/athlete", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var athlete Athlete
	if err := json.NewDecoder(resp.Body).Decode(&athlete); err != nil {
		return nil, fmt.Errorf("decoding athlete: %w", err)
	}
	return &athlete, nil
}

// GetActivitiesPage fetches one page of activity summaries as raw JSON
// messages. Records are kept undecoded so that one malformed entry can
// be skipped later without losing the rest of the page.
func (c *Client) GetActivitiesPage(ctx context.Context, page, perPage int) ([]json.RawMessage, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))

	resp, err := c.get(ctx, "/athlete/activities", params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payloads []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payloads); err != nil {
		return nil, fmt.Errorf("decoding activities page %d: %w", page, err)
	}
	return payloads, nil
}

// GetAllActivities walks pages until the API runs dry, invoking
// onProgress after each page when set.
func (c *Client) GetAllActivities(ctx context.Context, onProgress func(fetched int)) ([]json.RawMessage, error) {
	var all []json.RawMessage
	page := 1
	perPage := 100 // max allowed by Strava

	for {
		payloads, err := c.GetActivitiesPage(ctx, page, perPage)
		if err != nil {
			return all, fmt.Errorf("fetching page %d: %w", page, err)
		}

		if len(payloads) == 0 {
			break
		}

		all = append(all, payloads...)

		if onProgress != nil {
			onProgress(len(all))
		}

		if len(payloads) < perPage {
			break // last page
		}
		page++
	}

	return all, nil
}

// RateLimitStatus returns the remaining request budget in the short and
// daily windows.
func (c *Client) RateLimitStatus() (shortRemaining, dailyRemaining int) {
	return c.rateLimiter.Status()
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	reqURL := BaseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	c.rateLimiter.UpdateFromHeaders(resp.Header)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	return resp, nil
}
