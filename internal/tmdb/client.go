package tmdb

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the TMDb HTTP API. Transport failures are absorbed
// here: callers get (nil, false) and decide how to degrade.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// Get issues an authenticated GET to {baseURL}/{endpoint} and returns
// the raw response body. Any transport error, timeout or non-2xx status
// is logged and reported as a miss, never as an error.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) ([]byte, bool) {
	u := fmt.Sprintf("%s/%s", c.baseURL, endpoint)
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		log.Printf("[tmdb] build request %s: %v", endpoint, err)
		return nil, false
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[tmdb] request %s failed: %v", endpoint, err)
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[tmdb] request %s: unexpected status %d", endpoint, resp.StatusCode)
		return nil, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[tmdb] read response %s: %v", endpoint, err)
		return nil, false
	}

	return body, true
}
