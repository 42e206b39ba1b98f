// Package instagram proxies the retailer's recent posts from the Graph API.
// The feed is decorative: an unconfigured token or upstream failure degrades
// to an empty list, never an error page.
package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

const postLimit = 4

// Post mirrors the media fields requested from the Graph API.
type Post struct {
	ID        string `json:"id"`
	Caption   string `json:"caption,omitempty"`
	MediaType string `json:"media_type"`
	MediaURL  string `json:"media_url"`
	Permalink string `json:"permalink"`
	Timestamp string `json:"timestamp"`
}

type Client struct {
	httpClient  *http.Client
	accessToken string
	baseURL     string
	logger      *log.Logger
}

func NewClient(accessToken string, logger *log.Logger) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		accessToken: accessToken,
		baseURL:     "https://graph.instagram.com",
		logger:      logger,
	}
}

// Recent returns up to four recent posts. All failure modes return an empty
// slice and nil error.
func (c *Client) Recent(ctx context.Context) []Post {
	if c.accessToken == "" {
		return nil
	}

	endpoint := fmt.Sprintf("%s/me/media?fields=id,caption,media_type,media_url,permalink,timestamp&access_token=%s&limit=%d",
		c.baseURL, url.QueryEscape(c.accessToken), postLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logf("instagram request: %v", err)
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logf("instagram fetch: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logf("instagram fetch: status %d", resp.StatusCode)
		return nil
	}

	var body struct {
		Data []Post `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logf("instagram decode: %v", err)
		return nil
	}
	return body.Data
}

func (c *Client) logf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
