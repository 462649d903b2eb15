// Package yelp is a thin client for the Yelp Fusion business search API,
// used for restaurant discovery. An unconfigured client (no bearer token)
// reports Configured() == false and callers fall back to sample data.
package yelp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const defaultBaseURL = "https://api.yelp.com/v3"

// Restaurant is the locally shaped view of one Yelp business.
type Restaurant struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Cuisine     string  `json:"cuisine,omitempty"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	Price       string  `json:"price,omitempty"`
	Address     string  `json:"address,omitempty"`
	Phone       string  `json:"phone,omitempty"`
}

// SearchParams are the supported restaurant search filters. Price is Yelp's
// "1"–"4" tier string; OpenNow restricts to currently open businesses.
type SearchParams struct {
	Location string
	Cuisine  string
	Price    string
	OpenNow  bool
	Limit    int
}

// Client calls the Yelp Fusion API.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

// NewClient returns a client using the given API key as bearer token.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether the client has credentials to reach the API.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// SearchRestaurants queries /businesses/search. Minimum-rating filtering is
// not supported by Yelp and is applied by the caller.
func (c *Client) SearchRestaurants(ctx context.Context, p SearchParams) ([]Restaurant, error) {
	q := url.Values{}
	q.Set("location", p.Location)
	q.Set("categories", "restaurants")
	if p.Cuisine != "" {
		q.Set("term", p.Cuisine)
	}
	if p.Price != "" {
		q.Set("price", p.Price)
	}
	if p.OpenNow {
		q.Set("open_now", "true")
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/businesses/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yelp request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		desc := gjson.GetBytes(body, "error.description").String()
		return nil, fmt.Errorf("yelp returned %d: %s", resp.StatusCode, desc)
	}

	var out []Restaurant
	for _, item := range gjson.GetBytes(body, "businesses").Array() {
		var address []string
		for _, line := range item.Get("location.display_address").Array() {
			address = append(address, line.String())
		}
		out = append(out, Restaurant{
			ID:          item.Get("id").String(),
			Name:        item.Get("name").String(),
			Cuisine:     item.Get("categories.0.title").String(),
			Rating:      item.Get("rating").Float(),
			ReviewCount: int(item.Get("review_count").Int()),
			Price:       item.Get("price").String(),
			Address:     strings.Join(address, ", "),
			Phone:       item.Get("display_phone").String(),
		})
	}
	return out, nil
}
