// Package hotels is a thin client for a Hotels.com search API hosted on
// RapidAPI. An unconfigured client (no RapidAPI key) reports
// Configured() == false and callers fall back to sample data.
package hotels

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

const (
	defaultBaseURL = "https://hotels-com-provider.p.rapidapi.com/v2"
	rapidAPIHost   = "hotels-com-provider.p.rapidapi.com"
)

// Hotel is the locally shaped view of one search result.
type Hotel struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address,omitempty"`
	Rating        float64 `json:"rating"`
	PricePerNight float64 `json:"pricePerNight"`
	Currency      string  `json:"currency,omitempty"`
}

// SearchParams are the supported hotel search filters.
type SearchParams struct {
	Location string
	CheckIn  string
	CheckOut string
	Guests   int
}

// Client calls the hotel search API.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

// NewClient returns a client using the given RapidAPI key.
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

// SearchHotels queries the hotel search endpoint. Rating and price filters
// the provider does not support natively are applied by the caller.
func (c *Client) SearchHotels(ctx context.Context, p SearchParams) ([]Hotel, error) {
	q := url.Values{}
	q.Set("query", p.Location)
	q.Set("checkin_date", p.CheckIn)
	q.Set("checkout_date", p.CheckOut)
	if p.Guests > 0 {
		q.Set("adults_number", strconv.Itoa(p.Guests))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/hotels/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", rapidAPIHost)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hotel search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hotel search returned %d", resp.StatusCode)
	}

	var out []Hotel
	for _, item := range gjson.GetBytes(body, "properties").Array() {
		out = append(out, Hotel{
			ID:            item.Get("id").String(),
			Name:          item.Get("name").String(),
			Address:       item.Get("neighborhood.name").String(),
			Rating:        item.Get("reviews.score").Float() / 2, // provider scores out of 10
			PricePerNight: item.Get("price.lead.amount").Float(),
			Currency:      item.Get("price.lead.currencyInfo.code").String(),
		})
	}
	return out, nil
}
