// Package aviationstack is a thin client for the Aviationstack flight data
// API. An unconfigured client (no access key) reports Configured() == false
// and callers fall back to sample data.
package aviationstack

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

const defaultBaseURL = "https://api.aviationstack.com/v1"

// Flight is the locally shaped view of one Aviationstack flight record.
type Flight struct {
	FlightNumber     string `json:"flightNumber"`
	Airline          string `json:"airline"`
	DepartureAirport string `json:"departureAirport"`
	DepartureTime    string `json:"departureTime"`
	ArrivalAirport   string `json:"arrivalAirport"`
	ArrivalTime      string `json:"arrivalTime"`
	Status           string `json:"status"`
}

// SearchParams are the supported flight search filters. Empty fields are
// omitted from the request.
type SearchParams struct {
	From    string
	To      string
	Date    string
	Airline string
	Limit   int
}

// Client calls the Aviationstack REST API.
type Client struct {
	accessKey string
	baseURL   string
	httpc     *http.Client
}

// NewClient returns a client using the given access key. An empty key yields
// an unconfigured client.
func NewClient(accessKey string) *Client {
	return &Client{
		accessKey: accessKey,
		baseURL:   defaultBaseURL,
		httpc:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether the client has credentials to reach the API.
func (c *Client) Configured() bool {
	return c.accessKey != ""
}

// SearchFlights queries /flights with the given filters.
func (c *Client) SearchFlights(ctx context.Context, p SearchParams) ([]Flight, error) {
	q := url.Values{}
	q.Set("access_key", c.accessKey)
	if p.From != "" {
		q.Set("dep_iata", p.From)
	}
	if p.To != "" {
		q.Set("arr_iata", p.To)
	}
	if p.Date != "" {
		q.Set("flight_date", p.Date)
	}
	if p.Airline != "" {
		q.Set("airline_name", p.Airline)
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return c.fetchFlights(ctx, q)
}

// FlightStatus queries /flights for a single flight number.
func (c *Client) FlightStatus(ctx context.Context, flightNumber, date string) ([]Flight, error) {
	q := url.Values{}
	q.Set("access_key", c.accessKey)
	q.Set("flight_iata", flightNumber)
	if date != "" {
		q.Set("flight_date", date)
	}
	return c.fetchFlights(ctx, q)
}

func (c *Client) fetchFlights(ctx context.Context, q url.Values) ([]Flight, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/flights?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("aviationstack request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("aviationstack returned %d: %s", resp.StatusCode, truncate(string(body), 200))
	}
	// Aviationstack reports some failures inside a 200 body.
	if msg := gjson.GetBytes(body, "error.message"); msg.Exists() {
		return nil, fmt.Errorf("aviationstack error: %s", msg.String())
	}

	var flights []Flight
	for _, item := range gjson.GetBytes(body, "data").Array() {
		flights = append(flights, Flight{
			FlightNumber:     item.Get("flight.iata").String(),
			Airline:          item.Get("airline.name").String(),
			DepartureAirport: item.Get("departure.iata").String(),
			DepartureTime:    item.Get("departure.scheduled").String(),
			ArrivalAirport:   item.Get("arrival.iata").String(),
			ArrivalTime:      item.Get("arrival.scheduled").String(),
			Status:           item.Get("flight_status").String(),
		})
	}
	return flights, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
