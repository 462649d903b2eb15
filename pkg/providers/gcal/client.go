// Package gcal is a thin client for the Google Calendar events API. The
// OAuth access token is injected by the hosting platform; no OAuth flow is
// implemented here. An unconfigured client reports Configured() == false.
package gcal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

const defaultBaseURL = "https://www.googleapis.com/calendar/v3"

// Event is the locally shaped view of a calendar event. Start and End are
// RFC3339 timestamps.
type Event struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Link        string `json:"link,omitempty"`
}

// Client calls the Google Calendar REST API.
type Client struct {
	token      string
	calendarID string
	baseURL    string
	httpc      *http.Client
}

// NewClient returns a client for the given calendar using the given OAuth
// access token. An empty calendarID targets "primary".
func NewClient(token, calendarID string) *Client {
	if calendarID == "" {
		calendarID = "primary"
	}
	return &Client{
		token:      token,
		calendarID: calendarID,
		baseURL:    defaultBaseURL,
		httpc:      &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether the client has a token to reach the API.
func (c *Client) Configured() bool {
	return c.token != ""
}

// CreateEvent inserts the event and returns it with the provider-assigned id
// and link filled in.
func (c *Client) CreateEvent(ctx context.Context, ev Event) (Event, error) {
	payload := map[string]interface{}{
		"summary":     ev.Title,
		"description": ev.Description,
		"location":    ev.Location,
		"start":       map[string]string{"dateTime": ev.Start},
		"end":         map[string]string{"dateTime": ev.End},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal event: %w", err)
	}

	endpoint := fmt.Sprintf("%s/calendars/%s/events", c.baseURL, url.PathEscape(c.calendarID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Event{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Event{}, fmt.Errorf("calendar insert request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Event{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg := gjson.GetBytes(respBody, "error.message").String()
		return Event{}, fmt.Errorf("calendar insert returned %d: %s", resp.StatusCode, msg)
	}

	ev.ID = gjson.GetBytes(respBody, "id").String()
	ev.Link = gjson.GetBytes(respBody, "htmlLink").String()
	return ev, nil
}

// ListEvents returns upcoming events. A non-empty date (YYYY-MM-DD) restricts
// the listing to that day.
func (c *Client) ListEvents(ctx context.Context, date string, maxResults int) ([]Event, error) {
	q := url.Values{}
	q.Set("singleEvents", "true")
	q.Set("orderBy", "startTime")
	if maxResults > 0 {
		q.Set("maxResults", strconv.Itoa(maxResults))
	}
	if date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", date, err)
		}
		q.Set("timeMin", day.Format(time.RFC3339))
		q.Set("timeMax", day.AddDate(0, 0, 1).Format(time.RFC3339))
	} else {
		q.Set("timeMin", time.Now().UTC().Format(time.RFC3339))
	}

	endpoint := fmt.Sprintf("%s/calendars/%s/events?%s", c.baseURL, url.PathEscape(c.calendarID), q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calendar list request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := gjson.GetBytes(body, "error.message").String()
		return nil, fmt.Errorf("calendar list returned %d: %s", resp.StatusCode, msg)
	}

	var events []Event
	for _, item := range gjson.GetBytes(body, "items").Array() {
		events = append(events, Event{
			ID:          item.Get("id").String(),
			Title:       item.Get("summary").String(),
			Start:       item.Get("start.dateTime").String(),
			End:         item.Get("end.dateTime").String(),
			Description: item.Get("description").String(),
			Location:    item.Get("location").String(),
			Link:        item.Get("htmlLink").String(),
		})
	}
	return events, nil
}
