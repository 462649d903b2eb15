package calendar

import "github.com/h-ess/concierge-toolkit/pkg/providers/gcal"

// CreateEventArgs are the details for the create_event tool. Times are given
// as a separate date and clock time; an omitted end time defaults to one hour
// after the start.
type CreateEventArgs struct {
	Title       string `json:"title" jsonschema:"required,description=Event title."`
	Date        string `json:"date" jsonschema:"required,description=Event date in YYYY-MM-DD format."`
	StartTime   string `json:"startTime" jsonschema:"required,description=Start time in HH:MM 24-hour format."`
	EndTime     string `json:"endTime,omitempty" jsonschema:"description=End time in HH:MM 24-hour format (default one hour after start)."`
	Description string `json:"description,omitempty" jsonschema:"description=Longer event description."`
	Location    string `json:"location,omitempty" jsonschema:"description=Where the event takes place."`
}

// EventResponse carries the created event.
type EventResponse struct {
	Success bool        `json:"success"`
	Event   *gcal.Event `json:"event,omitempty"`
	Display string      `json:"display,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ListEventsArgs restrict the listing to a day or a result count.
type ListEventsArgs struct {
	Date       string `json:"date,omitempty" jsonschema:"description=Only list events on this day, YYYY-MM-DD."`
	MaxResults int    `json:"maxResults,omitempty" jsonschema:"description=Maximum number of events to return (default 10)."`
}

// ListEventsResponse carries the matching events.
type ListEventsResponse struct {
	Success bool         `json:"success"`
	Events  []gcal.Event `json:"events,omitempty"`
	Display string       `json:"display,omitempty"`
	Error   string       `json:"error,omitempty"`
}
