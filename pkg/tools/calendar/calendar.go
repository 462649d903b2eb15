// Package calendar implements the scheduling tools on top of the Google
// Calendar client. Without an OAuth token the tools degrade to local
// behavior: created events get a local id, listings serve sample data.
package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/h-ess/concierge-toolkit/pkg/logging"
	"github.com/h-ess/concierge-toolkit/pkg/providers/gcal"
	"github.com/h-ess/concierge-toolkit/toolkit"
)

const defaultMaxResults = 10

// Service wraps the calendar client.
type Service struct {
	api *gcal.Client
}

// NewService builds the calendar tools service.
func NewService(api *gcal.Client) *Service {
	return &Service{api: api}
}

// CreateEvent validates the time window and inserts the event. Without a
// token the event is echoed back with a locally generated id.
func (s *Service) CreateEvent(ctx context.Context, args CreateEventArgs) (EventResponse, error) {
	start, err := time.Parse("2006-01-02 15:04", args.Date+" "+args.StartTime)
	if err != nil {
		return EventResponse{Success: false, Error: "invalid_start"},
			toolkit.NewError("invalid_arguments",
				fmt.Sprintf("date must be YYYY-MM-DD and startTime HH:MM, got %q %q", args.Date, args.StartTime))
	}
	end := start.Add(time.Hour)
	if args.EndTime != "" {
		end, err = time.Parse("2006-01-02 15:04", args.Date+" "+args.EndTime)
		if err != nil {
			return EventResponse{Success: false, Error: "invalid_end"},
				toolkit.NewError("invalid_arguments", fmt.Sprintf("endTime must be HH:MM, got %q", args.EndTime))
		}
	}
	if !end.After(start) {
		return EventResponse{Success: false, Error: "invalid_time_range"},
			toolkit.NewError("invalid_arguments", "endTime must be after startTime")
	}

	ev := gcal.Event{
		Title:       args.Title,
		Start:       start.UTC().Format(time.RFC3339),
		End:         end.UTC().Format(time.RFC3339),
		Description: args.Description,
		Location:    args.Location,
	}
	if s.api.Configured() {
		ev, err = s.api.CreateEvent(ctx, ev)
		if err != nil {
			logging.Error("calendar: create event", "title", args.Title, "err", err)
			return EventResponse{Success: false, Error: "provider_error"},
				toolkit.NewError("provider_error", err.Error())
		}
	} else {
		logging.Warn("calendar: no token configured, event created locally only")
		ev.ID = "local-" + uuid.NewString()[:8]
	}

	logging.Info("calendar: event created", "id", ev.ID, "title", ev.Title)
	return EventResponse{Success: true, Event: &ev, Display: FormatEvent(ev)}, nil
}

// ListEvents returns upcoming events, optionally for a single day.
func (s *Service) ListEvents(ctx context.Context, args ListEventsArgs) (ListEventsResponse, error) {
	if args.Date != "" {
		if _, err := time.Parse("2006-01-02", args.Date); err != nil {
			return ListEventsResponse{Success: false, Error: "invalid_date"},
				toolkit.NewError("invalid_arguments", fmt.Sprintf("date must be YYYY-MM-DD, got %q", args.Date))
		}
	}
	max := args.MaxResults
	if max <= 0 {
		max = defaultMaxResults
	}

	var events []gcal.Event
	if s.api.Configured() {
		var err error
		events, err = s.api.ListEvents(ctx, args.Date, max)
		if err != nil {
			logging.Error("calendar: list events", "date", args.Date, "err", err)
			return ListEventsResponse{Success: false, Error: "provider_error"},
				toolkit.NewError("provider_error", err.Error())
		}
	} else {
		logging.Warn("calendar: no token configured, serving sample events")
		events = gcal.SampleEvents(args.Date)
	}
	if len(events) > max {
		events = events[:max]
	}

	return ListEventsResponse{Success: true, Events: events, Display: FormatEvents(events)}, nil
}
