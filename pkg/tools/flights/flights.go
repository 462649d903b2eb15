// Package flights implements the flight use case: search, status lookup and
// a mocked booking. Search and status go through Aviationstack; booking never
// touches a real provider.
package flights

import (
	"context"
	"fmt"
	"time"

	"github.com/h-ess/concierge-toolkit/pkg/logging"
	"github.com/h-ess/concierge-toolkit/pkg/providers/aviationstack"
	"github.com/h-ess/concierge-toolkit/pkg/providers/gcal"
	"github.com/h-ess/concierge-toolkit/pkg/tools/booking"
	"github.com/h-ess/concierge-toolkit/toolkit"
)

const defaultLimit = 10

// Service holds the provider clients the flight tools need. Calendar is
// optional: when present, a successful booking also creates a calendar event
// on a best-effort basis.
type Service struct {
	api      *aviationstack.Client
	calendar *gcal.Client
}

// NewService builds the flight tools service. calendar may be nil.
func NewService(api *aviationstack.Client, calendar *gcal.Client) *Service {
	return &Service{api: api, calendar: calendar}
}

// SearchFlights finds flights matching the given filters. Without an API key
// the provider client serves sample data instead.
func (s *Service) SearchFlights(ctx context.Context, args SearchFlightsArgs) (SearchFlightsResponse, error) {
	if args.Date != "" {
		if _, err := time.Parse("2006-01-02", args.Date); err != nil {
			return SearchFlightsResponse{Success: false, Error: "invalid_date"},
				toolkit.NewError("invalid_arguments", fmt.Sprintf("date must be YYYY-MM-DD, got %q", args.Date))
		}
	}
	limit := args.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	var flights []aviationstack.Flight
	if s.api.Configured() {
		var err error
		flights, err = s.api.SearchFlights(ctx, aviationstack.SearchParams{
			From:    args.From,
			To:      args.To,
			Date:    args.Date,
			Airline: args.Airline,
			Limit:   limit,
		})
		if err != nil {
			logging.Error("flights: search failed", "from", args.From, "to", args.To, "err", err)
			return SearchFlightsResponse{Success: false, Error: "provider_error"},
				toolkit.NewError("provider_error", err.Error())
		}
	} else {
		logging.Warn("flights: no Aviationstack key configured, serving sample data")
		flights = aviationstack.SampleFlights(args.From, args.To)
		if len(flights) > limit {
			flights = flights[:limit]
		}
	}

	return SearchFlightsResponse{
		Success: true,
		Flights: flights,
		Display: FormatFlights(flights),
	}, nil
}

// FlightStatus looks up the current status of one flight.
func (s *Service) FlightStatus(ctx context.Context, args FlightStatusArgs) (FlightStatusResponse, error) {
	var flights []aviationstack.Flight
	if s.api.Configured() {
		var err error
		flights, err = s.api.FlightStatus(ctx, args.FlightNumber, args.Date)
		if err != nil {
			logging.Error("flights: status lookup failed", "flight", args.FlightNumber, "err", err)
			return FlightStatusResponse{Success: false, Error: "provider_error"},
				toolkit.NewError("provider_error", err.Error())
		}
	} else {
		logging.Warn("flights: no Aviationstack key configured, serving sample data")
		flights = aviationstack.SampleStatus(args.FlightNumber)
	}

	return FlightStatusResponse{
		Success: true,
		Flights: flights,
		Display: FormatFlights(flights),
	}, nil
}

// BookFlight performs the mocked booking and, when a calendar client is
// configured, creates a departure reminder. A calendar failure is logged and
// ignored; it never affects the booking result.
func (s *Service) BookFlight(ctx context.Context, args BookFlightArgs) (BookFlightResponse, error) {
	item := fmt.Sprintf("flight %s", args.FlightNumber)
	conf, err := booking.Confirm("FL", item, args.PassengerName)
	if err != nil {
		logging.Warn("flights: mock booking rejected", "flight", args.FlightNumber)
		return BookFlightResponse{Success: false, Error: "booking_failed"},
			toolkit.NewError("booking_failed", err.Error())
	}

	s.addCalendarReminder(ctx, args.FlightNumber, conf.ConfirmationCode)

	return BookFlightResponse{
		Success:      true,
		Confirmation: &conf,
		Display:      FormatBooking(conf, args.SeatClass),
	}, nil
}

func (s *Service) addCalendarReminder(ctx context.Context, flightNumber, code string) {
	if s.calendar == nil || !s.calendar.Configured() {
		return
	}
	start := time.Now().AddDate(0, 0, 1).Truncate(time.Hour)
	_, err := s.calendar.CreateEvent(ctx, gcal.Event{
		Title:       fmt.Sprintf("Flight %s", flightNumber),
		Start:       start.Format(time.RFC3339),
		End:         start.Add(3 * time.Hour).Format(time.RFC3339),
		Description: fmt.Sprintf("Booking confirmation %s", code),
	})
	if err != nil {
		logging.Warn("flights: calendar reminder failed, booking unaffected", "flight", flightNumber, "err", err)
	}
}
