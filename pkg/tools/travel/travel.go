// Package travel implements multi-destination trip planning and the
// aggregate trip booking tool. Plans are persisted through the plan store;
// bookings stay mocked like the single-item booking tools.
package travel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/h-ess/concierge-toolkit/pkg/logging"
	"github.com/h-ess/concierge-toolkit/pkg/providers/gcal"
	"github.com/h-ess/concierge-toolkit/pkg/store"
	"github.com/h-ess/concierge-toolkit/pkg/tools/booking"
	"github.com/h-ess/concierge-toolkit/toolkit"
)

// Plan status values.
const (
	planStatusDraft  = "draft"
	planStatusBooked = "booked"
)

// Service holds the plan store and an optional calendar client for trip
// reminders.
type Service struct {
	plans    store.PlanStore
	calendar *gcal.Client
}

// NewService builds the travel tools service. calendar may be unconfigured;
// reminders are then skipped.
func NewService(plans store.PlanStore, calendar *gcal.Client) *Service {
	return &Service{plans: plans, calendar: calendar}
}

// CreateTravelPlan validates the itinerary and persists it as a draft plan.
func (s *Service) CreateTravelPlan(ctx context.Context, args CreatePlanArgs) (PlanResponse, error) {
	start, err := time.Parse("2006-01-02", args.StartDate)
	if err != nil {
		return PlanResponse{Success: false, Error: "invalid_start_date"},
			toolkit.NewError("invalid_arguments", fmt.Sprintf("startDate must be YYYY-MM-DD, got %q", args.StartDate))
	}
	end, err := time.Parse("2006-01-02", args.EndDate)
	if err != nil {
		return PlanResponse{Success: false, Error: "invalid_end_date"},
			toolkit.NewError("invalid_arguments", fmt.Sprintf("endDate must be YYYY-MM-DD, got %q", args.EndDate))
	}
	if !end.After(start) {
		return PlanResponse{Success: false, Error: "invalid_date_range"},
			toolkit.NewError("invalid_arguments", "endDate must be after startDate")
	}
	if len(args.Destinations) == 0 {
		return PlanResponse{Success: false, Error: "no_destinations"},
			toolkit.NewError("invalid_arguments", "at least one destination is required")
	}
	if args.Travelers <= 0 {
		return PlanResponse{Success: false, Error: "invalid_travelers"},
			toolkit.NewError("invalid_arguments", "travelers must be at least 1")
	}

	p := store.TravelPlan{
		ID:           booking.NewCode("TP"),
		Title:        args.Title,
		Destinations: args.Destinations,
		StartDate:    args.StartDate,
		EndDate:      args.EndDate,
		Travelers:    args.Travelers,
		Budget:       args.Budget,
		Status:       planStatusDraft,
	}
	if err := s.plans.Save(ctx, p); err != nil {
		logging.Error("travel: save plan", "id", p.ID, "err", err)
		return PlanResponse{Success: false, Error: "store_error"},
			toolkit.NewError("store_error", err.Error())
	}

	logging.Info("travel: plan created", "id", p.ID, "destinations", len(p.Destinations))
	return PlanResponse{Success: true, Plan: &p, Display: FormatPlan(p)}, nil
}

// GetTravelPlan looks up a plan by id. Unknown ids fall back to a sample
// plan so the tool stays demonstrable without prior state.
func (s *Service) GetTravelPlan(ctx context.Context, args GetPlanArgs) (PlanResponse, error) {
	p, err := s.plans.Get(ctx, args.PlanID)
	if errors.Is(err, store.ErrNotFound) {
		logging.Warn("travel: plan not found, serving sample plan", "id", args.PlanID)
		p = SamplePlan(args.PlanID)
	} else if err != nil {
		return PlanResponse{Success: false, Error: "store_error"},
			toolkit.NewError("store_error", err.Error())
	}
	return PlanResponse{Success: true, Plan: &p, Display: FormatPlan(p)}, nil
}

// BookTrip books the requested legs of a plan in order, flight first. Each
// leg is attempted independently: a failed leg does not roll back earlier
// confirmations, the response simply reports every outcome. On full success
// the plan moves to booked and a best-effort calendar reminder is created.
func (s *Service) BookTrip(ctx context.Context, args BookTripArgs) (BookTripResponse, error) {
	if args.FlightNumber == "" && args.HotelID == "" {
		return BookTripResponse{Success: false, Error: "nothing_to_book"},
			toolkit.NewError("invalid_arguments", "at least one of flightNumber or hotelId is required")
	}

	p, err := s.plans.Get(ctx, args.PlanID)
	if errors.Is(err, store.ErrNotFound) {
		return BookTripResponse{Success: false, Error: "plan_not_found"},
			toolkit.NewError("plan_not_found", fmt.Sprintf("no travel plan with id %q", args.PlanID))
	}
	if err != nil {
		return BookTripResponse{Success: false, Error: "store_error"},
			toolkit.NewError("store_error", err.Error())
	}

	var legs []LegResult
	allOK := true
	if args.FlightNumber != "" {
		legs = append(legs, s.bookLeg("flight", "FL", "Flight "+args.FlightNumber, args.TravelerName))
		if legs[len(legs)-1].Success {
			p.Flights = append(p.Flights, args.FlightNumber)
		} else {
			allOK = false
		}
	}
	if args.HotelID != "" {
		legs = append(legs, s.bookLeg("hotel", "HT", "Hotel "+args.HotelID, args.TravelerName))
		if legs[len(legs)-1].Success {
			p.Hotels = append(p.Hotels, args.HotelID)
		} else {
			allOK = false
		}
	}

	if allOK {
		p.Status = planStatusBooked
	}
	if err := s.plans.Save(ctx, p); err != nil {
		logging.Error("travel: save booked plan", "id", p.ID, "err", err)
	}
	if allOK {
		s.addTripReminder(ctx, p)
	}

	resp := BookTripResponse{
		Success: allOK,
		Legs:    legs,
		Display: FormatTrip(p, legs),
	}
	if !allOK {
		resp.Error = "partial_booking"
		return resp, toolkit.NewError("booking_failed", "one or more legs could not be booked")
	}
	logging.Info("travel: trip booked", "id", p.ID, "legs", len(legs))
	return resp, nil
}

func (s *Service) bookLeg(leg, prefix, item, name string) LegResult {
	conf, err := booking.Confirm(prefix, item, name)
	if err != nil {
		logging.Warn("travel: leg booking failed", "leg", leg, "item", item, "err", err)
		return LegResult{Leg: leg, Success: false, Error: err.Error()}
	}
	return LegResult{Leg: leg, Success: true, Confirmation: &conf}
}

// addTripReminder creates an all-trip calendar event. Failures are logged
// and never affect the booking outcome.
func (s *Service) addTripReminder(ctx context.Context, p store.TravelPlan) {
	if s.calendar == nil || !s.calendar.Configured() {
		return
	}
	start, err := time.Parse("2006-01-02", p.StartDate)
	if err != nil {
		return
	}
	ev := gcal.Event{
		Title:       "Trip: " + p.Title,
		Start:       start.Format(time.RFC3339),
		End:         start.Add(time.Hour).Format(time.RFC3339),
		Description: fmt.Sprintf("Travel plan %s, %d traveler(s)", p.ID, p.Travelers),
	}
	if _, err := s.calendar.CreateEvent(ctx, ev); err != nil {
		logging.Warn("travel: calendar reminder failed", "plan", p.ID, "err", err)
	}
}

// SamplePlan is the fallback itinerary served for unknown plan ids.
func SamplePlan(id string) store.TravelPlan {
	return store.TravelPlan{
		ID:           id,
		Title:        "European Highlights",
		Destinations: []string{"Paris", "Rome", "Barcelona"},
		StartDate:    "2025-09-10",
		EndDate:      "2025-09-24",
		Travelers:    2,
		Budget:       5000,
		Status:       planStatusDraft,
	}
}
